package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/cipherhacks-mailer/app/api/client/response"
	"backend/cipherhacks-mailer/app/internal/runtime"
)

type CaptchaController struct {
	res runtime.Resource
}

func NewCaptchaController(res runtime.Resource) *CaptchaController {
	return &CaptchaController{res: res}
}

// GetConfig godoc
//
//	@Summary		Captcha widget configuration
//	@Description	Public Turnstile site key for the client-side widget
//	@Tags			captcha
//	@Produce		json
//	@Success		200	{object}	response.CaptchaConfigResponse
//	@Router			/api/captcha-config [get]
func (c *CaptchaController) GetConfig(ec echo.Context) error {
	return ec.JSON(http.StatusOK, response.CaptchaConfigResponse{
		SiteKey: c.res.Config.TurnstileConfig.SiteKey,
	})
}
