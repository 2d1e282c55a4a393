package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/cipherhacks-mailer/app/api/client/response"
	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/manager"
)

type HealthController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewHealthController(managers *manager.Managers, res runtime.Resource) *HealthController {
	return &HealthController{
		res:      res,
		managers: managers,
	}
}

// HealthCheck godoc
//
//	@Summary		Verify health
//	@Description	Liveness probe for the mailer service
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	response.GeneralResponse[response.HealthResponse]
//	@Router			/health [get]
func (c *HealthController) HealthCheck(ec echo.Context) error {
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.HealthResponse{
		Status: "up",
	}))
}
