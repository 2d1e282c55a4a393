package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/cipherhacks-mailer/app/api/client/exception"
	"backend/cipherhacks-mailer/app/api/client/request"
	"backend/cipherhacks-mailer/app/api/client/response"
	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/manager"
	ctxutil "backend/cipherhacks-mailer/app/pkg/util/context"
	echoUtil "backend/cipherhacks-mailer/app/pkg/util/echo"
)

const unknownRemoteIP = "unknown"

type EmailController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewEmailController(managers *manager.Managers, res runtime.Resource) *EmailController {
	return &EmailController{
		res:      res,
		managers: managers,
	}
}

// SendEmail godoc
//
//	@Summary		Send verification email
//	@Description	Verifies the Turnstile token and mails the verification code to the given address
//	@Tags			email
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.SendEmailRequest	true	"Recipient and captcha token"
//	@Success		200		{object}	response.SendEmailResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		403		{object}	response.ErrorResponse
//	@Failure		429		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/api/send-email [post]
func (c *EmailController) SendEmail(ec echo.Context) error {
	ctx := ec.Request().Context()
	requestID := ctxutil.RequestID(ctx)

	var req request.SendEmailRequest
	if err := echoUtil.BindAndValidate(ec, &req); err != nil {
		c.res.Logger.Debug("Rejected send-email request",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		if status, body, ok := echoUtil.PreparedErrorResponse(err); ok {
			return ec.JSON(status, body)
		}
		return ec.JSON(exception.ToClientError(err))
	}

	// The proxy header is a hint for the captcha provider only.
	remoteIP := ec.Request().Header.Get(c.res.Config.RouterConfig.ClientIPHeader)
	loggedIP := remoteIP
	if loggedIP == "" {
		loggedIP = unknownRemoteIP
	}
	c.res.Logger.Info("Send email requested",
		zap.String("request_id", requestID),
		zap.String("remote_ip", loggedIP),
	)

	if err := c.managers.EmailManager.SendVerificationEmail(ctx, req, remoteIP); err != nil {
		status, body := exception.ToClientError(err)
		c.res.Logger.Warn("Send email failed",
			zap.String("request_id", requestID),
			zap.Int("status", status),
			zap.Error(err),
		)
		return ec.JSON(status, body)
	}

	return ec.JSON(http.StatusOK, response.SendEmailResponse{
		Success: true,
		Message: response.MessageEmailSent,
	})
}
