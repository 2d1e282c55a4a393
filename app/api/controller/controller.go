package controller

import (
	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/manager"
)

type Controllers struct {
	EmailController   *EmailController
	CaptchaController *CaptchaController
	HealthController  *HealthController
}

func NewControllers(managers *manager.Managers, res runtime.Resource) *Controllers {
	return &Controllers{
		EmailController:   NewEmailController(managers, res),
		CaptchaController: NewCaptchaController(res),
		HealthController:  NewHealthController(managers, res),
	}
}
