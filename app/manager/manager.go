package manager

import (
	"fmt"

	"backend/cipherhacks-mailer/app/internal/runtime"
	"backend/cipherhacks-mailer/app/pkg/mailgun"
	"backend/cipherhacks-mailer/app/pkg/turnstile"
	"backend/cipherhacks-mailer/app/pkg/verification"
)

type Managers struct {
	EmailManager EmailManager
}

func NewManagers(res runtime.Resource) (*Managers, error) {
	verifier := turnstile.NewVerifier(res.HttpClient, res.Config.TurnstileConfig, res.Logger)
	sender := mailgun.NewSender(res.HttpClient, res.Config.MailgunConfig, res.Logger)

	codes, err := verification.NewCodeGenerator(res.Config.VerificationConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create code generator: %w", err)
	}

	return &Managers{
		EmailManager: NewEmailManager(res, verifier, sender, codes),
	}, nil
}
