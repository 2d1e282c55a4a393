package request

// SendEmailRequest is the body of POST /api/send-email.
type SendEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required,notblank"`
}
