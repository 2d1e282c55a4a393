package response

const (
	MessageEmailSent = "Email sent!"

	ErrMsgInvalidRequest      = "Invalid request"
	ErrMsgCaptchaFailed       = "Captcha verification failed"
	ErrMsgFailedToSendEmail   = "Failed to send email"
	ErrMsgTooManyRequests     = "Too many requests"
	ErrMsgInternalServerError = "Internal server error"
)

type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CaptchaConfigResponse struct {
	SiteKey string `json:"site_key"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
