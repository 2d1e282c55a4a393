package exception

import (
	"errors"
	"net/http"

	"backend/cipherhacks-mailer/app/api/client/response"
)

type statusMessage struct {
	status  int
	message string
}

// clientErrors maps sentinels to the fixed status and message a caller sees.
// Order matters: the first sentinel matched with errors.Is wins.
var clientErrors = []struct {
	err error
	statusMessage
}{
	{ErrFailedBindingData, statusMessage{http.StatusBadRequest, response.ErrMsgInvalidRequest}},
	{ErrValidationFailed, statusMessage{http.StatusBadRequest, response.ErrMsgInvalidRequest}},
	{ErrCaptchaVerificationFailed, statusMessage{http.StatusForbidden, response.ErrMsgCaptchaFailed}},
	{ErrEmailDispatchFailed, statusMessage{http.StatusInternalServerError, response.ErrMsgFailedToSendEmail}},
	{ErrCodeGenerationFailed, statusMessage{http.StatusInternalServerError, response.ErrMsgFailedToSendEmail}},
	{ErrCodeRateLimitExceeded, statusMessage{http.StatusTooManyRequests, response.ErrMsgTooManyRequests}},
}

// ToClientError turns any error into a status code and a generic body.
// The wrapped cause is never copied into the body.
func ToClientError(err error) (int, response.ErrorResponse) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			return ce.status, response.ToErrorResponse(ce.message)
		}
	}
	return http.StatusInternalServerError, response.ToErrorResponse(response.ErrMsgInternalServerError)
}
