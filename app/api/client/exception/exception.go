package exception

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode int

const (
	ErrCodeNoError                     ErrorCode = iota // 0
	ErrorCodeFailedBindingData                          // 1
	ErrorCodeValidationFailed                           // 2
	ErrorCodeCaptchaVerificationFailed                  // 3
	ErrorCodeEmailDispatchFailed                        // 4
	ErrorCodeCodeGenerationFailed                       // 5
	ErrorCodeCodeRateLimitExceeded                      // 6
	ErrorCodeInternalServer                             // 7
)

var (
	ErrFailedBindingData         = errors.New("failed to bind data")
	ErrValidationFailed          = errors.New("validation failed")
	ErrCaptchaVerificationFailed = errors.New("captcha verification failed")
	ErrEmailDispatchFailed       = errors.New("email dispatch failed")
	ErrCodeGenerationFailed      = errors.New("verification code generation failed")
	ErrCodeRateLimitExceeded     = errors.New("rate limit exceeded")
	ErrInternalServer            = errors.New("internal server error")
)

var errorsMap = map[ErrorCode]error{
	ErrorCodeFailedBindingData:         ErrFailedBindingData,
	ErrorCodeValidationFailed:          ErrValidationFailed,
	ErrorCodeCaptchaVerificationFailed: ErrCaptchaVerificationFailed,
	ErrorCodeEmailDispatchFailed:       ErrEmailDispatchFailed,
	ErrorCodeCodeGenerationFailed:      ErrCodeGenerationFailed,
	ErrorCodeCodeRateLimitExceeded:     ErrCodeRateLimitExceeded,
	ErrorCodeInternalServer:            ErrInternalServer,
}

func GetErrorByCode(code ErrorCode) error {
	return errorsMap[code]
}

// ErrorWithContext attaches key-value pairs to err while keeping it matchable with errors.Is.
//
//	err := ErrorWithContext(ErrCaptchaVerificationFailed, "hostname", "cipherhacks.tech")
//	// err.Error() == "hostname = cipherhacks.tech: captcha verification failed"
//
// An odd number of context arguments appends "missing ctx" as the last value.
// The context only ever reaches server-side logs.
func ErrorWithContext(err error, errorContext ...any) error {
	if ctx := formatKeyValuePairs(errorContext); ctx != "" {
		err = fmt.Errorf("%s: %w", ctx, err)
	} else {
		err = fmt.Errorf("%w", err)
	}
	return err
}

// JoinErrors combines a sentinel with its cause, attaching context to the cause.
func JoinErrors(errs error, newErr error, errorContext ...any) error {
	newErr = ErrorWithContext(newErr, errorContext...)
	return errors.Join(errs, newErr)
}

func formatKeyValuePairs(errorContext []any) string {
	if len(errorContext) == 0 {
		return ""
	}
	if len(errorContext)%2 != 0 {
		errorContext = append(errorContext, "missing ctx")
	}
	pairs := make([]string, 0, len(errorContext)/2)
	for i := 0; i < len(errorContext); i += 2 {
		key := errorContext[i]
		value := errorContext[i+1]
		pairs = append(pairs, fmt.Sprintf("%v = %v", key, value))
	}
	return strings.Join(pairs, " , ")
}
