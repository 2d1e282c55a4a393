package response

type ErrorDetail struct {
	Key     string `json:"key,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type GeneralResponse[T any] struct {
	Code         int           `json:"code"`
	Message      string        `json:"message,omitempty"`
	Data         T             `json:"data,omitempty"`
	ErrorDetails []ErrorDetail `json:"error_details,omitempty"`
}

func ToSuccessResponse[T any](data T) GeneralResponse[T] {
	return GeneralResponse[T]{
		Message: "success",
		Data:    data,
	}
}

// ErrorResponse is the caller-visible body of every failed request.
type ErrorResponse struct {
	Error        string        `json:"error"`
	ErrorDetails []ErrorDetail `json:"error_details,omitempty"`
}

func ToErrorResponse(message string, details ...ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error:        message,
		ErrorDetails: details,
	}
}
