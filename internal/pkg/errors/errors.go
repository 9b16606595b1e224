package errors

import (
	"fmt"
)

// AppError - ошибка, отдаваемая клиенту как пара статус/detail
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"detail"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithMessage возвращает копию ошибки с другим detail
func (e *AppError) WithMessage(message string) *AppError {
	return New(e.Code, message, e.StatusCode)
}

// Upstream - ошибка геокодера с его собственным HTTP статусом
func Upstream(statusCode int, err error) *AppError {
	return New(CodeUpstreamError, fmt.Sprintf("Geocoding service error: %v", err), statusCode)
}

// Internal - любая другая ошибка (сеть, битый JSON, таймаут)
func Internal(err error) *AppError {
	return ErrInternalServer.WithMessage(fmt.Sprintf("Unexpected error: %v", err))
}
