package errors

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями, исходная переменная не меняется
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage возвращает копию ошибки с другим сообщением
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// ErrRequestFailed - сентинел для errors.Is по любому неуспешному ответу API поездок
var ErrRequestFailed = errors.New("request failed")

// RequestFailedError - ответ API поездок вне диапазона 2xx.
// Сообщение ошибки - сырое тело ответа.
type RequestFailedError struct {
	StatusCode int
	Body       string
}

func (e *RequestFailedError) Error() string {
	return e.Body
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// NewRequestFailed создает RequestFailedError
func NewRequestFailed(statusCode int, body []byte) *RequestFailedError {
	return &RequestFailedError{
		StatusCode: statusCode,
		Body:       string(body),
	}
}

// AsRequestFailed достает RequestFailedError из цепочки ошибок
func AsRequestFailed(err error) (*RequestFailedError, bool) {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf, true
	}
	return nil, false
}
