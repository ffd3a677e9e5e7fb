package booking

import (
	"fmt"

	"sanocare/config"
)

// Error categories surfaced to the public client. Raw backend error text
// never reaches the end user; every category implies a human fallback
// because a failed medical booking must not die silently.
const (
	CodeNetwork    = "network"
	CodeServer     = "server"
	CodeValidation = "validation"
	CodeUnknown    = "unknown"
)

// ServiceError is a categorized, user-presentable booking failure.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func helpline() string {
	if config.AppConfig.HelplinePhone != "" {
		return config.AppConfig.HelplinePhone
	}
	return "+91-9571608318"
}

func newNetworkError() *ServiceError {
	return &ServiceError{
		Code:    CodeNetwork,
		Message: fmt.Sprintf("Unable to connect. Please check your internet and try again, or call us at %s.", helpline()),
	}
}

func newServerError() *ServiceError {
	return &ServiceError{
		Code:    CodeServer,
		Message: fmt.Sprintf("Our servers are busy. Please try again in a moment, or call us directly at %s.", helpline()),
	}
}

func newValidationError(message string) *ServiceError {
	if message == "" {
		message = "Please check your details and try again."
	}
	return &ServiceError{Code: CodeValidation, Message: message}
}

func newUnknownError() *ServiceError {
	return &ServiceError{
		Code:    CodeUnknown,
		Message: fmt.Sprintf("Something went wrong. Please call us at %s to complete your booking.", helpline()),
	}
}
