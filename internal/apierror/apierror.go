// Package apierror defines the wire shape of every 4xx/5xx response. Domain
// errors are translated into these envelopes at the handler boundary so
// clients see a Portuguese detail message and never a raw DB or stack error.
package apierror

import "fmt"

// APIError carries a single human-readable message.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func Newf(format string, args ...interface{}) *APIError {
	return &APIError{Detail: fmt.Sprintf(format, args...)}
}

// ValidationError adds per-field messages for 422s so forms can highlight
// the offending inputs.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
