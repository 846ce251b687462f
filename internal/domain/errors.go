package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Typed failures returned by the engine and by the services that drive it.
// Handlers match them with errors.As to pick the HTTP status; none of them is
// ever retried automatically.

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IllegalTransitionError carries the offending status pair.
type IllegalTransitionError struct {
	From TabStatus
	To   TabStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("Transição inválida: %s -> %s", e.From, e.To)
}

// InsufficientPaymentError carries the remaining amount for user display.
type InsufficientPaymentError struct {
	Remaining decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("Pagamento insuficiente. Falta %s para encerrar a comanda", e.Remaining.StringFixed(2))
}

// NotFoundError reports a missing tab/product/category/item.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " não encontrado(a)" }

// InactiveResourceError reports an operation targeting an inactive product.
type InactiveResourceError struct {
	Resource string
}

func (e *InactiveResourceError) Error() string { return e.Resource + " está inativo(a)" }

// AlreadyCanceledError reports a double-cancel attempt.
type AlreadyCanceledError struct {
	Resource string
}

func (e *AlreadyCanceledError) Error() string { return e.Resource + " já cancelado(a)" }
