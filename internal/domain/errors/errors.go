package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingIdentity means no customer email is bound to the session.
	// Fatal to the page: the user must re-enter an email on the search view.
	ErrMissingIdentity = errors.New("missing customer identity")
	// ErrNoOrderHistory means the summary list for the email came back empty.
	ErrNoOrderHistory = errors.New("no order history")
	// ErrOrderNotFound means no detail row matched the requested order id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCustomerNotFound means the exists check answered false.
	ErrCustomerNotFound = errors.New("no customer with that email")
	// ErrProductNotFound means the catalog has no product with that id.
	ErrProductNotFound = errors.New("product not found")
	// ErrEmptyCart blocks checkout of a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoSession means the request carried no known view session.
	ErrNoSession = errors.New("session not found")
)

// ValidationError reports a client-side field check failure. It blocks the
// action before any network call and is surfaced next to the affected
// control, never in the page-fatal slot.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
