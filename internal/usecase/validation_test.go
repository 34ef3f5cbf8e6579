package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
)

func assertValidationMessage(t *testing.T, err error, field, message string) {
	t.Helper()
	var vErr *domainErrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != field {
		t.Errorf("expected field %q, got %q", field, vErr.Field)
	}
	if vErr.Message != message {
		t.Errorf("expected message %q, got %q", message, vErr.Message)
	}
}

func TestValidateEmail(t *testing.T) {
	email, err := ValidateEmail("  a@b.com  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "a@b.com" {
		t.Fatalf("expected trimmed email, got %q", email)
	}

	_, err = ValidateEmail("   ")
	assertValidationMessage(t, err, "email", "enter an email")

	_, err = ValidateEmail("not-an-email")
	assertValidationMessage(t, err, "email", "email format is not valid")
}

func TestValidateShipping(t *testing.T) {
	in, err := ValidateShipping("  12 Harbor Way  ", " 04401 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ShippingAddress != "12 Harbor Way" || in.ShippingCode != "04401" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
}

func TestValidateShippingFailures(t *testing.T) {
	tests := []struct {
		name    string
		address string
		code    string
		field   string
		message string
	}{
		{"blank address", "   ", "12345", "shippingAddress", "enter a shipping address"},
		{"blank code", "12 Harbor Way", "", "shippingCode", "enter a postal code"},
		{"short code", "12 Harbor Way", "1234", "shippingCode", "postal code must be 5 digits"},
		{"long code", "12 Harbor Way", "123456", "shippingCode", "postal code must be 5 digits"},
		{"alphabetic code", "12 Harbor Way", "1234a", "shippingCode", "postal code must be 5 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateShipping(tt.address, tt.code)
			assertValidationMessage(t, err, tt.field, tt.message)
		})
	}
}

func TestValidateCheckout(t *testing.T) {
	in, err := ValidateCheckout(" a@b.com ", "12 Harbor Way", "04401")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Email != "a@b.com" {
		t.Fatalf("expected trimmed email, got %q", in.Email)
	}
}

func TestValidateCheckoutFailures(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		address string
		code    string
		field   string
		message string
	}{
		{"blank email", "", "12 Harbor Way", "12345", "email", "enter an email"},
		{"malformed email", "not-an-email", "12 Harbor Way", "12345", "email", "email format is not valid"},
		{"email reported before address", "", "", "", "email", "enter an email"},
		{"address reported before code", "a@b.com", "", "", "shippingAddress", "enter a shipping address"},
		{"bad code reported last", "a@b.com", "12 Harbor Way", "99", "shippingCode", "postal code must be 5 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCheckout(tt.email, tt.address, tt.code)
			assertValidationMessage(t, err, tt.field, tt.message)
		})
	}
}
