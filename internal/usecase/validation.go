package usecase

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
)

var postalCodePattern = regexp.MustCompile(`^\d{5}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// Postal codes are exactly five digits.
	_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
		return postalCodePattern.MatchString(fl.Field().String())
	})
	return v
}

var validate = newValidator()

// ShippingInput are the editable shipping fields, trimmed.
type ShippingInput struct {
	ShippingAddress string `validate:"required"`
	ShippingCode    string `validate:"required,postalcode"`
}

// CheckoutInput is the checkout form, trimmed. Field order fixes which
// failure is reported first.
type CheckoutInput struct {
	Email           string `validate:"required,email"`
	ShippingAddress string `validate:"required"`
	ShippingCode    string `validate:"required,postalcode"`
}

// ValidateEmail checks the search form's email field.
func ValidateEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", domainErrors.NewValidation("email", "enter an email")
	}
	if err := validate.Var(trimmed, "email"); err != nil {
		return "", domainErrors.NewValidation("email", "email format is not valid")
	}
	return trimmed, nil
}

// ValidateShipping checks the shipping form before any network call.
func ValidateShipping(address, code string) (ShippingInput, error) {
	in := ShippingInput{
		ShippingAddress: strings.TrimSpace(address),
		ShippingCode:    strings.TrimSpace(code),
	}
	if err := validate.Struct(in); err != nil {
		return ShippingInput{}, translate(err)
	}
	return in, nil
}

// ValidateCheckout checks the checkout form before any network call.
func ValidateCheckout(email, address, code string) (CheckoutInput, error) {
	in := CheckoutInput{
		Email:           strings.TrimSpace(email),
		ShippingAddress: strings.TrimSpace(address),
		ShippingCode:    strings.TrimSpace(code),
	}
	if err := validate.Struct(in); err != nil {
		return CheckoutInput{}, translate(err)
	}
	return in, nil
}

// translate maps the first failed rule to the inline message shown beside
// the control.
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	switch fe.StructField() {
	case "Email":
		if fe.Tag() == "required" {
			return domainErrors.NewValidation("email", "enter an email")
		}
		return domainErrors.NewValidation("email", "email format is not valid")
	case "ShippingAddress":
		return domainErrors.NewValidation("shippingAddress", "enter a shipping address")
	case "ShippingCode":
		if fe.Tag() == "required" {
			return domainErrors.NewValidation("shippingCode", "enter a postal code")
		}
		return domainErrors.NewValidation("shippingCode", "postal code must be 5 digits")
	}
	return domainErrors.NewValidation(strings.ToLower(fe.StructField()), "invalid value")
}
