package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/aptos-market/domain"
)

const (
	// TagAddress validates an account address
	TagAddress = "address"
	// TagAmount validates a non-negative decimal amount in major units
	TagAmount = "amount"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	return domain.Address(address).IsValid()
}

// IsValidAmount reports whether s is a non-negative decimal
func IsValidAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && !d.IsNegative()
}

// New returns a validator with the marketplace tags registered
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "query", "param"} {
			if name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation(TagAddress, func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String && IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation(TagAmount, func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String && IsValidAmount(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

// Validate reports the first failing field as a domain.ValidationError
func (v *CustomValidator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		cause := domain.ErrBadParamInput
		switch errs[0].Tag() {
		case TagAddress:
			cause = domain.ErrInvalidAddress
		case TagAmount:
			cause = domain.ErrInvalidNumberFormat
		}
		return domain.NewValidationError(errs[0].Field(), cause)
	}
	return domain.NewValidationError("request", err)
}
