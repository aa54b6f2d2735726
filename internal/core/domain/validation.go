package domain

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Tags for exact decimal bounds, e.g. `validate:"decgt=0"`.
const (
	TagDecimalGT  = "decgt"
	TagDecimalGTE = "decgte"
)

var validate = NewValidator()

// NewValidator returns a validator that understands decimal.Decimal fields.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterDecimalType(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterDecimalType lets v check decimal.Decimal fields with the decgt and
// decgte tags. Values are compared with decimal.Cmp, never through float64.
// handlers.RegisterBindingValidators applies it to gin's binding engine at startup.
func RegisterDecimalType(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation(TagDecimalGT, decimalBound(func(cmp int) bool { return cmp > 0 })); err != nil {
		return err
	}
	return v.RegisterValidation(TagDecimalGTE, decimalBound(func(cmp int) bool { return cmp >= 0 }))
}

// decimalBound compares the field, already turned into its decimal string by
// the custom type func, against the tag parameter.
func decimalBound(accept func(cmp int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return accept(value.Cmp(bound))
	}
}
