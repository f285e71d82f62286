package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

// MoneyScale and MoneyLimit mirror the NUMERIC(14,2) money columns.
const MoneyScale = 2

var MoneyLimit = decimal.New(1, 12)

// Money reports whether d fits a money column without rounding.
func Money(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale)) && d.Abs().LessThan(MoneyLimit)
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && Money(d)
	})
	validate.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !d.IsNegative()
	})
}

const MoneyMessage = "value must have at most 2 decimal places and be less than 1000000000000 in magnitude"

// Struct validates s and returns a field -> reason map, nil when s is valid.
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			fields[field] = "field required"
		case "email":
			fields[field] = "value is not a valid email address"
		case "min":
			fields[field] = "value is too short (min: " + fe.Param() + ")"
		case "max":
			fields[field] = "value is too long (max: " + fe.Param() + ")"
		case "gt":
			fields[field] = "value must be greater than " + fe.Param()
		case "gte":
			fields[field] = "value must be greater than or equal to " + fe.Param()
		case "nonnegative":
			fields[field] = "value must be greater than or equal to 0"
		case "money":
			fields[field] = MoneyMessage
		default:
			fields[field] = "invalid value"
		}
	}
	return fields
}
