package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{5,19}$`)
)

var paymentTypes = []string{"credit_card", "cash_on_delivery", "bank_transfer"}

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("phone", validatePhone)
	_ = validate.RegisterValidation("payment_type", validatePaymentType)
}

// ValidateStruct runs the struct tags and returns field messages keyed by JSON name.
// A nil map means the input is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fieldPath(fe)
		if _, seen := fields[key]; !seen {
			fields[key] = fieldMessage(key, fe)
		}
	}

	return fields
}

func IsPaymentType(value string) bool {
	for _, t := range paymentTypes {
		if value == t {
			return true
		}
	}
	return false
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validatePaymentType(fl validator.FieldLevel) bool {
	return IsPaymentType(fl.Field().String())
}

// fieldPath drops the root struct name: "CreateOrderRequest.products[0].quantity" -> "products[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", strings.TrimSuffix(field, "_confirmation"))
	case "min":
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("The %s must be a valid UUID.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "phone":
		return fmt.Sprintf("The %s must be a valid phone number.", field)
	case "payment_type":
		return fmt.Sprintf("The %s must be one of %s.", field, strings.Join(paymentTypes, ", "))
	case "datetime":
		return fmt.Sprintf("The %s does not match the format %s.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
