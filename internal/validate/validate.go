// Package validate runs struct-tag validation on request parameters before
// any network call is made. Failures surface as field-level errors and never
// reach the transport.
package validate

import (
	"strings"

	"github.com/elimuhub/elimu-go/internal/types"
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s against its validate tags
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &types.ValidationErrors{}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, &types.ValidationError{
			Field:   fieldName(fe),
			Message: message(fe),
			Value:   fe.Value(),
		})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	// Strip the struct name prefix from the namespace
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "is required when " + fe.Param() + " is not set"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
