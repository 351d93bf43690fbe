package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrors flattens validator failures into a field->reason map for the
// error envelope. Non-validator binding errors produce a single body entry.
func bindingErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "email":
			fields[name] = "must be a valid email address"
		case "min":
			fields[name] = "is too short or too small"
		case "max":
			fields[name] = "is too long or too large"
		case "gt":
			fields[name] = "must be greater than " + fe.Param()
		default:
			fields[name] = "is invalid"
		}
	}
	return fields
}
