package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage turns a gin binding error into a client-facing message.
// Field validation failures are listed per field; anything else (malformed
// JSON, wrong types) falls back to the raw error text.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("field '%s' is required", fe.Field()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("field '%s' must be one of [%s]", fe.Field(), fe.Param()))
		case "min":
			parts = append(parts, fmt.Sprintf("field '%s' must be at least %s", fe.Field(), fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("field '%s' must be at most %s", fe.Field(), fe.Param()))
		case "email":
			parts = append(parts, fmt.Sprintf("field '%s' must be a valid email", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("field '%s' failed validation '%s'", fe.Field(), fe.Tag()))
		}
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}
