package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationDetails turns binding failures into one readable message per field.
// It returns nil for errors that are not field validation failures.
func validationDetails(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, formatValidationError(fe))
	}
	return details
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}

// jsonFieldName converts a Go field name to its camelCase JSON key
// ("Name" => "name", "AirportIDs" => "airportIds")
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	if strings.HasSuffix(field, "IDs") {
		field = strings.TrimSuffix(field, "IDs") + "Ids"
	}
	return strings.ToLower(field[:1]) + field[1:]
}
