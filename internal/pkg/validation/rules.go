package validation

import (
	"regexp"
	"unicode/utf8"
)

// AirportCodePattern matches IATA airport codes
var AirportCodePattern = `^[A-Z]{3}$`

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	AirportCode *regexp.Regexp
}{
	AirportCode: regexp.MustCompile(AirportCodePattern),
}

// StringValidation checks one required string value against a set of rules
type StringValidation struct {
	Value   string
	MaxLen  int
	Pattern *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMaxLength sets maximum length in characters
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}

	if v.MaxLen > 0 && utf8.RuneCountInString(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// AirportNameMaxLength bounds seeded airport names in characters
const AirportNameMaxLength = 255

// ValidAirportCode reports whether code is a three-letter uppercase airport code
func ValidAirportCode(code string) bool {
	return NewStringValidation(code).WithPattern(CompiledPatterns.AirportCode).Validate()
}

// ValidAirportName reports whether a seeded airport name is non-empty and fits the column
func ValidAirportName(name string) bool {
	return NewStringValidation(name).WithMaxLength(AirportNameMaxLength).Validate()
}
