package validator

import (
	"fmt"
	"unicode/utf16"

	"github.com/dmitrymomot/venuesite/pkg/sanitizer"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return sanitizer.Trim(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NonEmptyString validates that a string is not empty. Unlike RequiredString
// it does not trim, which suits select values chosen from a fixed option list.
func NonEmptyString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenString validates that a string holds at least min characters.
// Characters are counted as the browser counts them, in UTF-16 code units,
// so an emoji outside the BMP counts twice.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// Checked validates that a boolean flag (typically a checkbox) is set.
func Checked(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be checked",
			TranslationKey: "validation.checked",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Length returns the number of UTF-16 code units in s.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
