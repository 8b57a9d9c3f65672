package validator

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/venuesite/pkg/sanitizer"
)

// MatchesPattern validates a non-empty value against a precompiled pattern.
// Blank values fail; gate the rule with When to make the field optional.
func MatchesPattern(field, value string, regex *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if sanitizer.Trim(value) == "" {
				return false
			}
			return regex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     regex.String(),
				"description": description,
			},
		},
	}
}

// When applies rule only if cond holds; otherwise the rule passes.
func When(cond bool, rule Rule) Rule {
	check := rule.Check
	rule.Check = func() bool {
		if !cond {
			return true
		}
		return check()
	}
	return rule
}

// WithMessage replaces the human-readable message of a rule.
func WithMessage(rule Rule, message string) Rule {
	rule.Error.Message = message
	return rule
}
