// Package validator provides a small set of declarative validation rules and
// the machinery to evaluate them.
//
// A Rule pairs a boolean Check function with translation-friendly error
// metadata. Rules are evaluated with Evaluate or Apply, which run every rule
// (none short-circuits another) and collect the failures in declaration order
// into a ValidationErrors slice that satisfies the error interface.
//
// Core building blocks:
//   - Rule              – Check func plus the ValidationError reported on failure
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – ordered slice that implements the error interface
//
// Rule constructors (RequiredString, MinLenString, MatchesPattern, Checked)
// can be composed with When, to gate a rule on a condition, and WithMessage,
// to replace the default message with user-facing copy.
//
// # Usage
//
//	errs := validator.Evaluate(
//	    validator.RequiredString("name", name),
//	    validator.When(email != "", validator.MatchesPattern("email", email, emailRe, "email")),
//	    validator.Checked("consent", consent),
//	)
//	if !errs.IsEmpty() {
//	    focus := errs.FirstField()
//	    messages := errs.Messages()
//	}
//
// # Error Handling
//
// ValidationErrors works with errors.As, so callers of Apply can detect
// validation problems with ExtractValidationErrors while preserving
// field-level detail.
//
// String lengths are counted in UTF-16 code units and blank checks trim the
// way browsers do (see sanitizer.Trim), so server results match what a
// visitor's browser would report for the same input.
//
// The package has no global state and is safe for concurrent use.
package validator
