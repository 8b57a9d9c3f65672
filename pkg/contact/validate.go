package contact

import (
	"strings"

	"github.com/dmitrymomot/venuesite/pkg/validator"
)

// Result is the outcome of a single validation pass.
type Result struct {
	// Errors holds the message of every failing rule in rule order.
	// Empty means the snapshot is valid.
	Errors []string
	// FirstInvalid is the field of the first failing rule, "" when valid.
	FirstInvalid Field

	violations validator.ValidationErrors
}

// Validate normalizes s and evaluates the rule table against it.
// It never fails: any Snapshot value yields a Result.
func Validate(s Snapshot) Result {
	violations := validator.Evaluate(Rules(s.Normalize())...)

	return Result{
		Errors:       violations.Messages(),
		FirstInvalid: Field(violations.FirstField()),
		violations:   violations,
	}
}

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Joined returns all messages separated by a single space, the form in which
// they are shown in the feedback region.
func (r Result) Joined() string {
	return strings.Join(r.Errors, " ")
}

// Violations groups messages by field. Fields without errors are omitted.
func (r Result) Violations() map[Field][]string {
	if r.violations.IsEmpty() {
		return nil
	}

	out := make(map[Field][]string)
	for _, f := range r.violations.Fields() {
		out[Field(f)] = r.violations.Get(f)
	}
	return out
}

// Err returns the failures as an error, or nil when the result is valid.
func (r Result) Err() error {
	if r.violations.IsEmpty() {
		return nil
	}
	return r.violations
}

// FailedFields returns the field of every failing rule in rule order, so a
// field that broke two rules appears twice.
func (r Result) FailedFields() []string {
	fields := make([]string, 0, len(r.violations))
	for _, v := range r.violations {
		fields = append(fields, v.Field)
	}
	return fields
}
