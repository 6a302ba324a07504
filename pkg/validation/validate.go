// Package validation evaluates a field's ordered rule list against candidate
// values. Evaluation short-circuits at the first failing rule, so each field
// reports at most one message per pass; hosts re-validate on change, which
// always points the user at the next thing to fix.
package validation

import "github.com/goliatone/go-formbuilder/pkg/schema"

// ValidateField runs the field's rules in declaration order and returns the
// first failing message, or "" when every rule passes or the field carries no
// rules.
func ValidateField(field schema.Field, value any) string {
	for _, rule := range field.Rules {
		if message := ValidateRule(rule, value); message != "" {
			return message
		}
	}
	return ""
}

// ValidateForm evaluates every supplied field against values[field.Name] and
// collects failures keyed by field name. Passing fields are omitted; the
// result is never padded with empty entries.
func ValidateForm(fields []schema.Field, values schema.Values) schema.Errors {
	errors := make(schema.Errors)
	for _, field := range fields {
		if message := ValidateField(field, values[field.Name]); message != "" {
			errors[field.Name] = message
		}
	}
	return errors
}

// IsFormValid reports whether the errors map is empty.
func IsFormValid(errors schema.Errors) bool {
	return len(errors) == 0
}
