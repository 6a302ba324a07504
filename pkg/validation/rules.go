package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// ValidateRule checks a single rule against a candidate value and returns the
// rule's message on failure, or "" when the value passes. Rules are
// type-guarded: bounds only apply to values of the matching shape, everything
// else passes silently so a numeric min rule never trips over a string value.
//
// Regex patterns are compiled on every evaluation. Rule sets are small and
// validation runs on explicit user actions, so the compile cost is not worth
// a per-rule cache. A pattern that fails to compile counts as a failure: the
// value cannot be shown to match.
func ValidateRule(rule schema.ValidationRule, value any) string {
	switch rule.Kind {
	case schema.RuleRequired:
		if isEmpty(value) {
			return rule.Message
		}

	case schema.RuleMinLength:
		if length, ok := lengthOf(value); ok {
			if bound, ok := toNumber(rule.Value); ok && float64(length) < bound {
				return rule.Message
			}
		}

	case schema.RuleMaxLength:
		if length, ok := lengthOf(value); ok {
			if bound, ok := toNumber(rule.Value); ok && float64(length) > bound {
				return rule.Message
			}
		}

	case schema.RuleMin:
		if number, ok := numericValue(value); ok {
			if bound, ok := toNumber(rule.Value); ok && number < bound {
				return rule.Message
			}
		}

	case schema.RuleMax:
		if number, ok := numericValue(value); ok {
			if bound, ok := toNumber(rule.Value); ok && number > bound {
				return rule.Message
			}
		}

	case schema.RuleRegex:
		text, isString := value.(string)
		pattern, hasPattern := rule.Value.(string)
		if isString && hasPattern && pattern != "" {
			re, err := regexp.Compile(pattern)
			if err != nil || !re.MatchString(text) {
				return rule.Message
			}
		}

	case schema.RuleCustom:
		if rule.Check != nil && !rule.Check(value) {
			return rule.Message
		}
	}

	return ""
}

// isEmpty reports whether a required rule should fail: nil, empty string, or
// an empty array. Zero numbers and false are present values.
func isEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case []string:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice {
		return rv.Len() == 0
	}
	return false
}

// lengthOf returns the length of a string (in runes) or array value. Other
// shapes report false and are skipped by length rules.
func lengthOf(value any) (int, bool) {
	switch typed := value.(type) {
	case string:
		return utf8.RuneCountInString(typed), true
	case []string:
		return len(typed), true
	case []any:
		return len(typed), true
	}
	rv := reflect.ValueOf(value)
	if value != nil && rv.Kind() == reflect.Slice {
		return rv.Len(), true
	}
	return 0, false
}

// numericValue extracts a float64 from numeric value shapes only; strings are
// never coerced, so min/max rules skip non-numeric input.
func numericValue(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	}
	return 0, false
}

// toNumber converts a rule's comparison operand. Unlike numericValue it also
// accepts numeric strings, since hand-written schema documents often quote
// bounds.
func toNumber(value any) (float64, bool) {
	if number, ok := numericValue(value); ok {
		return number, true
	}
	if text, ok := value.(string); ok {
		if number, err := strconv.ParseFloat(text, 64); err == nil {
			return number, true
		}
	}
	return 0, false
}
