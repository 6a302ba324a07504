package importer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// convertProperty maps one request body property to a form field. Properties
// the form model cannot express (nested objects, arrays without enum items)
// are skipped.
func (i *Importer) convertProperty(name string, ref *openapi3.SchemaRef, required bool) (schema.Field, bool) {
	if ref == nil || ref.Value == nil {
		return schema.Field{}, false
	}
	src := ref.Value

	field := schema.Field{
		ID:          i.options.IDGenerator("field"),
		Name:        name,
		Label:       humanize(name),
		Description: src.Description,
		Default:     src.Default,
		Required:    required,
	}

	switch schemaTypeOf(src) {
	case "string":
		if len(src.Enum) > 0 {
			field.Type = schema.FieldTypeSelect
			field.Options = enumOptions(src.Enum)
		} else {
			field.Type = stringFieldType(src.Format)
		}
	case "integer", "number":
		field.Type = schema.FieldTypeNumber
		if src.Min != nil {
			value := *src.Min
			field.Min = &value
		}
		if src.Max != nil {
			value := *src.Max
			field.Max = &value
		}
	case "boolean":
		field.Type = schema.FieldTypeSelect
		field.Options = []schema.Option{
			{Label: "Yes", Value: "true"},
			{Label: "No", Value: "false"},
		}
	case "array":
		if src.Items == nil || src.Items.Value == nil || len(src.Items.Value.Enum) == 0 {
			return schema.Field{}, false
		}
		field.Type = schema.FieldTypeMultiSelect
		field.Options = enumOptions(src.Items.Value.Enum)
	default:
		return schema.Field{}, false
	}

	field.Rules = collectRules(field.Label, src, required)
	return field, true
}

func stringFieldType(format string) schema.FieldType {
	switch format {
	case "date":
		return schema.FieldTypeDate
	case "time":
		return schema.FieldTypeTime
	case "date-time":
		return schema.FieldTypeDateTime
	case "binary", "byte":
		return schema.FieldTypeFile
	case "textarea":
		return schema.FieldTypeTextarea
	default:
		return schema.FieldTypeText
	}
}

func collectRules(label string, src *openapi3.Schema, required bool) []schema.ValidationRule {
	var rules []schema.ValidationRule

	if required {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.RuleRequired,
			Message: label + " is required",
		})
	}
	if src.MinLength > 0 {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.RuleMinLength,
			Value:   float64(src.MinLength),
			Message: fmt.Sprintf("%s must be at least %d characters", label, src.MinLength),
		})
	}
	if src.MaxLength != nil {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.RuleMaxLength,
			Value:   float64(*src.MaxLength),
			Message: fmt.Sprintf("%s must be at most %d characters", label, *src.MaxLength),
		})
	}
	if src.Min != nil {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.RuleMin,
			Value:   *src.Min,
			Message: fmt.Sprintf("%s must be at least %v", label, *src.Min),
		})
	}
	if src.Max != nil {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.RuleMax,
			Value:   *src.Max,
			Message: fmt.Sprintf("%s must be at most %v", label, *src.Max),
		})
	}
	if src.Pattern != "" {
		rules = append(rules, schema.ValidationRule{
			Kind:    schema.RuleRegex,
			Value:   src.Pattern,
			Message: label + " has an invalid format",
		})
	}

	return rules
}

func enumOptions(values []any) []schema.Option {
	options := make([]schema.Option, 0, len(values))
	for _, value := range values {
		str := fmt.Sprint(value)
		options = append(options, schema.Option{
			Label: humanize(str),
			Value: str,
		})
	}
	return options
}

func schemaTypeOf(src *openapi3.Schema) string {
	if src.Type == nil || len(*src.Type) == 0 {
		return ""
	}
	return (*src.Type)[0]
}

// humanize turns identifier-style names (firstName, first_name) into labels
// (First Name).
func humanize(name string) string {
	if name == "" {
		return ""
	}

	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	runes := []rune(name)
	for idx, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.' || r == ':':
			flush()
		case unicode.IsUpper(r) && idx > 0 && unicode.IsLower(runes[idx-1]):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	for idx, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[idx] = string(runes)
	}
	return strings.Join(words, " ")
}
