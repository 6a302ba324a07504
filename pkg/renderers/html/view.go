package html

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// buildView flattens the schema snapshot and per-request state into the
// plain map structure the templates consume.
func buildView(formSchema schema.Schema, opts render.RenderOptions) map[string]any {
	activeTab, _ := opts.ActiveTabOrFirst(formSchema)

	tabs := make([]map[string]any, 0, len(formSchema.Tabs))
	for _, tab := range formSchema.Tabs {
		tabs = append(tabs, map[string]any{
			"id":     tab.ID,
			"title":  tab.Title,
			"active": tab.ID == activeTab.ID,
		})
	}

	sections := make([]map[string]any, 0, len(activeTab.Sections))
	for _, section := range activeTab.Sections {
		fields := make([]map[string]any, 0, len(section.Fields))
		for _, field := range section.Fields {
			fields = append(fields, fieldView(field, opts.Values, opts.Errors))
		}
		sections = append(sections, map[string]any{
			"id":     section.ID,
			"title":  section.Title,
			"fields": fields,
		})
	}

	submitLabel := formSchema.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Submit"
	}

	form := map[string]any{
		"id":           formSchema.ID,
		"title":        formSchema.Title,
		"description":  sanitizeHTML(formSchema.Description),
		"tabs":         tabs,
		"tab":          map[string]any{"id": activeTab.ID, "title": activeTab.Title},
		"sections":     sections,
		"submitLabel":  submitLabel,
		"cancelLabel":  formSchema.CancelLabel,
		"showProgress": formSchema.ShowProgressBar,
		"progress":     strconv.Itoa(progressPercent(formSchema, opts.Values)),
		"themeName":    "",
		"themeCSS":     "",
	}

	if opts.Theme != nil {
		form["themeName"] = opts.Theme.Theme
		form["themeCSS"] = cssVarBlock(opts.Theme.CSSVars)
	}

	return map[string]any{"form": form}
}

func fieldView(field schema.Field, values schema.Values, errs schema.Errors) map[string]any {
	value := values[field.Name]

	view := map[string]any{
		"id":          field.ID,
		"type":        string(field.Type),
		"name":        field.Name,
		"label":       field.Label,
		"control":     controlFor(field.Type),
		"inputType":   inputTypeFor(field.Type),
		"choiceType":  choiceTypeFor(field.Type),
		"placeholder": field.Placeholder,
		"description": sanitizeHTML(field.Description),
		"required":    field.Required || hasRequiredRule(field),
		"disabled":    field.Disabled,
		"value":       displayValue(value),
		"error":       errs[field.Name],
		"rows":        strconv.Itoa(rowsOrDefault(field.Rows)),
		"multiple":    field.Multiple || field.Type == schema.FieldTypeMultiSelect,
		"accept":      field.Accept,
		"min":         formatBound(field.Min),
		"max":         formatBound(field.Max),
		"step":        formatBound(field.Step),
	}

	if field.Type == schema.FieldTypeRating {
		if field.Min == nil {
			view["min"] = "1"
		}
		if field.Max == nil {
			view["max"] = "5"
		}
		if field.Step == nil {
			view["step"] = "1"
		}
	}

	if len(field.Options) > 0 {
		selected := selectedSet(value)
		options := make([]map[string]any, 0, len(field.Options))
		for _, opt := range field.Options {
			options = append(options, map[string]any{
				"label":    opt.Label,
				"value":    opt.Value,
				"selected": selected[opt.Value],
			})
		}
		view["options"] = options
	}

	return view
}

func controlFor(t schema.FieldType) string {
	switch t {
	case schema.FieldTypeTextarea:
		return "textarea"
	case schema.FieldTypeSelect, schema.FieldTypeMultiSelect:
		return "select"
	case schema.FieldTypeCheckbox:
		return "checkboxes"
	case schema.FieldTypeRadio:
		return "radios"
	case schema.FieldTypeSection:
		return "group"
	case schema.FieldTypeDivider:
		return "divider"
	case schema.FieldTypeHeading:
		return "heading"
	default:
		return "input"
	}
}

func inputTypeFor(t schema.FieldType) string {
	switch t {
	case schema.FieldTypeNumber, schema.FieldTypeRating:
		return "number"
	case schema.FieldTypeSlider:
		return "range"
	case schema.FieldTypeDate:
		return "date"
	case schema.FieldTypeTime:
		return "time"
	case schema.FieldTypeDateTime:
		return "datetime-local"
	case schema.FieldTypeFile:
		return "file"
	default:
		return "text"
	}
}

func choiceTypeFor(t schema.FieldType) string {
	if t == schema.FieldTypeRadio {
		return "radio"
	}
	return "checkbox"
}

func hasRequiredRule(field schema.Field) bool {
	for _, rule := range field.Rules {
		if rule.Kind == schema.RuleRequired {
			return true
		}
	}
	return false
}

func rowsOrDefault(rows int) int {
	if rows <= 0 {
		return 3
	}
	return rows
}

func formatBound(bound *float64) string {
	if bound == nil {
		return ""
	}
	return strconv.FormatFloat(*bound, 'f', -1, 64)
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func selectedSet(value any) map[string]bool {
	selected := make(map[string]bool)
	switch v := value.(type) {
	case nil:
	case string:
		if v != "" {
			selected[v] = true
		}
	case []string:
		for _, item := range v {
			selected[item] = true
		}
	case []any:
		for _, item := range v {
			selected[displayValue(item)] = true
		}
	default:
		selected[displayValue(v)] = true
	}
	return selected
}

// progressPercent counts answered input fields across the whole form, not
// just the active tab, so switching tabs does not reset the bar.
func progressPercent(formSchema schema.Schema, values schema.Values) int {
	var total, filled int
	for _, field := range formSchema.Fields() {
		switch field.Type {
		case schema.FieldTypeSection, schema.FieldTypeDivider, schema.FieldTypeHeading:
			continue
		}
		total++
		if !isEmptyValue(values[field.Name]) {
			filled++
		}
	}
	if total == 0 {
		return 0
	}
	return filled * 100 / total
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func cssVarBlock(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(vars[name])
		sb.WriteString("; ")
	}
	return strings.TrimSpace(sb.String())
}
