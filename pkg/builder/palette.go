package builder

import "github.com/goliatone/go-formbuilder/pkg/schema"

// Template describes a palette entry: the prototype field a drag from the
// palette instantiates, plus the display label hosts show in the field list.
type Template struct {
	Type  schema.FieldType
	Label string
	Proto schema.Field
}

var paletteLabels = map[schema.FieldType]string{
	schema.FieldTypeText:        "Text Input",
	schema.FieldTypeTextarea:    "Text Area",
	schema.FieldTypeNumber:      "Number",
	schema.FieldTypeSelect:      "Dropdown",
	schema.FieldTypeMultiSelect: "Multi Select",
	schema.FieldTypeCheckbox:    "Checkbox",
	schema.FieldTypeRadio:       "Radio Buttons",
	schema.FieldTypeDate:        "Date Picker",
	schema.FieldTypeTime:        "Time Picker",
	schema.FieldTypeDateTime:    "Date & Time",
	schema.FieldTypeFile:        "File Upload",
	schema.FieldTypeRating:      "Rating",
	schema.FieldTypeSlider:      "Slider",
	schema.FieldTypeSection:     "Section",
	schema.FieldTypeDivider:     "Divider",
	schema.FieldTypeHeading:     "Heading",
}

// Palette lists a template for every supported field type, in the order the
// builder surface presents them.
func Palette() []Template {
	types := schema.FieldTypes()
	out := make([]Template, 0, len(types))
	for _, fieldType := range types {
		out = append(out, TemplateFor(fieldType))
	}
	return out
}

// TemplateFor builds the prototype field for a palette type. Choice types
// arrive with two placeholder options so the invariant "choice fields carry
// options" holds for freshly dropped fields; the proto has no id — insertion
// assigns one.
func TemplateFor(fieldType schema.FieldType) Template {
	label := paletteLabels[fieldType]
	if label == "" {
		label = string(fieldType)
	}

	proto := schema.Field{
		Type:  fieldType,
		Label: "New " + label,
	}
	if fieldType.HasOptions() {
		proto.Options = []schema.Option{
			{Label: "Option 1", Value: "option1"},
			{Label: "Option 2", Value: "option2"},
		}
	}

	return Template{Type: fieldType, Label: label, Proto: proto}
}
