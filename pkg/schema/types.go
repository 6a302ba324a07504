package schema

// FieldType enumerates the input kinds a builder can place on a form.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeNumber      FieldType = "number"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeDate        FieldType = "date"
	FieldTypeTime        FieldType = "time"
	FieldTypeDateTime    FieldType = "datetime"
	FieldTypeFile        FieldType = "file"
	FieldTypeRating      FieldType = "rating"
	FieldTypeSlider      FieldType = "slider"
	FieldTypeSection     FieldType = "section"
	FieldTypeDivider     FieldType = "divider"
	FieldTypeHeading     FieldType = "heading"
)

// FieldTypes lists every supported field type in palette order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText, FieldTypeTextarea, FieldTypeNumber,
		FieldTypeSelect, FieldTypeMultiSelect, FieldTypeCheckbox,
		FieldTypeRadio, FieldTypeDate, FieldTypeTime, FieldTypeDateTime,
		FieldTypeFile, FieldTypeRating, FieldTypeSlider,
		FieldTypeSection, FieldTypeDivider, FieldTypeHeading,
	}
}

// Valid reports whether the field type belongs to the supported enumeration.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber,
		FieldTypeSelect, FieldTypeMultiSelect, FieldTypeCheckbox,
		FieldTypeRadio, FieldTypeDate, FieldTypeTime, FieldTypeDateTime,
		FieldTypeFile, FieldTypeRating, FieldTypeSlider,
		FieldTypeSection, FieldTypeDivider, FieldTypeHeading:
		return true
	}
	return false
}

// HasOptions reports whether the field type carries an options list. The
// options invariant is "present if and only if" for these four kinds.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeSelect, FieldTypeMultiSelect, FieldTypeCheckbox, FieldTypeRadio:
		return true
	}
	return false
}

// RuleKind tags a validation rule variant.
type RuleKind string

const (
	RuleRequired  RuleKind = "required"
	RuleMinLength RuleKind = "minLength"
	RuleMaxLength RuleKind = "maxLength"
	RuleMin       RuleKind = "min"
	RuleMax       RuleKind = "max"
	RuleRegex     RuleKind = "regex"
	RuleCustom    RuleKind = "custom"
)

// Predicate evaluates a candidate value for a custom rule. True means the
// value passes.
type Predicate func(value any) bool

// ValidationRule is a single constraint attached to a field. Order within a
// field's rule list matters: evaluation stops at the first failure. Value
// carries the comparison operand for bounded rules (a number for
// min/max/minLength/maxLength, a pattern string for regex) and is ignored for
// required. Predicate is only consulted for custom rules and is never
// serialized.
type ValidationRule struct {
	Kind    RuleKind  `json:"type" yaml:"type"`
	Value   any       `json:"value,omitempty" yaml:"value,omitempty"`
	Message string    `json:"message" yaml:"message"`
	Check   Predicate `json:"-" yaml:"-"`
}

// ConditionalOperator enumerates comparison operators for display conditions.
type ConditionalOperator string

const (
	OperatorEquals      ConditionalOperator = "equals"
	OperatorNotEquals   ConditionalOperator = "notEquals"
	OperatorContains    ConditionalOperator = "contains"
	OperatorNotContains ConditionalOperator = "notContains"
	OperatorGreaterThan ConditionalOperator = "greaterThan"
	OperatorLessThan    ConditionalOperator = "lessThan"
)

// ConditionalRule describes when a field should be shown based on another
// field's value. The model carries these rules but no evaluator acts on them
// yet; hosts that need conditional display must interpret them.
type ConditionalRule struct {
	Field    string              `json:"field" yaml:"field"`
	Operator ConditionalOperator `json:"operator" yaml:"operator"`
	Value    any                 `json:"value" yaml:"value"`
}

// Option is a selectable choice for select/multiselect/checkbox/radio fields.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Field is the atomic schema node. ID is unique across the whole form and
// immutable after creation. Name keys the values map; it is not required to
// be unique, and colliding names alias into the same value slot.
type Field struct {
	ID          string            `json:"id" yaml:"id"`
	Type        FieldType         `json:"type" yaml:"type"`
	Label       string            `json:"label" yaml:"label"`
	Name        string            `json:"name" yaml:"name"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any               `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Options     []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	Rules       []ValidationRule  `json:"validation,omitempty" yaml:"validation,omitempty"`
	Conditions  []ConditionalRule `json:"conditionalDisplay,omitempty" yaml:"conditionalDisplay,omitempty"`
	Disabled    bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Min         *float64          `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64          `json:"max,omitempty" yaml:"max,omitempty"`
	Step        *float64          `json:"step,omitempty" yaml:"step,omitempty"`
	Rows        int               `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols        int               `json:"cols,omitempty" yaml:"cols,omitempty"`
	Multiple    bool              `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Accept      string            `json:"accept,omitempty" yaml:"accept,omitempty"`
}

// Section groups an ordered run of fields under a title.
type Section struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Tab holds at least one section.
type Tab struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Schema is the declarative description of a whole form. Treat values of this
// type as immutable snapshots: structural edits go through the builder
// package, which returns a fresh schema instead of editing in place.
type Schema struct {
	ID              string `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	Tabs            []Tab  `json:"tabs" yaml:"tabs"`
	Theme           string `json:"theme,omitempty" yaml:"theme,omitempty"`
	SubmitLabel     string `json:"submitButtonText,omitempty" yaml:"submitButtonText,omitempty"`
	CancelLabel     string `json:"cancelButtonText,omitempty" yaml:"cancelButtonText,omitempty"`
	ShowProgressBar bool   `json:"showProgressBar,omitempty" yaml:"showProgressBar,omitempty"`
	AutoSave        bool   `json:"autoSave,omitempty" yaml:"autoSave,omitempty"`
}

// Values maps field names to user input. Shapes depend on field type: string
// for text-like fields, float64 for numeric ones, bool for a single checkbox,
// []string for multiselect and checkbox groups.
type Values map[string]any

// Errors maps field names to a single message, consistent with first-failure
// rule evaluation. A passing field has no entry.
type Errors map[string]string
