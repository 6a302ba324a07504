package schema

import "fmt"

// Issue flags a structural problem discovered by Validate, with a dotted
// location so hosts can point at the offending node.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func issuef(path, format string, args ...any) Issue {
	return Issue{Path: path, Message: fmt.Sprintf(format, args...)}
}

// Validate lints the schema against its structural invariants and returns
// every violation found. An empty result means the schema is well formed.
// Duplicate field names are reported even though the model tolerates them:
// they silently alias in the values and errors maps, which is almost never
// what a form author wants.
func (s Schema) Validate() []Issue {
	var issues []Issue

	if s.ID == "" {
		issues = append(issues, issuef("", "schema id is required"))
	}
	if len(s.Tabs) == 0 {
		issues = append(issues, issuef("tabs", "schema requires at least one tab"))
	}

	seenFieldIDs := make(map[string]string)
	seenFieldNames := make(map[string]string)

	for ti, tab := range s.Tabs {
		tabPath := fmt.Sprintf("tabs[%d]", ti)
		if tab.ID == "" {
			issues = append(issues, issuef(tabPath, "tab id is required"))
		}
		if len(tab.Sections) == 0 {
			issues = append(issues, issuef(tabPath+".sections", "tab %q requires at least one section", tab.ID))
		}
		for si, section := range tab.Sections {
			sectionPath := fmt.Sprintf("%s.sections[%d]", tabPath, si)
			if section.ID == "" {
				issues = append(issues, issuef(sectionPath, "section id is required"))
			}
			for fi, field := range section.Fields {
				fieldPath := fmt.Sprintf("%s.fields[%d]", sectionPath, fi)
				issues = append(issues, lintField(field, fieldPath, seenFieldIDs, seenFieldNames)...)
			}
		}
	}

	return issues
}

func lintField(field Field, path string, seenIDs, seenNames map[string]string) []Issue {
	var issues []Issue

	if field.ID == "" {
		issues = append(issues, issuef(path, "field id is required"))
	} else if prev, dup := seenIDs[field.ID]; dup {
		issues = append(issues, issuef(path, "field id %q already used at %s", field.ID, prev))
	} else {
		seenIDs[field.ID] = path
	}

	if !field.Type.Valid() {
		issues = append(issues, issuef(path, "unknown field type %q", field.Type))
	}

	if field.Name != "" {
		if prev, dup := seenNames[field.Name]; dup {
			issues = append(issues, issuef(path, "field name %q already used at %s; both fields will share one value slot", field.Name, prev))
		} else {
			seenNames[field.Name] = path
		}
	}

	switch {
	case field.Type.HasOptions() && len(field.Options) == 0:
		issues = append(issues, issuef(path+".options", "field type %q requires options", field.Type))
	case !field.Type.HasOptions() && len(field.Options) > 0:
		issues = append(issues, issuef(path+".options", "field type %q does not take options", field.Type))
	}

	seenValues := make(map[string]int, len(field.Options))
	for oi, option := range field.Options {
		optionPath := fmt.Sprintf("%s.options[%d]", path, oi)
		if option.Value == "" {
			issues = append(issues, issuef(optionPath, "option value must be a non-empty string"))
			continue
		}
		if prev, dup := seenValues[option.Value]; dup {
			issues = append(issues, issuef(optionPath, "option value %q duplicates options[%d]; selection is ambiguous", option.Value, prev))
		} else {
			seenValues[option.Value] = oi
		}
	}

	for ri, rule := range field.Rules {
		if rule.Message == "" {
			issues = append(issues, issuef(fmt.Sprintf("%s.validation[%d]", path, ri), "rule %q requires a message", rule.Kind))
		}
	}

	return issues
}
