package schema

// Clone creates a deep copy of the schema tree so callers can hand out
// snapshots without sharing slices.
func (s Schema) Clone() Schema {
	cloned := s
	if len(s.Tabs) > 0 {
		cloned.Tabs = make([]Tab, len(s.Tabs))
		for i, tab := range s.Tabs {
			cloned.Tabs[i] = tab.Clone()
		}
	}
	return cloned
}

// Clone deep-copies the tab and its sections.
func (t Tab) Clone() Tab {
	cloned := t
	if len(t.Sections) > 0 {
		cloned.Sections = make([]Section, len(t.Sections))
		for i, section := range t.Sections {
			cloned.Sections[i] = section.Clone()
		}
	}
	return cloned
}

// Clone deep-copies the section and its fields.
func (s Section) Clone() Section {
	cloned := s
	if len(s.Fields) > 0 {
		cloned.Fields = make([]Field, len(s.Fields))
		for i, field := range s.Fields {
			cloned.Fields[i] = field.Clone()
		}
	}
	return cloned
}

// Clone deep-copies the field. Rule predicates are shared, not copied; they
// are opaque function values.
func (f Field) Clone() Field {
	cloned := f
	if len(f.Options) > 0 {
		cloned.Options = append([]Option(nil), f.Options...)
	}
	if len(f.Rules) > 0 {
		cloned.Rules = append([]ValidationRule(nil), f.Rules...)
	}
	if len(f.Conditions) > 0 {
		cloned.Conditions = append([]ConditionalRule(nil), f.Conditions...)
	}
	if f.Min != nil {
		min := *f.Min
		cloned.Min = &min
	}
	if f.Max != nil {
		max := *f.Max
		cloned.Max = &max
	}
	if f.Step != nil {
		step := *f.Step
		cloned.Step = &step
	}
	return cloned
}
