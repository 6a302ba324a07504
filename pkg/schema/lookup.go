package schema

// Fields flattens every field across all tabs and sections in declaration
// order. Lookups over the result are linear scans, which is fine at the form
// sizes builders produce (tens of fields).
func (s Schema) Fields() []Field {
	var out []Field
	for _, tab := range s.Tabs {
		for _, section := range tab.Sections {
			out = append(out, section.Fields...)
		}
	}
	return out
}

// FindTab returns the tab with the given ID.
func (s Schema) FindTab(tabID string) (Tab, bool) {
	for _, tab := range s.Tabs {
		if tab.ID == tabID {
			return tab, true
		}
	}
	return Tab{}, false
}

// FindSection locates a section by ID within the named tab.
func (s Schema) FindSection(tabID, sectionID string) (Section, bool) {
	tab, ok := s.FindTab(tabID)
	if !ok {
		return Section{}, false
	}
	for _, section := range tab.Sections {
		if section.ID == sectionID {
			return section, true
		}
	}
	return Section{}, false
}

// FindFieldByID scans the whole form for a field identifier.
func (s Schema) FindFieldByID(fieldID string) (Field, bool) {
	for _, tab := range s.Tabs {
		for _, section := range tab.Sections {
			for _, field := range section.Fields {
				if field.ID == fieldID {
					return field, true
				}
			}
		}
	}
	return Field{}, false
}

// FindFieldByName returns the first field with the given name. Duplicate
// names alias; the earliest declaration wins, matching values-map semantics.
func (s Schema) FindFieldByName(name string) (Field, bool) {
	for _, tab := range s.Tabs {
		for _, section := range tab.Sections {
			for _, field := range section.Fields {
				if field.Name == name {
					return field, true
				}
			}
		}
	}
	return Field{}, false
}

// DefaultValues collects the declared default for every field that has one,
// keyed by field name.
func (s Schema) DefaultValues() Values {
	values := make(Values)
	for _, field := range s.Fields() {
		if field.Default != nil && field.Name != "" {
			values[field.Name] = field.Default
		}
	}
	return values
}
