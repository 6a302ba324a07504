// Package builder is the mutation engine for form schemas: pure structural
// edits (insert, move, update, delete, add section/tab) that take a schema
// snapshot and return a new one, plus the field palette builder surfaces
// instantiate new fields from. Edits referencing unknown identifiers are
// silent no-ops.
package builder

import "github.com/goliatone/go-formbuilder/pkg/schema"

// DefaultSchema returns the empty form a builder session starts from: one
// tab, one section, no fields, stock button labels, progress bar on.
func (e *Engine) DefaultSchema() schema.Schema {
	return schema.Schema{
		ID:    e.newID("form"),
		Title: "New Form",
		Tabs: []schema.Tab{
			{
				ID:    e.newID("tab"),
				Title: "Tab 1",
				Sections: []schema.Section{
					{ID: e.newID("section"), Title: "Section 1"},
				},
			},
		},
		SubmitLabel:     "Submit",
		CancelLabel:     "Cancel",
		ShowProgressBar: true,
	}
}
