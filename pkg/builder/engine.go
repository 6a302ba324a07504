package builder

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Option customises the mutation engine.
type Option func(*Engine)

// WithIDGenerator overrides identifier generation for new nodes. Tests use
// this to produce stable ids.
func WithIDGenerator(gen schema.IDGenerator) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// Engine applies structural edits to a schema and returns a fresh snapshot
// each time; the input schema is never mutated. Edits that reference an
// identifier that does not exist are silent no-ops returning the schema
// unchanged — the host is expected to only issue edits against identifiers it
// knows exist, and a stale edit after a concurrent delete should simply
// vanish rather than fail.
//
// Every operation is scoped to an explicit tab: the engine never searches
// across tabs for a section or field identifier.
type Engine struct {
	newID schema.IDGenerator
}

// New constructs an Engine with the default UUID-backed id generator.
func New(options ...Option) *Engine {
	e := &Engine{newID: schema.NewID}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// FieldRef addresses a field position for move operations.
type FieldRef struct {
	TabID     string
	SectionID string
	Index     int
}

// InsertField places a new field built from template into the named section
// at the given index. The field receives a freshly generated identifier
// regardless of what the template carries; index values outside
// [0, len(fields)] are clamped. Returns the schema unchanged when the tab or
// section does not exist.
func (e *Engine) InsertField(s schema.Schema, tabID, sectionID string, index int, template schema.Field) schema.Schema {
	next, section := e.copySpine(s, tabID, sectionID)
	if section == nil {
		return s
	}

	field := template.Clone()
	field.ID = e.newID("field")

	if index < 0 {
		index = 0
	}
	if index > len(section.Fields) {
		index = len(section.Fields)
	}

	section.Fields = append(section.Fields, schema.Field{})
	copy(section.Fields[index+1:], section.Fields[index:])
	section.Fields[index] = field
	return next
}

// MoveField removes the field at from and inserts it at to. Moving within one
// section follows list-reorder semantics: the removal happens first, so a
// destination index is interpreted against the list without the moved item.
// Returns the schema unchanged when either endpoint is missing or the source
// index is out of range.
func (e *Engine) MoveField(s schema.Schema, from, to FieldRef) schema.Schema {
	source, ok := s.FindSection(from.TabID, from.SectionID)
	if !ok || from.Index < 0 || from.Index >= len(source.Fields) {
		return s
	}
	if _, ok := s.FindSection(to.TabID, to.SectionID); !ok {
		return s
	}

	moved := source.Fields[from.Index]

	next, fromSection := e.copySpine(s, from.TabID, from.SectionID)
	fromSection.Fields = append(
		append([]schema.Field(nil), fromSection.Fields[:from.Index]...),
		fromSection.Fields[from.Index+1:]...,
	)

	toSection := fromSection
	if to.TabID != from.TabID || to.SectionID != from.SectionID {
		next, toSection = e.copySpineFrom(next, to.TabID, to.SectionID)
		if toSection == nil {
			return s
		}
	}

	index := to.Index
	if index < 0 {
		index = 0
	}
	if index > len(toSection.Fields) {
		index = len(toSection.Fields)
	}

	toSection.Fields = append(toSection.Fields, schema.Field{})
	copy(toSection.Fields[index+1:], toSection.Fields[index:])
	toSection.Fields[index] = moved
	return next
}

// UpdateField replaces the field whose ID matches replacement-by-id within
// the named tab. The identifier is immutable: the stored field keeps fieldID
// even if the replacement carries a different one. First match wins; field
// ids are unique so the search stops there. No-op when the field is gone.
func (e *Engine) UpdateField(s schema.Schema, tabID, fieldID string, replacement schema.Field) schema.Schema {
	tab, ok := s.FindTab(tabID)
	if !ok {
		return s
	}

	for _, section := range tab.Sections {
		for i, field := range section.Fields {
			if field.ID != fieldID {
				continue
			}
			next, target := e.copySpine(s, tabID, section.ID)
			updated := replacement.Clone()
			updated.ID = fieldID
			target.Fields[i] = updated
			return next
		}
	}
	return s
}

// DeleteField removes the field with the given identifier from whichever
// section of the named tab contains it. No-op when absent.
func (e *Engine) DeleteField(s schema.Schema, tabID, fieldID string) schema.Schema {
	tab, ok := s.FindTab(tabID)
	if !ok {
		return s
	}

	for _, section := range tab.Sections {
		for i, field := range section.Fields {
			if field.ID != fieldID {
				continue
			}
			next, target := e.copySpine(s, tabID, section.ID)
			target.Fields = append(
				append([]schema.Field(nil), target.Fields[:i]...),
				target.Fields[i+1:]...,
			)
			return next
		}
	}
	return s
}

// AddSection appends an empty section to the named tab with a generated id
// and a title derived from the current section count.
func (e *Engine) AddSection(s schema.Schema, tabID string) schema.Schema {
	tabIndex := -1
	for i, tab := range s.Tabs {
		if tab.ID == tabID {
			tabIndex = i
			break
		}
	}
	if tabIndex < 0 {
		return s
	}

	next := s
	next.Tabs = append([]schema.Tab(nil), s.Tabs...)
	tab := next.Tabs[tabIndex]
	section := schema.Section{
		ID:    e.newID("section"),
		Title: fmt.Sprintf("Section %d", len(tab.Sections)+1),
	}
	tab.Sections = append(append([]schema.Section(nil), tab.Sections...), section)
	next.Tabs[tabIndex] = tab
	return next
}

// AddTab appends a new tab holding exactly one empty section, satisfying the
// every-tab-has-a-section invariant from the moment it exists.
func (e *Engine) AddTab(s schema.Schema) schema.Schema {
	tab := schema.Tab{
		ID:    e.newID("tab"),
		Title: fmt.Sprintf("Tab %d", len(s.Tabs)+1),
		Sections: []schema.Section{
			{ID: e.newID("section"), Title: "Section 1"},
		},
	}

	next := s
	next.Tabs = append(append([]schema.Tab(nil), s.Tabs...), tab)
	return next
}

// copySpine rebuilds the path from the schema root down to the named section
// and returns the new snapshot plus a pointer to the writable section copy.
// Untouched tabs and sections keep their original backing arrays, so a
// mutation allocates O(depth), not O(tree size).
func (e *Engine) copySpine(s schema.Schema, tabID, sectionID string) (schema.Schema, *schema.Section) {
	return e.copySpineFrom(s, tabID, sectionID)
}

func (e *Engine) copySpineFrom(s schema.Schema, tabID, sectionID string) (schema.Schema, *schema.Section) {
	for ti, tab := range s.Tabs {
		if tab.ID != tabID {
			continue
		}
		for si, section := range tab.Sections {
			if section.ID != sectionID {
				continue
			}

			next := s
			next.Tabs = append([]schema.Tab(nil), s.Tabs...)
			nextTab := next.Tabs[ti]
			nextTab.Sections = append([]schema.Section(nil), tab.Sections...)
			nextSection := nextTab.Sections[si]
			nextSection.Fields = append([]schema.Field(nil), section.Fields...)
			nextTab.Sections[si] = nextSection
			next.Tabs[ti] = nextTab
			return next, &next.Tabs[ti].Sections[si]
		}
		break
	}
	return s, nil
}
