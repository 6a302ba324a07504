// Package session holds the live state of one form instance: current values,
// validation errors, dirty tracking, and an optional auto-save round trip
// through a pluggable blob store. Operations run synchronously to completion;
// a session is owned by a single host loop and is not safe for concurrent
// use.
package session

import (
	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// DefaultStorageKey names the persisted blob when the caller does not supply
// a key.
const DefaultStorageKey = "form_values"

// Option customises session construction.
type Option func(*Session)

// WithInitialValues seeds the values map. Reset restores these values, not an
// empty map.
func WithInitialValues(values schema.Values) Option {
	return func(s *Session) {
		s.initial = cloneValues(values)
	}
}

// WithStore supplies the blob store used when auto-save is enabled.
func WithStore(store Store) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// WithStorageKey overrides the persistence key.
func WithStorageKey(key string) Option {
	return func(s *Session) {
		if key != "" {
			s.storageKey = key
		}
	}
}

// WithAutoSave forces auto-save on or off regardless of the schema's flag.
func WithAutoSave(enabled bool) Option {
	return func(s *Session) {
		s.autoSave = enabled
		s.autoSaveSet = true
	}
}

// Session is the value store for one live form. The schema snapshot is fixed
// at construction; hosts that mutate the schema start a new session (or call
// ReplaceSchema) so the field list stays in step.
type Session struct {
	schema      schema.Schema
	initial     schema.Values
	values      schema.Values
	errors      schema.Errors
	dirty       bool
	valid       bool
	autoSave    bool
	autoSaveSet bool
	store       Store
	storageKey  string
}

// New builds a session for the schema. When auto-save is on (via the
// schema's flag or WithAutoSave), a previously persisted blob is merged over
// the initial values, with persisted entries winning. A corrupt or unreadable
// blob is treated as nothing saved; construction never fails on persistence
// problems.
func New(formSchema schema.Schema, options ...Option) *Session {
	s := &Session{
		schema:     formSchema,
		initial:    make(schema.Values),
		errors:     make(schema.Errors),
		valid:      true,
		storageKey: DefaultStorageKey,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if !s.autoSaveSet {
		s.autoSave = formSchema.AutoSave
	}
	if s.store == nil {
		s.store = NewMemoryStore()
	}

	s.values = cloneValues(s.initial)
	for name, value := range s.loadSaved() {
		s.values[name] = value
	}
	return s
}

// loadSaved reads and decodes the persisted blob. Every failure path reports
// an empty map: the session proceeds with the supplied initial values.
func (s *Session) loadSaved() schema.Values {
	if !s.autoSave {
		return nil
	}
	blob, err := s.store.Load(s.storageKey)
	if err != nil || len(blob) == 0 {
		return nil
	}
	var saved schema.Values
	if err := json.Unmarshal(blob, &saved); err != nil {
		return nil
	}
	return saved
}

// Schema returns the schema snapshot this session was built against.
func (s *Session) Schema() schema.Schema {
	return s.schema
}

// ReplaceSchema swaps in a new schema snapshot (after a structural edit).
// Values and errors are kept; entries for fields that no longer exist stay in
// the maps until the next whole-form validation replaces the error state.
func (s *Session) ReplaceSchema(formSchema schema.Schema) {
	s.schema = formSchema
}

// Values returns a copy of the current values map.
func (s *Session) Values() schema.Values {
	return cloneValues(s.values)
}

// Errors returns a copy of the current errors map.
func (s *Session) Errors() schema.Errors {
	out := make(schema.Errors, len(s.errors))
	for name, message := range s.errors {
		out[name] = message
	}
	return out
}

// IsDirty reports whether any value changed since construction or the last
// reset.
func (s *Session) IsDirty() bool {
	return s.dirty
}

// IsValid reports the outcome of the most recent validation. A fresh session
// is valid until a validation says otherwise.
func (s *Session) IsValid() bool {
	return s.valid
}

// SetValue merges one value into the map and marks the session dirty. It does
// not re-validate; validation is explicit so rapid input is never blocked.
// When auto-save is on the full values map is persisted best-effort.
func (s *Session) SetValue(name string, value any) {
	s.values[name] = value
	s.dirty = true
	s.persist()
}

// SetValues replaces the values map wholesale and marks the session dirty.
func (s *Session) SetValues(values schema.Values) {
	s.values = cloneValues(values)
	s.dirty = true
	s.persist()
}

// ValidateField locates the field by name and re-evaluates just that field,
// merging the outcome into the errors map. The merge always writes the
// just-validated field's outcome, so a stale error is cleared the moment the
// field passes. Unknown names are a no-op.
func (s *Session) ValidateField(name string) {
	field, ok := s.schema.FindFieldByName(name)
	if !ok {
		return
	}

	if message := validation.ValidateField(field, s.values[name]); message != "" {
		s.errors[name] = message
	} else {
		delete(s.errors, name)
	}
	s.valid = validation.IsFormValid(s.errors)
}

// ValidateForm validates every field across every tab and section, replaces
// the whole errors map, and reports whether the form passed.
func (s *Session) ValidateForm() bool {
	s.errors = validation.ValidateForm(s.schema.Fields(), s.values)
	s.valid = validation.IsFormValid(s.errors)
	return s.valid
}

// Reset restores the originally supplied initial values, clears errors and
// the dirty flag, and removes any persisted blob when auto-save is on.
func (s *Session) Reset() {
	s.values = cloneValues(s.initial)
	s.errors = make(schema.Errors)
	s.dirty = false
	s.valid = true

	if s.autoSave {
		_ = s.store.Delete(s.storageKey)
	}
}

// Flush persists the current values immediately and surfaces the store
// error, unlike the best-effort writes on SetValue.
func (s *Session) Flush() error {
	if !s.autoSave {
		return nil
	}
	blob, err := json.Marshal(serializableValues(s.values))
	if err != nil {
		return err
	}
	return s.store.Save(s.storageKey, blob)
}

func (s *Session) persist() {
	if !s.autoSave {
		return
	}
	blob, err := json.Marshal(serializableValues(s.values))
	if err != nil {
		return
	}
	_ = s.store.Save(s.storageKey, blob)
}

// serializableValues drops entries that cannot live in a JSON blob (function
// values and other non-serializable shapes) so custom validator predicates
// and exotic defaults never round-trip through persistence.
func serializableValues(values schema.Values) schema.Values {
	out := make(schema.Values, len(values))
	for name, value := range values {
		if _, err := json.Marshal(value); err != nil {
			continue
		}
		out[name] = value
	}
	return out
}

func cloneValues(src schema.Values) schema.Values {
	out := make(schema.Values, len(src))
	for name, value := range src {
		out[name] = value
	}
	return out
}
