package builder

import "github.com/goliatone/go-formbuilder/pkg/schema"

// Settings carries optional form-level metadata edits. Nil fields are left
// untouched, so a patch only has to name what changed.
type Settings struct {
	Title           *string
	Description     *string
	Theme           *string
	SubmitLabel     *string
	CancelLabel     *string
	ShowProgressBar *bool
	AutoSave        *bool
}

// UpdateSettings merges the patch into a fresh schema snapshot. Structural
// content (tabs, sections, fields) is shared with the input, which is safe
// because snapshots are immutable.
func (e *Engine) UpdateSettings(s schema.Schema, patch Settings) schema.Schema {
	next := s
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Theme != nil {
		next.Theme = *patch.Theme
	}
	if patch.SubmitLabel != nil {
		next.SubmitLabel = *patch.SubmitLabel
	}
	if patch.CancelLabel != nil {
		next.CancelLabel = *patch.CancelLabel
	}
	if patch.ShowProgressBar != nil {
		next.ShowProgressBar = *patch.ShowProgressBar
	}
	if patch.AutoSave != nil {
		next.AutoSave = *patch.AutoSave
	}
	return next
}
