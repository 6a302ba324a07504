// Package render defines the contract between form schemas and output
// renderers, plus a registry for discovering them by name. Renderers are
// external collaborators of the core: they receive a schema snapshot and a
// value/error state and produce bytes; they never mutate either input.
package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/theme"
)

// Renderer turns a schema plus per-request state into output bytes.
type Renderer interface {
	// Name identifies the renderer in the registry.
	Name() string
	// ContentType reports the MIME type of Render's output.
	ContentType() string
	// Render produces the output for one form. Implementations must treat
	// the schema and options as read-only.
	Render(ctx context.Context, formSchema schema.Schema, opts RenderOptions) ([]byte, error)
}

// RenderOptions carries per-request state renderers can surface without the
// schema knowing anything about presentation.
type RenderOptions struct {
	// ActiveTab selects which tab to render by id. Empty means the first tab.
	ActiveTab string
	// Values pre-populates controls, keyed by field name.
	Values schema.Values
	// Errors surfaces validation feedback inline, keyed by field name.
	Errors schema.Errors
	// Theme supplies resolved tokens, CSS variables, and partials. Nil means
	// unthemed output.
	Theme *theme.Config
}

// ActiveTabOrFirst resolves the requested tab against the schema, falling
// back to the first tab when the request names nothing or names a tab that
// does not exist.
func (o RenderOptions) ActiveTabOrFirst(formSchema schema.Schema) (schema.Tab, bool) {
	if o.ActiveTab != "" {
		if tab, ok := formSchema.FindTab(o.ActiveTab); ok {
			return tab, true
		}
	}
	if len(formSchema.Tabs) == 0 {
		return schema.Tab{}, false
	}
	return formSchema.Tabs[0], true
}
