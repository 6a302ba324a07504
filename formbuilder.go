// Package formbuilder is the top-level entry point for building, editing,
// validating, filling, and rendering declarative form schemas. It re-exports
// the core types and wires the internal OpenAPI implementations to their
// public contracts.
package formbuilder

import (
	"context"
	"fmt"

	openapiimporter "github.com/goliatone/go-formbuilder/internal/openapi/importer"
	openapiloader "github.com/goliatone/go-formbuilder/internal/openapi/loader"
	"github.com/goliatone/go-formbuilder/pkg/builder"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/session"
)

// Schema is the declarative description of a whole form.
type Schema = schema.Schema

// Field is the atomic schema node.
type Field = schema.Field

// Tab and Section are the structural levels above fields.
type (
	Tab     = schema.Tab
	Section = schema.Section
)

// Values maps field names to user input.
type Values = schema.Values

// Errors maps field names to a single validation message.
type Errors = schema.Errors

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface validation errors.
type RenderOptions = render.RenderOptions

// NewBuilder exposes the mutation engine constructor from the top-level
// module.
func NewBuilder(options ...builder.Option) *builder.Engine {
	return builder.New(options...)
}

// NewSession starts a fill session over a schema snapshot.
func NewSession(formSchema Schema, options ...session.Option) *session.Session {
	return session.New(formSchema, options...)
}

// DefaultRegistry returns a renderer registry pre-populated with the built-in
// HTML and TUI renderers.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("formbuilder: configure html renderer: %w", err)
	}
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}

	tuiRenderer, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("formbuilder: configure tui renderer: %w", err)
	}
	if err := registry.Register(tuiRenderer); err != nil {
		return nil, err
	}

	return registry, nil
}

// NewOpenAPILoader constructs a document loader. Construction lives here so
// pkg/openapi stays free of internal imports.
func NewOpenAPILoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return openapiloader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewOpenAPIImporter constructs an operation-to-schema importer.
func NewOpenAPIImporter(options ...pkgopenapi.ImporterOption) pkgopenapi.Importer {
	return openapiimporter.New(pkgopenapi.NewImporterOptions(options...))
}

// ImportForms loads an OpenAPI document from the given source and converts
// its body-bearing operations into form schemas keyed by operation id.
func ImportForms(ctx context.Context, source pkgopenapi.Source, loaderOptions []pkgopenapi.LoaderOption, importerOptions ...pkgopenapi.ImporterOption) (map[string]Schema, error) {
	doc, err := NewOpenAPILoader(loaderOptions...).Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return NewOpenAPIImporter(importerOptions...).Forms(ctx, doc)
}

// RenderHTML renders a schema to HTML markup with the built-in renderer. It
// is the simplest entry point for callers that just want output bytes.
func RenderHTML(ctx context.Context, formSchema Schema, opts RenderOptions) ([]byte, error) {
	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, formSchema, opts)
}

// Fill runs an interactive terminal session over the schema and returns the
// collected values as JSON.
func Fill(ctx context.Context, formSchema Schema, opts RenderOptions, options ...tui.Option) ([]byte, error) {
	renderer, err := tui.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, formSchema, opts)
}
