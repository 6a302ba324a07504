package openapi

import (
	"context"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Importer converts the body-bearing operations of an OpenAPI document into
// editable form schemas keyed by operation id.
type Importer interface {
	Forms(ctx context.Context, doc Document) (map[string]schema.Schema, error)
}

// ImporterOptions configures schema conversion.
type ImporterOptions struct {
	// IDGenerator mints ids for generated forms, tabs, sections, and fields.
	// Nil means schema.NewID.
	IDGenerator schema.IDGenerator

	// Methods restricts which HTTP methods are considered. Empty means the
	// body-bearing defaults: POST, PUT, PATCH.
	Methods []string
}

// ImporterOption mutates ImporterOptions during construction.
type ImporterOption func(*ImporterOptions)

// WithImportIDGenerator overrides the id generator used for imported schemas.
func WithImportIDGenerator(gen schema.IDGenerator) ImporterOption {
	return func(opts *ImporterOptions) {
		if gen != nil {
			opts.IDGenerator = gen
		}
	}
}

// WithImportMethods restricts conversion to the named HTTP methods.
func WithImportMethods(methods ...string) ImporterOption {
	return func(opts *ImporterOptions) {
		for _, method := range methods {
			method = strings.ToUpper(strings.TrimSpace(method))
			if method != "" {
				opts.Methods = append(opts.Methods, method)
			}
		}
	}
}

// NewImporterOptions applies ImporterOption values and returns the resulting
// configuration.
func NewImporterOptions(options ...ImporterOption) ImporterOptions {
	cfg := ImporterOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = schema.NewID
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = []string{"POST", "PUT", "PATCH"}
	}
	return cfg
}

// Construction helpers live in the top-level formbuilder package to prevent
// import cycles.
