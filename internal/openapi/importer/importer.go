// Package importer turns OpenAPI operation request bodies into editable form
// schemas. Each body-bearing operation becomes a single-tab form seeded with
// one field per top-level property.
package importer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Importer implements pkgopenapi.Importer using kin-openapi.
type Importer struct {
	options pkgopenapi.ImporterOptions
}

var _ pkgopenapi.Importer = (*Importer)(nil)

// New constructs an Importer with the given options.
func New(options pkgopenapi.ImporterOptions) pkgopenapi.Importer {
	if options.IDGenerator == nil {
		options.IDGenerator = schema.NewID
	}
	if len(options.Methods) == 0 {
		options.Methods = []string{"POST", "PUT", "PATCH"}
	}
	return &Importer{options: options}
}

// Forms converts a Document into form schemas keyed by operation id.
func (i *Importer) Forms(ctx context.Context, doc pkgopenapi.Document) (map[string]schema.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi importer: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi importer: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi importer: document does not contain any paths")
	}

	allowed := make(map[string]bool, len(i.options.Methods))
	for _, method := range i.options.Methods {
		allowed[strings.ToUpper(method)] = true
	}

	forms := make(map[string]schema.Schema)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range map[string]*openapi3.Operation{
			"POST":  item.Post,
			"PUT":   item.Put,
			"PATCH": item.Patch,
		} {
			if operation == nil || !allowed[method] {
				continue
			}
			body := requestBodySchema(operation.RequestBody)
			if body == nil || len(body.Properties) == 0 {
				continue
			}

			opID := operation.OperationID
			if opID == "" {
				opID = strings.ToLower(method) + ":" + path
			}
			forms[opID] = i.buildForm(opID, operation, body)
		}
	}

	if len(forms) == 0 {
		return nil, errors.New("openapi importer: no importable operations")
	}
	return forms, nil
}

func (i *Importer) buildForm(opID string, operation *openapi3.Operation, body *openapi3.Schema) schema.Schema {
	newID := i.options.IDGenerator

	title := operation.Summary
	if title == "" {
		title = humanize(opID)
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []schema.Field
	for _, name := range names {
		field, ok := i.convertProperty(name, body.Properties[name], required[name])
		if !ok {
			continue
		}
		fields = append(fields, field)
	}

	return schema.Schema{
		ID:          newID("form"),
		Title:       title,
		Description: operation.Description,
		SubmitLabel: "Submit",
		Tabs: []schema.Tab{
			{
				ID:    newID("tab"),
				Title: "General",
				Sections: []schema.Section{
					{
						ID:     newID("section"),
						Title:  "Details",
						Fields: fields,
					},
				},
			},
		},
	}
}

func requestBodySchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	content := ref.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
