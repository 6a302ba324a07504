package importer_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/internal/openapi/importer"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

const petsDocument = `{
  "openapi": "3.0.0",
  "info": {"title": "Pets", "version": "1.0.0"},
  "paths": {
    "/pets": {
      "post": {
        "operationId": "createPet",
        "summary": "Create a pet",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name"],
                "properties": {
                  "name": {"type": "string", "minLength": 2, "maxLength": 40},
                  "age": {"type": "integer", "minimum": 0, "maximum": 30},
                  "species": {"type": "string", "enum": ["cat", "dog"]},
                  "tags": {"type": "array", "items": {"type": "string", "enum": ["small", "large"]}},
                  "vaccinated": {"type": "boolean"},
                  "birthDate": {"type": "string", "format": "date"},
                  "owner": {"type": "object", "properties": {"id": {"type": "string"}}}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      },
      "get": {
        "operationId": "listPets",
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func sequentialIDs() schema.IDGenerator {
	counters := make(map[string]int)
	return func(prefix string) string {
		counters[prefix]++
		return fmt.Sprintf("%s-%d", prefix, counters[prefix])
	}
}

func importPets(t *testing.T) schema.Schema {
	t.Helper()

	imp := importer.New(pkgopenapi.NewImporterOptions(
		pkgopenapi.WithImportIDGenerator(sequentialIDs()),
	))

	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("pets.json"), []byte(petsDocument))
	forms, err := imp.Forms(context.Background(), doc)
	if err != nil {
		t.Fatalf("import forms: %v", err)
	}

	form, ok := forms["createPet"]
	if !ok {
		t.Fatalf("createPet missing, got %d forms", len(forms))
	}
	if len(forms) != 1 {
		t.Fatalf("expected only body-bearing operations, got %d forms", len(forms))
	}
	return form
}

func TestImporter_BuildsSingleTabForm(t *testing.T) {
	form := importPets(t)

	if form.Title != "Create a pet" {
		t.Fatalf("title = %q", form.Title)
	}
	if len(form.Tabs) != 1 || len(form.Tabs[0].Sections) != 1 {
		t.Fatalf("expected one tab with one section, got %+v", form.Tabs)
	}
	if issues := form.Validate(); len(issues) != 0 {
		t.Fatalf("imported schema has lint issues: %v", issues)
	}
}

func TestImporter_FieldOrderAndSkippedProperties(t *testing.T) {
	form := importPets(t)

	var names []string
	for _, field := range form.Fields() {
		names = append(names, field.Name)
	}

	// Sorted by property name; the nested object is not representable.
	want := []string{"age", "birthDate", "name", "species", "tags", "vaccinated"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestImporter_StringConstraintsBecomeRules(t *testing.T) {
	form := importPets(t)

	field, ok := form.FindFieldByName("name")
	if !ok {
		t.Fatalf("name field missing")
	}
	if field.Type != schema.FieldTypeText {
		t.Fatalf("type = %q", field.Type)
	}
	if !field.Required {
		t.Fatalf("name should be required")
	}

	var kinds []schema.RuleKind
	for _, rule := range field.Rules {
		kinds = append(kinds, rule.Kind)
		if rule.Message == "" {
			t.Fatalf("rule %s has no message", rule.Kind)
		}
	}
	want := []schema.RuleKind{schema.RuleRequired, schema.RuleMinLength, schema.RuleMaxLength}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("rule kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestImporter_NumericBounds(t *testing.T) {
	form := importPets(t)

	field, ok := form.FindFieldByName("age")
	if !ok {
		t.Fatalf("age field missing")
	}
	if field.Type != schema.FieldTypeNumber {
		t.Fatalf("type = %q", field.Type)
	}
	if field.Min == nil || *field.Min != 0 {
		t.Fatalf("min = %v", field.Min)
	}
	if field.Max == nil || *field.Max != 30 {
		t.Fatalf("max = %v", field.Max)
	}
}

func TestImporter_EnumsBecomeChoiceFields(t *testing.T) {
	form := importPets(t)

	species, ok := form.FindFieldByName("species")
	if !ok {
		t.Fatalf("species field missing")
	}
	if species.Type != schema.FieldTypeSelect {
		t.Fatalf("species type = %q", species.Type)
	}
	wantOptions := []schema.Option{
		{Label: "Cat", Value: "cat"},
		{Label: "Dog", Value: "dog"},
	}
	if diff := cmp.Diff(wantOptions, species.Options); diff != "" {
		t.Fatalf("species options mismatch (-want +got):\n%s", diff)
	}

	tags, ok := form.FindFieldByName("tags")
	if !ok {
		t.Fatalf("tags field missing")
	}
	if tags.Type != schema.FieldTypeMultiSelect {
		t.Fatalf("tags type = %q", tags.Type)
	}

	vaccinated, ok := form.FindFieldByName("vaccinated")
	if !ok {
		t.Fatalf("vaccinated field missing")
	}
	if vaccinated.Type != schema.FieldTypeSelect || len(vaccinated.Options) != 2 {
		t.Fatalf("vaccinated = %+v", vaccinated)
	}
}

func TestImporter_FormatsAndLabels(t *testing.T) {
	form := importPets(t)

	field, ok := form.FindFieldByName("birthDate")
	if !ok {
		t.Fatalf("birthDate field missing")
	}
	if field.Type != schema.FieldTypeDate {
		t.Fatalf("type = %q", field.Type)
	}
	if field.Label != "Birth Date" {
		t.Fatalf("label = %q", field.Label)
	}
}

func TestImporter_RejectsDocumentWithoutOperations(t *testing.T) {
	imp := importer.New(pkgopenapi.NewImporterOptions())

	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("empty.json"), []byte(`{
	  "openapi": "3.0.0",
	  "info": {"title": "Empty", "version": "1.0.0"},
	  "paths": {"/ping": {"get": {"responses": {"200": {"description": "ok"}}}}}
	}`))

	if _, err := imp.Forms(context.Background(), doc); err == nil {
		t.Fatalf("expected error for document without importable operations")
	}
}
