package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func sampleSchema() schema.Schema {
	return schema.Schema{
		ID:          "form-contact",
		Title:       "Contact",
		SubmitLabel: "Send",
		Tabs: []schema.Tab{
			{
				ID:    "tab-1",
				Title: "Main",
				Sections: []schema.Section{
					{
						ID:    "section-1",
						Title: "About you",
						Fields: []schema.Field{
							{
								ID:    "field-name",
								Type:  schema.FieldTypeText,
								Label: "Name",
								Name:  "name",
								Rules: []schema.ValidationRule{
									{Kind: schema.RuleRequired, Message: "name is required"},
								},
							},
							{
								ID:      "field-topic",
								Type:    schema.FieldTypeSelect,
								Label:   "Topic",
								Name:    "topic",
								Default: "sales",
								Options: []schema.Option{
									{Label: "Sales", Value: "sales"},
									{Label: "Support", Value: "support"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleSchema()
	cloned := original.Clone()

	cloned.Tabs[0].Sections[0].Fields[0].Label = "Full name"
	cloned.Tabs[0].Sections[0].Fields[1].Options[0].Value = "mutated"

	if got := original.Tabs[0].Sections[0].Fields[0].Label; got != "Name" {
		t.Fatalf("clone shared field slice: label = %q", got)
	}
	if got := original.Tabs[0].Sections[0].Fields[1].Options[0].Value; got != "sales" {
		t.Fatalf("clone shared options slice: value = %q", got)
	}
}

func TestFieldsFlattensInOrder(t *testing.T) {
	s := sampleSchema()
	s.Tabs = append(s.Tabs, schema.Tab{
		ID:    "tab-2",
		Title: "Extra",
		Sections: []schema.Section{
			{ID: "section-2", Fields: []schema.Field{
				{ID: "field-notes", Type: schema.FieldTypeTextarea, Name: "notes"},
			}},
		},
	})

	var names []string
	for _, field := range s.Fields() {
		names = append(names, field.Name)
	}
	want := []string{"name", "topic", "notes"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("flatten order mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupHelpers(t *testing.T) {
	s := sampleSchema()

	if _, ok := s.FindTab("tab-1"); !ok {
		t.Fatal("expected to find tab-1")
	}
	if _, ok := s.FindSection("tab-1", "section-1"); !ok {
		t.Fatal("expected to find section-1")
	}
	if _, ok := s.FindSection("tab-missing", "section-1"); ok {
		t.Fatal("section lookup must be tab-scoped")
	}

	field, ok := s.FindFieldByID("field-topic")
	if !ok || field.Name != "topic" {
		t.Fatalf("FindFieldByID = %+v, %v", field, ok)
	}
	if _, ok := s.FindFieldByName("missing"); ok {
		t.Fatal("expected miss for unknown name")
	}
}

func TestDefaultValues(t *testing.T) {
	values := sampleSchema().DefaultValues()
	want := schema.Values{"topic": "sales"}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("default values mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateWellFormed(t *testing.T) {
	if issues := sampleSchema().Validate(); len(issues) != 0 {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestValidateFlagsInvariantViolations(t *testing.T) {
	s := sampleSchema()
	section := &s.Tabs[0].Sections[0]
	// text field with options, choice field without, duplicate name + id.
	section.Fields[0].Options = []schema.Option{{Label: "x", Value: "x"}}
	section.Fields = append(section.Fields,
		schema.Field{ID: "field-name", Type: schema.FieldTypeRadio, Name: "name"},
		schema.Field{ID: "field-empty", Type: schema.FieldType("bogus"), Name: "other"},
	)

	issues := s.Validate()
	wantFragments := []string{
		"does not take options",
		"requires options",
		`field id "field-name" already used`,
		`field name "name" already used`,
		`unknown field type "bogus"`,
	}
	for _, fragment := range wantFragments {
		if !containsIssue(issues, fragment) {
			t.Errorf("missing issue containing %q in %+v", fragment, issues)
		}
	}
}

func TestValidateFlagsOptionProblems(t *testing.T) {
	s := sampleSchema()
	s.Tabs[0].Sections[0].Fields[1].Options = []schema.Option{
		{Label: "One", Value: "dup"},
		{Label: "Two", Value: "dup"},
		{Label: "Blank", Value: ""},
	}

	issues := s.Validate()
	if !containsIssue(issues, "duplicates options[0]") {
		t.Errorf("expected duplicate option issue, got %+v", issues)
	}
	if !containsIssue(issues, "non-empty string") {
		t.Errorf("expected empty option issue, got %+v", issues)
	}
}

func containsIssue(issues []schema.Issue, fragment string) bool {
	for _, issue := range issues {
		if strings.Contains(issue.Message, fragment) {
			return true
		}
	}
	return false
}
