package schema_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

const yamlDoc = `
id: form-signup
title: Signup
tabs:
  - id: tab-1
    title: Account
    sections:
      - id: section-1
        title: Credentials
        fields:
          - id: field-email
            type: text
            label: Email
            name: email
            validation:
              - type: required
                message: email is required
              - type: regex
                value: "^[^@]+@[^@]+$"
                message: invalid email
`

func TestDecodeYAMLDocument(t *testing.T) {
	s, err := schema.DecodeYAML([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if s.ID != "form-signup" {
		t.Fatalf("schema id = %q", s.ID)
	}
	field, ok := s.FindFieldByName("email")
	if !ok {
		t.Fatal("email field missing")
	}
	if len(field.Rules) != 2 {
		t.Fatalf("rules = %d, want 2", len(field.Rules))
	}
	if field.Rules[1].Kind != schema.RuleRegex {
		t.Fatalf("second rule kind = %q", field.Rules[1].Kind)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := sampleSchema()
	data, err := schema.EncodeJSON(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := schema.DecodeJSON(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != original.ID || len(decoded.Tabs) != len(original.Tabs) {
		t.Fatalf("round trip lost structure: %+v", decoded)
	}
	field, ok := decoded.FindFieldByID("field-name")
	if !ok {
		t.Fatal("field-name missing after round trip")
	}
	if field.Rules[0].Message != "name is required" {
		t.Fatalf("rule message = %q", field.Rules[0].Message)
	}
}

func TestDecodeSniffsByExtension(t *testing.T) {
	if _, err := schema.Decode("form.yaml", []byte(yamlDoc)); err != nil {
		t.Fatalf("yaml by extension: %v", err)
	}
	if _, err := schema.Decode("form.json", []byte(`{"id":"f","title":"t","tabs":[]}`)); err != nil {
		t.Fatalf("json by extension: %v", err)
	}
}
