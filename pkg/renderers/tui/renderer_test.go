package tui_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// scriptedDriver feeds canned answers to the renderer and records every
// prompt it receives.
type scriptedDriver struct {
	inputs    []string
	selects   []int
	multis    [][]int
	textareas []string

	inputCfgs  []tui.InputConfig
	selectCfgs []tui.SelectConfig
	infos      []string

	err error
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.inputCfgs = append(d.inputCfgs, cfg)
	if len(d.inputs) == 0 {
		return "", errors.New("scripted driver: input script exhausted")
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, _ tui.ConfirmConfig) (bool, error) {
	return false, errors.New("scripted driver: unexpected confirm")
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	d.selectCfgs = append(d.selectCfgs, cfg)
	if len(d.selects) == 0 {
		return 0, errors.New("scripted driver: select script exhausted")
	}
	next := d.selects[0]
	d.selects = d.selects[1:]
	return next, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, cfg tui.SelectConfig) ([]int, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.selectCfgs = append(d.selectCfgs, cfg)
	if len(d.multis) == 0 {
		return nil, errors.New("scripted driver: multiselect script exhausted")
	}
	next := d.multis[0]
	d.multis = d.multis[1:]
	return next, nil
}

func (d *scriptedDriver) TextArea(_ context.Context, _ tui.TextAreaConfig) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if len(d.textareas) == 0 {
		return "", errors.New("scripted driver: textarea script exhausted")
	}
	next := d.textareas[0]
	d.textareas = d.textareas[1:]
	return next, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func surveySchema() schema.Schema {
	return schema.Schema{
		ID:    "survey",
		Title: "Quick Survey",
		Tabs: []schema.Tab{
			{
				ID:    "tab-1",
				Title: "Survey",
				Sections: []schema.Section{
					{
						ID:    "sec-1",
						Title: "About You",
						Fields: []schema.Field{
							{
								ID: "fld-name", Type: schema.FieldTypeText,
								Label: "Full Name", Name: "fullName",
								Rules: []schema.ValidationRule{
									{Kind: schema.RuleRequired, Message: "name is required"},
								},
							},
							{
								ID: "fld-age", Type: schema.FieldTypeNumber,
								Label: "Age", Name: "age",
							},
							{
								ID: "fld-topic", Type: schema.FieldTypeSelect,
								Label: "Topic", Name: "topic",
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

func renderJSON(t *testing.T, driver *scriptedDriver, formSchema schema.Schema, opts render.RenderOptions) map[string]any {
	t.Helper()

	renderer, err := tui.New(tui.WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(context.Background(), formSchema, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var values map[string]any
	if err := json.Unmarshal(output, &values); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	return values
}

func TestRenderer_FillCollectsValues(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Ada Lovelace", "36"},
		selects: []int{1},
	}

	values := renderJSON(t, driver, surveySchema(), render.RenderOptions{})

	want := map[string]any{
		"fullName": "Ada Lovelace",
		"age":      float64(36),
		"topic":    "support",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("collected values mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_RepromptsOnRuleFailure(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"", "Grace Hopper", "52"},
		selects: []int{0},
	}

	values := renderJSON(t, driver, surveySchema(), render.RenderOptions{})

	if got := values["fullName"]; got != "Grace Hopper" {
		t.Fatalf("fullName = %v, want Grace Hopper", got)
	}

	var sawInvalid bool
	for _, msg := range driver.infos {
		if strings.Contains(msg, "Invalid fullName: name is required") {
			sawInvalid = true
		}
	}
	if !sawInvalid {
		t.Fatalf("expected invalid message, got infos %v", driver.infos)
	}
}

func TestRenderer_OptionalEmptyInputSkipsValue(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Ada", ""},
		selects: []int{0},
	}

	values := renderJSON(t, driver, surveySchema(), render.RenderOptions{})

	if _, ok := values["age"]; ok {
		t.Fatalf("age should be absent, got %v", values["age"])
	}
}

func TestRenderer_MultiSelectStoresOptionValues(t *testing.T) {
	formSchema := schema.Schema{
		ID: "tags-form",
		Tabs: []schema.Tab{
			{ID: "tab-1", Sections: []schema.Section{
				{ID: "sec-1", Fields: []schema.Field{
					{
						ID: "fld-tags", Type: schema.FieldTypeCheckbox,
						Label: "Tags", Name: "tags",
						Options: []schema.Option{
							{Label: "Go", Value: "go"},
							{Label: "Rust", Value: "rust"},
							{Label: "Zig", Value: "zig"},
						},
					},
				}},
			}},
		},
	}
	driver := &scriptedDriver{multis: [][]int{{0, 2}}}

	values := renderJSON(t, driver, formSchema, render.RenderOptions{})

	want := []any{"go", "zig"}
	if diff := cmp.Diff(want, values["tags"]); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_PrefilledValuesBecomePromptDefaults(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Ada", "36"},
		selects: []int{0},
	}

	renderJSON(t, driver, surveySchema(), render.RenderOptions{
		Values: schema.Values{"fullName": "Ada", "topic": "support"},
	})

	if len(driver.inputCfgs) == 0 || driver.inputCfgs[0].Default != "Ada" {
		t.Fatalf("input defaults = %+v", driver.inputCfgs)
	}
	if len(driver.selectCfgs) == 0 || driver.selectCfgs[0].DefaultIndex != 1 {
		t.Fatalf("select default index = %+v", driver.selectCfgs)
	}
}

func TestRenderer_AbortPropagates(t *testing.T) {
	driver := &scriptedDriver{err: tui.ErrAborted}

	renderer, err := tui.New(tui.WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := renderer.Render(context.Background(), surveySchema(), render.RenderOptions{}); !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("render error = %v, want ErrAborted", err)
	}
}

func TestRenderer_OutputFormats(t *testing.T) {
	formSchema := surveySchema()

	driver := &scriptedDriver{
		inputs:  []string{"Ada", ""},
		selects: []int{0},
	}
	renderer, err := tui.New(tui.WithPromptDriver(driver), tui.WithOutputFormat(tui.OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if got := renderer.ContentType(); got != "text/plain" {
		t.Fatalf("content type = %q", got)
	}
	output, err := renderer.Render(context.Background(), formSchema, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), "fullName=Ada\n") {
		t.Fatalf("pretty output = %q", output)
	}

	driver = &scriptedDriver{
		inputs:  []string{"Ada", ""},
		selects: []int{0},
	}
	renderer, err = tui.New(tui.WithPromptDriver(driver), tui.WithOutputFormat(tui.OutputFormatFormURLEncoded))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if got := renderer.ContentType(); got != "application/x-www-form-urlencoded" {
		t.Fatalf("content type = %q", got)
	}
	output, err = renderer.Render(context.Background(), formSchema, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), "fullName=Ada") {
		t.Fatalf("form output = %q", output)
	}
}
