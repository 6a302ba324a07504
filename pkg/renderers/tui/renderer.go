// Package tui walks a form schema as an interactive terminal session,
// prompting for every input field and validating answers as they arrive.
// Render returns the collected values serialized in the configured format.
package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Renderer implements render.Renderer for terminal-driven fill sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = newSurveyDriver()
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts through every input field and serializes the answers.
// Options pre-populate defaults; ActiveTab narrows the session to one tab.
func (r *Renderer) Render(ctx context.Context, formSchema schema.Schema, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	values := formSchema.DefaultValues()
	for name, value := range opts.Values {
		values[name] = value
	}

	tabs := formSchema.Tabs
	if opts.ActiveTab != "" {
		if tab, ok := formSchema.FindTab(opts.ActiveTab); ok {
			tabs = []schema.Tab{tab}
		}
	}

	if formSchema.Title != "" {
		if err := r.driver.Info(ctx, formSchema.Title); err != nil {
			return nil, err
		}
	}

	for _, tab := range tabs {
		if len(tabs) > 1 && tab.Title != "" {
			if err := r.driver.Info(ctx, "== "+tab.Title+" =="); err != nil {
				return nil, err
			}
		}
		for _, section := range tab.Sections {
			if section.Title != "" {
				if err := r.driver.Info(ctx, "-- "+section.Title+" --"); err != nil {
					return nil, err
				}
			}
			for _, field := range section.Fields {
				if err := r.promptField(ctx, field, values); err != nil {
					return nil, err
				}
			}
		}
	}

	return r.serialize(values)
}

func (r *Renderer) promptField(ctx context.Context, field schema.Field, values schema.Values) error {
	switch field.Type {
	case schema.FieldTypeSection, schema.FieldTypeHeading:
		if field.Label == "" {
			return nil
		}
		return r.driver.Info(ctx, field.Label)
	case schema.FieldTypeDivider:
		return nil
	case schema.FieldTypeTextarea:
		return r.promptTextArea(ctx, field, values)
	case schema.FieldTypeNumber, schema.FieldTypeRating, schema.FieldTypeSlider:
		return r.promptNumber(ctx, field, values)
	case schema.FieldTypeSelect, schema.FieldTypeRadio:
		return r.promptSelect(ctx, field, values)
	case schema.FieldTypeMultiSelect, schema.FieldTypeCheckbox:
		return r.promptMultiSelect(ctx, field, values)
	default:
		return r.promptText(ctx, field, values)
	}
}

func (r *Renderer) promptText(ctx context.Context, field schema.Field, values schema.Values) error {
	defaultVal, _ := values[field.Name].(string)

	for {
		response, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(field),
			Default: defaultVal,
			Help:    field.Description,
		})
		if err != nil {
			return err
		}

		if strings.TrimSpace(response) == "" && !hasRequiredRule(field) {
			return nil
		}

		if msg := validation.ValidateField(field, response); msg != "" {
			if err := r.reportInvalid(ctx, field, msg); err != nil {
				return err
			}
			continue
		}

		if response != "" {
			values[field.Name] = response
		}
		return nil
	}
}

func (r *Renderer) promptTextArea(ctx context.Context, field schema.Field, values schema.Values) error {
	defaultVal, _ := values[field.Name].(string)

	for {
		response, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: promptLabel(field),
			Default: defaultVal,
			Help:    field.Description,
		})
		if err != nil {
			return err
		}

		if strings.TrimSpace(response) == "" && !hasRequiredRule(field) {
			return nil
		}

		if msg := validation.ValidateField(field, response); msg != "" {
			if err := r.reportInvalid(ctx, field, msg); err != nil {
				return err
			}
			continue
		}

		if response != "" {
			values[field.Name] = response
		}
		return nil
	}
}

func (r *Renderer) promptNumber(ctx context.Context, field schema.Field, values schema.Values) error {
	defaultStr := ""
	if current, ok := values[field.Name]; ok {
		if n, ok := asFloat(current); ok {
			defaultStr = strconv.FormatFloat(n, 'f', -1, 64)
		}
	}

	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(field),
			Default: defaultStr,
			Help:    field.Description,
		})
		if err != nil {
			return err
		}

		if strings.TrimSpace(input) == "" {
			if msg := validation.ValidateField(field, nil); msg != "" {
				if err := r.reportInvalid(ctx, field, msg); err != nil {
					return err
				}
				continue
			}
			return nil
		}

		parsed, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			if err := r.reportInvalid(ctx, field, "not a number"); err != nil {
				return err
			}
			continue
		}

		if msg := validation.ValidateField(field, parsed); msg != "" {
			if err := r.reportInvalid(ctx, field, msg); err != nil {
				return err
			}
			continue
		}

		values[field.Name] = parsed
		return nil
	}
}

func (r *Renderer) promptSelect(ctx context.Context, field schema.Field, values schema.Values) error {
	labels := optionLabels(field.Options)
	defaultIdx := -1
	if current, ok := values[field.Name].(string); ok {
		defaultIdx = optionIndex(field.Options, current)
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      promptLabel(field),
			Options:      labels,
			DefaultIndex: defaultIdx,
			Help:         field.Description,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			if err := r.reportInvalid(ctx, field, "invalid selection"); err != nil {
				return err
			}
			continue
		}

		selected := field.Options[idx].Value
		if msg := validation.ValidateField(field, selected); msg != "" {
			if err := r.reportInvalid(ctx, field, msg); err != nil {
				return err
			}
			continue
		}

		values[field.Name] = selected
		return nil
	}
}

func (r *Renderer) promptMultiSelect(ctx context.Context, field schema.Field, values schema.Values) error {
	labels := optionLabels(field.Options)
	defaults := selectedIndices(field.Options, values[field.Name])

	for {
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  promptLabel(field),
			Options:  labels,
			Defaults: defaults,
			Help:     field.Description,
		})
		if err != nil {
			return err
		}

		selected := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(field.Options) {
				selected = append(selected, field.Options[idx].Value)
			}
		}

		if msg := validation.ValidateField(field, selected); msg != "" {
			if err := r.reportInvalid(ctx, field, msg); err != nil {
				return err
			}
			continue
		}

		values[field.Name] = selected
		return nil
	}
}

func (r *Renderer) reportInvalid(ctx context.Context, field schema.Field, msg string) error {
	return r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %s", field.Name, msg))
}

func (r *Renderer) serialize(values schema.Values) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func hasRequiredRule(field schema.Field) bool {
	for _, rule := range field.Rules {
		if rule.Kind == schema.RuleRequired {
			return true
		}
	}
	return false
}

func promptLabel(field schema.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func optionLabels(options []schema.Option) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		if opt.Label != "" {
			out[i] = opt.Label
		} else {
			out[i] = opt.Value
		}
	}
	return out
}

func optionIndex(options []schema.Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func selectedIndices(options []schema.Option, value any) []int {
	var current []string
	switch v := value.(type) {
	case []string:
		current = v
	case []any:
		for _, item := range v {
			current = append(current, fmt.Sprint(item))
		}
	}
	if len(current) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(current))
	for _, v := range current {
		seen[v] = struct{}{}
	}
	var out []int
	for i, opt := range options {
		if _, ok := seen[opt.Value]; ok {
			out = append(out, i)
		}
	}
	return out
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func encodeForm(values schema.Values) string {
	encoded := url.Values{}
	for name, value := range values {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				encoded.Add(name+"[]", item)
			}
		case []any:
			for _, item := range v {
				encoded.Add(name+"[]", fmt.Sprint(item))
			}
		default:
			encoded.Set(name, fmt.Sprint(v))
		}
	}
	return encoded.Encode()
}

func prettyPrint(values schema.Values) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%v\n", name, values[name])
	}
	return b.String()
}
