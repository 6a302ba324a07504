package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

type stubRenderer struct {
	name string
}

func (r stubRenderer) Name() string        { return r.name }
func (r stubRenderer) ContentType() string { return "text/plain" }
func (r stubRenderer) Render(context.Context, schema.Schema, render.RenderOptions) ([]byte, error) {
	return []byte(r.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "html"})
	registry.MustRegister(stubRenderer{name: "tui"})

	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatal("duplicate name must fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("empty name must fail")
	}

	renderer, err := registry.Get("tui")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "tui" {
		t.Fatalf("renderer = %q", renderer.Name())
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("unknown renderer must fail")
	}

	if diff := cmp.Diff([]string{"html", "tui"}, registry.List()); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}
	if !registry.Has("html") || registry.Has("missing") {
		t.Fatal("Has mismatch")
	}
}

func TestActiveTabOrFirst(t *testing.T) {
	formSchema := schema.Schema{
		ID: "f",
		Tabs: []schema.Tab{
			{ID: "tab-1", Title: "First"},
			{ID: "tab-2", Title: "Second"},
		},
	}

	tab, ok := render.RenderOptions{}.ActiveTabOrFirst(formSchema)
	if !ok || tab.ID != "tab-1" {
		t.Fatalf("default tab = %+v, %v", tab, ok)
	}

	tab, ok = render.RenderOptions{ActiveTab: "tab-2"}.ActiveTabOrFirst(formSchema)
	if !ok || tab.ID != "tab-2" {
		t.Fatalf("named tab = %+v, %v", tab, ok)
	}

	tab, ok = render.RenderOptions{ActiveTab: "nope"}.ActiveTabOrFirst(formSchema)
	if !ok || tab.ID != "tab-1" {
		t.Fatalf("unknown tab must fall back to first, got %+v, %v", tab, ok)
	}

	if _, ok := (render.RenderOptions{}).ActiveTabOrFirst(schema.Schema{}); ok {
		t.Fatal("tabless schema has no active tab")
	}
}
