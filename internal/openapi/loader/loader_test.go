package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formbuilder/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-formbuilder/pkg/openapi"
)

func TestLoader_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.json")
	if err := os.WriteFile(path, []byte(`{"openapi":"3.0.0"}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(pkgopenapi.NewLoaderOptions())
	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != `{"openapi":"3.0.0"}` {
		t.Fatalf("raw = %q", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("location = %q", doc.Location())
	}
}

func TestLoader_LoadFromFS(t *testing.T) {
	files := fstest.MapFS{
		"specs/api.yaml": {Data: []byte("openapi: 3.0.0\n")},
	}

	l := loader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(files)))
	doc, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("specs/api.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != "openapi: 3.0.0\n" {
		t.Fatalf("raw = %q", doc.Raw())
	}
}

func TestLoader_FSWithoutFilesystemFails(t *testing.T) {
	l := loader.New(pkgopenapi.NewLoaderOptions())
	if _, err := l.Load(context.Background(), pkgopenapi.SourceFromFS("api.yaml")); err == nil {
		t.Fatalf("expected error when filesystem is not configured")
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	l := loader.New(pkgopenapi.NewLoaderOptions())
	if _, err := l.Load(context.Background(), pkgopenapi.SourceFromURL("https://example.com/openapi.json")); err == nil {
		t.Fatalf("expected error when http is disabled")
	}
}
