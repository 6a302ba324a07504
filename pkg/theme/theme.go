// Package theme resolves go-theme manifests into the flat configuration
// renderers consume: merged tokens, derived CSS variables, template partials,
// and asset URLs. A schema's theme reference is just a name; hosts register
// manifests and select by name plus optional variant.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// Selector picks a theme selection by name and variant. Satisfied by
// go-theme providers and by the Registry in this package.
type Selector = gotheme.ThemeSelector

// Config is the resolved theme handed to renderers. Variant values are
// already merged over the base manifest.
type Config struct {
	Theme    string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	Partials map[string]string
	AssetURL func(name string) string
}

// Registry stores manifests by name and implements Selector over them.
type Registry struct {
	mu        sync.RWMutex
	manifests map[string]*gotheme.Manifest
}

// NewRegistry creates an empty manifest registry.
func NewRegistry() *Registry {
	return &Registry{manifests: make(map[string]*gotheme.Manifest)}
}

// Register adds a manifest by its Name. Duplicate names return an error.
func (r *Registry) Register(manifest *gotheme.Manifest) error {
	if manifest == nil || manifest.Name == "" {
		return fmt.Errorf("theme: manifest with a name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.manifests[manifest.Name]; exists {
		return fmt.Errorf("theme: manifest %q already registered", manifest.Name)
	}
	r.manifests[manifest.Name] = manifest
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(manifest *gotheme.Manifest) {
	if err := r.Register(manifest); err != nil {
		panic(err)
	}
}

// List returns the sorted registered theme names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.manifests))
	for name := range r.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a registered manifest by name. An unknown name or an
// unknown variant is an error; an empty variant selects the base manifest.
func (r *Registry) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	r.mu.RLock()
	manifest, ok := r.manifests[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("theme: %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme: %q has no variant %q", name, variant)
		}
	}

	return &gotheme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Resolve selects a theme and flattens it into a renderer-facing Config:
// variant tokens/templates/assets override the base manifest, tokens become
// --name CSS variables, and AssetURL joins the asset prefix with the
// requested file.
func Resolve(selector Selector, name, variant string) (*Config, error) {
	if selector == nil {
		return nil, fmt.Errorf("theme: selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("theme: selection for %q has no manifest", name)
	}

	manifest := selection.Manifest
	cfg := &Config{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   mergeStringMaps(manifest.Tokens, nil),
		Partials: mergeStringMaps(manifest.Templates, nil),
	}

	assets := manifest.Assets
	assetFiles := mergeStringMaps(assets.Files, nil)

	if selection.Variant != "" {
		if v, ok := manifest.Variants[selection.Variant]; ok {
			cfg.Tokens = mergeStringMaps(cfg.Tokens, v.Tokens)
			cfg.Partials = mergeStringMaps(cfg.Partials, v.Templates)
			assetFiles = mergeStringMaps(assetFiles, v.Assets.Files)
			if v.Assets.Prefix != "" {
				assets.Prefix = v.Assets.Prefix
			}
		}
	}

	cfg.CSSVars = make(map[string]string, len(cfg.Tokens))
	for token, value := range cfg.Tokens {
		cfg.CSSVars["--"+token] = value
	}

	prefix := strings.TrimRight(assets.Prefix, "/")
	cfg.AssetURL = func(name string) string {
		file, ok := assetFiles[name]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}

	return cfg, nil
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
