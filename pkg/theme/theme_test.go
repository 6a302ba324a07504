package theme_test

import (
	"testing"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/theme"
)

func acmeManifest() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":   "#123456",
			"surface": "#ffffff",
		},
		Templates: map[string]string{
			"forms.input": "themes/acme/input.tmpl",
		},
		Assets: gotheme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]gotheme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Assets: gotheme.Assets{
					Files: map[string]string{
						"stylesheet": "theme.dark.css",
					},
				},
			},
		},
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := theme.NewRegistry()
	if err := registry.Register(acmeManifest()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(acmeManifest()); err == nil {
		t.Fatal("duplicate registration must fail")
	}
}

func TestResolveBaseManifest(t *testing.T) {
	registry := theme.NewRegistry()
	registry.MustRegister(acmeManifest())

	cfg, err := theme.Resolve(registry, "acme", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Theme != "acme" || cfg.Variant != "" {
		t.Fatalf("selection = %q/%q", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens["brand"] != "#123456" {
		t.Fatalf("tokens = %+v", cfg.Tokens)
	}
	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("css vars = %+v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("asset url = %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset = %q", got)
	}
}

func TestResolveVariantOverridesBase(t *testing.T) {
	registry := theme.NewRegistry()
	registry.MustRegister(acmeManifest())

	cfg, err := theme.Resolve(registry, "acme", "dark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token not applied: %+v", cfg.Tokens)
	}
	if cfg.Tokens["surface"] != "#ffffff" {
		t.Fatalf("base token lost: %+v", cfg.Tokens)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("variant asset = %q", got)
	}
}

func TestResolveUnknownThemeOrVariant(t *testing.T) {
	registry := theme.NewRegistry()
	registry.MustRegister(acmeManifest())

	if _, err := theme.Resolve(registry, "nope", ""); err == nil {
		t.Fatal("unknown theme must fail")
	}
	if _, err := theme.Resolve(registry, "acme", "sepia"); err == nil {
		t.Fatal("unknown variant must fail")
	}
}

func TestSessionGuards(t *testing.T) {
	registry := theme.NewRegistry()
	registry.MustRegister(acmeManifest())
	cfg, err := theme.Resolve(registry, "acme", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	session := theme.NewSession(cfg)
	if session.Active() != cfg {
		t.Fatal("active theme mismatch")
	}

	session.Close()
	defer func() {
		if recover() == nil {
			t.Fatal("Active after Close must panic")
		}
	}()
	session.Active()
}
