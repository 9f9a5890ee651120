package page

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme variants shipped with the default manifest.
const (
	DefaultThemeName = "calcform"
	VariantLight     = "light"
	VariantDark      = "dark"
)

// DefaultManifest returns the built-in theme: light tokens at the base and a
// dark variant overriding them.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"surface":     "#ffffff",
			"text":        "#111827",
			"border":      "#d1d5db",
			"accent":      "#2563eb",
			"accent-text": "#ffffff",
			"error":       "#b91c1c",
		},
		Variants: map[string]theme.Variant{
			VariantDark: {
				Tokens: map[string]string{
					"surface": "#111827",
					"text":    "#f9fafb",
					"border":  "#374151",
					"accent":  "#60a5fa",
					"error":   "#f87171",
				},
			},
		},
	}
}

// Theme is the resolved theme data handed to the template.
type Theme struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant"`
	Tokens  map[string]string `json:"tokens"`
	CSSVars string            `json:"css_vars"`
}

// ResolveTheme registers manifest with a go-theme registry and selects the
// requested variant through a theme.Selector. An empty variant selects the
// base (light) tokens; an unknown variant is an error.
func ResolveTheme(manifest *theme.Manifest, variant string) (Theme, error) {
	if manifest == nil {
		manifest = DefaultManifest()
	}
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return Theme{}, fmt.Errorf("page: register theme %q: %w", manifest.Name, err)
	}

	variant = strings.TrimSpace(variant)
	if variant != "" && variant != VariantLight {
		if _, ok := manifest.Variants[variant]; !ok {
			return Theme{}, fmt.Errorf("page: theme %q has no variant %q", manifest.Name, variant)
		}
	}

	selector := theme.Selector{
		Registry:       registry,
		DefaultTheme:   manifest.Name,
		DefaultVariant: VariantLight,
	}
	selection, err := selector.Select(manifest.Name, variant)
	if err != nil {
		return Theme{}, fmt.Errorf("page: select theme %q: %w", manifest.Name, err)
	}

	cfg := selection.RendererTheme(nil)
	return Theme{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  cfg.Tokens,
		CSSVars: cssVarsInline(cfg.CSSVars),
	}, nil
}

// cssVarsInline renders CSS variables as declarations for a :root block.
func cssVarsInline(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	return b.String()
}
