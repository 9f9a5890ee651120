// Package page renders the calculator form as a standalone HTML document.
package page

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-calcform/pkg/calculator"
	"github.com/goliatone/go-calcform/pkg/i18n"
	"github.com/goliatone/go-calcform/pkg/render/template"
	"github.com/goliatone/go-calcform/pkg/render/template/gotemplate"
)

const pageTemplate = "page"

// View is the state of the page at render time.
type View struct {
	Num1    string
	Num2    string
	Display calculator.Display
}

// Renderer produces the HTML page.
type Renderer struct {
	engine      template.TemplateRenderer
	catalog     *i18n.Catalog
	messages    *calculator.Messages
	lang        string
	theme       Theme
	action      string
	apiPath     string
	runtimePath string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine replaces the default embedded-template engine.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithCatalog sets the label catalog and page language.
func WithCatalog(catalog *i18n.Catalog, lang string) Option {
	return func(r *Renderer) {
		r.catalog = catalog
		if lang != "" {
			r.lang = lang
		}
	}
}

// WithMessages sets the error messages the browser runtime falls back to.
// Defaults to the catalog messages.
func WithMessages(messages calculator.Messages) Option {
	return func(r *Renderer) {
		r.messages = &messages
	}
}

// WithTheme sets the resolved theme.
func WithTheme(t Theme) Option {
	return func(r *Renderer) {
		r.theme = t
	}
}

// WithPaths sets the form action, the JSON API endpoint advertised to the
// browser runtime, and the runtime script directory. An empty runtime path
// omits the script tag.
func WithPaths(action, apiPath, runtimePath string) Option {
	return func(r *Renderer) {
		r.action = action
		r.apiPath = apiPath
		r.runtimePath = runtimePath
	}
}

// New constructs a Renderer backed by the embedded template unless
// WithEngine is supplied.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{lang: "en", action: "/"}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	if r.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("page: template engine: %w", err)
		}
		r.engine = engine
	}
	if r.catalog == nil {
		catalog, err := i18n.New(r.lang)
		if err != nil {
			return nil, fmt.Errorf("page: catalog: %w", err)
		}
		r.catalog = catalog
	}
	if r.messages == nil {
		messages := r.catalog.Messages()
		r.messages = &messages
	}
	if r.theme.Name == "" {
		resolved, err := ResolveTheme(nil, "")
		if err != nil {
			return nil, err
		}
		r.theme = resolved
	}
	return r, nil
}

// ContentType reports the MIME type of rendered pages.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the page for view to every writer in out and returns it.
func (r *Renderer) Render(ctx context.Context, view View, out ...io.Writer) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := view.Display.Result
	if result == "" {
		result = calculator.DefaultResult
	}

	// Field values are echoed verbatim; the engine escapes them.
	data := map[string]any{
		"lang":          r.lang,
		"title":         r.catalog.T(i18n.MsgTitle),
		"labels":        sanitizeLabels(r.catalog.Labels()),
		"messages":      map[string]string{"invalid": r.messages.InvalidInput, "unexpected": r.messages.Unexpected},
		"theme":         r.theme,
		"action":        r.action,
		"api_path":      r.apiPath,
		"runtime_path":  r.runtimePath,
		"num1":          view.Num1,
		"num2":          view.Num2,
		"result":        result,
		"error_message": view.Display.Error,
	}

	rendered, err := r.engine.RenderTemplate(pageTemplate, data, out...)
	if err != nil {
		return nil, fmt.Errorf("page: render: %w", err)
	}
	return []byte(rendered), nil
}
