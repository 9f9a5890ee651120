package calculator

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goliatone/go-calcform/internal/logging"
	calc "github.com/goliatone/go-calcform/pkg/calculator"
	"github.com/goliatone/go-calcform/pkg/openapi"
	"github.com/goliatone/go-calcform/pkg/renderers/page"
)

// Component wraps the calculator handlers, their configuration and routing
// helpers.
type Component struct {
	opts Options
	calc *calc.Calculator
}

// New constructs a component with default options plus any overrides. The
// OpenAPI document is loaded here so a broken embed fails at startup.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)
	if opts.Logger == nil {
		opts.Logger = logging.L
	}
	if opts.Spec == nil {
		spec, err := openapi.Load(context.Background())
		if err != nil {
			return nil, fmt.Errorf("calculator: %w", err)
		}
		opts.Spec = spec
	}
	if opts.APIPath == "" {
		route, err := opts.Spec.Route(openapi.OperationMultiply)
		if err != nil {
			return nil, fmt.Errorf("calculator: %w", err)
		}
		opts.APIPath = route.Path
	}

	return &Component{
		opts: opts,
		calc: calc.New(
			calc.WithMode(opts.Mode),
			calc.WithMessages(opts.Messages),
			calc.WithLogger(opts.Logger),
		),
	}, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Calculator returns the calculator shared by every handler.
func (c *Component) Calculator() *calc.Calculator {
	return c.calc
}

// Handler returns the component mounted at the root of its own mux.
func (c *Component) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if _, err := c.RegisterRoutes(mux, "/"); err != nil {
		return nil, err
	}
	return mux, nil
}

func (c *Component) handlers(paths Paths) (*handlers, error) {
	renderer := c.opts.Renderer
	if renderer == nil {
		var err error
		pageOpts := []page.Option{page.WithMessages(c.calc.Messages())}
		pageOpts = append(pageOpts, c.opts.PageOptions...)
		pageOpts = append(pageOpts, page.WithPaths(paths.Page, paths.API, paths.Runtime))
		renderer, err = page.New(pageOpts...)
		if err != nil {
			return nil, fmt.Errorf("calculator: %w", err)
		}
	}
	return &handlers{
		calc:     c.calc,
		renderer: renderer,
		logger:   c.opts.Logger,
		guard:    c.opts.Guard,
		pagePath: paths.Page,
		maxBody:  c.opts.MaxBodyBytes,
	}, nil
}
