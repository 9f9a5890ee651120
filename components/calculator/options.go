package calculator

import (
	"net/http"

	calc "github.com/goliatone/go-calcform/pkg/calculator"
	"github.com/goliatone/go-calcform/pkg/openapi"
	"github.com/goliatone/go-calcform/pkg/renderers/page"
)

const (
	defaultPagePath     = "/"
	defaultSpecPath     = "/openapi.json"
	defaultRuntimePath  = "/runtime/"
	defaultMaxBodyBytes = 4 << 10
)

// GuardFunc rejects a request by returning an error. Errors implementing
// HTTPError choose the response status.
type GuardFunc func(r *http.Request) error

// Options configures the component.
type Options struct {
	PagePath string
	// APIPath defaults to the path the OpenAPI document declares for the
	// multiply operation.
	APIPath      string
	SpecPath     string
	RuntimePath  string
	MaxBodyBytes int64

	Mode     calc.Mode
	Messages calc.Messages
	Logger   calc.Logger
	Guard    GuardFunc

	// Renderer and Spec are built from defaults when nil. PageOptions apply
	// to the default renderer only.
	Renderer    *page.Renderer
	PageOptions []page.Option
	Spec        *openapi.Document
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		PagePath:     defaultPagePath,
		SpecPath:     defaultSpecPath,
		RuntimePath:  defaultRuntimePath,
		MaxBodyBytes: defaultMaxBodyBytes,
		Mode:         calc.ModeLenient,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.PagePath == "" {
		opts.PagePath = defaultPagePath
	}
	if opts.SpecPath == "" {
		opts.SpecPath = defaultSpecPath
	}
	if opts.RuntimePath == "" {
		opts.RuntimePath = defaultRuntimePath
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.Mode == "" {
		opts.Mode = calc.ModeLenient
	}
	return opts
}

func WithPagePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PagePath = path
	}
}

func WithAPIPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.APIPath = path
	}
}

func WithSpecPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SpecPath = path
	}
}

func WithRuntimePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RuntimePath = path
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithMode(mode calc.Mode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Mode = mode
	}
}

func WithMessages(messages calc.Messages) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Messages = messages
	}
}

func WithLogger(logger calc.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithRenderer(renderer *page.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithSpec(spec *openapi.Document) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Spec = spec
	}
}

func WithPageOptions(options ...page.Option) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PageOptions = append(o.PageOptions, options...)
	}
}
