package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultResult is the value the result region holds whenever no product is
// available.
const DefaultResult = "0"

// Display is the state of the two output regions after a calculation.
type Display struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// Failed reports whether the error region is populated.
func (d Display) Failed() bool {
	return d.Error != ""
}

// Logger is the subset of a structured logger the calculator needs.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Error(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Error(any, ...any) {}

// Options configures a Calculator.
type Options struct {
	Mode     Mode
	Messages Messages
	Logger   Logger
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// WithMode selects lenient or strict parsing.
func WithMode(mode Mode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Mode = mode
	}
}

// WithMessages overrides the user-facing error messages.
func WithMessages(messages Messages) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Messages = messages
	}
}

// WithLogger routes unexpected failures to logger.
func WithLogger(logger Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// Calculator multiplies two field values and produces display state. It
// holds no per-call state and is safe for concurrent use.
type Calculator struct {
	parser   Parser
	messages Messages
	logger   Logger

	// multiply is swapped in tests to exercise the failure boundary.
	multiply func(a, b float64) (string, error)
}

// New constructs a Calculator with defaults plus any overrides.
func New(fns ...OptionFn) *Calculator {
	opts := Options{Mode: ModeLenient}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Mode == "" {
		opts.Mode = ModeLenient
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	return &Calculator{
		parser:   Parser{Mode: opts.Mode},
		messages: opts.Messages.withDefaults(),
		logger:   opts.Logger,
		multiply: multiplyAndFormat,
	}
}

// Messages returns the messages the calculator writes to the error region.
func (c *Calculator) Messages() Messages {
	return c.messages
}

// Calculate trims and validates both fields, multiplies them and returns the
// display state. It never panics and never returns an error; failures are
// reported through Display.Error.
func (c *Calculator) Calculate(num1, num2 string) (display Display) {
	display = Display{Result: DefaultResult}

	defer func() {
		if recovered := recover(); recovered != nil {
			c.logger.Error("calculation panicked", "panic", recovered, "num1", num1, "num2", num2)
			display = Display{Result: DefaultResult, Error: c.messages.Unexpected}
		}
	}()

	result, err := c.Multiply(num1, num2)
	switch {
	case err == nil:
		display.Result = result
	case errors.Is(err, ErrInvalidInput):
		display.Error = c.messages.InvalidInput
	default:
		c.logger.Error("calculation failed", "err", err, "num1", num1, "num2", num2)
		display.Error = c.messages.Unexpected
	}
	return display
}

// Multiply returns the formatted product of two field values. Errors wrap
// ErrInvalidInput or ErrUnexpected.
func (c *Calculator) Multiply(num1, num2 string) (string, error) {
	a, b := strings.TrimSpace(num1), strings.TrimSpace(num2)
	if !c.parser.Valid(a) || !c.parser.Valid(b) {
		return "", ErrInvalidInput
	}

	x, _ := c.parser.Parse(a)
	y, _ := c.parser.Parse(b)
	return c.multiply(x, y)
}

func multiplyAndFormat(a, b float64) (string, error) {
	out, err := Format(a * b)
	if err != nil {
		return "", fmt.Errorf("multiply %v by %v: %w", a, b, err)
	}
	return out, nil
}
