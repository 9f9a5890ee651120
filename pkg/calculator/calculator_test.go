package calculator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingLogger struct {
	messages []string
	keyvals  [][]any
}

func (l *recordingLogger) Error(msg any, keyvals ...any) {
	l.messages = append(l.messages, fmt.Sprint(msg))
	l.keyvals = append(l.keyvals, keyvals)
}

func TestCalculate_ValidInputs(t *testing.T) {
	calc := New()

	cases := []struct {
		name string
		a, b string
		want string
	}{
		{name: "whole product drops decimals", a: "2", b: "3", want: "6"},
		{name: "fractional product keeps two decimals", a: "2", b: "3.25", want: "6.50"},
		{name: "negative operand", a: "-2.5", b: "2", want: "-5"},
		{name: "binary noise is rounded away", a: "0.1", b: "0.2", want: "0.02"},
		{name: "leading prefix is accepted", a: "12abc", b: "2", want: "24"},
		{name: "exponent literal", a: "1e3", b: "1.5", want: "1500"},
		{name: "leading dot", a: ".5", b: "3", want: "1.50"},
		{name: "zero", a: "0", b: "42", want: "0"},
		{name: "tiny negative rounds to zero", a: "-0.001", b: "1", want: "0"},
		{name: "large products use exponent form", a: "1e20", b: "100", want: "1e+22"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Calculate(tc.a, tc.b)
			want := Display{Result: tc.want}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("display mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_InvalidInputs(t *testing.T) {
	calc := New()
	want := Display{Result: DefaultResult, Error: "Please enter valid numbers in both fields."}

	for _, raw := range []string{"abc", "", "   ", "NaN", "Infinity", "-Infinity", "1e400", ".", "+"} {
		t.Run(fmt.Sprintf("first=%q", raw), func(t *testing.T) {
			if diff := cmp.Diff(want, calc.Calculate(raw, "2")); diff != "" {
				t.Fatalf("display mismatch (-want +got):\n%s", diff)
			}
		})
		t.Run(fmt.Sprintf("second=%q", raw), func(t *testing.T) {
			if diff := cmp.Diff(want, calc.Calculate("2", raw)); diff != "" {
				t.Fatalf("display mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_WhitespaceInsensitive(t *testing.T) {
	calc := New()

	padded := calc.Calculate("  4  ", "2.5")
	plain := calc.Calculate("4", "2.5")
	if diff := cmp.Diff(plain, padded); diff != "" {
		t.Fatalf("padded input changed the display (-plain +padded):\n%s", diff)
	}
	if padded.Result != "10" {
		t.Fatalf("expected 10, got %q", padded.Result)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	calc := New()

	for _, pair := range [][2]string{{"7", "6"}, {"x", "1"}} {
		first := calc.Calculate(pair[0], pair[1])
		second := calc.Calculate(pair[0], pair[1])
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("repeated calculation differs for %v (-first +second):\n%s", pair, diff)
		}
	}
}

func TestCalculate_OverflowIsUnexpected(t *testing.T) {
	logger := &recordingLogger{}
	calc := New(WithLogger(logger))

	got := calc.Calculate("1e200", "1e200")
	want := Display{Result: DefaultResult, Error: "An unexpected error occurred. Please try again."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("display mismatch (-want +got):\n%s", diff)
	}
	if len(logger.messages) != 1 {
		t.Fatalf("expected one logged failure, got %d", len(logger.messages))
	}
}

func TestCalculate_RecoversFromPanics(t *testing.T) {
	logger := &recordingLogger{}
	calc := New(WithLogger(logger))
	calc.multiply = func(float64, float64) (string, error) {
		panic("boom")
	}

	got := calc.Calculate("2", "3")
	if got.Error != calc.Messages().Unexpected || got.Result != DefaultResult {
		t.Fatalf("unexpected display after panic: %#v", got)
	}
	if len(logger.messages) != 1 || logger.messages[0] != "calculation panicked" {
		t.Fatalf("expected panic to be logged, got %v", logger.messages)
	}
}

func TestCalculate_ErrorFromMultiplyIsLogged(t *testing.T) {
	logger := &recordingLogger{}
	cause := errors.New("disk on fire")
	calc := New(WithLogger(logger))
	calc.multiply = func(float64, float64) (string, error) {
		return "", cause
	}

	got := calc.Calculate("2", "3")
	if got.Error != calc.Messages().Unexpected {
		t.Fatalf("expected unexpected message, got %#v", got)
	}
	if len(logger.keyvals) != 1 {
		t.Fatalf("expected one log entry, got %d", len(logger.keyvals))
	}
	kv := logger.keyvals[0]
	if len(kv) < 2 || kv[0] != "err" || kv[1] != cause {
		t.Fatalf("expected cause in log keyvals, got %v", kv)
	}
}

func TestCalculate_CustomMessages(t *testing.T) {
	calc := New(WithMessages(Messages{InvalidInput: "nope"}))

	if got := calc.Calculate("a", "b").Error; got != "nope" {
		t.Fatalf("expected custom message, got %q", got)
	}
	if calc.Messages().Unexpected != DefaultMessages().Unexpected {
		t.Fatalf("expected unexpected message to fall back to default")
	}
}

func TestMultiply_ErrorKinds(t *testing.T) {
	calc := New()

	if _, err := calc.Multiply("a", "1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := calc.Multiply("1e300", "1e300"); !errors.Is(err, ErrUnexpected) {
		t.Fatalf("expected ErrUnexpected, got %v", err)
	}
	out, err := calc.Multiply(" 3 ", "3")
	if err != nil || out != "9" {
		t.Fatalf("expected 9, got %q (%v)", out, err)
	}
}

func TestCalculate_StrictMode(t *testing.T) {
	calc := New(WithMode(ModeStrict))

	if got := calc.Calculate("12abc", "2"); !got.Failed() {
		t.Fatalf("strict mode should reject trailing garbage, got %#v", got)
	}
	if got := calc.Calculate("12", "2"); got.Result != "24" {
		t.Fatalf("strict mode should accept plain numbers, got %#v", got)
	}
}
