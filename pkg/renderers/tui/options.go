package tui

import "github.com/goliatone/go-calcform/pkg/calculator"

// Theme holds the prefixes applied to printed lines.
type Theme struct {
	ResultPrefix string
	ErrorPrefix  string
}

// Labels are the prompt messages.
type Labels struct {
	First  string
	Second string
	Again  string
}

// DefaultLabels returns the English prompt messages.
func DefaultLabels() Labels {
	return Labels{
		First:  "First number",
		Second: "Second number",
		Again:  "Multiply another pair?",
	}
}

// Option configures the TUI session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithCalculator overrides the calculator.
func WithCalculator(calc *calculator.Calculator) Option {
	return func(s *Session) {
		if calc != nil {
			s.calc = calc
		}
	}
}

// WithLabels overrides the prompt messages. Empty fields keep defaults.
func WithLabels(labels Labels) Option {
	return func(s *Session) {
		if labels.First != "" {
			s.labels.First = labels.First
		}
		if labels.Second != "" {
			s.labels.Second = labels.Second
		}
		if labels.Again != "" {
			s.labels.Again = labels.Again
		}
	}
}

// WithTheme applies optional line prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithRepeat asks whether to continue after each calculation.
func WithRepeat(repeat bool) Option {
	return func(s *Session) {
		s.repeat = repeat
	}
}
