// Package tui runs the calculator as an interactive terminal prompt. Each
// pair of answers is one trigger: the calculator runs and either the result
// or the error message is printed.
package tui

import (
	"context"
	"errors"

	"github.com/goliatone/go-calcform/pkg/calculator"
)

// Session prompts for operands until the user stops.
type Session struct {
	driver PromptDriver
	calc   *calculator.Calculator
	labels Labels
	theme  Theme
	repeat bool
}

// New constructs a session with defaults (survey driver, default
// calculator, single round).
func New(options ...Option) (*Session, error) {
	s := &Session{
		labels: DefaultLabels(),
		theme:  Theme{ResultPrefix: "= "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.driver == nil {
		driver, err := newSurveyDriver()
		if err != nil {
			return nil, err
		}
		s.driver = driver
	}
	if s.calc == nil {
		s.calc = calculator.New()
	}
	return s, nil
}

// Run prompts for two numbers, prints the outcome and repeats while the
// user confirms. It returns the display of the last round. ErrAborted is
// returned when the user interrupts a prompt.
func (s *Session) Run(ctx context.Context) (calculator.Display, error) {
	if ctx == nil {
		return calculator.Display{}, errors.New("tui: context is required")
	}

	var last calculator.Display
	for {
		display, err := s.round(ctx)
		if err != nil {
			return last, err
		}
		last = display

		if !s.repeat {
			return last, nil
		}
		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: s.labels.Again, Default: true})
		if err != nil {
			return last, err
		}
		if !again {
			return last, nil
		}
	}
}

func (s *Session) round(ctx context.Context) (calculator.Display, error) {
	num1, err := s.driver.Input(ctx, InputConfig{Message: s.labels.First})
	if err != nil {
		return calculator.Display{}, err
	}
	num2, err := s.driver.Input(ctx, InputConfig{Message: s.labels.Second})
	if err != nil {
		return calculator.Display{}, err
	}

	display := s.calc.Calculate(num1, num2)
	if display.Failed() {
		return display, s.driver.Error(ctx, s.theme.ErrorPrefix+display.Error)
	}
	return display, s.driver.Info(ctx, s.theme.ResultPrefix+display.Result)
}
