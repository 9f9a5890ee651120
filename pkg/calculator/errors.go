package calculator

import "errors"

var (
	// ErrInvalidInput signals that one or both operands are not finite numbers.
	ErrInvalidInput = errors.New("calculator: invalid input")
	// ErrUnexpected wraps failures raised while multiplying or formatting.
	ErrUnexpected = errors.New("calculator: unexpected failure")
)

// Messages holds the user-facing text written to the error region.
type Messages struct {
	InvalidInput string `json:"invalid_input" yaml:"invalid_input"`
	Unexpected   string `json:"unexpected" yaml:"unexpected"`
}

// DefaultMessages returns the English messages shown when no catalog is
// configured.
func DefaultMessages() Messages {
	return Messages{
		InvalidInput: "Please enter valid numbers in both fields.",
		Unexpected:   "An unexpected error occurred. Please try again.",
	}
}

func (m Messages) withDefaults() Messages {
	defaults := DefaultMessages()
	if m.InvalidInput == "" {
		m.InvalidInput = defaults.InvalidInput
	}
	if m.Unexpected == "" {
		m.Unexpected = defaults.Unexpected
	}
	return m
}
