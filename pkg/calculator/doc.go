// Package calculator implements the validate, multiply and format pipeline
// behind the calculator form.
//
// Validation follows leading-numeric-prefix semantics by default: "12abc"
// parses as 12 and is accepted, while "abc", "", "NaN" and "Infinity" are
// rejected. ModeStrict requires the whole trimmed string to be numeric.
//
// Calculate never returns an error to its caller. Invalid input and
// unexpected failures are reported through the Display value, which always
// carries exactly one meaningful region.
package calculator
