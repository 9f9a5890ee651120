// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"bytes"
	"io"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// Diff returns a cmp diff string, empty when want and got are equal.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}

// FormBody encodes the two calculator fields plus optional key/value pairs
// as an application/x-www-form-urlencoded body.
func FormBody(num1, num2 string, extra ...string) string {
	values := url.Values{}
	values.Set("num1", num1)
	values.Set("num2", num2)
	for i := 0; i+1 < len(extra); i += 2 {
		values.Set(extra[i], extra[i+1])
	}
	return values.Encode()
}
