package calculator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	calc "github.com/goliatone/go-calcform/pkg/calculator"
	"github.com/goliatone/go-calcform/pkg/renderers/page"
	"github.com/goliatone/go-calcform/pkg/testsupport"
)

type captureLogger struct {
	entries []string
}

func (l *captureLogger) Error(msg any, keyvals ...any) {
	l.entries = append(l.entries, fmt.Sprint(append([]any{msg}, keyvals...)...))
}

func newTestHandler(t *testing.T, fns ...OptionFn) http.Handler {
	t.Helper()

	fns = append([]OptionFn{WithLogger(&captureLogger{})}, fns...)
	component, err := New(fns...)
	if err != nil {
		t.Fatalf("new component: %v", err)
	}
	h, err := component.Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return h
}

func postForm(t *testing.T, h http.Handler, body string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	return rec.Body.String()
}

func postJSON(t *testing.T, h http.Handler, body string) (int, calc.Display) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/multiply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var display calc.Display
	if err := json.NewDecoder(rec.Body).Decode(&display); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec.Code, display
}

func TestPage_GetRendersDefaultState(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected HTML content-type, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<span class="result-value">0</span>`) {
		t.Fatalf("expected default result in page:\n%s", body)
	}
	if !strings.Contains(body, `data-api="/api/multiply"`) {
		t.Fatalf("expected API path advertised to runtime:\n%s", body)
	}
}

func TestPage_PostSuccess(t *testing.T) {
	h := newTestHandler(t)

	body := postForm(t, h, testsupport.FormBody("2", "3.25"))
	if !strings.Contains(body, `<span class="result-value">6.50</span>`) {
		t.Fatalf("expected product in page:\n%s", body)
	}
	if !strings.Contains(body, `<p id="error-message" role="alert"></p>`) {
		t.Fatalf("expected empty error region:\n%s", body)
	}
}

func TestPage_PostInvalid(t *testing.T) {
	h := newTestHandler(t)

	body := postForm(t, h, testsupport.FormBody("abc", "3"))
	if !strings.Contains(body, `<span class="result-value">0</span>`) {
		t.Fatalf("expected reset result:\n%s", body)
	}
	if !strings.Contains(body, "Please enter valid numbers in both fields.") {
		t.Fatalf("expected invalid input message:\n%s", body)
	}
	if !strings.Contains(body, `value="abc"`) {
		t.Fatalf("expected submitted value echoed:\n%s", body)
	}
}

var (
	echoedValue   = regexp.MustCompile(`id="(num[12])" name="num[12]" value="([^"]*)"`)
	renderedState = regexp.MustCompile(`<span class="result-value">[^<]*</span>|<p id="error-message" role="alert">[^<]*</p>`)
)

func echoedFields(t *testing.T, page string) (string, string) {
	t.Helper()

	fields := map[string]string{}
	for _, m := range echoedValue.FindAllStringSubmatch(page, -1) {
		fields[m[1]] = html.UnescapeString(m[2])
	}
	if len(fields) != 2 {
		t.Fatalf("expected both inputs echoed, got %v", fields)
	}
	return fields["num1"], fields["num2"]
}

func TestPage_ResubmittingEchoedValuesKeepsDisplay(t *testing.T) {
	h := newTestHandler(t)

	for _, tc := range []struct{ num1, num2 string }{
		{"<b>2</b>", "3"},
		{`"4"`, "2"},
		{" 2 ", "3.25"},
		{"12abc & more", "2"},
	} {
		first := postForm(t, h, testsupport.FormBody(tc.num1, tc.num2))
		num1, num2 := echoedFields(t, first)
		if num1 != tc.num1 || num2 != tc.num2 {
			t.Fatalf("echoed (%q, %q), submitted (%q, %q)", num1, num2, tc.num1, tc.num2)
		}

		second := postForm(t, h, testsupport.FormBody(num1, num2))
		want := renderedState.FindAllString(first, -1)
		got := renderedState.FindAllString(second, -1)
		if diff := testsupport.Diff(want, got); diff != "" {
			t.Fatalf("resubmitted %q x %q rendered a different display (-first +second):\n%s", tc.num1, tc.num2, diff)
		}
	}
}

func TestPage_MarkupInputIsNotStripped(t *testing.T) {
	h := newTestHandler(t)

	body := postForm(t, h, testsupport.FormBody("<b>2</b>", "3"))
	if !strings.Contains(body, `value="&lt;b&gt;2&lt;/b&gt;"`) {
		t.Fatalf("expected submitted markup echoed as text:\n%s", body)
	}
	if !strings.Contains(body, "Please enter valid numbers in both fields.") {
		t.Fatalf("expected markup input to be rejected:\n%s", body)
	}
}

func TestPage_TriggersAreEquivalent(t *testing.T) {
	h := newTestHandler(t)

	click := postForm(t, h, testsupport.FormBody("4", "2.5", "trigger", TriggerClick))
	enter1 := postForm(t, h, testsupport.FormBody("4", "2.5", "trigger", TriggerEnterNum1))
	enter2 := postForm(t, h, testsupport.FormBody("4", "2.5", "trigger", TriggerEnterNum2))
	implicit := postForm(t, h, testsupport.FormBody("4", "2.5"))

	for name, body := range map[string]string{"enter num1": enter1, "enter num2": enter2, "implicit": implicit} {
		if diff := cmp.Diff(click, body); diff != "" {
			t.Fatalf("%s trigger rendered a different page (-click +%s):\n%s", name, name, diff)
		}
	}
}

func TestPage_UnknownPathAndMethod(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD, POST" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestAPI_Multiply(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name string
		body string
		want calc.Display
	}{
		{name: "strings", body: `{"num1":"2","num2":"3"}`, want: calc.Display{Result: "6"}},
		{name: "numbers", body: `{"num1":2,"num2":3.25}`, want: calc.Display{Result: "6.50"}},
		{name: "padded", body: `{"num1":"  4  ","num2":"2"}`, want: calc.Display{Result: "8"}},
		{name: "invalid", body: `{"num1":"NaN","num2":"2"}`, want: calc.Display{Result: "0", Error: "Please enter valid numbers in both fields."}},
		{name: "missing fields", body: `{}`, want: calc.Display{Result: "0", Error: "Please enter valid numbers in both fields."}},
		{name: "empty body", body: ``, want: calc.Display{Result: "0", Error: "Please enter valid numbers in both fields."}},
		{name: "overflow", body: `{"num1":"1e200","num2":"1e200"}`, want: calc.Display{Result: "0", Error: "An unexpected error occurred. Please try again."}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, got := postJSON(t, h, tc.body)
			if code != http.StatusOK {
				t.Fatalf("expected 200, got %d", code)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("display mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAPI_MalformedBody(t *testing.T) {
	h := newTestHandler(t)

	for _, body := range []string{`{"num1":`, `{"num1":true}`, `[1,2]`} {
		req := httptest.NewRequest(http.MethodPost, "/api/multiply", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAPI_RejectsGet(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/multiply", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestAPI_LogsUnexpectedFailures(t *testing.T) {
	logger := &captureLogger{}
	h := newTestHandler(t, WithLogger(logger))

	postJSON(t, h, `{"num1":"1e300","num2":"1e300"}`)
	if len(logger.entries) != 1 || !strings.Contains(logger.entries[0], "calculation failed") {
		t.Fatalf("expected logged failure, got %v", logger.entries)
	}
}

func TestGuard_UsesHTTPErrorStatus(t *testing.T) {
	h := newTestHandler(t, WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("login required")}
	}))

	code, _ := func() (int, string) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/multiply", bytes.NewBufferString(`{}`)))
		return rec.Code, rec.Body.String()
	}()
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}

	h = newTestHandler(t, WithGuard(func(*http.Request) error { return errors.New("no") }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestStrictMode(t *testing.T) {
	h := newTestHandler(t, WithMode(calc.ModeStrict))

	_, got := postJSON(t, h, `{"num1":"12abc","num2":"2"}`)
	if got.Error == "" {
		t.Fatalf("strict mode should reject trailing text, got %#v", got)
	}
}

func TestSpecAndRuntimeRoutes(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/api/multiply") {
		t.Fatalf("unexpected spec response %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runtime/calcform.js", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected runtime script, got %d", rec.Code)
	}
	data, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(data), "calculateBtn") {
		t.Fatalf("unexpected runtime body")
	}
}

func TestPageOptions_ApplyDarkTheme(t *testing.T) {
	theme, err := page.ResolveTheme(nil, page.VariantDark)
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}
	h := newTestHandler(t, WithPageOptions(page.WithTheme(theme)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(rec.Body.String(), `data-variant="dark"`) {
		t.Fatalf("expected dark variant in page:\n%s", rec.Body.String())
	}
}

func TestPage_AdvertisesConfiguredMessages(t *testing.T) {
	h := newTestHandler(t, WithMessages(calc.Messages{InvalidInput: "Numbers only.", Unexpected: "Try later."}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	for _, fragment := range []string{`data-invalid-message="Numbers only."`, `data-unexpected-message="Try later."`} {
		if !strings.Contains(body, fragment) {
			t.Errorf("page missing %q:\n%s", fragment, body)
		}
	}
}
