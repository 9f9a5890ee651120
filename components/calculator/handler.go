package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	calc "github.com/goliatone/go-calcform/pkg/calculator"
	"github.com/goliatone/go-calcform/pkg/form"
	"github.com/goliatone/go-calcform/pkg/renderers/page"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Trigger values accepted in the optional "trigger" form field.
const (
	TriggerClick     = "click"
	TriggerEnterNum1 = "enter:" + form.IDNum1
	TriggerEnterNum2 = "enter:" + form.IDNum2
)

// multiplyRequest accepts both JSON strings and JSON numbers per field.
type multiplyRequest struct {
	Num1 fieldValue `json:"num1"`
	Num2 fieldValue `json:"num2"`
}

type fieldValue string

func (f *fieldValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = fieldValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("field must be a string or number: %w", err)
	}
	*f = fieldValue(n.String())
	return nil
}

type handlers struct {
	calc     *calc.Calculator
	renderer *page.Renderer
	logger   calc.Logger
	guard    GuardFunc
	pagePath string
	maxBody  int64
}

// pageHandler renders the form on GET/HEAD and runs a calculation on POST.
func (h *handlers) pageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != h.pagePath {
			http.NotFound(w, r)
			return
		}
		if !h.allow(w, r, http.MethodGet, http.MethodHead, http.MethodPost) {
			return
		}

		view := page.View{Display: calc.Display{Result: calc.DefaultResult}}
		if r.Method == http.MethodPost {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
			if err := r.ParseForm(); err != nil {
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			display, err := h.submit(r.PostForm.Get(form.IDNum1), r.PostForm.Get(form.IDNum2), r.PostForm.Get("trigger"))
			if err != nil {
				h.logger.Error("bind form", "err", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			view = page.View{
				Num1:    r.PostForm.Get(form.IDNum1),
				Num2:    r.PostForm.Get(form.IDNum2),
				Display: display,
			}
		}

		out, err := h.renderer.Render(r.Context(), view)
		if err != nil {
			h.logger.Error("render page", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", h.renderer.ContentType())
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(out)
	})
}

// submit replays a form submission against a request-scoped document.
func (h *handlers) submit(num1, num2, trigger string) (calc.Display, error) {
	doc := form.NewCalculatorDocument()
	ctrl, err := form.Bind(doc, h.calc)
	if err != nil {
		return calc.Display{}, err
	}
	doc.Element(form.IDNum1).SetValue(num1)
	doc.Element(form.IDNum2).SetValue(num2)

	switch strings.TrimSpace(trigger) {
	case TriggerEnterNum1:
		doc.KeyUp(form.IDNum1, form.KeyEnter)
	case TriggerEnterNum2:
		doc.KeyUp(form.IDNum2, form.KeyEnter)
	default:
		doc.Click(form.IDCalculateBtn)
	}
	return ctrl.Display(), nil
}

// apiHandler multiplies the JSON body's fields and returns the display.
func (h *handlers) apiHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.allow(w, r, http.MethodPost) {
			return
		}

		var req multiplyRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
		if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		writeJSON(w, http.StatusOK, h.calc.Calculate(string(req.Num1), string(req.Num2)))
	})
}

func (h *handlers) allow(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	permitted := false
	for _, m := range methods {
		if r.Method == m {
			permitted = true
			break
		}
	}
	if !permitted {
		w.Header().Set("Allow", strings.Join(methods, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if h.guard != nil {
		if err := h.guard(r); err != nil {
			writeGuardError(w, err)
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
