package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed calcform.yaml
var embeddedDocument []byte

// OperationMultiply is the operationId of the multiply endpoint.
const OperationMultiply = "multiply"

// Route is an operation's method and path relative to the mount point.
type Route struct {
	Method string
	Path   string
}

// Document is a validated OpenAPI description.
type Document struct {
	spec *openapi3.T
	json []byte
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*Document, error) {
	return LoadFromData(ctx, embeddedDocument)
}

// LoadFromData parses and validates raw YAML or JSON.
func LoadFromData(ctx context.Context, raw []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}

	encoded, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode document: %w", err)
	}
	return &Document{spec: spec, json: encoded}, nil
}

// Title returns info.title.
func (d *Document) Title() string {
	if d == nil || d.spec == nil || d.spec.Info == nil {
		return ""
	}
	return d.spec.Info.Title
}

// Routes returns every operation keyed by operationId.
func (d *Document) Routes() map[string]Route {
	routes := make(map[string]Route)
	if d == nil || d.spec == nil || d.spec.Paths == nil {
		return routes
	}
	for path, item := range d.spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || strings.TrimSpace(op.OperationID) == "" {
				continue
			}
			routes[op.OperationID] = Route{Method: strings.ToUpper(method), Path: path}
		}
	}
	return routes
}

// Route returns the route of operationID.
func (d *Document) Route(operationID string) (Route, error) {
	route, ok := d.Routes()[operationID]
	if !ok {
		ids := make([]string, 0)
		for id := range d.Routes() {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		return Route{}, fmt.Errorf("openapi: operation %q not found (have %s)", operationID, strings.Join(ids, ", "))
	}
	return route, nil
}

// JSON returns the document encoded as JSON.
func (d *Document) JSON() []byte {
	if d == nil {
		return nil
	}
	return append([]byte(nil), d.json...)
}

// Handler serves the document as JSON to GET and HEAD requests.
func (d *Document) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(d.json)
	})
}
