package calculator

import (
	"fmt"
	"net/http"
	"strings"

	calcform "github.com/goliatone/go-calcform"
)

// Mux is the minimal interface required to register net/http handlers.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Paths are the mounted patterns of the component routes.
type Paths struct {
	Page    string
	API     string
	Spec    string
	Runtime string
}

// MountPaths returns the patterns the component registers under basePath.
func (c *Component) MountPaths(basePath string) Paths {
	opts := c.Options()
	return Paths{
		Page:    withTrailingSlash(mountPath(basePath, opts.PagePath)),
		API:     mountPath(basePath, opts.APIPath),
		Spec:    mountPath(basePath, opts.SpecPath),
		Runtime: withTrailingSlash(mountPath(basePath, opts.RuntimePath)),
	}
}

// RegisterRoutes registers the page, API, OpenAPI and runtime handlers under
// basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (Paths, error) {
	if mux == nil {
		return Paths{}, fmt.Errorf("calculator: missing mux")
	}
	if c == nil {
		return Paths{}, fmt.Errorf("calculator: missing component")
	}

	paths := c.MountPaths(basePath)
	h, err := c.handlers(paths)
	if err != nil {
		return Paths{}, err
	}

	mux.Handle(paths.Page, h.pageHandler())
	mux.Handle(paths.API, h.apiHandler())
	mux.Handle(paths.Spec, c.opts.Spec.Handler())
	mux.Handle(paths.Runtime, http.StripPrefix(paths.Runtime, http.FileServerFS(calcform.RuntimeAssetsFS())))
	return paths, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}

func withTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}
