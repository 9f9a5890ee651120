package calcform

import (
	"io/fs"

	"github.com/goliatone/go-calcform/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in page templates so callers can
// extend them with their own engine.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}
