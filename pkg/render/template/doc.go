// Package template defines the template engine seam used by the page
// renderer, with a pongo2-backed implementation in the gotemplate
// subpackage.
package template
