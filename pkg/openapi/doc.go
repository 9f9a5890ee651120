// Package openapi loads and serves the OpenAPI description of the calculator
// JSON API. The document is embedded and validated with kin-openapi.
package openapi
