// Package api carries the OpenAPI contract of the marketplace HTTP API.
// The document is embedded into the binary and validated on startup, so a
// drifted or malformed contract fails fast instead of being served.
package api

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var openapiSpec []byte

// Raw returns the embedded OpenAPI document as served on /openapi.yml.
func Raw() []byte {
	return openapiSpec
}

// Load parses and validates the embedded OpenAPI document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}
