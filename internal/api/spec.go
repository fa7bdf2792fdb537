// Package api holds the OpenAPI document for the bank API and serves its docs.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:generate go tool oapi-codegen -config cfg.yaml openapi.yaml

//go:embed openapi.yaml
var openAPIDocument []byte

var loadSwagger = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
})

// GetSwagger returns the parsed and validated OpenAPI document.
// The document is parsed once and shared; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	return loadSwagger()
}
