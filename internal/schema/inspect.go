package schema

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Summary describes a schema document at a glance.
type Summary struct {
	OpenAPI    string `json:"openapi"`
	Title      string `json:"title"`
	Version    string `json:"version"`
	Paths      int    `json:"paths"`
	Operations int    `json:"operations"`
}

func load(data []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return doc, nil
}

// Inspect parses an OpenAPI 3 document (YAML or JSON) and summarizes it.
func Inspect(data []byte) (Summary, error) {
	doc, err := load(data)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{OpenAPI: doc.OpenAPI}
	if doc.Info != nil {
		s.Title = doc.Info.Title
		s.Version = doc.Info.Version
	}
	if doc.Paths != nil {
		for _, item := range doc.Paths.Map() {
			s.Paths++
			s.Operations += len(item.Operations())
		}
	}
	return s, nil
}

// Validate parses data and runs OpenAPI 3 structural validation.
func Validate(ctx context.Context, data []byte) error {
	doc, err := load(data)
	if err != nil {
		return err
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("schema: invalid document: %w", err)
	}
	return nil
}
