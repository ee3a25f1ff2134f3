package commands

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// ValidateDocument loads a generated document (JSON or YAML) with an
// independent OpenAPI 3 implementation and runs its structural validation.
// Examples are not validated: they come verbatim from the service examples
// table and are not checked against the schemas.
func ValidateDocument(ctx context.Context, data []byte) error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("loading generated document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("generated document is invalid: %w", err)
	}
	return nil
}
