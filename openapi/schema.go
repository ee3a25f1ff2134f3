package openapi

import (
	"github.com/erraggy/aws2openapi/internal/ordered"
)

// Schema is the OpenAPI 3.0 subset of JSON Schema produced by the converter.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type validation
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	Minimum *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`

	// String validation
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items    *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MinItems *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`

	// Object validation
	Properties           *ordered.Map[*Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string              `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties *Schema               `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	MinProperties        *int                  `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	MaxProperties        *int                  `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`

	// OAS specific
	XML        *XML `yaml:"xml,omitempty" json:"xml,omitempty"`
	Example    any  `yaml:"example,omitempty" json:"example,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Extra captures vendor extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RefTo returns a schema that only points at ref.
func RefTo(ref string) *Schema {
	return &Schema{Ref: ref}
}

// SetExtension records a vendor extension on the schema.
func (s *Schema) SetExtension(key string, value any) {
	if s.Extra == nil {
		s.Extra = make(map[string]any)
	}
	s.Extra[key] = value
}

// XML represents metadata for XML encoding.
type XML struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   *bool  `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
