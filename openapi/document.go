package openapi

import (
	"github.com/erraggy/aws2openapi/internal/ordered"
)

// Version is the OpenAPI version written into every generated document.
const Version = "3.0.0"

// Document is the root of an OpenAPI 3.0 document.
type Document struct {
	OpenAPI      string                  `yaml:"openapi" json:"openapi"`
	Info         *Info                   `yaml:"info" json:"info"`
	ExternalDocs *ExternalDocs           `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Servers      []*Server               `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        *ordered.Map[*PathItem] `yaml:"paths" json:"paths"`
	Components   *Components             `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement   `yaml:"security,omitempty" json:"security,omitempty"`
	Extra        map[string]any          `yaml:",inline" json:"-"`
}

// NewDocument returns a document with empty paths and components.
func NewDocument() *Document {
	return &Document{
		OpenAPI:    Version,
		Info:       &Info{},
		Paths:      ordered.New[*PathItem](),
		Components: NewComponents(),
	}
}

// Info provides metadata about the API.
type Info struct {
	Title          string         `yaml:"title" json:"title"`
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string         `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact       `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License       `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string         `yaml:"version" json:"version"`
	Extra          map[string]any `yaml:",inline" json:"-"`
}

// Contact information for the exposed API.
type Contact struct {
	Name  string         `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string         `yaml:"url,omitempty" json:"url,omitempty"`
	Email string         `yaml:"email,omitempty" json:"email,omitempty"`
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License information for the exposed API.
type License struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

// ExternalDocs allows referencing an external resource for extended documentation.
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
}

// Server represents a Server (OAS 3.0+).
type Server struct {
	URL         string                        `yaml:"url" json:"url"`
	Description string                        `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   *ordered.Map[*ServerVariable] `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// ServerVariable represents a server variable for server URL template substitution.
type ServerVariable struct {
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
}

// Components holds reusable objects.
type Components struct {
	Parameters      *ordered.Map[*Parameter]      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	SecuritySchemes *ordered.Map[*SecurityScheme] `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Schemas         *ordered.Map[*Schema]         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// NewComponents returns components with every dictionary allocated.
func NewComponents() *Components {
	return &Components{
		Parameters:      ordered.New[*Parameter](),
		SecuritySchemes: ordered.New[*SecurityScheme](),
		Schemas:         ordered.New[*Schema](),
	}
}

// SecurityScheme defines a security scheme that can be used by the operations.
type SecurityScheme struct {
	Type        string         `yaml:"type" json:"type"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"`
	In          string         `yaml:"in,omitempty" json:"in,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// SecurityRequirement lists the required security schemes to execute an operation.
type SecurityRequirement map[string][]string

// Stats summarizes the size of a document.
type Stats struct {
	PathCount      int
	OperationCount int
	SchemaCount    int
}

// Stats counts paths, operations and schemas.
func (d *Document) Stats() Stats {
	var s Stats
	if d == nil {
		return s
	}
	s.PathCount = d.Paths.Len()
	for _, item := range d.Paths.All() {
		s.OperationCount += len(item.Operations())
	}
	if d.Components != nil {
		s.SchemaCount = d.Components.Schemas.Len()
	}
	return s
}
