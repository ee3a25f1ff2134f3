package openapi

import (
	"strings"

	"github.com/erraggy/aws2openapi/internal/httputil"
	"github.com/erraggy/aws2openapi/internal/ordered"
)

// PathItem describes the operations available on a single route.
type PathItem struct {
	Get        *Operation     `yaml:"get,omitempty" json:"get,omitempty"`
	Put        *Operation     `yaml:"put,omitempty" json:"put,omitempty"`
	Post       *Operation     `yaml:"post,omitempty" json:"post,omitempty"`
	Delete     *Operation     `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options    *Operation     `yaml:"options,omitempty" json:"options,omitempty"`
	Head       *Operation     `yaml:"head,omitempty" json:"head,omitempty"`
	Patch      *Operation     `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace      *Operation     `yaml:"trace,omitempty" json:"trace,omitempty"`
	Parameters []*Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Extra      map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation bound to method (case-insensitive), or nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	if slot := p.slot(method); slot != nil {
		return *slot
	}
	return nil
}

// SetOperation binds op to method. Unknown methods are ignored and reported
// as false.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	slot := p.slot(method)
	if slot == nil {
		return false
	}
	*slot = op
	return true
}

func (p *PathItem) slot(method string) **Operation {
	switch strings.ToLower(method) {
	case httputil.MethodGet:
		return &p.Get
	case httputil.MethodPut:
		return &p.Put
	case httputil.MethodPost:
		return &p.Post
	case httputil.MethodDelete:
		return &p.Delete
	case httputil.MethodOptions:
		return &p.Options
	case httputil.MethodHead:
		return &p.Head
	case httputil.MethodPatch:
		return &p.Patch
	case httputil.MethodTrace:
		return &p.Trace
	}
	return nil
}

// MethodOperation pairs a lower-case method with its operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operations returns the bound operations in canonical method order.
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}
	var out []MethodOperation
	for _, m := range httputil.Methods {
		if op := p.Operation(m); op != nil {
			out = append(out, MethodOperation{Method: m, Operation: op})
		}
	}
	return out
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID  string                  `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Summary      string                  `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                  `yaml:"description" json:"description"`
	ExternalDocs *ExternalDocs           `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Parameters   []*Parameter            `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RequestBody            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    *ordered.Map[*Response] `yaml:"responses" json:"responses"`
	Deprecated   bool                    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement   `yaml:"security,omitempty" json:"security,omitempty"`
	Extra        map[string]any          `yaml:",inline" json:"-"`
}

// SetExtension records a vendor extension on the operation.
func (o *Operation) SetExtension(key string, value any) {
	if o.Extra == nil {
		o.Extra = make(map[string]any)
	}
	o.Extra[key] = value
}

// Extension returns a string-valued vendor extension.
func (o *Operation) Extension(key string) string {
	s, _ := o.Extra[key].(string)
	return s
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref             string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name            string         `yaml:"name,omitempty" json:"name,omitempty"`
	In              string         `yaml:"in,omitempty" json:"in,omitempty"`
	Description     string         `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool           `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string         `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool          `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema          *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Extra           map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description string                   `yaml:"description,omitempty" json:"description,omitempty"`
	Content     *ordered.Map[*MediaType] `yaml:"content" json:"content"`
	Required    bool                     `yaml:"required,omitempty" json:"required,omitempty"`
}

// MediaType provides schema and examples for a media type.
type MediaType struct {
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`
}

// Response describes a single response from an API operation.
type Response struct {
	Description string                   `yaml:"description" json:"description"`
	Headers     *ordered.Map[*Header]    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     *ordered.Map[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
	Extra       map[string]any           `yaml:",inline" json:"-"`
}

// Header describes a response header.
type Header struct {
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// ContentFor builds a content map with the same schema for every media type.
func ContentFor(mediaTypes []string, schema func() *Schema) *ordered.Map[*MediaType] {
	content := ordered.New[*MediaType]()
	for _, mt := range mediaTypes {
		content.Set(mt, &MediaType{Schema: schema()})
	}
	return content
}
