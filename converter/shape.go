package converter

import (
	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/issues"
	"github.com/erraggy/aws2openapi/internal/ordered"
	"github.com/erraggy/aws2openapi/internal/pathutil"
	"github.com/erraggy/aws2openapi/internal/stringutil"
	"github.com/erraggy/aws2openapi/openapi"
)

// relocated reports whether a member on this location is described outside
// the body schema.
func relocated(location string) bool {
	switch location {
	case awsmodel.LocationHeader, awsmodel.LocationHeaders, awsmodel.LocationURI,
		awsmodel.LocationQueryString, awsmodel.LocationStatusCode:
		return true
	}
	return false
}

// schemaBuilder turns one shape into a schema. It never touches the
// document; every shape name it points at is collected in pending and
// merged by the caller once the shape is complete.
type schemaBuilder struct {
	conv *conversion
	// name is the component being built, empty for inline schemas
	name    string
	pending []string
}

// buildSchemas transforms every declared shape into a component schema,
// attaches location-derived parameters, then adds empty schemas for names
// that were referenced but never declared.
func (c *conversion) buildSchemas() {
	schemas := c.doc.Components.Schemas
	for name, shape := range c.src.Shapes.All() {
		schema := c.transformShape(name, shape)
		if c.inputs[name] {
			schema.Title = name
		}
		if example, ok := c.examples[name]; ok {
			schema.Example = example
		}
		schemas.Set(name, schema)
		c.extractLocations(name, shape)
	}
	for name, placeholder := range c.refs.All() {
		if schemas.Has(name) {
			continue
		}
		c.warn(ConversionIssue{
			Path:    issues.FormatPath("components", "schemas", name),
			Shape:   name,
			Message: "referenced shape is not declared, left as an empty schema",
		})
		schemas.Set(name, placeholder)
	}
}

// transformShape builds the component schema for a named shape.
func (c *conversion) transformShape(name string, shape *awsmodel.Shape) *openapi.Schema {
	b := &schemaBuilder{conv: c, name: name}
	s := b.build(shape)
	c.merge(b.pending)
	return s
}

// inlineSchema builds an unnamed copy of the named shape's schema, as used
// for parameters and body fields.
func (c *conversion) inlineSchema(shapeName string) *openapi.Schema {
	shape := c.src.Shape(shapeName)
	if shape == nil {
		return &openapi.Schema{}
	}
	b := &schemaBuilder{conv: c}
	s := b.build(shape)
	c.merge(b.pending)
	return s
}

func (c *conversion) merge(pending []string) {
	for _, name := range pending {
		c.register(name)
	}
}

func (b *schemaBuilder) ref(name string) *openapi.Schema {
	b.pending = append(b.pending, name)
	return openapi.RefTo(pathutil.SchemaRef(name))
}

func (b *schemaBuilder) build(shape *awsmodel.Shape) *openapi.Schema {
	s := &openapi.Schema{
		Description: describe(shape.Documentation, shape.DeprecatedMessage),
		Deprecated:  shape.Deprecated,
	}

	switch shape.Type {
	case awsmodel.TypeStructure:
		b.object(s, shape)
	case awsmodel.TypeList:
		b.array(s, shape)
	case awsmodel.TypeMap:
		s.Type = "object"
		if shape.Value != nil && shape.Value.Shape != "" {
			s.AdditionalProperties = b.ref(shape.Value.Shape)
		} else {
			s.AdditionalProperties = &openapi.Schema{}
		}
		s.MinProperties = intBound(shape.Min)
		s.MaxProperties = intBound(shape.Max)
	case awsmodel.TypeString:
		b.str(s, shape)
	case awsmodel.TypeBlob:
		s.Type = "string"
	case awsmodel.TypeTimestamp:
		s.Type = "string"
		s.Format = "date-time"
	case awsmodel.TypeBoolean:
		s.Type = "boolean"
	case awsmodel.TypeInteger, awsmodel.TypeLong, awsmodel.TypeShort, awsmodel.TypeByte, awsmodel.TypeBigInteger:
		s.Type = "integer"
		s.Minimum = numberBound(shape.Min)
		s.Maximum = numberBound(shape.Max)
	case awsmodel.TypeFloat, awsmodel.TypeDouble, awsmodel.TypeBigDecimal:
		s.Type = "number"
		switch shape.Type {
		case awsmodel.TypeFloat:
			s.Format = "float"
		case awsmodel.TypeDouble:
			s.Format = "double"
		}
		s.Minimum = numberBound(shape.Min)
		s.Maximum = numberBound(shape.Max)
	case awsmodel.TypeDocument:
		// any JSON value
	default:
		if b.name != "" {
			b.conv.info(ConversionIssue{
				Path:    issues.FormatPath("components", "schemas", b.name),
				Shape:   b.name,
				Message: "unknown shape type, schema left untyped",
				Value:   shape.Type,
			})
		}
	}

	if shape.Flattened {
		xmlOf(s).Wrapped = openapi.Ptr(false)
	}
	if ns := shape.XMLNamespace; ns != nil {
		xmlOf(s).Namespace = ns.URI
		xmlOf(s).Prefix = ns.Prefix
	}
	return s
}

func (b *schemaBuilder) object(s *openapi.Schema, shape *awsmodel.Shape) {
	s.Type = "object"
	if shape.Members != nil {
		s.Properties = ordered.New[*openapi.Schema]()
		for key, m := range shape.Members.All() {
			if m == nil || relocated(m.Location) {
				continue
			}
			s.Properties.Set(key, b.member(key, m))
		}
	}
	for _, name := range shape.Required {
		if m := shape.Members.Value(name); m != nil && relocated(m.Location) {
			continue
		}
		s.Required = append(s.Required, name)
	}
}

func (b *schemaBuilder) array(s *openapi.Schema, shape *awsmodel.Shape) {
	s.Type = "array"
	if shape.Member != nil && shape.Member.Shape != "" {
		s.Items = b.member("", shape.Member)
	} else {
		s.Items = &openapi.Schema{}
	}
	if b.conv.xmlQuery && s.Items.XML == nil {
		s.Items.XML = &openapi.XML{Name: "member"}
	}
	s.MinItems = intBound(shape.Min)
	s.MaxItems = intBound(shape.Max)
}

func (b *schemaBuilder) str(s *openapi.Schema, shape *awsmodel.Shape) {
	s.Type = "string"
	s.MinLength = intBound(shape.Min)
	s.MaxLength = intBound(shape.Max)
	if shape.Sensitive {
		s.Format = "password"
	}
	for _, v := range shape.Enum {
		s.Enum = append(s.Enum, v)
	}
	if shape.Pattern == "" {
		return
	}
	pattern, ok := compatiblePattern(shape.Pattern)
	if ok {
		s.Pattern = pattern
		if pattern != shape.Pattern && b.name != "" {
			b.conv.info(ConversionIssue{
				Path:    issues.FormatPath("components", "schemas", b.name, "pattern"),
				Shape:   b.name,
				Message: "pattern rewritten for RE2",
				Value:   shape.Pattern,
			})
		}
		return
	}
	s.SetExtension("x-pattern", shape.Pattern)
	if b.name != "" {
		b.conv.warn(ConversionIssue{
			Path:    issues.FormatPath("components", "schemas", b.name, "pattern"),
			Shape:   b.name,
			Message: "pattern does not compile, kept as x-pattern",
			Value:   shape.Pattern,
		})
	}
}

// member builds the pointer schema for one structure member or list item.
// A wire name that differs from key becomes an XML name hint.
func (b *schemaBuilder) member(key string, m *awsmodel.MemberRef) *openapi.Schema {
	s := b.ref(m.Shape)
	s.Description = describe(m.Documentation, m.DeprecatedMessage)
	s.Deprecated = m.Deprecated
	if m.LocationName != "" && m.LocationName != key {
		xmlOf(s).Name = m.LocationName
	}
	if ns := m.XMLNamespace; ns != nil {
		xmlOf(s).Namespace = ns.URI
		xmlOf(s).Prefix = ns.Prefix
	}
	if m.XMLAttribute {
		xmlOf(s).Attribute = true
	}
	if m.Flattened != nil {
		xmlOf(s).Wrapped = openapi.Ptr(!*m.Flattened)
	}
	return s
}

func xmlOf(s *openapi.Schema) *openapi.XML {
	if s.XML == nil {
		s.XML = &openapi.XML{}
	}
	return s.XML
}

// describe cleans documentation and appends a deprecation note.
func describe(doc, deprecated string) string {
	return stringutil.JoinNonEmpty(" ", stringutil.Clean(doc), deprecated)
}

func intBound(b *awsmodel.Bound) *int {
	if b == nil || !b.Valid {
		return nil
	}
	return openapi.Ptr(int(b.Int()))
}

func numberBound(b *awsmodel.Bound) *float64 {
	if b == nil || !b.Valid {
		return nil
	}
	return openapi.Ptr(b.Number)
}
