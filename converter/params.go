package converter

import (
	"strconv"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/httputil"
	"github.com/erraggy/aws2openapi/internal/issues"
	"github.com/erraggy/aws2openapi/internal/ordered"
	"github.com/erraggy/aws2openapi/internal/pathutil"
	"github.com/erraggy/aws2openapi/internal/stringutil"
	"github.com/erraggy/aws2openapi/openapi"
)

// buildRequest fills the parameters and request body of one route entry
// from the operation's input shape, the way the protocol serialises it.
func (c *conversion) buildRequest(op *awsmodel.Operation, method string, action *openapi.Operation) {
	if op.Input != nil && op.Input.Shape != "" {
		inputName := op.Input.Shape
		c.inputs[inputName] = true
		shape := c.src.Shape(inputName)
		if shape == nil {
			c.register(inputName)
			shape = &awsmodel.Shape{}
		}

		switch {
		case c.isREST():
			c.restRequest(inputName, shape, action)
		case c.isQueryStyle():
			if method == httputil.MethodGet {
				action.Parameters = c.queryParameters(shape)
			} else {
				action.RequestBody = &openapi.RequestBody{Content: c.content(inputName)}
			}
		case c.protocol == awsmodel.ProtocolJSON:
			action.RequestBody = &openapi.RequestBody{Required: true, Content: c.content(inputName)}
		}

		action.Parameters = c.flatten(op.Name, action.Parameters)
	}
	c.addPagination(op.Name, action)
}

// restRequest maps header, uri and querystring members to parameters and
// every other member to a field of a synthesized body object.
func (c *conversion) restRequest(inputName string, shape *awsmodel.Shape, action *openapi.Operation) {
	body := ordered.New[*openapi.Schema]()
	var required []string

	for key, m := range shape.Members.All() {
		if m == nil {
			continue
		}
		switch m.Location {
		case awsmodel.LocationHeaders, awsmodel.LocationStatusCode:
			c.info(ConversionIssue{
				Path:    issues.FormatPath("components", "schemas", inputName, "properties", key),
				Shape:   inputName,
				Message: m.Location + " member is neither a parameter nor a body field",
			})
			continue
		}
		if parameterLocation(m.Location) != "" {
			action.Parameters = append(action.Parameters, c.locationParameter(key, m, shape))
			continue
		}

		name := m.WireName(key)
		field := c.inlineSchema(m.Shape)
		if doc := stringutil.Clean(m.Documentation); doc != "" {
			field.Description = doc
		}
		body.Set(name, field)
		if shape.IsRequired(key) {
			required = append(required, name)
		}
	}

	if body.Len() == 0 {
		return
	}
	schema := &openapi.Schema{Type: "object", Properties: body, Required: required}
	action.RequestBody = &openapi.RequestBody{
		Required: true,
		Content:  openapi.ContentFor(c.mediaTypes, func() *openapi.Schema { return schema }),
	}
}

// queryParameters serialises every member as a query parameter. ec2
// upper-cases the first letter of the wire name unless a queryName is given.
func (c *conversion) queryParameters(shape *awsmodel.Shape) []*openapi.Parameter {
	var params []*openapi.Parameter
	for key, m := range shape.Members.All() {
		if m == nil {
			continue
		}
		name := m.WireName(key)
		if c.protocol == awsmodel.ProtocolEC2 {
			if m.QueryName != "" {
				name = m.QueryName
			} else {
				name = stringutil.UpperFirst(name)
			}
		}
		params = append(params, &openapi.Parameter{
			Name:        name,
			In:          inQuery,
			Required:    shape.IsRequired(key),
			Description: stringutil.Clean(m.Documentation),
			Deprecated:  m.Deprecated,
			Schema:      c.inlineSchema(m.Shape),
		})
	}
	return params
}

// flatten rewrites structured query parameters into primitive ones: maps
// into indexed key/value pairs, structures into one parameter per immediate
// child and lists into string arrays. Nested structures are not descended.
func (c *conversion) flatten(opName string, params []*openapi.Parameter) []*openapi.Parameter {
	if len(params) == 0 {
		return params
	}
	out := make([]*openapi.Parameter, 0, len(params))
	for _, p := range params {
		if p.In != inQuery || p.Schema == nil {
			out = append(out, p)
			continue
		}
		switch {
		case p.Schema.AdditionalProperties != nil:
			out = append(out, c.mapParameters(opName, p)...)
		case p.Schema.Type == "object":
			out = append(out, c.objectParameters(p)...)
		case p.Schema.Type == "array":
			out = append(out, &openapi.Parameter{
				Name:        p.Name,
				In:          p.In,
				Required:    p.Required,
				Description: p.Description,
				Schema:      stringArray(),
			})
		default:
			out = append(out, p)
		}
	}
	return out
}

// mapParameters enumerates min(maxProperties, cap) key/value pairs.
func (c *conversion) mapParameters(opName string, p *openapi.Parameter) []*openapi.Parameter {
	limit := c.cfg.mapParameterCap()
	if maxProps := p.Schema.MaxProperties; maxProps != nil && *maxProps <= limit {
		limit = *maxProps
	} else {
		c.warn(ConversionIssue{
			Path:      issues.FormatPath("parameters", p.Name),
			Operation: opName,
			Message:   "map parameter enumerated as " + strconv.Itoa(limit) + " key/value pairs",
			Context:   "open-ended parameter families cannot be described, further entries are undocumented",
		})
	}
	out := make([]*openapi.Parameter, 0, 2*limit)
	for i := range limit {
		prefix := p.Name + "." + strconv.Itoa(i) + "."
		out = append(out,
			&openapi.Parameter{Name: prefix + "key", In: p.In, Schema: &openapi.Schema{Type: "string"}},
			&openapi.Parameter{Name: prefix + "value", In: p.In, Schema: &openapi.Schema{Type: "string"}},
		)
	}
	return out
}

// objectParameters emits one dotted parameter per property, typed as a
// string or, for list properties, an array of strings.
func (c *conversion) objectParameters(p *openapi.Parameter) []*openapi.Parameter {
	var out []*openapi.Parameter
	for name, sub := range p.Schema.Properties.All() {
		typ := sub.Type
		if typ == "" && sub.Ref != "" {
			if shape := c.src.Shape(pathutil.SchemaNameFromRef(sub.Ref)); shape != nil {
				typ = schemaType(shape.Type)
			}
		}
		schema := &openapi.Schema{Type: "string"}
		if typ == "array" {
			schema = stringArray()
		}
		out = append(out, &openapi.Parameter{
			Name:        p.Name + "." + name,
			In:          p.In,
			Description: stringutil.JoinNonEmpty("\n", p.Description, sub.Description),
			Schema:      schema,
		})
	}
	return out
}

func stringArray() *openapi.Schema {
	return &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}
}

// schemaType returns the schema type a shape type maps to.
func schemaType(shapeType string) string {
	switch shapeType {
	case awsmodel.TypeStructure, awsmodel.TypeMap:
		return "object"
	case awsmodel.TypeList:
		return "array"
	case awsmodel.TypeString, awsmodel.TypeBlob, awsmodel.TypeTimestamp:
		return "string"
	case awsmodel.TypeBoolean:
		return "boolean"
	case awsmodel.TypeInteger, awsmodel.TypeLong, awsmodel.TypeShort, awsmodel.TypeByte, awsmodel.TypeBigInteger:
		return "integer"
	case awsmodel.TypeFloat, awsmodel.TypeDouble, awsmodel.TypeBigDecimal:
		return "number"
	}
	return ""
}

// addPagination adds optional query parameters for the paginator's limit
// key and input tokens unless a parameter of that name already exists.
func (c *conversion) addPagination(opName string, action *openapi.Operation) {
	pag := c.cfg.Paginators.For(opName)
	if pag == nil {
		return
	}
	if pag.LimitKey != "" && !hasParameterNamed(action.Parameters, pag.LimitKey) {
		action.Parameters = append(action.Parameters, &openapi.Parameter{
			Name:        pag.LimitKey,
			In:          inQuery,
			Description: "Pagination limit",
			Schema:      &openapi.Schema{Type: "string"},
		})
	}
	for _, token := range pag.InputToken {
		if token == "" || hasParameterNamed(action.Parameters, token) {
			continue
		}
		action.Parameters = append(action.Parameters, &openapi.Parameter{
			Name:        token,
			In:          inQuery,
			Description: "Pagination token",
			Schema:      &openapi.Schema{Type: "string"},
		})
	}
}

func hasParameterNamed(params []*openapi.Parameter, name string) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}
