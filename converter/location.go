package converter

import (
	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/issues"
	"github.com/erraggy/aws2openapi/internal/ordered"
	"github.com/erraggy/aws2openapi/internal/pathutil"
	"github.com/erraggy/aws2openapi/internal/stringutil"
	"github.com/erraggy/aws2openapi/openapi"
)

// Parameter locations.
const (
	inHeader = "header"
	inPath   = "path"
	inQuery  = "query"
)

// parameterLocation maps a member location to a parameter location. Members
// carried elsewhere map to "".
func parameterLocation(location string) string {
	switch location {
	case awsmodel.LocationHeader:
		return inHeader
	case awsmodel.LocationURI:
		return inPath
	case awsmodel.LocationQueryString:
		return inQuery
	}
	return ""
}

// locationParameter describes a header, uri or querystring member of shape.
func (c *conversion) locationParameter(key string, m *awsmodel.MemberRef, shape *awsmodel.Shape) *openapi.Parameter {
	in := parameterLocation(m.Location)
	return &openapi.Parameter{
		Name:        m.WireName(key),
		In:          in,
		Required:    in == inPath || shape.IsRequired(key),
		Description: stringutil.Clean(m.Documentation),
		Deprecated:  m.Deprecated,
		Schema:      c.inlineSchema(m.Shape),
	}
}

// extractLocations attaches the header, uri and querystring members of a
// structure to the operations using it: as request parameters where the
// structure is an input, and, for headers, as response headers where it is
// an output. Members of a structure no operation uses are dropped.
func (c *conversion) extractLocations(shapeName string, shape *awsmodel.Shape) {
	if shape.Type != awsmodel.TypeStructure {
		return
	}
	uses := c.uses[shapeName]
	for key, m := range shape.Members.All() {
		if m == nil {
			continue
		}
		in := parameterLocation(m.Location)
		if in == "" {
			continue
		}
		if len(uses) == 0 {
			c.info(ConversionIssue{
				Path:    issues.FormatPath("components", "schemas", shapeName, "properties", key),
				Shape:   shapeName,
				Message: "no operation uses this shape, " + in + " member dropped",
			})
			continue
		}
		for _, use := range uses {
			for _, op := range c.attached[use.operation] {
				switch {
				case !use.output:
					addParameter(op, c.locationParameter(key, m, shape))
				case in == inHeader:
					c.addResponseHeader(op, shapeName, m.WireName(key), m)
				}
			}
		}
	}
}

// addParameter appends p unless op already has a parameter with the same
// name and location.
func addParameter(op *openapi.Operation, p *openapi.Parameter) bool {
	for _, existing := range op.Parameters {
		if existing.Name == p.Name && existing.In == p.In {
			return false
		}
	}
	op.Parameters = append(op.Parameters, p)
	return true
}

// addResponseHeader adds a header to every 2xx response of op whose body is
// the named shape.
func (c *conversion) addResponseHeader(op *openapi.Operation, shapeName, header string, m *awsmodel.MemberRef) {
	ref := pathutil.SchemaRef(shapeName)
	for _, resp := range successResponses(op) {
		if !contentRefers(resp.Content, ref) {
			continue
		}
		if resp.Headers == nil {
			resp.Headers = ordered.New[*openapi.Header]()
		}
		resp.Headers.Set(header, &openapi.Header{
			Description: stringutil.Clean(m.Documentation),
			Schema:      c.inlineSchema(m.Shape),
		})
	}
}

func contentRefers(content *ordered.Map[*openapi.MediaType], ref string) bool {
	for _, mt := range content.All() {
		if mt != nil && mt.Schema != nil && mt.Schema.Ref == ref {
			return true
		}
	}
	return false
}
