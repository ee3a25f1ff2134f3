package converter

import (
	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/httputil"
	"github.com/erraggy/aws2openapi/internal/ordered"
	"github.com/erraggy/aws2openapi/internal/pathutil"
	"github.com/erraggy/aws2openapi/openapi"
)

// conversion is the state of a single Convert call. Nothing in it outlives
// the call, and nothing mutable is shared between calls.
type conversion struct {
	cfg  *Converter
	src  *awsmodel.ServiceDescription
	meta *awsmodel.Metadata
	log  Logger
	doc  *openapi.Document

	protocol    string
	serviceName string
	xmlQuery    bool
	mediaTypes  []string
	signature   signatureKind

	// refs holds every schema name referenced so far, as an empty
	// placeholder until the shape pass fills it.
	refs *ordered.Map[*openapi.Schema]
	// uses maps a shape name to the operations whose input or output is it.
	uses map[string][]shapeUse
	// attached maps an operation name to its route entries (two for
	// query and ec2, one otherwise).
	attached map[string][]*openapi.Operation
	// greedy records the multi-valued path variables of each route entry.
	greedy map[*openapi.Operation][]string
	// examples maps an output shape name to its example document.
	examples map[string]any
	// inputs is the set of shapes used as operation input.
	inputs map[string]bool

	issues []ConversionIssue
}

// shapeUse is one operation referencing a shape.
type shapeUse struct {
	operation string
	output    bool
}

func newConversion(cfg *Converter, src *awsmodel.ServiceDescription) *conversion {
	meta := src.Metadata
	if meta == nil {
		meta = &awsmodel.Metadata{}
	}
	c := &conversion{
		cfg:      cfg,
		src:      src,
		meta:     meta,
		doc:      openapi.NewDocument(),
		protocol: meta.Protocol,
		refs:     ordered.New[*openapi.Schema](),
		attached: make(map[string][]*openapi.Operation),
		greedy:   make(map[*openapi.Operation][]string),
		examples: make(map[string]any),
		inputs:   make(map[string]bool),
	}
	c.serviceName = cfg.ServiceName
	if c.serviceName == "" && cfg.Filename != "" {
		c.serviceName = awsmodel.ServiceNameFromFilename(cfg.Filename)
	}
	c.log = cfg.logger().With("service", meta.EndpointPrefix, "apiVersion", meta.APIVersion)
	c.uses = buildShapeIndex(src)
	return c
}

func (c *conversion) run() (*openapi.Document, error) {
	c.log.Debug("building envelope", "protocol", c.protocol)
	c.buildEnvelope()
	c.buildSecurity()
	c.buildServers()

	c.log.Debug("building routes", "operations", c.src.Operations.Len())
	if err := c.buildOperations(); err != nil {
		return nil, err
	}

	c.log.Debug("building schemas", "shapes", c.src.Shapes.Len())
	c.buildSchemas()

	c.postProcess()
	c.log.Debug("conversion complete", "paths", c.doc.Paths.Len())
	return c.doc, nil
}

// isQueryStyle reports whether operations are serialised as form/query
// parameters and instantiated once per verb.
func (c *conversion) isQueryStyle() bool {
	return c.protocol == awsmodel.ProtocolQuery || c.protocol == awsmodel.ProtocolEC2
}

func (c *conversion) isREST() bool {
	return c.protocol == awsmodel.ProtocolRESTJSON || c.protocol == awsmodel.ProtocolRESTXML
}

// buildShapeIndex records, for each shape, the operations using it as
// input or output.
func buildShapeIndex(src *awsmodel.ServiceDescription) map[string][]shapeUse {
	uses := make(map[string][]shapeUse)
	for name, op := range src.Operations.All() {
		if op == nil {
			continue
		}
		if op.Input != nil && op.Input.Shape != "" {
			uses[op.Input.Shape] = append(uses[op.Input.Shape], shapeUse{operation: name})
		}
		if op.Output != nil && op.Output.Shape != "" {
			uses[op.Output.Shape] = append(uses[op.Output.Shape], shapeUse{operation: name, output: true})
		}
	}
	return uses
}

// ref returns a pointer schema for the named shape and registers the name.
func (c *conversion) ref(name string) *openapi.Schema {
	c.register(name)
	return openapi.RefTo(pathutil.SchemaRef(name))
}

func (c *conversion) register(name string) {
	if !c.refs.Has(name) {
		c.refs.Set(name, &openapi.Schema{})
	}
}

// content returns a content map pointing every media type at the named shape.
func (c *conversion) content(shapeName string) *ordered.Map[*openapi.MediaType] {
	c.register(shapeName)
	return openapi.ContentFor(c.mediaTypes, func() *openapi.Schema {
		return openapi.RefTo(pathutil.SchemaRef(shapeName))
	})
}

func (c *conversion) record(sev Severity, issue ConversionIssue) {
	issue.Severity = sev
	c.issues = append(c.issues, issue)

	attrs := []any{"path", issue.Path}
	if issue.Operation != "" {
		attrs = append(attrs, "operation", issue.Operation)
	}
	if issue.Shape != "" {
		attrs = append(attrs, "shape", issue.Shape)
	}
	if sev == SeverityInfo {
		c.log.Info(issue.Message, attrs...)
		return
	}
	c.log.Warn(issue.Message, attrs...)
}

func (c *conversion) info(issue ConversionIssue) {
	c.record(SeverityInfo, issue)
}

func (c *conversion) warn(issue ConversionIssue) {
	c.record(SeverityWarning, issue)
}

// eachOperation visits every route entry in path order.
func (c *conversion) eachOperation(fn func(route string, item *openapi.PathItem, method string, op *openapi.Operation)) {
	for route, item := range c.doc.Paths.All() {
		for _, mo := range item.Operations() {
			fn(route, item, mo.Method, mo.Operation)
		}
	}
}

// successResponses returns the 2xx responses of op.
func successResponses(op *openapi.Operation) []*openapi.Response {
	var out []*openapi.Response
	for code, resp := range op.Responses.All() {
		if httputil.IsSuccessStatus(code) {
			out = append(out, resp)
		}
	}
	return out
}
