package converter

import (
	"slices"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/issues"
	"github.com/erraggy/aws2openapi/internal/pathutil"
	"github.com/erraggy/aws2openapi/openapi"
)

// postProcess runs the document-wide passes once every route and schema
// exists.
func (c *conversion) postProcess() {
	for _, item := range c.doc.Paths.All() {
		item.Parameters = dedupeParameters(item.Parameters)
	}
	c.eachOperation(func(_ string, _ *openapi.PathItem, _ string, op *openapi.Operation) {
		op.Parameters = dedupeParameters(op.Parameters)
		c.attachWaiters(op)
	})
	c.markEquivalentPaths()
	c.backfillPathParameters()
	c.retypeGreedy()
	c.applyPatches()
}

// dedupeParameters keeps the first parameter of each (name, in) pair.
// References are compared by target.
func dedupeParameters(params []*openapi.Parameter) []*openapi.Parameter {
	if len(params) < 2 {
		return params
	}
	type key struct{ ref, name, in string }
	seen := make(map[key]bool, len(params))
	out := params[:0]
	for _, p := range params {
		k := key{ref: p.Ref, name: p.Name, in: p.In}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// waiterExtension is one entry of x-waiters.
type waiterExtension struct {
	Name        string               `yaml:"name" json:"name"`
	Operation   string               `yaml:"operation" json:"operation"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Delay       int                  `yaml:"delay" json:"delay"`
	MaxAttempts int                  `yaml:"maxAttempts" json:"maxAttempts"`
	Acceptors   []*awsmodel.Acceptor `yaml:"acceptors" json:"acceptors"`
}

// attachWaiters adds the waiters polling op as x-waiters. Query and ec2
// route entries are matched by x-aws-operation-name.
func (c *conversion) attachWaiters(op *openapi.Operation) {
	name := op.Extension("x-aws-operation-name")
	if name == "" {
		name = op.OperationID
	}
	waiters := c.cfg.Waiters.ForOperation(name)
	if len(waiters) == 0 {
		return
	}
	out := make([]waiterExtension, 0, len(waiters))
	for _, w := range waiters {
		out = append(out, waiterExtension{
			Name:        w.Name,
			Operation:   w.Operation,
			Description: w.Description,
			Delay:       w.Delay,
			MaxAttempts: w.MaxAttempts,
			Acceptors:   w.Acceptors,
		})
	}
	op.SetExtension("x-waiters", out)
}

// markEquivalentPaths sets x-hasEquivalentPaths when two route keys only
// differ by variable names or fragment.
func (c *conversion) markEquivalentPaths() {
	seen := make(map[string]bool, c.doc.Paths.Len())
	for route := range c.doc.Paths.All() {
		d := pathutil.Deparameterize(route)
		if seen[d] {
			if c.doc.Extra == nil {
				c.doc.Extra = make(map[string]any)
			}
			c.doc.Extra["x-hasEquivalentPaths"] = true
			return
		}
		seen[d] = true
	}
}

// backfillPathParameters declares every template variable that neither the
// operation nor its path item describes.
func (c *conversion) backfillPathParameters() {
	c.eachOperation(func(route string, item *openapi.PathItem, method string, op *openapi.Operation) {
		for _, name := range pathutil.PathParams(route) {
			if hasPathParameter(op.Parameters, name) || hasPathParameter(item.Parameters, name) {
				continue
			}
			op.Parameters = append(op.Parameters, &openapi.Parameter{
				Name:     name,
				In:       inPath,
				Required: true,
				Schema:   &openapi.Schema{Type: "string"},
			})
			c.info(ConversionIssue{
				Path:      issues.FormatPath("paths", route, method, "parameters"),
				Operation: op.OperationID,
				Message:   "path parameter " + name + " is not described, declared as a string",
			})
		}
	})
}

func hasPathParameter(params []*openapi.Parameter, name string) bool {
	return slices.ContainsFunc(params, func(p *openapi.Parameter) bool {
		return p.Name == name && p.In == inPath
	})
}

// retypeGreedy describes multi-valued path variables such as "{Key+}" as
// arrays of segments.
func (c *conversion) retypeGreedy() {
	for op, names := range c.greedy {
		for _, p := range op.Parameters {
			if p.In != inPath || !slices.Contains(names, p.Name) {
				continue
			}
			p.Schema = stringArray()
			p.Style = "simple"
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra["x-greedy"] = true
		}
	}
}

// servicePatch corrects a known defect of one service description.
type servicePatch struct {
	service     string
	description string
	apply       func(doc *openapi.Document) bool
}

var servicePatches = []servicePatch{
	{
		service:     "data.mediastore",
		description: "GetObjectResponse lists a header member as required",
		apply: func(doc *openapi.Document) bool {
			s := doc.Components.Schemas.Value("GetObjectResponse")
			if s == nil || len(s.Required) == 0 {
				return false
			}
			s.Required = nil
			return true
		},
	},
}

func (c *conversion) applyPatches() {
	for _, p := range servicePatches {
		if p.service != c.meta.EndpointPrefix {
			continue
		}
		if p.apply(c.doc) {
			c.info(ConversionIssue{Path: "components.schemas", Message: "patched: " + p.description})
		}
	}
}
