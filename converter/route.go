package converter

import (
	"slices"
	"strings"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/httputil"
	"github.com/erraggy/aws2openapi/internal/issues"
	"github.com/erraggy/aws2openapi/internal/pathutil"
	"github.com/erraggy/aws2openapi/oaserrors"
	"github.com/erraggy/aws2openapi/openapi"
)

// shadowToken marks the route key a deprecated operation is moved to when a
// live operation claims its route.
const shadowToken = "deprecated!"

// buildOperations attaches every operation to the route table. Query and
// ec2 operations are attached once per verb.
func (c *conversion) buildOperations() error {
	for key, op := range c.src.Operations.All() {
		if op == nil {
			continue
		}
		if op.Name == "" {
			named := *op
			named.Name = key
			op = &named
		}
		for _, method := range c.methodsFor(op) {
			if err := c.addOperation(key, op, method); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *conversion) methodsFor(op *awsmodel.Operation) []string {
	if c.isQueryStyle() {
		return []string{httputil.MethodGet, httputil.MethodPost}
	}
	if op.HTTP == nil || op.HTTP.Method == "" {
		c.info(ConversionIssue{
			Path:      "paths",
			Operation: op.Name,
			Message:   "operation has no HTTP method, attached as POST",
		})
		return []string{httputil.MethodPost}
	}
	method := httputil.NormalizeMethod(op.HTTP.Method)
	if !slices.Contains(httputil.Methods, method) {
		c.warn(ConversionIssue{
			Path:      "paths",
			Operation: op.Name,
			Message:   "unsupported HTTP method, operation skipped",
			Value:     op.HTTP.Method,
		})
		return nil
	}
	return []string{method}
}

// addOperation builds one route entry and attaches it under its route key.
func (c *conversion) addOperation(key string, op *awsmodel.Operation, method string) error {
	action := &openapi.Operation{
		OperationID: op.Name,
		Description: describe(op.Documentation, op.DeprecatedMessage),
		Deprecated:  op.Deprecated,
	}
	if c.isQueryStyle() {
		action.OperationID = strings.ToUpper(method) + "_" + op.Name
		action.SetExtension("x-aws-operation-name", op.Name)
	}
	if op.DocumentationURL != "" {
		action.ExternalDocs = &openapi.ExternalDocs{URL: op.DocumentationURL}
	}

	c.buildResponses(op, action)
	c.buildRequest(op, method, action)

	route := c.routeKey(op, action)
	if err := c.claimRoute(&route, method, action); err != nil {
		return err
	}
	c.attach(route, method, action)
	c.attached[key] = append(c.attached[key], action)
	return nil
}

// routeKey derives the route key from the request URI and the protocol's
// discriminators, adding the parameters each discriminator implies.
func (c *conversion) routeKey(op *awsmodel.Operation, action *openapi.Operation) string {
	route := "/"
	if op.HTTP != nil && op.HTTP.RequestURI != "" {
		route = op.HTTP.RequestURI
	}

	if c.meta.EndpointPrefix == "sqs" && hasParameterNamed(action.Parameters, "QueueUrl") {
		route = sqsQueueRoute(route, action)
	}

	route, greedy := pathutil.NormalizeGreedy(route)
	if len(greedy) > 0 {
		c.greedy[action] = greedy
	}

	route = literalQuery(route, action)
	route = c.requiredLocationFragment(op, route)

	switch {
	case c.isQueryStyle():
		route = pathutil.AppendFragment(route, "Action="+op.Name)
		action.Parameters = append(action.Parameters,
			enumParameter("Action", inQuery, op.Name),
			enumParameter("Version", inQuery, c.meta.APIVersion),
		)
	case c.protocol == awsmodel.ProtocolJSON:
		target := c.meta.TargetPrefix + "." + op.Name
		route = pathutil.AppendFragment(route, "X-Amz-Target="+target)
		action.Parameters = append(action.Parameters, enumParameter("X-Amz-Target", inHeader, target))
	}
	return route
}

// sqsQueueRoute moves the queue URL into two path variables. SQS sends
// queue operations to the queue URL itself.
func sqsQueueRoute(route string, action *openapi.Operation) string {
	action.Parameters = slices.DeleteFunc(action.Parameters, func(p *openapi.Parameter) bool {
		return p.Name == "QueueUrl"
	})
	action.Parameters = append(action.Parameters,
		&openapi.Parameter{
			Name:        "AccountNumber",
			In:          inPath,
			Required:    true,
			Description: "The AWS account number",
			Schema:      &openapi.Schema{Type: "integer"},
		},
		&openapi.Parameter{
			Name:        "QueueName",
			In:          inPath,
			Required:    true,
			Description: "The name of the queue",
			Schema:      &openapi.Schema{Type: "string"},
		},
	)
	return "/{AccountNumber}/{QueueName}" + route
}

// literalQuery turns a query string embedded in the request URI into
// required parameters and moves it behind the fragment separator.
// "versioning" becomes a present-only flag, "list-type=2" a fixed value.
func literalQuery(route string, action *openapi.Operation) string {
	path, query, ok := strings.Cut(route, "?")
	if !ok {
		return route
	}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		p := &openapi.Parameter{Name: name, In: inQuery, Required: true}
		if value != "" {
			p.Schema = &openapi.Schema{Type: "string", Enum: []any{value}}
		} else {
			p.AllowEmptyValue = true
			p.Schema = &openapi.Schema{Type: "boolean", Enum: []any{true}}
		}
		action.Parameters = append(action.Parameters, p)
	}
	return path + pathutil.FragmentSeparator + query
}

// requiredLocationFragment appends the wire names of required querystring
// and header input members to the route key.
func (c *conversion) requiredLocationFragment(op *awsmodel.Operation, route string) string {
	if op.Input == nil {
		return route
	}
	shape := c.src.Shape(op.Input.Shape)
	if shape == nil {
		return route
	}
	var names []string
	for key, m := range shape.Members.All() {
		if m == nil || !shape.IsRequired(key) {
			continue
		}
		switch m.Location {
		case awsmodel.LocationQueryString, awsmodel.LocationHeader, awsmodel.LocationHeaders:
			names = append(names, m.WireName(key))
		}
	}
	if len(names) == 0 {
		return route
	}
	return pathutil.AppendFragment(route, strings.Join(names, "&"))
}

func enumParameter(name, in, value string) *openapi.Parameter {
	return &openapi.Parameter{
		Name:     name,
		In:       in,
		Required: true,
		Schema:   &openapi.Schema{Type: "string", Enum: []any{value}},
	}
}

// claimRoute resolves a collision at *route. A deprecated occupant moves
// to the shadow key; a deprecated newcomer goes there itself. Two live
// operations, or a second deprecated one for an occupied shadow key, are a
// conflict.
func (c *conversion) claimRoute(route *string, method string, action *openapi.Operation) error {
	existing := c.doc.Paths.Value(*route).Operation(method)
	if existing == nil {
		return nil
	}
	shadow := pathutil.AppendFragment(*route, shadowToken)
	shadowTaken := c.doc.Paths.Value(shadow).Operation(method) != nil
	conflict := &oaserrors.RouteConflictError{
		Route:    *route,
		Method:   method,
		Existing: existing.OperationID,
		Incoming: action.OperationID,
	}

	switch {
	case existing.Deprecated:
		if shadowTaken {
			conflict.Deprecated = true
			return conflict
		}
		c.attach(shadow, method, existing)
		c.info(ConversionIssue{
			Path:      issues.FormatPath("paths", shadow, method),
			Operation: existing.OperationID,
			Message:   "deprecated operation moved to shadow route, replaced by " + action.OperationID,
		})
	case action.Deprecated:
		if shadowTaken {
			conflict.Deprecated = true
			return conflict
		}
		*route = shadow
		c.info(ConversionIssue{
			Path:      issues.FormatPath("paths", shadow, method),
			Operation: action.OperationID,
			Message:   "deprecated operation attached to shadow route, " + existing.OperationID + " holds " + conflict.Route,
		})
	default:
		return conflict
	}
	return nil
}

// attach binds op to method at route. A new path item carries references
// to the signing parameters.
func (c *conversion) attach(route, method string, op *openapi.Operation) {
	item := c.doc.Paths.Value(route)
	if item == nil {
		item = &openapi.PathItem{Parameters: c.signingParameters()}
		c.doc.Paths.Set(route, item)
	}
	item.SetOperation(method, op)
}
