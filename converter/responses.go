package converter

import (
	"strconv"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/httputil"
	"github.com/erraggy/aws2openapi/internal/issues"
	"github.com/erraggy/aws2openapi/internal/ordered"
	"github.com/erraggy/aws2openapi/internal/stringutil"
	"github.com/erraggy/aws2openapi/openapi"
)

// firstSyntheticStatus is the status given to the first error without a
// declared status; later ones count up from it.
const firstSyntheticStatus = 480

// buildResponses adds the success response and one response per error.
func (c *conversion) buildResponses(op *awsmodel.Operation, action *openapi.Operation) {
	action.Responses = ordered.New[*openapi.Response]()

	status := httputil.StatusOK
	if op.HTTP != nil && op.HTTP.ResponseCode != 0 {
		status = op.HTTP.ResponseCode
	}
	success := &openapi.Response{Description: "Success"}
	if op.Output != nil && op.Output.Shape != "" {
		success.Content = c.content(op.Output.Shape)
		for _, ex := range c.cfg.Examples.For(op.Name) {
			if ex != nil && ex.Output != nil {
				c.examples[op.Output.Shape] = ex.Output
			}
		}
	}
	action.Responses.Set(strconv.Itoa(status), success)

	synthetic := firstSyntheticStatus
	for _, e := range op.Errors {
		if e == nil || e.Shape == "" {
			continue
		}
		shape := c.src.Shape(e.Shape)

		code := errorStatus(e, shape)
		if code == 0 {
			code = synthetic
			synthetic++
		}

		description := stringutil.Clean(e.Documentation)
		if description == "" {
			description = e.Shape
		}
		failure := &openapi.Response{Description: description, Content: c.content(e.Shape)}
		if e.Exception || (shape != nil && shape.Exception) {
			failure.Extra = map[string]any{"x-aws-exception": true}
		}

		key := strconv.Itoa(code)
		if action.Responses.Has(key) {
			c.info(ConversionIssue{
				Path:      issues.FormatPath("responses", key),
				Operation: op.Name,
				Message:   "error " + e.Shape + " replaces an earlier response with the same status",
			})
		}
		action.Responses.Set(key, failure)
	}
}

// errorStatus returns the declared status of an error: on the reference
// first, then on the error shape. Zero means none was declared.
func errorStatus(e *awsmodel.ErrorRef, shape *awsmodel.Shape) int {
	if e.Error != nil && e.Error.HTTPStatusCode != 0 {
		return e.Error.HTTPStatusCode
	}
	if shape != nil && shape.Error != nil {
		return shape.Error.HTTPStatusCode
	}
	return 0
}
