// Package converter turns AWS service descriptions into OpenAPI 3.0 documents.
//
// A conversion is synchronous and self-contained: every call builds its own
// state, so one Converter may serve concurrent conversions as long as its
// companion tables are not modified meanwhile. The protocols json, rest-json,
// rest-xml, query and ec2 are supported; anything else fails the precheck.
//
// # Quick Start
//
// Convert a file using functional options:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("apis/sqs-2012-11-05.normal.json"),
//		converter.WithServiceName("sqs"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Stats.OperationCount)
//
// Or use a reusable Converter with the callback form:
//
//	c := converter.New()
//	c.Paginators = paginators
//	ok := c.Convert(desc, func(result *converter.ConversionResult, err error) {
//		// called exactly once, before Convert returns
//	})
//	if !ok {
//		// unsupported protocol or format version
//	}
//
// # Route Keys
//
// Several AWS operations can share one HTTP method and path. Each route key
// is therefore made unique by appending a fragment: "Action=Name" for query
// and ec2, "X-Amz-Target=Prefix.Name" for json, and literal or required
// query and header names for the REST protocols. A deprecated operation that
// collides with a live one is moved to a "deprecated!" fragment; two live
// operations on the same key abort the conversion with an
// *oaserrors.RouteConflictError.
//
// # Conversion Issues
//
// Every best-effort decision is recorded as a ConversionIssue. Info issues
// describe choices made on the caller's behalf (a pattern rewritten for RE2,
// a synthesized status code); warnings describe lossy results (a pattern
// that could not be expressed, a map parameter capped). Issues are also sent
// to the configured Logger.
//
// # Related Packages
//
//   - [github.com/erraggy/aws2openapi/awsmodel] - Decode service descriptions and companion tables
//   - [github.com/erraggy/aws2openapi/openapi] - The generated document model
//   - [github.com/erraggy/aws2openapi/oaserrors] - Error types for errors.Is/As checks
package converter
