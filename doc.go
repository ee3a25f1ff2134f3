// Package aws2openapi converts AWS service descriptions (the ".normal.json"
// API models that ship with the AWS SDKs) into OpenAPI 3.0 documents.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - awsmodel: Decode service descriptions and their companion tables
//     (paginators, waiters, examples, preferences, region endpoints)
//   - converter: Build an OpenAPI 3.0 document from a service description
//   - openapi: The OpenAPI 3.0 document model, with ordered JSON and YAML output
//
// All five AWS wire protocols are supported: json, rest-json, rest-xml, query
// and ec2.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/aws2openapi
//
// Or install the command line tool:
//
//	go install github.com/erraggy/aws2openapi/cmd/aws2openapi@latest
//
// # Quick Start
//
// Convert a service description file:
//
//	import "github.com/erraggy/aws2openapi/converter"
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("apis/sqs-2012-11-05.normal.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Paths: %d\n", result.Stats.PathCount)
//
// Decode a description and convert it with companion tables:
//
//	import "github.com/erraggy/aws2openapi/awsmodel"
//
//	desc, err := awsmodel.ParseFile("apis/s3-2006-03-01.normal.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	pags, err := awsmodel.LoadPaginators(
//		awsmodel.CompanionPath("apis/s3-2006-03-01.normal.json", awsmodel.CompanionPaginators))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	c := converter.New()
//	c.Paginators = pags
//	result, err := c.ConvertDocument(desc)
//
// # Awsmodel Package
//
// The awsmodel package decodes service descriptions while keeping the order of
// operations, shapes and members, which the generated document reproduces.
//
// Key features:
//   - Ordered decoding of operations, shapes and members
//   - Precheck of protocol and format version
//   - Companion tables looked up by operation name
//   - Preference table building across API versions
//   - Region endpoint rule resolution
//
// # Converter Package
//
// The converter package produces one OpenAPI document per service description.
// Soft problems are reported as conversion issues with a severity; hard
// failures such as two live operations claiming the same route are errors.
//
// Key features:
//   - Route keys that keep RPC-style operations on distinct paths
//   - Query string flattening of structures, lists and maps
//   - Regular expression rewriting to the RE2 dialect
//   - Security schemes per signature version
//   - Servers built from region endpoint rules
//   - Waiters, pagination and examples from companion tables
//
// Example:
//
//	c := converter.New()
//	c.StrictMode = true
//	result, err := c.ConvertDocument(desc)
//	if err != nil {
//		var conflict *oaserrors.RouteConflictError
//		if errors.As(err, &conflict) {
//			fmt.Printf("%s and %s both use %s\n", conflict.Existing, conflict.Incoming, conflict.Route)
//		}
//		log.Fatal(err)
//	}
//
// See the converter package documentation for more details.
//
// # Command Line
//
// The aws2openapi command converts a single file or every ".normal.json" file
// below a directory:
//
//	aws2openapi convert -o deploy apis/
//	aws2openapi convert --format yaml --validate apis/sqs-2012-11-05.normal.json
//	aws2openapi preferred -o preferred.yaml apis/
//	aws2openapi mcp
package aws2openapi
