// Package awsmodel decodes AWS SDK service descriptions and their companion
// tables.
//
// A service description (the "*.normal.json" model shipped with the SDKs)
// declares a wire protocol, a set of operations and a dictionary of shapes.
// Decoding keeps the source order of operations, shapes and structure
// members, since that order flows into the generated OpenAPI document.
//
// Companion tables are optional and read-only:
//
//   - [Paginators]: pagination rules keyed by operation name
//   - [Waiters]: waiter definitions, matched by operation name
//   - [Examples]: worked examples keyed by operation name
//   - [PreferenceTable]: the preferred API version per service
//   - [RegionConfig]: endpoint rules used to build a server list
//
// Example:
//
//	desc, err := awsmodel.ParseFile("sqs-2012-11-05.normal.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := desc.Validate(); err != nil {
//	    log.Fatal(err) // unsupported protocol or version
//	}
package awsmodel
