// Package openapi models the OpenAPI 3.0 documents produced by the converter.
//
// Only the subset of OpenAPI 3.0 that the converter emits is modelled.
// Properties, component schemas, paths, responses and content maps keep
// insertion order, so the output follows the order of the service
// description. Every type with an Extra field marshals its vendor
// extensions inline, in JSON and in YAML.
//
//	doc := openapi.NewDocument()
//	doc.Info.Title = "Amazon Simple Queue Service"
//	data, err := json.MarshalIndent(doc, "", "  ")
package openapi
