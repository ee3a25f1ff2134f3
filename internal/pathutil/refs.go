package pathutil

import "strings"

// OAS 3.x reference prefixes
const (
	RefPrefixSchemas         = "#/components/schemas/"
	RefPrefixParameters      = "#/components/parameters/"
	RefPrefixSecuritySchemes = "#/components/securitySchemes/"
)

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters + name
}

// SchemaNameFromRef returns the schema name of a "#/components/schemas/" ref,
// or "" for any other ref.
func SchemaNameFromRef(ref string) string {
	name, ok := strings.CutPrefix(ref, RefPrefixSchemas)
	if !ok {
		return ""
	}
	return name
}
