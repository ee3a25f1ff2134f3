package awsmodel

import (
	"path/filepath"
	"strings"
)

// NormalSuffix is the file name suffix of a service description.
const NormalSuffix = ".normal.json"

// IsNormalFile reports whether path names a service description.
func IsNormalFile(path string) bool {
	return strings.HasSuffix(filepath.Base(path), NormalSuffix)
}

// ServiceNameFromFilename extracts the service name from a file name such as
// "runtime.lex.v2-2020-08-07.normal.json": the leading dash-separated
// components up to the first one that starts with "2" (the API date).
func ServiceNameFromFilename(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), NormalSuffix)
	parts := strings.Split(base, "-")
	i := 1
	for i < len(parts) && !strings.HasPrefix(parts[i], "2") {
		i++
	}
	return strings.Join(parts[:i], "-")
}

// VersionFromFilename returns what follows the service name, normally the API
// version date.
func VersionFromFilename(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), NormalSuffix)
	name := ServiceNameFromFilename(filename)
	return strings.TrimPrefix(strings.TrimPrefix(base, name), "-")
}
