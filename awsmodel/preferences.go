package awsmodel

import (
	"os"
	"slices"
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/aws2openapi/oaserrors"
)

// Preference records which API version of a service is the preferred one.
type Preference struct {
	ServiceName string   `yaml:"serviceName" json:"serviceName"`
	Versions    []string `yaml:"versions" json:"versions"`
	Preferred   string   `yaml:"preferred" json:"preferred"`
}

// PreferenceTable lists one entry per service.
type PreferenceTable []*Preference

// Lookup returns the entry for serviceName, or nil.
func (t PreferenceTable) Lookup(serviceName string) *Preference {
	for _, p := range t {
		if p != nil && p.ServiceName == serviceName {
			return p
		}
	}
	return nil
}

// IsPreferred reports whether version is the preferred version of serviceName.
// Services without an entry are always preferred.
func (t PreferenceTable) IsPreferred(serviceName, version string) bool {
	p := t.Lookup(serviceName)
	if p == nil {
		return true
	}
	return p.Preferred == version
}

// ServiceVersion is one (service name, API version) observation.
type ServiceVersion struct {
	ServiceName string
	APIVersion  string
}

// BuildPreferences groups observations by service, in first-seen order, sorts
// each service's versions and marks the newest one preferred. The newest
// version stays in Versions.
func BuildPreferences(observations []ServiceVersion) PreferenceTable {
	var table PreferenceTable
	for _, o := range observations {
		if o.ServiceName == "" || o.APIVersion == "" {
			continue
		}
		p := table.Lookup(o.ServiceName)
		if p == nil {
			p = &Preference{ServiceName: o.ServiceName}
			table = append(table, p)
		}
		if !slices.Contains(p.Versions, o.APIVersion) {
			p.Versions = append(p.Versions, o.APIVersion)
		}
	}
	for _, p := range table {
		sort.Strings(p.Versions)
		p.Preferred = p.Versions[len(p.Versions)-1]
	}
	return table
}

// LoadPreferences reads a preference table file.
func LoadPreferences(path string) (PreferenceTable, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	var t PreferenceTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "invalid preference table", Cause: err}
	}
	return t, nil
}
