package awsmodel

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// RegionConfig is the endpoint rule table: rules keyed by "region/service"
// (either side may be "*" and the region may be a prefix like "cn-*"), each
// either naming an entry of Patterns or carrying a config inline.
type RegionConfig struct {
	Rules    map[string]*EndpointRule   `yaml:"rules"`
	Patterns map[string]*EndpointConfig `yaml:"patterns"`
}

// EndpointConfig is the endpoint template for a set of regions.
type EndpointConfig struct {
	Endpoint         string `yaml:"endpoint"`
	GeneralEndpoint  string `yaml:"generalEndpoint,omitempty"`
	GlobalEndpoint   bool   `yaml:"globalEndpoint,omitempty"`
	SigningRegion    string `yaml:"signingRegion,omitempty"`
	SignatureVersion string `yaml:"signatureVersion,omitempty"`
}

// EndpointRule is either a pattern name or an inline config.
type EndpointRule struct {
	Pattern string
	Config  *EndpointConfig
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *EndpointRule) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		r.Pattern = node.Value
		return nil
	case yaml.MappingNode:
		r.Config = &EndpointConfig{}
		return node.Decode(r.Config)
	default:
		return fmt.Errorf("awsmodel: endpoint rule at line %d must be a string or mapping", node.Line)
	}
}

// LoadRegionConfig reads an endpoint rule table.
func LoadRegionConfig(path string) (*RegionConfig, error) {
	var rc RegionConfig
	if err := decodeFile(path, &rc); err != nil {
		return nil, err
	}
	return &rc, nil
}

// ParseRegionConfig decodes an endpoint rule table.
func ParseRegionConfig(data []byte) (*RegionConfig, error) {
	var rc RegionConfig
	if err := decodeBytes(data, "", &rc); err != nil {
		return nil, err
	}
	return &rc, nil
}

// Resolve returns the most specific endpoint config for region and
// endpointPrefix, trying in order "region/prefix", "regionPrefix/prefix",
// "region/*", "regionPrefix/*", "*/prefix" and "*/*".
func (rc *RegionConfig) Resolve(region, endpointPrefix string) *EndpointConfig {
	if rc == nil {
		return nil
	}
	rp := RegionPrefix(region)
	candidates := [][2]string{
		{region, endpointPrefix},
		{rp, endpointPrefix},
		{region, "*"},
		{rp, "*"},
		{"*", endpointPrefix},
		{"*", "*"},
	}
	for _, c := range candidates {
		if c[0] == "" || c[1] == "" {
			continue
		}
		rule, ok := rc.Rules[c[0]+"/"+c[1]]
		if !ok || rule == nil {
			continue
		}
		if rule.Config != nil {
			return rule.Config
		}
		if cfg := rc.Patterns[rule.Pattern]; cfg != nil {
			return cfg
		}
	}
	return nil
}

// RegionPrefix turns "us-east-1" into "us-*" and "us-gov-west-1" into
// "us-gov-*". Codes with fewer than three parts have no prefix.
func RegionPrefix(region string) string {
	parts := strings.Split(region, "-")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[:len(parts)-2], "-") + "-*"
}

// Region is a named AWS region.
type Region struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"full_name" json:"full_name"`
}

// DefaultRegions returns the public regions used to build server lists when
// the caller supplies none.
func DefaultRegions() []Region {
	return []Region{
		{"us-east-1", "US East (N. Virginia)"},
		{"us-east-2", "US East (Ohio)"},
		{"us-west-1", "US West (N. California)"},
		{"us-west-2", "US West (Oregon)"},
		{"us-gov-west-1", "AWS GovCloud (US-West)"},
		{"us-gov-east-1", "AWS GovCloud (US-East)"},
		{"ca-central-1", "Canada (Central)"},
		{"eu-north-1", "EU (Stockholm)"},
		{"eu-west-1", "EU (Ireland)"},
		{"eu-west-2", "EU (London)"},
		{"eu-west-3", "EU (Paris)"},
		{"eu-central-1", "EU (Frankfurt)"},
		{"eu-south-1", "EU (Milan)"},
		{"af-south-1", "Africa (Cape Town)"},
		{"ap-northeast-1", "Asia Pacific (Tokyo)"},
		{"ap-northeast-2", "Asia Pacific (Seoul)"},
		{"ap-northeast-3", "Asia Pacific (Osaka)"},
		{"ap-southeast-1", "Asia Pacific (Singapore)"},
		{"ap-southeast-2", "Asia Pacific (Sydney)"},
		{"ap-east-1", "Asia Pacific (Hong Kong)"},
		{"ap-south-1", "Asia Pacific (Mumbai)"},
		{"sa-east-1", "South America (São Paulo)"},
		{"me-south-1", "Middle East (Bahrain)"},
		{"cn-north-1", "China (Beijing)"},
		{"cn-northwest-1", "China (Ningxia)"},
	}
}
