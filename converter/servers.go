package converter

import (
	"regexp"
	"strings"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/ordered"
	"github.com/erraggy/aws2openapi/openapi"
)

var schemeRegex = regexp.MustCompile(`^https?://`)

// buildServers lists one server per distinct endpoint URL across the
// configured regions. Without a region config no servers are written.
func (c *conversion) buildServers() {
	rc := c.cfg.RegionConfig
	if rc == nil {
		return
	}
	regions := c.cfg.Regions
	if len(regions) == 0 {
		regions = awsmodel.DefaultRegions()
	}
	prefix := c.meta.EndpointPrefix

	byEndpoint := ordered.New[[]awsmodel.Region]()
	for _, region := range regions {
		cfg := rc.Resolve(region.Code, prefix)
		if cfg == nil || cfg.Endpoint == "" {
			c.log.Debug("no endpoint rule for region", "region", region.Code)
			continue
		}
		endpoints := withSchemes(cfg.Endpoint)
		if cfg.GeneralEndpoint != "" {
			endpoints = append(endpoints, withSchemes(cfg.GeneralEndpoint)...)
		}
		for _, ep := range endpoints {
			byEndpoint.Set(ep, append(byEndpoint.Value(ep), region))
		}
	}

	serviceName := c.meta.ServiceAbbreviation
	if serviceName == "" {
		serviceName = c.meta.ServiceFullName
	}
	for endpoint, covered := range byEndpoint.All() {
		c.doc.Servers = append(c.doc.Servers, newServer(endpoint, prefix, serviceName, covered))
	}
	if len(c.doc.Servers) == 0 {
		c.warn(ConversionIssue{
			Path:    "servers",
			Message: "region config has no endpoint for " + prefix,
		})
	}
}

// withSchemes returns endpoint unchanged when it has a scheme, otherwise
// its http and https forms.
func withSchemes(endpoint string) []string {
	if schemeRegex.MatchString(endpoint) {
		return []string{endpoint}
	}
	return []string{"http://" + endpoint, "https://" + endpoint}
}

func newServer(endpoint, endpointPrefix, serviceName string, regions []awsmodel.Region) *openapi.Server {
	url := strings.ReplaceAll(endpoint, "{service}", endpointPrefix)
	vars := ordered.New[*openapi.ServerVariable]()

	s := &openapi.Server{URL: url}
	if strings.Contains(url, "{region}") {
		codes := make([]string, 0, len(regions))
		for _, r := range regions {
			codes = append(codes, r.Code)
		}
		vars.Set("region", &openapi.ServerVariable{Description: "The AWS region", Enum: codes, Default: codes[0]})
		s.Description = "The " + serviceName + endpointDescription(regions)
	} else {
		s.Description = "The general " + serviceName + endpointDescription(regions)
	}
	// s3 accepts either separator between bucket and region
	if strings.Contains(url, "{dash-or-dot}") {
		vars.Set("dash-or-dot", &openapi.ServerVariable{
			Description: "The service/region URL separator",
			Enum:        []string{".", "-"},
			Default:     ".",
		})
	}
	if vars.Len() > 0 {
		s.Variables = vars
	}
	return s
}

func endpointDescription(regions []awsmodel.Region) string {
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}
	switch {
	case len(names) == 1:
		return " endpoint for " + names[0]
	case len(names) <= 3:
		return " endpoint for " + strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	default:
		return " multi-region endpoint"
	}
}
