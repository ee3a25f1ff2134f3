package converter

import (
	"strings"

	"github.com/erraggy/aws2openapi"
	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/httputil"
	"github.com/erraggy/aws2openapi/internal/pathutil"
	"github.com/erraggy/aws2openapi/internal/stringutil"
	"github.com/erraggy/aws2openapi/openapi"
)

const (
	sourceBaseURL = "https://raw.githubusercontent.com/aws/aws-sdk-js/master/apis/"
	docsBaseURL   = "https://docs.aws.amazon.com/"
	providerName  = "amazonaws.com"
)

// FilenamePlaceholder is written into the x-origin URL when no filename is
// configured. Drivers may substitute it after conversion.
const FilenamePlaceholder = "{filename}"

// buildEnvelope fills the info block, external docs and media types.
func (c *conversion) buildEnvelope() {
	info := c.doc.Info
	info.Version = c.meta.APIVersion
	info.Title = c.meta.ServiceFullName
	info.Description = stringutil.Clean(c.src.Documentation)
	info.TermsOfService = "https://aws.amazon.com/service-terms/"
	info.Contact = &openapi.Contact{
		Name: "aws2openapi",
		URL:  aws2openapi.ProjectURL,
	}
	info.License = &openapi.License{
		Name: "Apache 2.0 License",
		URL:  "http://www.apache.org/licenses/",
	}

	filename := c.cfg.Filename
	if filename == "" {
		filename = FilenamePlaceholder
	}
	info.Extra = map[string]any{
		"x-release": c.meta.SignatureVersion,
		"x-logo": map[string]any{
			"url":             "https://twitter.com/awscloud/profile_image?size=original",
			"backgroundColor": "#FFFFFF",
		},
		"x-providerName": providerName,
		"x-serviceName":  c.meta.EndpointPrefix,
		"x-origin": []any{map[string]any{
			"contentType": httputil.MediaTypeJSON,
			"url":         sourceBaseURL + filename,
			"converter": map[string]any{
				"url":     aws2openapi.ProjectURL,
				"version": aws2openapi.Version(),
			},
			"x-apisguru-driver": "external",
		}},
		"x-apiClientRegistration": map[string]any{
			"url": "https://portal.aws.amazon.com/gp/aws/developer/registration/index.html?nc2=h_ct",
		},
		"x-apisguru-categories": []string{"cloud"},
		"x-preferred":           c.cfg.Preferences.IsPreferred(c.serviceName, c.meta.APIVersion),
	}

	segments := strings.Split(c.meta.EndpointPrefix, ".")
	c.doc.ExternalDocs = &openapi.ExternalDocs{
		Description: "Amazon Web Services documentation",
		URL:         docsBaseURL + segments[len(segments)-1] + "/",
	}

	c.mediaTypes = c.detectMediaTypes()
}

// detectMediaTypes picks the request and response media types. A query
// document may declare both a JSON version and an XML namespace.
func (c *conversion) detectMediaTypes() []string {
	var types []string
	p := c.protocol
	if p == awsmodel.ProtocolRESTJSON || p == awsmodel.ProtocolJSON ||
		(p == awsmodel.ProtocolQuery && c.meta.JSONVersion != "") {
		types = append(types, httputil.MediaTypeJSON)
	}
	c.xmlQuery = p == awsmodel.ProtocolQuery && c.meta.XMLNamespace != ""
	if p == awsmodel.ProtocolRESTXML || p == awsmodel.ProtocolEC2 || c.xmlQuery {
		types = append(types, httputil.MediaTypeXML)
	}
	if len(types) == 0 {
		c.info(ConversionIssue{
			Path:    "paths",
			Message: "no media type marker for protocol " + p + ", assuming " + httputil.MediaTypeXML,
		})
		types = append(types, httputil.MediaTypeXML)
	}
	return types
}

// signatureKind is the request signing scheme of the service.
type signatureKind int

const (
	signatureNone signatureKind = iota
	signatureV4
	signatureS3
	signatureV2
)

var (
	amzHeaders = []string{"X-Amz-Content-Sha256", "X-Amz-Date", "X-Amz-Algorithm", "X-Amz-Credential",
		"X-Amz-Security-Token", "X-Amz-Signature", "X-Amz-SignedHeaders"}
	s3Headers = []string{"x-amz-security-token"}
	v2Params  = []string{"AWSAccessKeyId", "Action", "SignatureMethod", "SignatureVersion", "Timestamp",
		"Version", "Signature"}
)

const securitySchemeName = "hmac"

// buildSecurity declares the hmac scheme and the signing parameters that
// every path item references.
func (c *conversion) buildSecurity() {
	scheme := &openapi.SecurityScheme{Type: "apiKey", Name: "Authorization", In: "header"}
	params := c.doc.Components.Parameters

	switch c.meta.SignatureVersion {
	case "":
	case "v4", "s3v4":
		c.signature = signatureV4
		scheme.Description = "Amazon Signature authorization v4"
		scheme.Extra = map[string]any{"x-amazon-apigateway-authtype": "awsSigv4"}
		for _, h := range amzHeaders {
			params.Set(h, &openapi.Parameter{Name: h, In: "header", Schema: &openapi.Schema{Type: "string"}})
		}
	case "s3":
		c.signature = signatureS3
		scheme.Description = "Amazon S3 signature"
		scheme.Extra = map[string]any{"x-amazon-apigateway-authtype": "awsS3"}
		for _, h := range s3Headers {
			params.Set(h, &openapi.Parameter{Name: h, In: "header", Schema: &openapi.Schema{Type: "string"}})
		}
	case "v2":
		c.signature = signatureV2
		scheme.Description = "Amazon Signature authorization v2"
		scheme.Extra = map[string]any{"x-amazon-apigateway-authtype": "awsSigv2"}
		for _, p := range v2Params {
			params.Set(p, &openapi.Parameter{Name: p, In: "query", Required: true, Schema: &openapi.Schema{Type: "string"}})
		}
	default:
		c.warn(ConversionIssue{
			Path:    "components.securitySchemes.hmac",
			Message: "unknown signature version " + c.meta.SignatureVersion,
			Value:   c.meta.SignatureVersion,
		})
	}

	c.doc.Components.SecuritySchemes.Set(securitySchemeName, scheme)
	c.doc.Security = []openapi.SecurityRequirement{{securitySchemeName: {}}}
}

// signingParameters returns references to the component parameters a new
// path item carries.
func (c *conversion) signingParameters() []*openapi.Parameter {
	var names []string
	switch c.signature {
	case signatureV4:
		names = amzHeaders
	case signatureS3:
		names = s3Headers
	case signatureV2:
		names = v2Params
	default:
		return nil
	}
	out := make([]*openapi.Parameter, 0, len(names))
	for _, n := range names {
		out = append(out, &openapi.Parameter{Ref: pathutil.ParameterRef(n)})
	}
	return out
}
