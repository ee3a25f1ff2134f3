package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/aws2openapi"
	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/testutil"
)

func TestEnvelope(t *testing.T) {
	doc := convertFixture(t, testutil.RESTJSONService).Document
	info := doc.Info

	assert.Equal(t, "AWS Elemental MediaStore Data Plane", info.Title)
	assert.Equal(t, "2017-09-01", info.Version)
	require.NotNil(t, info.Contact)
	assert.Equal(t, aws2openapi.ProjectURL, info.Contact.URL)
	require.NotNil(t, info.License)
	assert.Equal(t, "Apache 2.0 License", info.License.Name)

	assert.Equal(t, "v4", info.Extra["x-release"])
	assert.Equal(t, "amazonaws.com", info.Extra["x-providerName"])
	assert.Equal(t, "data.mediastore", info.Extra["x-serviceName"])
	assert.Equal(t, true, info.Extra["x-preferred"], "services without a preference entry are preferred")

	origin, ok := info.Extra["x-origin"].([]any)
	require.True(t, ok)
	require.Len(t, origin, 1)
	entry := origin[0].(map[string]any)
	assert.Equal(t, "https://raw.githubusercontent.com/aws/aws-sdk-js/master/apis/{filename}", entry["url"])

	require.NotNil(t, doc.ExternalDocs)
	assert.Equal(t, "https://docs.aws.amazon.com/mediastore/", doc.ExternalDocs.URL)
}

func TestEnvelopeFilenameAndPreference(t *testing.T) {
	prefs := awsmodel.BuildPreferences([]awsmodel.ServiceVersion{
		{ServiceName: "sqs", APIVersion: "2012-11-05"},
		{ServiceName: "sqs", APIVersion: "2020-01-01"},
	})
	doc := convertFixture(t, testutil.QueryService, func(c *Converter) {
		c.Filename = "sqs-2012-11-05.normal.json"
		c.Preferences = prefs
	}).Document

	entry := doc.Info.Extra["x-origin"].([]any)[0].(map[string]any)
	assert.Equal(t, "https://raw.githubusercontent.com/aws/aws-sdk-js/master/apis/sqs-2012-11-05.normal.json", entry["url"])
	assert.Equal(t, false, doc.Info.Extra["x-preferred"], "a newer sqs version exists")
}

func TestMediaTypes(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{"json", testutil.JSONService, []string{"application/json"}},
		{"rest-json", testutil.RESTJSONService, []string{"application/json"}},
		{"rest-xml", testutil.RESTXMLService, []string{"text/xml"}},
		{"query with namespace", testutil.QueryService, []string{"text/xml"}},
		{"ec2", testutil.EC2Service, []string{"text/xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := newConversion(New(), testutil.ParseService(t, tt.src))
			conv.buildEnvelope()
			assert.Equal(t, tt.expected, conv.mediaTypes)
		})
	}
}

func TestMediaTypesQueryFallback(t *testing.T) {
	desc := testutil.ParseService(t, testutil.QueryService)
	desc.Metadata.XMLNamespace = ""

	conv := newConversion(New(), desc)
	conv.buildEnvelope()
	assert.Equal(t, []string{"text/xml"}, conv.mediaTypes)
	assert.False(t, conv.xmlQuery)
	require.Len(t, conv.issues, 1)
	assert.Equal(t, SeverityInfo, conv.issues[0].Severity)

	desc.Metadata.JSONVersion = "1.0"
	conv = newConversion(New(), desc)
	conv.buildEnvelope()
	assert.Equal(t, []string{"application/json"}, conv.mediaTypes)
}

func TestSecuritySchemes(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		authType  string
		params    []string
	}{
		{"v4", "v4", "awsSigv4", amzHeaders},
		{"s3v4", "s3v4", "awsSigv4", amzHeaders},
		{"s3", "s3", "awsS3", s3Headers},
		{"v2", "v2", "awsSigv2", v2Params},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := testutil.ParseService(t, testutil.JSONService)
			desc.Metadata.SignatureVersion = tt.signature

			result, err := New().ConvertDocument(desc)
			require.NoError(t, err)
			scheme := result.Document.Components.SecuritySchemes.Value("hmac")
			require.NotNil(t, scheme)
			assert.Equal(t, "apiKey", scheme.Type)
			assert.Equal(t, "Authorization", scheme.Name)
			assert.Equal(t, tt.authType, scheme.Extra["x-amazon-apigateway-authtype"])
			assert.Equal(t, tt.params, result.Document.Components.Parameters.Keys())
			require.Len(t, result.Document.Security, 1)
			assert.Contains(t, result.Document.Security[0], "hmac")
		})
	}
}

func TestUnknownSignatureVersion(t *testing.T) {
	desc := testutil.ParseService(t, testutil.JSONService)
	desc.Metadata.SignatureVersion = "v9"

	result, err := New().ConvertDocument(desc)
	require.NoError(t, err)
	assert.True(t, hasIssue(result, SeverityWarning, "unknown signature version"))
	assert.Zero(t, result.Document.Components.Parameters.Len())
	for _, item := range result.Document.Paths.All() {
		assert.Empty(t, item.Parameters)
	}
}
