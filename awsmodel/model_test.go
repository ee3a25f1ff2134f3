package awsmodel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/aws2openapi/oaserrors"
)

const sampleDescription = `{
  "version": "2.0",
  "metadata": {
    "apiVersion": "2012-11-05",
    "endpointPrefix": "sqs",
    "protocol": "query",
    "serviceFullName": "Amazon Simple Queue Service",
    "signatureVersion": "v4",
    "xmlNamespace": "http://queue.amazonaws.com/doc/2012-11-05/"
  },
  "operations": {
    "SendMessage": {
      "http": {"method": "POST", "requestUri": "/"},
      "input": {"shape": "SendMessageRequest"},
      "errors": [{"shape": "InvalidMessageContents"}]
    },
    "AddPermission": {
      "name": "AddPermission",
      "http": {"method": "POST", "requestUri": "/"}
    }
  },
  "shapes": {
    "SendMessageRequest": {
      "type": "structure",
      "required": ["QueueUrl", "MessageBody"],
      "members": {
        "QueueUrl": {"shape": "String"},
        "MessageBody": {"shape": "String", "locationName": "Body"},
        "DelaySeconds": {"shape": "Integer", "flattened": true}
      }
    },
    "String": {"type": "string", "min": "1", "max": 256},
    "Integer": {"type": "integer"},
    "InvalidMessageContents": {
      "type": "structure",
      "members": {},
      "error": {"code": "InvalidMessageContents", "httpStatusCode": 400, "senderFault": true},
      "exception": true
    }
  }
}`

func TestParseKeepsOrder(t *testing.T) {
	d, err := Parse([]byte(sampleDescription))
	require.NoError(t, err)

	assert.Equal(t, []string{"SendMessage", "AddPermission"}, d.Operations.Keys())
	assert.Equal(t, []string{"SendMessageRequest", "String", "Integer", "InvalidMessageContents"}, d.Shapes.Keys())

	req := d.Shape("SendMessageRequest")
	require.NotNil(t, req)
	assert.Equal(t, []string{"QueueUrl", "MessageBody", "DelaySeconds"}, req.Members.Keys())
	assert.True(t, req.IsRequired("MessageBody"))
	assert.Equal(t, "Body", req.Members.Value("MessageBody").WireName("MessageBody"))
	assert.Equal(t, "QueueUrl", req.Members.Value("QueueUrl").WireName("QueueUrl"))
	require.NotNil(t, req.Members.Value("DelaySeconds").Flattened)
	assert.True(t, *req.Members.Value("DelaySeconds").Flattened)
}

func TestParseDefaultsOperationName(t *testing.T) {
	d, err := Parse([]byte(sampleDescription))
	require.NoError(t, err)
	op, ok := d.Operations.Get("SendMessage")
	require.True(t, ok)
	assert.Equal(t, "SendMessage", op.Name)
}

func TestParseBounds(t *testing.T) {
	d, err := Parse([]byte(sampleDescription))
	require.NoError(t, err)

	s := d.Shape("String")
	require.NotNil(t, s.Min)
	assert.Equal(t, "1", s.Min.Text)
	assert.True(t, s.Min.Valid)
	assert.Equal(t, int64(1), s.Min.Int())
	require.NotNil(t, s.Max)
	assert.Empty(t, s.Max.Text)
	assert.Equal(t, int64(256), s.Max.Int())
}

func TestParseErrorInfo(t *testing.T) {
	d, err := Parse([]byte(sampleDescription))
	require.NoError(t, err)
	s := d.Shape("InvalidMessageContents")
	require.NotNil(t, s.Error)
	assert.Equal(t, 400, s.Error.HTTPStatusCode)
	assert.True(t, s.Exception)
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12", 12, true},
		{" 7 ", 7, true},
		{"-3", -3, true},
		{"10abc", 10, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))

	_, err = Parse([]byte(`{"shapes": [1, 2]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		protocol string
		ok       bool
	}{
		{"missing version", "", "json", true},
		{"version 2.0", "2.0", "rest-xml", true},
		{"ec2", "2.0", "ec2", true},
		{"bad version", "1.0", "json", false},
		{"bad protocol", "2.0", "smithy-rpc-v2-cbor", false},
		{"no protocol", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &ServiceDescription{Version: tt.version, Metadata: &Metadata{Protocol: tt.protocol}}
			err := d.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var unsupported *oaserrors.UnsupportedError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.protocol, unsupported.Protocol)
		})
	}
}

func TestServiceNameFromFilename(t *testing.T) {
	tests := []struct {
		file    string
		name    string
		version string
	}{
		{"apis/sqs-2012-11-05.normal.json", "sqs", "2012-11-05"},
		{"runtime.lex.v2-2020-08-07.normal.json", "runtime.lex.v2", "2020-08-07"},
		{"/x/iot-data-2015-05-28.normal.json", "iot-data", "2015-05-28"},
		{"nodate.normal.json", "nodate", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, ServiceNameFromFilename(tt.file), tt.file)
		assert.Equal(t, tt.version, VersionFromFilename(tt.file), tt.file)
	}
}

func TestCompanionPath(t *testing.T) {
	assert.Equal(t, "a/s3-2006-03-01.waiters2.json", CompanionPath("a/s3-2006-03-01.normal.json", CompanionWaiters))
	assert.Empty(t, CompanionPath("a/s3.json", CompanionWaiters))
	assert.True(t, IsNormalFile("a/s3-2006-03-01.normal.json"))
	assert.False(t, IsNormalFile("a/s3-2006-03-01.paginators.json"))
}

func TestCompanionTables(t *testing.T) {
	pag, err := ParsePaginators([]byte(`{"pagination": {"ListQueues": {"input_token": "NextToken", "limit_key": "MaxResults"},
		"ListThings": {"input_token": ["A", "B"], "output_token": ["A", "B"]}}}`))
	require.NoError(t, err)
	assert.Equal(t, StringList{"NextToken"}, pag.For("ListQueues").InputToken)
	assert.Equal(t, "MaxResults", pag.For("ListQueues").LimitKey)
	assert.Equal(t, StringList{"A", "B"}, pag.For("ListThings").InputToken)
	assert.Nil(t, pag.For("Missing"))

	w, err := ParseWaiters([]byte(`{"version": 2, "waiters": {
		"BucketExists": {"operation": "HeadBucket", "delay": 5, "maxAttempts": 20,
			"acceptors": [{"expected": 200, "matcher": "status", "state": "success"}]},
		"BucketNotExists": {"operation": "HeadBucket", "delay": 5, "maxAttempts": 20, "acceptors": []},
		"ObjectExists": {"operation": "HeadObject", "delay": 5, "maxAttempts": 20, "acceptors": []}}}`))
	require.NoError(t, err)
	got := w.ForOperation("HeadBucket")
	require.Len(t, got, 2)
	assert.Equal(t, "BucketExists", got[0].Name)
	assert.Equal(t, "BucketNotExists", got[1].Name)
	assert.Equal(t, "status", got[0].Acceptors[0].Matcher)

	ex, err := ParseExamples([]byte(`{"version": "1.0", "examples": {"GetThing": [{"id": "x", "output": {"Name": "n"}}]}}`))
	require.NoError(t, err)
	require.Len(t, ex.For("GetThing"), 1)
	assert.Equal(t, "n", ex.For("GetThing")[0].Output["Name"])
}

func TestLoadCompanionFiles(t *testing.T) {
	dir := t.TempDir()
	normal := filepath.Join(dir, "svc-2020-01-01.normal.json")
	require.NoError(t, os.WriteFile(CompanionPath(normal, CompanionPaginators),
		[]byte(`{"pagination": {"List": {"limit_key": "Max"}}}`), 0o600))

	pag, err := LoadPaginators(CompanionPath(normal, CompanionPaginators))
	require.NoError(t, err)
	assert.Equal(t, "Max", pag.For("List").LimitKey)

	_, err = LoadWaiters(CompanionPath(normal, CompanionWaiters))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCompanions(t *testing.T) {
	dir := t.TempDir()
	normal := filepath.Join(dir, "svc-2020-01-01.normal.json")
	require.NoError(t, os.WriteFile(CompanionPath(normal, CompanionWaiters),
		[]byte(`{"version": 2, "waiters": {"Ready": {"operation": "Describe", "delay": 1, "maxAttempts": 2, "acceptors": []}}}`), 0o600))

	c, err := LoadCompanions(normal)
	require.NoError(t, err)
	assert.Nil(t, c.Paginators)
	assert.Nil(t, c.Examples)
	require.NotNil(t, c.Waiters)
	assert.Len(t, c.Waiters.ForOperation("Describe"), 1)

	c, err = LoadCompanions(filepath.Join(dir, "plain.json"))
	require.NoError(t, err)
	assert.Equal(t, &Companions{}, c)

	require.NoError(t, os.WriteFile(CompanionPath(normal, CompanionExamples), []byte(`{"examples": [`), 0o600))
	_, err = LoadCompanions(normal)
	assert.Error(t, err)
}

func TestBuildPreferences(t *testing.T) {
	table := BuildPreferences([]ServiceVersion{
		{"ec2", "2016-11-15"},
		{"sqs", "2012-11-05"},
		{"ec2", "2014-10-01"},
		{"ec2", "2016-11-15"},
		{"", "2001-01-01"},
	})
	require.Len(t, table, 2)
	assert.Equal(t, "ec2", table[0].ServiceName)
	assert.Equal(t, []string{"2014-10-01", "2016-11-15"}, table[0].Versions)
	assert.Equal(t, "2016-11-15", table[0].Preferred)

	assert.True(t, table.IsPreferred("ec2", "2016-11-15"))
	assert.False(t, table.IsPreferred("ec2", "2014-10-01"))
	assert.True(t, table.IsPreferred("unknown", "2014-10-01"))
}

func TestRegionConfigResolve(t *testing.T) {
	rc, err := ParseRegionConfig([]byte(`{
		"rules": {
			"*/*": {"endpoint": "{service}.{region}.amazonaws.com"},
			"cn-*/*": {"endpoint": "{service}.{region}.amazonaws.com.cn"},
			"*/iam": "globalSSL",
			"us-east-1/sdb": {"endpoint": "sdb.amazonaws.com"}
		},
		"patterns": {
			"globalSSL": {"endpoint": "https://{service}.amazonaws.com", "globalEndpoint": true}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "{service}.{region}.amazonaws.com", rc.Resolve("eu-west-1", "sqs").Endpoint)
	assert.Equal(t, "{service}.{region}.amazonaws.com.cn", rc.Resolve("cn-north-1", "sqs").Endpoint)
	assert.Equal(t, "https://{service}.amazonaws.com", rc.Resolve("eu-west-1", "iam").Endpoint)
	assert.Equal(t, "sdb.amazonaws.com", rc.Resolve("us-east-1", "sdb").Endpoint)

	assert.Equal(t, "us-gov-*", RegionPrefix("us-gov-west-1"))
	assert.Empty(t, RegionPrefix("local"))
}
