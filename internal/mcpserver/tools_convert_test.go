package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/aws2openapi/internal/testutil"
)

func TestConvertTool_Content(t *testing.T) {
	input := convertInput{Service: serviceInput{Content: testutil.JSONService}}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.True(t, output.Success)
	assert.Equal(t, "2012-08-10", output.APIVersion)
	assert.Equal(t, "json", output.Protocol)
	assert.Equal(t, 2, output.OperationCount)
	assert.Empty(t, output.WrittenTo)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(output.Document), &doc))
	assert.Equal(t, "3.0.0", doc["openapi"])
	origin := doc["info"].(map[string]any)["x-origin"].([]any)[0].(map[string]any)
	assert.Contains(t, origin["url"], "{filename}")
}

func TestConvertTool_FileWithCompanions(t *testing.T) {
	path := testutil.WriteService(t, "dynamodb-2012-08-10.normal.json", testutil.JSONService)
	waiters := `{"version": 2, "waiters": {"TableExists": {"operation": "DescribeTable", "delay": 20, "maxAttempts": 25, "acceptors": []}}}`
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "dynamodb-2012-08-10.waiters2.json"), []byte(waiters), 0o600))

	input := convertInput{Service: serviceInput{File: path}, Format: "yaml"}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "dynamodb", output.ServiceName)
	assert.Contains(t, output.Document, "openapi: 3.0.0")
	assert.Contains(t, output.Document, "x-waiters:")
	assert.Contains(t, output.Document, "dynamodb-2012-08-10.normal.json")
}

func TestConvertTool_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out", "openapi.json")

	input := convertInput{Service: serviceInput{Content: testutil.RESTJSONService}, Output: outPath}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Success)
	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document, "document should not be inline when written to file")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AWS Elemental MediaStore Data Plane")
}

func TestConvertTool_Issues(t *testing.T) {
	input := convertInput{Service: serviceInput{Content: testutil.QueryService}}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.NotEmpty(t, output.Issues)
	assert.Equal(t, len(output.Issues), output.IssueCount)
	for _, issue := range output.Issues {
		assert.NotEmpty(t, issue.Severity)
		assert.NotEmpty(t, issue.Message)
	}

	_, quiet, err := handleConvert(context.Background(), &mcp.CallToolRequest{},
		convertInput{Service: serviceInput{Content: testutil.QueryService}, NoInfo: true})
	require.NoError(t, err)
	for _, issue := range quiet.Issues {
		assert.NotEqual(t, "info", issue.Severity)
	}
}

func TestConvertTool_Strict(t *testing.T) {
	strict := true
	input := convertInput{Service: serviceInput{Content: testutil.QueryService}, Strict: &strict}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	withConfig(t, func(c *serverConfig) { c.Strict = true })
	lenient := false
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{},
		convertInput{Service: serviceInput{Content: testutil.QueryService}, Strict: &lenient})
	require.NoError(t, err)
	assert.Nil(t, result, "an explicit strict=false overrides the environment")
	assert.True(t, output.Success)
}

func TestConvertTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input convertInput
	}{
		{"no service", convertInput{}},
		{"bad format", convertInput{Service: serviceInput{Content: testutil.JSONService}, Format: "xml"}},
		{"invalid content", convertInput{Service: serviceInput{Content: `{"metadata": [`}}},
		{"unsupported protocol", convertInput{Service: serviceInput{Content: `{"metadata": {"protocol": "smithy-rpc-v2-cbor"}}`}}},
		{"missing preferences", convertInput{Service: serviceInput{Content: testutil.JSONService}, Preferences: "/nonexistent/preferred.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestConvertTool_RegionConfigFromEnv(t *testing.T) {
	regions := testutil.WriteTempJSON(t, map[string]any{
		"rules": map[string]any{"*/*": map[string]string{"endpoint": "{service}.{region}.amazonaws.com"}},
	})
	withConfig(t, func(c *serverConfig) { c.RegionConfig = regions })

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{},
		convertInput{Service: serviceInput{Content: testutil.JSONService}})
	require.NoError(t, err)
	assert.Contains(t, output.Document, "https://dynamodb.{region}.amazonaws.com")
}
