package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferredTool_Files(t *testing.T) {
	input := preferredInput{Files: []string{
		"sqs-2012-11-05.normal.json",
		"apigateway-2015-07-09.normal.json",
		"apigateway-2018-11-29.normal.json",
		"sqs-2012-11-05.paginators.json",
		"README.md",
	}}

	result, output, err := handlePreferred(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 2, output.ServiceCount)
	apigw := output.Services.Lookup("apigateway")
	require.NotNil(t, apigw)
	assert.Equal(t, "2018-11-29", apigw.Preferred)
	assert.Equal(t, []string{"2015-07-09", "2018-11-29"}, apigw.Versions)

	sqs := output.Services.Lookup("sqs")
	require.NotNil(t, sqs)
	assert.Equal(t, "2012-11-05", sqs.Preferred)
}

func TestPreferredTool_Directory(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "older")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	for _, path := range []string{
		filepath.Join(dir, "s3-2006-03-01.normal.json"),
		filepath.Join(nested, "ec2-2015-10-01.normal.json"),
		filepath.Join(dir, "ec2-2016-11-15.normal.json"),
		filepath.Join(dir, "ec2-2016-11-15.waiters2.json"),
	} {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	}

	_, output, err := handlePreferred(context.Background(), &mcp.CallToolRequest{},
		preferredInput{Directory: dir, Files: []string{"s3-2006-03-01.normal.json"}})
	require.NoError(t, err)

	assert.Equal(t, 2, output.ServiceCount)
	ec2 := output.Services.Lookup("ec2")
	require.NotNil(t, ec2)
	assert.Equal(t, "2016-11-15", ec2.Preferred)
	assert.Len(t, ec2.Versions, 2)

	s3 := output.Services.Lookup("s3")
	require.NotNil(t, s3)
	assert.Equal(t, []string{"2006-03-01"}, s3.Versions, "duplicate observations collapse")
}

func TestPreferredTool_Errors(t *testing.T) {
	result, _, err := handlePreferred(context.Background(), &mcp.CallToolRequest{}, preferredInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	result, _, err = handlePreferred(context.Background(), &mcp.CallToolRequest{},
		preferredInput{Directory: filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
