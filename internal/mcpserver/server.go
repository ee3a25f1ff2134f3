// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes aws2openapi conversion as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/aws2openapi"
)

const serverInstructions = `aws2openapi MCP server: converts AWS service descriptions (*.normal.json) to OpenAPI 3.0 and builds preferred-version tables.

Configuration: All defaults are configurable via AWS2OPENAPI_* environment variables set in your MCP client config.

Key settings:
- AWS2OPENAPI_MAP_PARAM_CAP (default: 3): key/value pairs listed for unbounded map query parameters
- AWS2OPENAPI_STRICT (default: false): fail conversions on any warning
- AWS2OPENAPI_REGION_CONFIG: region endpoint rules file; enables the servers list
- AWS2OPENAPI_CACHE_ENABLED (default: true): cache file and URL inputs
- AWS2OPENAPI_CACHE_FILE_TTL (default: 15m), AWS2OPENAPI_CACHE_URL_TTL (default: 5m)
- AWS2OPENAPI_MAX_INLINE_SIZE (default: 16MiB): largest inline or fetched description
- AWS2OPENAPI_ALLOW_PRIVATE_IPS (default: false): allow URL inputs on private networks

File inputs pick up the paginators, waiters and examples files stored next to them.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		inputCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "aws2openapi", Version: aws2openapi.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert an AWS service description (.normal.json) to an OpenAPI 3.0 document. Provide exactly one of file, url or content. Returns conversion issues with severities and the document inline, or writes it to output. File inputs also load the paginators, waiters and examples files next to them. A route conflict between two live operations fails the conversion.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preferred",
		Description: "Build the preferred API version table from service description file names: every version seen per service, newest preferred. Pass a directory to search or a list of file names.",
	}, handlePreferred)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
