package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/aws2openapi/internal/mcpserver"
)

// HandleMCP serves the convert and preferred tools over stdio until the
// client disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: aws2openapi mcp\n\n")
		Writef(fs.Output(), "Run an MCP server over stdio exposing the convert and preferred tools.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  AWS2OPENAPI_MAP_PARAM_CAP   key/value pairs listed for unbounded map parameters\n")
		Writef(fs.Output(), "  AWS2OPENAPI_STRICT          fail conversions on any warning (true/false)\n")
		Writef(fs.Output(), "  AWS2OPENAPI_REGION_CONFIG   region endpoint rules file; enables servers\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
