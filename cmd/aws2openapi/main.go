package main

import (
	"fmt"
	"os"

	"github.com/agnivade/levenshtein"

	"github.com/erraggy/aws2openapi"
	"github.com/erraggy/aws2openapi/cmd/aws2openapi/commands"
)

// commandNames lists the commands suggestCommand may propose.
var commandNames = []string{"convert", "preferred", "mcp", "version", "help"}

// maxSuggestDistance is the largest edit distance still worth a suggestion.
const maxSuggestDistance = 2

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var handler func([]string) error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("aws2openapi v%s\n", aws2openapi.Version())
		fmt.Println(aws2openapi.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "convert":
		handler = commands.HandleConvert
	case "preferred":
		handler = commands.HandlePreferred
	case "mcp":
		handler = commands.HandleMCP
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command to input, or "" when
// none is within maxSuggestDistance edits.
func suggestCommand(input string) string {
	best, bestDistance := "", maxSuggestDistance+1
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`aws2openapi - AWS service descriptions to OpenAPI 3.0

Usage:
  aws2openapi <command> [options]

Commands:
  convert     Convert service description files or directories
  preferred   Build the preferred API version table
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  aws2openapi convert apis/sqs-2012-11-05.normal.json
  aws2openapi convert -o deploy --format yaml --validate apis/
  aws2openapi preferred -o preferred.yaml apis/

Run 'aws2openapi <command> --help' for more information on a command.`)
}
