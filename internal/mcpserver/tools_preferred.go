package mcpserver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/aws2openapi/awsmodel"
)

type preferredInput struct {
	Directory string   `json:"directory,omitempty" jsonschema:"Directory searched recursively for .normal.json files"`
	Files     []string `json:"files,omitempty"     jsonschema:"Service description file names; only the names are used"`
}

type preferredOutput struct {
	ServiceCount int                     `json:"service_count"`
	Services     awsmodel.PreferenceTable `json:"services"`
}

func handlePreferred(_ context.Context, _ *mcp.CallToolRequest, input preferredInput) (*mcp.CallToolResult, preferredOutput, error) {
	if input.Directory == "" && len(input.Files) == 0 {
		return errResult(fmt.Errorf("one of directory or files must be provided")), preferredOutput{}, nil
	}

	names := slices.Clone(input.Files)
	if input.Directory != "" {
		err := filepath.WalkDir(input.Directory, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && awsmodel.IsNormalFile(path) {
				names = append(names, path)
			}
			return nil
		})
		if err != nil {
			return errResult(err), preferredOutput{}, nil
		}
	}
	slices.Sort(names)

	observations := make([]awsmodel.ServiceVersion, 0, len(names))
	for _, name := range names {
		if !awsmodel.IsNormalFile(name) {
			continue
		}
		observations = append(observations, awsmodel.ServiceVersion{
			ServiceName: awsmodel.ServiceNameFromFilename(name),
			APIVersion:  awsmodel.VersionFromFilename(name),
		})
	}

	table := awsmodel.BuildPreferences(observations)
	return nil, preferredOutput{ServiceCount: len(table), Services: table}, nil
}
