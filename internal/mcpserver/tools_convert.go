package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/converter"
	"github.com/erraggy/aws2openapi/internal/fileutil"
	"github.com/erraggy/aws2openapi/internal/pathutil"
)

type convertInput struct {
	Service     serviceInput `json:"service"                jsonschema:"The AWS service description to convert"`
	Format      string       `json:"format,omitempty"       jsonschema:"Output format: json (default) or yaml"`
	Output      string       `json:"output,omitempty"       jsonschema:"File path to write the document. If omitted the document is returned inline."`
	Strict      *bool        `json:"strict,omitempty"       jsonschema:"Fail on any warning. Defaults to AWS2OPENAPI_STRICT."`
	NoInfo      bool         `json:"no_info,omitempty"      jsonschema:"Omit informational issues"`
	Preferences string       `json:"preferences,omitempty"  jsonschema:"Path to a preference table file deciding x-preferred"`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type convertOutput struct {
	ServiceName    string         `json:"service_name"`
	APIVersion     string         `json:"api_version"`
	Protocol       string         `json:"protocol"`
	Success        bool           `json:"success"`
	PathCount      int            `json:"path_count"`
	OperationCount int            `json:"operation_count"`
	IssueCount     int            `json:"issue_count"`
	Issues         []convertIssue `json:"issues,omitempty"`
	WrittenTo      string         `json:"written_to,omitempty"`
	Document       string         `json:"document,omitempty"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format := input.Format
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "yaml" {
		return errResult(fmt.Errorf("invalid format %q; valid formats: json, yaml", format)), convertOutput{}, nil
	}

	opts, err := buildConverterOptions(ctx, input)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		ServiceName:    result.ServiceName,
		APIVersion:     result.APIVersion,
		Protocol:       result.Protocol,
		Success:        result.Success,
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		IssueCount:     len(result.Issues),
	}

	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(result.Document)
	default:
		data, err = json.MarshalIndent(result.Document, "", "  ")
	}
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" {
		outPath, err := pathutil.SanitizeOutputPath(input.Output)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		if err := fileutil.WriteOutput(outPath, data); err != nil {
			return errResult(err), convertOutput{}, nil
		}
		output.WrittenTo = outPath
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

// buildConverterOptions translates the MCP input into converter options.
// File inputs pick up the companion tables stored next to them.
func buildConverterOptions(ctx context.Context, input convertInput) ([]converter.Option, error) {
	data, err := input.Service.load(ctx)
	if err != nil {
		return nil, err
	}

	strict := cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	opts := []converter.Option{
		converter.WithBytes(data),
		converter.WithStrictMode(strict),
		converter.WithIncludeInfo(!input.NoInfo),
		converter.WithMapParameterCap(cfg.MapParameterCap),
	}
	if name := input.Service.filename(); name != "" {
		opts = append(opts, converter.WithFilename(name))
	}

	if input.Service.File != "" {
		c, err := awsmodel.LoadCompanions(input.Service.File)
		if err != nil {
			return nil, err
		}
		if c.Paginators != nil {
			opts = append(opts, converter.WithPaginators(c.Paginators))
		}
		if c.Waiters != nil {
			opts = append(opts, converter.WithWaiters(c.Waiters))
		}
		if c.Examples != nil {
			opts = append(opts, converter.WithExamples(c.Examples))
		}
	}

	if input.Preferences != "" {
		prefs, err := awsmodel.LoadPreferences(input.Preferences)
		if err != nil {
			return nil, err
		}
		opts = append(opts, converter.WithPreferences(prefs))
	}

	if cfg.RegionConfig != "" {
		rc, err := awsmodel.LoadRegionConfig(cfg.RegionConfig)
		if err != nil {
			return nil, err
		}
		opts = append(opts, converter.WithRegionConfig(rc))
	}

	return opts, nil
}
