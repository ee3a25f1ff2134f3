package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/aws2openapi"
	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/converter"
	"github.com/erraggy/aws2openapi/internal/fileutil"
	"github.com/erraggy/aws2openapi/internal/pathutil"
	"github.com/erraggy/aws2openapi/internal/severity"
	"github.com/erraggy/aws2openapi/oaserrors"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output          string
	Format          string
	Preferences     string
	Regions         string
	MapParameterCap int
	Strict          bool
	NoInfo          bool
	MinSeverity     string
	Validate        bool
	Verbose         bool
	Quiet           bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Output, "o", "deploy", "output directory")
	fs.StringVar(&flags.Output, "output", "deploy", "output directory")
	fs.StringVar(&flags.Format, "f", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Preferences, "preferences", "", "preference table file (default: built from the inputs)")
	fs.StringVar(&flags.Regions, "regions", "", "region endpoint rules file; enables the servers list")
	fs.IntVar(&flags.MapParameterCap, "map-param-cap", converter.DefaultMapParameterCap, "key/value pairs listed for unbounded map query parameters")
	fs.BoolVar(&flags.Strict, "strict", false, "fail a conversion on any warning")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress informational conversion messages")
	fs.StringVar(&flags.MinSeverity, "min-severity", "info", "lowest issue severity printed: info, warning or critical")
	fs.BoolVar(&flags.Validate, "validate", false, "validate each generated document before writing it")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log conversion progress")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log conversion progress")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report failures")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report failures")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: aws2openapi convert [flags] <file|dir>...\n\n")
		Writef(fs.Output(), "Convert AWS service descriptions to OpenAPI 3.0 documents.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  aws2openapi convert apis/sqs-2012-11-05.normal.json\n")
		Writef(fs.Output(), "  aws2openapi convert -o deploy --format yaml apis/\n")
		Writef(fs.Output(), "  aws2openapi convert --regions endpoints.json --validate apis/\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Directories are searched for *.normal.json files\n")
		Writef(fs.Output(), "  - Paginators, waiters and examples are read from files next to each input\n")
		Writef(fs.Output(), "  - Documents are written to <output>/<service>/<version>/openapi.<format>\n")
		Writef(fs.Output(), "  - Unsupported protocols are skipped, not failed\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Every supported input converted\n")
		Writef(fs.Output(), "  1    At least one conversion failed\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one file or directory")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if _, ok := severity.Parse(flags.MinSeverity); !ok {
		return fmt.Errorf("invalid min-severity %q; valid levels: info, warning, critical", flags.MinSeverity)
	}
	if flags.MapParameterCap <= 0 {
		return fmt.Errorf("map-param-cap must be positive, got %d", flags.MapParameterCap)
	}

	files, err := CollectInputs(fs.Args())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no service descriptions found in %v", fs.Args())
	}

	run, err := newConvertRun(flags, files, os.Stderr)
	if err != nil {
		return err
	}
	return run.execute(context.Background(), files)
}

// convertRun holds the tables shared by every conversion of one invocation.
type convertRun struct {
	flags   *ConvertFlags
	logger  *slog.Logger
	prefs   awsmodel.PreferenceTable
	regions *awsmodel.RegionConfig
	minimum severity.Severity
	out     io.Writer
}

func newConvertRun(flags *ConvertFlags, files []string, out io.Writer) (*convertRun, error) {
	level := slog.LevelWarn
	switch {
	case flags.Verbose:
		level = slog.LevelDebug
	case flags.Quiet:
		level = slog.LevelError
	}

	minimum, ok := severity.Parse(flags.MinSeverity)
	if !ok {
		minimum = severity.SeverityInfo
	}

	r := &convertRun{
		flags:   flags,
		minimum: minimum,
		logger:  slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})),
		out:     out,
	}

	if flags.Preferences != "" {
		prefs, err := awsmodel.LoadPreferences(flags.Preferences)
		if err != nil {
			return nil, err
		}
		r.prefs = prefs
	} else {
		r.prefs = BuildPreferenceTable(files)
	}

	if flags.Regions != "" {
		rc, err := awsmodel.LoadRegionConfig(flags.Regions)
		if err != nil {
			return nil, err
		}
		r.regions = rc
	}
	return r, nil
}

func (r *convertRun) execute(ctx context.Context, files []string) error {
	start := time.Now()
	if !r.flags.Quiet {
		Writef(r.out, "AWS Service Description Converter\n")
		Writef(r.out, "=================================\n\n")
		Writef(r.out, "aws2openapi version: %s\n", aws2openapi.Version())
		Writef(r.out, "Inputs: %d\n\n", len(files))
	}

	var converted, skipped, failed int
	for _, path := range files {
		outPath, result, err := r.convertFile(ctx, path)
		switch {
		case errors.Is(err, oaserrors.ErrUnsupported):
			skipped++
			r.logger.Warn("skipping service description", "file", path, "error", err)
			if !r.flags.Quiet {
				Writef(r.out, "- %s skipped: %v\n", path, err)
			}
		case err != nil:
			failed++
			Writef(r.out, "✗ %s: %v\n", path, err)
			r.printIssues(result)
		default:
			converted++
			if !r.flags.Quiet {
				Writef(r.out, "✓ %s → %s (%d paths, %d operations; %d info, %d warnings)\n",
					path, outPath, result.Stats.PathCount, result.Stats.OperationCount,
					result.InfoCount, result.WarningCount)
				r.printIssues(result)
			}
		}
	}

	if !r.flags.Quiet {
		Writef(r.out, "\nConverted: %d, Skipped: %d, Failed: %d\n", converted, skipped, failed)
		Writef(r.out, "Total Time: %v\n", time.Since(start))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d conversion(s) failed", failed, len(files))
	}
	return nil
}

func (r *convertRun) printIssues(result *converter.ConversionResult) {
	if result == nil || r.flags.Quiet {
		return
	}
	for _, issue := range result.Issues {
		if issue.Severity.AtLeast(r.minimum) {
			Writef(r.out, "    %s\n", issue.String())
		}
	}
}

// convertFile converts one service description and writes the document.
// The result is returned alongside a failed conversion when one exists.
func (r *convertRun) convertFile(ctx context.Context, path string) (string, *converter.ConversionResult, error) {
	companions, err := companionOptions(path)
	if err != nil {
		return "", nil, err
	}

	opts := []converter.Option{
		converter.WithFilePath(path),
		converter.WithPreferences(r.prefs),
		converter.WithStrictMode(r.flags.Strict),
		converter.WithIncludeInfo(!r.flags.NoInfo),
		converter.WithMapParameterCap(r.flags.MapParameterCap),
		converter.WithLogger(converter.NewSlogAdapter(r.logger.With("file", filepath.Base(path)))),
	}
	if r.regions != nil {
		opts = append(opts, converter.WithRegionConfig(r.regions))
	}
	opts = append(opts, companions...)

	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return "", result, err
	}

	doc := result.Document
	doc.Info.Extra["x-serviceName"] = result.ServiceName

	data, err := MarshalDocument(doc, r.flags.Format)
	if err != nil {
		return "", result, fmt.Errorf("marshaling document: %w", err)
	}
	if r.flags.Validate {
		if err := ValidateDocument(ctx, data); err != nil {
			return "", result, err
		}
	}

	outPath, err := pathutil.ServiceOutputPath(r.flags.Output, result.ServiceName, result.APIVersion, "openapi."+r.flags.Format)
	if err != nil {
		return "", result, err
	}
	if err := fileutil.WriteOutput(outPath, data); err != nil {
		return "", result, err
	}
	return outPath, result, nil
}

// companionOptions loads the paginators, waiters and examples tables that sit
// next to a service description. Missing tables are not an error.
func companionOptions(path string) ([]converter.Option, error) {
	c, err := awsmodel.LoadCompanions(path)
	if err != nil {
		return nil, err
	}

	var opts []converter.Option
	if c.Paginators != nil {
		opts = append(opts, converter.WithPaginators(c.Paginators))
	}
	if c.Waiters != nil {
		opts = append(opts, converter.WithWaiters(c.Waiters))
	}
	if c.Examples != nil {
		opts = append(opts, converter.WithExamples(c.Examples))
	}
	return opts, nil
}
