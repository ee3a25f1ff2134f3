package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/fileutil"
	"github.com/erraggy/aws2openapi/internal/pathutil"
)

// PreferredFlags contains flags for the preferred command
type PreferredFlags struct {
	Output string
	Format string
}

// SetupPreferredFlags creates and configures a FlagSet for the preferred command.
func SetupPreferredFlags() (*flag.FlagSet, *PreferredFlags) {
	fs := flag.NewFlagSet("preferred", flag.ContinueOnError)
	flags := &PreferredFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "f", FormatYAML, "output format: json or yaml")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: json or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: aws2openapi preferred [flags] <file|dir>...\n\n")
		Writef(fs.Output(), "Build the preference table: every API version found per service,\n")
		Writef(fs.Output(), "with the newest version marked preferred.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  aws2openapi preferred apis/\n")
		Writef(fs.Output(), "  aws2openapi preferred -o preferred.yaml apis/\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Service names and versions are taken from the file names\n")
		Writef(fs.Output(), "  - Pass the table to 'aws2openapi convert --preferences'\n")
	}

	return fs, flags
}

// HandlePreferred executes the preferred command
func HandlePreferred(args []string) error {
	fs, flags := SetupPreferredFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("preferred command requires at least one file or directory")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	files, err := CollectInputs(fs.Args())
	if err != nil {
		return err
	}

	data, err := MarshalDocument(BuildPreferenceTable(files), flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling preference table: %w", err)
	}

	if flags.Output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing preference table to stdout: %w", err)
		}
		return nil
	}

	outPath, err := pathutil.SanitizeOutputPath(flags.Output)
	if err != nil {
		return err
	}
	return fileutil.WriteOutput(outPath, data)
}

// BuildPreferenceTable derives the preference table from the names of the
// given service description files.
func BuildPreferenceTable(files []string) awsmodel.PreferenceTable {
	observations := make([]awsmodel.ServiceVersion, 0, len(files))
	for _, f := range files {
		observations = append(observations, awsmodel.ServiceVersion{
			ServiceName: awsmodel.ServiceNameFromFilename(f),
			APIVersion:  awsmodel.VersionFromFilename(f),
		})
	}
	return awsmodel.BuildPreferences(observations)
}
