package converter

import (
	"fmt"
	"path/filepath"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/options"
	"github.com/erraggy/aws2openapi/oaserrors"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	document *awsmodel.ServiceDescription
	filePath *string
	bytes    []byte

	// Companion tables
	preferences  awsmodel.PreferenceTable
	paginators   *awsmodel.Paginators
	waiters      *awsmodel.Waiters
	examples     *awsmodel.Examples
	regionConfig *awsmodel.RegionConfig
	regions      []awsmodel.Region

	// Configuration options
	filename        string
	serviceName     string
	strictMode      bool
	includeInfo     bool
	mapParameterCap int
	logger          Logger
}

// ConvertWithOptions converts a service description using functional options.
// Exactly one input source must be given.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("sqs-2012-11-05.normal.json"),
//	    converter.WithPaginators(pags),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	var src *awsmodel.ServiceDescription
	switch {
	case cfg.document != nil:
		src = cfg.document
	case cfg.filePath != nil:
		src, err = awsmodel.ParseFile(*cfg.filePath)
		if cfg.filename == "" {
			cfg.filename = filepath.Base(*cfg.filePath)
		}
	default:
		src, err = awsmodel.Parse(cfg.bytes)
	}
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}

	c := &Converter{
		StrictMode:      cfg.strictMode,
		IncludeInfo:     cfg.includeInfo,
		Filename:        cfg.filename,
		ServiceName:     cfg.serviceName,
		Preferences:     cfg.preferences,
		Paginators:      cfg.paginators,
		Waiters:         cfg.waiters,
		Examples:        cfg.examples,
		RegionConfig:    cfg.regionConfig,
		Regions:         cfg.regions,
		MapParameterCap: cfg.mapParameterCap,
		Logger:          cfg.logger,
	}
	return c.ConvertDocument(src)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		includeInfo:     true,
		mapParameterCap: DefaultMapParameterCap,
		logger:          NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"converter: must specify an input source (use WithDocument, WithFilePath, or WithBytes)",
		"converter: must specify exactly one input source",
		cfg.document != nil, cfg.filePath != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDocument specifies an already decoded service description as the input source
func WithDocument(src *awsmodel.ServiceDescription) Option {
	return func(cfg *convertConfig) error {
		if src == nil {
			return &oaserrors.ConfigError{Option: "document", Message: "converter: document cannot be nil"}
		}
		cfg.document = src
		return nil
	}
}

// WithFilePath specifies a service description file as the input source.
// Unless WithFilename is also given, the base name of path is recorded in
// info.x-origin.
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies raw JSON (or YAML) bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "converter: bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithFilename sets the source file name recorded in info.x-origin
func WithFilename(name string) Option {
	return func(cfg *convertConfig) error {
		cfg.filename = name
		return nil
	}
}

// WithServiceName sets the service name prefix used for preference lookup
func WithServiceName(name string) Option {
	return func(cfg *convertConfig) error {
		cfg.serviceName = name
		return nil
	}
}

// WithPreferences sets the version preference table
func WithPreferences(table awsmodel.PreferenceTable) Option {
	return func(cfg *convertConfig) error {
		cfg.preferences = table
		return nil
	}
}

// WithPaginators sets the pagination companion table
func WithPaginators(p *awsmodel.Paginators) Option {
	return func(cfg *convertConfig) error {
		cfg.paginators = p
		return nil
	}
}

// WithWaiters sets the waiter companion table
func WithWaiters(w *awsmodel.Waiters) Option {
	return func(cfg *convertConfig) error {
		cfg.waiters = w
		return nil
	}
}

// WithExamples sets the examples companion table
func WithExamples(e *awsmodel.Examples) Option {
	return func(cfg *convertConfig) error {
		cfg.examples = e
		return nil
	}
}

// WithRegionConfig sets the endpoint rule table used to build servers
func WithRegionConfig(rc *awsmodel.RegionConfig) Option {
	return func(cfg *convertConfig) error {
		cfg.regionConfig = rc
		return nil
	}
}

// WithRegions overrides the regions considered when building servers
func WithRegions(regions []awsmodel.Region) Option {
	return func(cfg *convertConfig) error {
		cfg.regions = regions
		return nil
	}
}

// WithLogger sets a structured logger for the conversion. A nil logger
// keeps the default NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any warnings)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithMapParameterCap sets how many key/value pairs are enumerated for map
// query parameters. Default: DefaultMapParameterCap
func WithMapParameterCap(n int) Option {
	return func(cfg *convertConfig) error {
		if n <= 0 {
			return &oaserrors.ConfigError{Option: "mapParameterCap", Value: n, Message: "converter: must be positive"}
		}
		cfg.mapParameterCap = n
		return nil
	}
}
