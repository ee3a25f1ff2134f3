package converter

import (
	"fmt"

	"github.com/erraggy/aws2openapi/awsmodel"
	"github.com/erraggy/aws2openapi/internal/issues"
	"github.com/erraggy/aws2openapi/internal/severity"
	"github.com/erraggy/aws2openapi/oaserrors"
	"github.com/erraggy/aws2openapi/openapi"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates choices the converter made on the caller's behalf
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates parts of the description that could not be represented
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// DefaultMapParameterCap is the number of indexed key/value parameter pairs
// enumerated for a map-typed query parameter whose shape sets no maximum.
const DefaultMapParameterCap = 3

// ConversionResult contains the results of converting a service description
type ConversionResult struct {
	// Document is the generated OpenAPI 3.0 document
	Document *openapi.Document
	// ServiceName is the service name prefix used for preference lookup
	ServiceName string
	// APIVersion is the API version of the source description
	APIVersion string
	// Protocol is the wire protocol of the source description
	Protocol string
	// Issues contains all conversion issues in discovery order
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
	// Stats summarizes the generated document
	Stats openapi.Stats
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter turns AWS service descriptions into OpenAPI 3.0 documents.
//
// The companion tables are read-only and may be shared between conversions.
// A nil table means the corresponding feature is not applied.
type Converter struct {
	// StrictMode causes conversion to fail on any warning or critical issue
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Filename is the source file name recorded in info.x-origin.
	// When empty the "{filename}" placeholder is written instead.
	Filename string
	// ServiceName is the service name prefix used for preference lookup.
	// When empty it is derived from Filename.
	ServiceName string
	// Preferences decides info.x-preferred
	Preferences awsmodel.PreferenceTable
	// Paginators adds pagination query parameters
	Paginators *awsmodel.Paginators
	// Waiters adds x-waiters to operations
	Waiters *awsmodel.Waiters
	// Examples provides example output for response schemas
	Examples *awsmodel.Examples
	// RegionConfig enables the servers list
	RegionConfig *awsmodel.RegionConfig
	// Regions are the regions considered when building servers.
	// Defaults to awsmodel.DefaultRegions().
	Regions []awsmodel.Region
	// MapParameterCap bounds the key/value pairs enumerated for map
	// query parameters. Zero means DefaultMapParameterCap.
	MapParameterCap int
	// Logger receives structured progress and degradation messages
	Logger Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		StrictMode:      false,
		IncludeInfo:     true,
		MapParameterCap: DefaultMapParameterCap,
		Logger:          NopLogger{},
	}
}

// Convert is a convenience function that converts src with a default
// Converter. See (*Converter).Convert.
func Convert(src *awsmodel.ServiceDescription, done func(*ConversionResult, error)) bool {
	return New().Convert(src, done)
}

// Convert runs the protocol and format version precheck on src and reports
// whether it passed. When it returns false nothing was converted and done is
// never called. Otherwise done is called exactly once, before Convert
// returns. A route conflict aborts the conversion and done receives a nil
// result with the error. A strict mode failure hands done the finished
// result, document and issues included, together with the error.
func (c *Converter) Convert(src *awsmodel.ServiceDescription, done func(*ConversionResult, error)) bool {
	if err := precheck(src); err != nil {
		c.logger().Debug("service description rejected", "error", err)
		return false
	}
	result, err := c.convert(src)
	if done != nil {
		done(result, err)
	}
	return true
}

// ConvertDocument converts src and returns the result directly. A document
// that fails the precheck yields an *oaserrors.UnsupportedError.
func (c *Converter) ConvertDocument(src *awsmodel.ServiceDescription) (*ConversionResult, error) {
	if err := precheck(src); err != nil {
		return nil, err
	}
	return c.convert(src)
}

func precheck(src *awsmodel.ServiceDescription) error {
	if src == nil {
		return &oaserrors.UnsupportedError{Message: "no service description"}
	}
	return src.Validate()
}

func (c *Converter) convert(src *awsmodel.ServiceDescription) (*ConversionResult, error) {
	conv := newConversion(c, src)
	doc, err := conv.run()
	if err != nil {
		conv.log.Error("conversion aborted", "error", err)
		return nil, err
	}

	result := &ConversionResult{
		Document:    doc,
		ServiceName: conv.serviceName,
		APIVersion:  conv.meta.APIVersion,
		Protocol:    conv.protocol,
		Issues:      conv.issues,
		Stats:       doc.Stats(),
	}

	c.updateCounts(result)
	result.Success = result.CriticalCount == 0

	if c.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("conversion failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}

func (c *Converter) logger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}

func (c *Converter) mapParameterCap() int {
	if c.MapParameterCap <= 0 {
		return DefaultMapParameterCap
	}
	return c.MapParameterCap
}
