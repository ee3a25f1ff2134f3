package awsmodel

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/aws2openapi/oaserrors"
)

// Parse decodes a service description. JSON is accepted as YAML so that the
// order of operations, shapes and members is kept.
func Parse(data []byte) (*ServiceDescription, error) {
	return parse(data, "")
}

// ParseReader decodes a service description from r.
func ParseReader(r io.Reader) (*ServiceDescription, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Message: "failed to read input", Cause: err}
	}
	return parse(data, "")
}

// ParseFile decodes the service description stored at path.
func ParseFile(path string) (*ServiceDescription, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return parse(data, path)
}

func parse(data []byte, path string) (*ServiceDescription, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Path: path, Message: "empty document"}
	}
	var d ServiceDescription
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "invalid service description", Cause: err}
	}
	d.normalize()
	return &d, nil
}

// decodeFile reads path and decodes it into out.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return &oaserrors.ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return decodeBytes(data, path, out)
}

func decodeBytes(data []byte, path string, out any) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return &oaserrors.ParseError{Path: path, Message: fmt.Sprintf("invalid %T", out), Cause: err}
	}
	return nil
}
