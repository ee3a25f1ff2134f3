package awsmodel

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/aws2openapi/internal/ordered"
)

// Companion document kinds, as they appear in file names next to the
// ".normal." service description.
const (
	CompanionPaginators = "paginators"
	CompanionWaiters    = "waiters2"
	CompanionExamples   = "examples"
)

// CompanionPath derives the path of a companion document from the path of a
// normal service description, e.g. "s3-2006-03-01.normal.json" becomes
// "s3-2006-03-01.paginators.json". It returns "" when normalPath does not
// follow the naming convention.
func CompanionPath(normalPath, kind string) string {
	if !strings.Contains(normalPath, ".normal.") {
		return ""
	}
	return strings.Replace(normalPath, ".normal.", "."+kind+".", 1)
}

// StringList decodes either a single string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = nil
			return nil
		}
		*s = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var out []string
		if err := node.Decode(&out); err != nil {
			return err
		}
		*s = out
		return nil
	default:
		return fmt.Errorf("awsmodel: expected a string or list at line %d", node.Line)
	}
}

// Paginators is the pagination companion table.
type Paginators struct {
	Pagination map[string]*Paginator `yaml:"pagination"`
}

// Paginator describes how one operation pages through results.
type Paginator struct {
	InputToken  StringList `yaml:"input_token,omitempty"`
	OutputToken StringList `yaml:"output_token,omitempty"`
	ResultKey   StringList `yaml:"result_key,omitempty"`
	LimitKey    string     `yaml:"limit_key,omitempty"`
	MoreResults string     `yaml:"more_results,omitempty"`
}

// For returns the paginator of operation, or nil.
func (p *Paginators) For(operation string) *Paginator {
	if p == nil {
		return nil
	}
	return p.Pagination[operation]
}

// LoadPaginators reads a pagination companion file.
func LoadPaginators(path string) (*Paginators, error) {
	var p Paginators
	if err := decodeFile(path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Waiters is the waiter companion table (format version 2).
type Waiters struct {
	Version int                   `yaml:"version"`
	Waiters *ordered.Map[*Waiter] `yaml:"waiters"`
}

// Waiter polls an operation until one of its acceptors matches.
type Waiter struct {
	Name        string      `yaml:"-" json:"name"`
	Operation   string      `yaml:"operation" json:"operation"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Delay       int         `yaml:"delay" json:"delay"`
	MaxAttempts int         `yaml:"maxAttempts" json:"maxAttempts"`
	Acceptors   []*Acceptor `yaml:"acceptors" json:"acceptors"`
}

// Acceptor is one terminal or retry condition of a waiter.
type Acceptor struct {
	Expected any    `yaml:"expected" json:"expected"`
	Matcher  string `yaml:"matcher" json:"matcher"`
	State    string `yaml:"state" json:"state"`
	Argument string `yaml:"argument,omitempty" json:"argument,omitempty"`
}

// ForOperation returns copies of the waiters that poll operation, in table
// order, each carrying its table key as Name.
func (w *Waiters) ForOperation(operation string) []*Waiter {
	if w == nil {
		return nil
	}
	var out []*Waiter
	for name, waiter := range w.Waiters.All() {
		if waiter == nil || waiter.Operation != operation {
			continue
		}
		c := *waiter
		c.Name = name
		out = append(out, &c)
	}
	return out
}

// LoadWaiters reads a waiter companion file.
func LoadWaiters(path string) (*Waiters, error) {
	var w Waiters
	if err := decodeFile(path, &w); err != nil {
		return nil, err
	}
	w.setNames()
	return &w, nil
}

func (w *Waiters) setNames() {
	for name, waiter := range w.Waiters.All() {
		if waiter != nil && waiter.Name == "" {
			waiter.Name = name
		}
	}
}

// Examples is the worked-example companion table.
type Examples struct {
	Version  string                `yaml:"version"`
	Examples map[string][]*Example `yaml:"examples"`
}

// Example is one worked request/response pair.
type Example struct {
	ID          string         `yaml:"id,omitempty"`
	Title       string         `yaml:"title,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Input       map[string]any `yaml:"input,omitempty"`
	Output      map[string]any `yaml:"output,omitempty"`
	Comments    map[string]any `yaml:"comments,omitempty"`
}

// For returns the examples of operation.
func (e *Examples) For(operation string) []*Example {
	if e == nil {
		return nil
	}
	return e.Examples[operation]
}

// LoadExamples reads a worked-example companion file.
func LoadExamples(path string) (*Examples, error) {
	var e Examples
	if err := decodeFile(path, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ParsePaginators decodes a pagination table.
func ParsePaginators(data []byte) (*Paginators, error) {
	var p Paginators
	if err := decodeBytes(data, "", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseWaiters decodes a waiter table.
func ParseWaiters(data []byte) (*Waiters, error) {
	var w Waiters
	if err := decodeBytes(data, "", &w); err != nil {
		return nil, err
	}
	w.setNames()
	return &w, nil
}

// ParseExamples decodes a worked-example table.
func ParseExamples(data []byte) (*Examples, error) {
	var e Examples
	if err := decodeBytes(data, "", &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Companions bundles the tables that sit next to a service description.
// Tables that do not exist are nil.
type Companions struct {
	Paginators *Paginators
	Waiters    *Waiters
	Examples   *Examples
}

// LoadCompanions loads the paginators, waiters and examples files next to
// normalPath. Missing files are skipped; unreadable or invalid ones are
// errors.
func LoadCompanions(normalPath string) (*Companions, error) {
	c := &Companions{}
	if CompanionPath(normalPath, CompanionPaginators) == "" {
		return c, nil
	}

	var err error
	if c.Paginators, err = LoadPaginators(CompanionPath(normalPath, CompanionPaginators)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if c.Waiters, err = LoadWaiters(CompanionPath(normalPath, CompanionWaiters)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if c.Examples, err = LoadExamples(CompanionPath(normalPath, CompanionExamples)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return c, nil
}
