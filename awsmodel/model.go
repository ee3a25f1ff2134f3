package awsmodel

import (
	"slices"

	"github.com/erraggy/aws2openapi/internal/ordered"
	"github.com/erraggy/aws2openapi/oaserrors"
)

// Wire protocols a service description may declare.
const (
	ProtocolJSON     = "json"
	ProtocolRESTJSON = "rest-json"
	ProtocolRESTXML  = "rest-xml"
	ProtocolQuery    = "query"
	ProtocolEC2      = "ec2"
)

// SupportedProtocols lists the protocols the converter accepts.
var SupportedProtocols = []string{ProtocolJSON, ProtocolRESTJSON, ProtocolRESTXML, ProtocolQuery, ProtocolEC2}

// SupportedFormatVersion is the only accepted value of the top-level "version"
// field. A missing version is also accepted.
const SupportedFormatVersion = "2.0"

// Shape types.
const (
	TypeStructure  = "structure"
	TypeList       = "list"
	TypeMap        = "map"
	TypeString     = "string"
	TypeInteger    = "integer"
	TypeLong       = "long"
	TypeShort      = "short"
	TypeByte       = "byte"
	TypeFloat      = "float"
	TypeDouble     = "double"
	TypeBigInteger = "bigInteger"
	TypeBigDecimal = "bigDecimal"
	TypeBoolean    = "boolean"
	TypeTimestamp  = "timestamp"
	TypeBlob       = "blob"
	TypeDocument   = "document"
)

// Member wire locations.
const (
	LocationHeader      = "header"
	LocationHeaders     = "headers"
	LocationURI         = "uri"
	LocationQueryString = "querystring"
	LocationStatusCode  = "statusCode"
	LocationPayload     = "payload"
)

// ServiceDescription is a decoded "normal" service model.
type ServiceDescription struct {
	Version       string                   `yaml:"version,omitempty"`
	Metadata      *Metadata                `yaml:"metadata"`
	Operations    *ordered.Map[*Operation] `yaml:"operations"`
	Shapes        *ordered.Map[*Shape]     `yaml:"shapes"`
	Documentation string                   `yaml:"documentation,omitempty"`
	Examples      map[string]any           `yaml:"examples,omitempty"`
	Authorizers   map[string]any           `yaml:"authorizers,omitempty"`
}

// Metadata carries the service identity and protocol markers.
type Metadata struct {
	APIVersion          string   `yaml:"apiVersion"`
	EndpointPrefix      string   `yaml:"endpointPrefix"`
	GlobalEndpoint      string   `yaml:"globalEndpoint,omitempty"`
	JSONVersion         string   `yaml:"jsonVersion,omitempty"`
	Protocol            string   `yaml:"protocol"`
	Protocols           []string `yaml:"protocols,omitempty"`
	ServiceAbbreviation string   `yaml:"serviceAbbreviation,omitempty"`
	ServiceFullName     string   `yaml:"serviceFullName"`
	ServiceID           string   `yaml:"serviceId,omitempty"`
	SignatureVersion    string   `yaml:"signatureVersion,omitempty"`
	SigningName         string   `yaml:"signingName,omitempty"`
	TargetPrefix        string   `yaml:"targetPrefix,omitempty"`
	UID                 string   `yaml:"uid,omitempty"`
	XMLNamespace        string   `yaml:"xmlNamespace,omitempty"`
}

// XMLNamespace is the namespace attached to a shape or member.
type XMLNamespace struct {
	URI    string `yaml:"uri"`
	Prefix string `yaml:"prefix,omitempty"`
}

// ErrorInfo describes how an error shape is rendered on the wire.
type ErrorInfo struct {
	Code           string `yaml:"code,omitempty"`
	HTTPStatusCode int    `yaml:"httpStatusCode,omitempty"`
	SenderFault    bool   `yaml:"senderFault,omitempty"`
}

// Shape is a named type definition. Which fields are meaningful depends on Type.
type Shape struct {
	Type          string `yaml:"type"`
	Documentation string `yaml:"documentation,omitempty"`

	// structure
	Members  *ordered.Map[*MemberRef] `yaml:"members,omitempty"`
	Required []string                 `yaml:"required,omitempty"`
	Payload  string                   `yaml:"payload,omitempty"`

	// list
	Member *MemberRef `yaml:"member,omitempty"`

	// map
	Key   *MemberRef `yaml:"key,omitempty"`
	Value *MemberRef `yaml:"value,omitempty"`

	// bounds: string length, numeric range, list or map size
	Min *Bound `yaml:"min,omitempty"`
	Max *Bound `yaml:"max,omitempty"`

	Pattern         string   `yaml:"pattern,omitempty"`
	Enum            []string `yaml:"enum,omitempty"`
	Sensitive       bool     `yaml:"sensitive,omitempty"`
	TimestampFormat string   `yaml:"timestampFormat,omitempty"`
	Flattened       bool     `yaml:"flattened,omitempty"`
	LocationName    string   `yaml:"locationName,omitempty"`

	Deprecated        bool   `yaml:"deprecated,omitempty"`
	DeprecatedMessage string `yaml:"deprecatedMessage,omitempty"`

	XMLNamespace *XMLNamespace `yaml:"xmlNamespace,omitempty"`
	XMLOrder     []string      `yaml:"xmlOrder,omitempty"`
	Wrapper      bool          `yaml:"wrapper,omitempty"`

	Exception bool       `yaml:"exception,omitempty"`
	Fault     bool       `yaml:"fault,omitempty"`
	Error     *ErrorInfo `yaml:"error,omitempty"`
	Synthetic bool       `yaml:"synthetic,omitempty"`

	Event        bool `yaml:"event,omitempty"`
	EventStream  bool `yaml:"eventstream,omitempty"`
	EventPayload bool `yaml:"eventpayload,omitempty"`
	Streaming    bool `yaml:"streaming,omitempty"`
	Box          bool `yaml:"box,omitempty"`
	Union        bool `yaml:"union,omitempty"`
	Document     bool `yaml:"document,omitempty"`
}

// IsRequired reports whether the structure lists name as required.
func (s *Shape) IsRequired(name string) bool {
	return slices.Contains(s.Required, name)
}

// MemberRef points at a shape and carries transport metadata for one use of it.
type MemberRef struct {
	Shape             string        `yaml:"shape"`
	Location          string        `yaml:"location,omitempty"`
	LocationName      string        `yaml:"locationName,omitempty"`
	QueryName         string        `yaml:"queryName,omitempty"`
	Documentation     string        `yaml:"documentation,omitempty"`
	XMLNamespace      *XMLNamespace `yaml:"xmlNamespace,omitempty"`
	XMLAttribute      bool          `yaml:"xmlAttribute,omitempty"`
	Flattened         *bool         `yaml:"flattened,omitempty"`
	Deprecated        bool          `yaml:"deprecated,omitempty"`
	DeprecatedMessage string        `yaml:"deprecatedMessage,omitempty"`
	IdempotencyToken  bool          `yaml:"idempotencyToken,omitempty"`
	JSONValue         bool          `yaml:"jsonvalue,omitempty"`
	Streaming         bool          `yaml:"streaming,omitempty"`
	Box               bool          `yaml:"box,omitempty"`
	HostLabel         bool          `yaml:"hostLabel,omitempty"`
	EventPayload      bool          `yaml:"eventpayload,omitempty"`
	TimestampFormat   string        `yaml:"timestampFormat,omitempty"`
}

// WireName returns the on-wire name of a member stored under key.
func (m *MemberRef) WireName(key string) string {
	if m.LocationName != "" {
		return m.LocationName
	}
	return key
}

// HTTPBinding is the HTTP method, request URI and fixed success status of an operation.
type HTTPBinding struct {
	Method       string `yaml:"method"`
	RequestURI   string `yaml:"requestUri"`
	ResponseCode int    `yaml:"responseCode,omitempty"`
}

// ErrorRef references an error shape from an operation.
type ErrorRef struct {
	MemberRef `yaml:",inline"`
	Error     *ErrorInfo `yaml:"error,omitempty"`
	Exception bool       `yaml:"exception,omitempty"`
	Fault     bool       `yaml:"fault,omitempty"`
}

// Operation is a single API call.
type Operation struct {
	Name              string       `yaml:"name"`
	HTTP              *HTTPBinding `yaml:"http,omitempty"`
	Input             *MemberRef   `yaml:"input,omitempty"`
	Output            *MemberRef   `yaml:"output,omitempty"`
	Errors            []*ErrorRef  `yaml:"errors,omitempty"`
	Documentation     string       `yaml:"documentation,omitempty"`
	DocumentationURL  string       `yaml:"documentationUrl,omitempty"`
	Deprecated        bool         `yaml:"deprecated,omitempty"`
	DeprecatedMessage string       `yaml:"deprecatedMessage,omitempty"`
	Alias             string       `yaml:"alias,omitempty"`
	AuthType          string       `yaml:"authtype,omitempty"`
}

// Shape returns the named shape, or nil.
func (d *ServiceDescription) Shape(name string) *Shape {
	return d.Shapes.Value(name)
}

// Protocol returns the declared wire protocol.
func (d *ServiceDescription) Protocol() string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata.Protocol
}

// Validate performs the minimal precheck: a format version that is either
// absent or "2.0", and one of the supported protocols.
func (d *ServiceDescription) Validate() error {
	if d.Version != "" && d.Version != SupportedFormatVersion {
		return &oaserrors.UnsupportedError{Protocol: d.Protocol(), Version: d.Version, Message: "format version must be " + SupportedFormatVersion}
	}
	if !slices.Contains(SupportedProtocols, d.Protocol()) {
		return &oaserrors.UnsupportedError{Protocol: d.Protocol(), Version: d.Version, Message: "protocol is not supported"}
	}
	return nil
}

// normalize fills defaults that the source format leaves implicit.
func (d *ServiceDescription) normalize() {
	if d.Metadata == nil {
		d.Metadata = &Metadata{}
	}
	if d.Operations == nil {
		d.Operations = ordered.New[*Operation]()
	}
	if d.Shapes == nil {
		d.Shapes = ordered.New[*Shape]()
	}
	for name, op := range d.Operations.All() {
		if op == nil {
			op = &Operation{}
			d.Operations.Set(name, op)
		}
		if op.Name == "" {
			op.Name = name
		}
	}
	for name, s := range d.Shapes.All() {
		if s == nil {
			d.Shapes.Set(name, &Shape{})
		}
	}
}
