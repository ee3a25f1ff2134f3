package openapi

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// marshalWithExtra encodes v (an alias type without methods) and appends the
// vendor extensions in key order. Go's encoding/json has no inline
// maps, so extensions are spliced into the closing brace.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return base, err
	}
	var buf bytes.Buffer
	buf.Grow(len(base) + 32*len(extra))
	buf.Write(base[:len(base)-1])
	empty := len(base) == 2
	for _, k := range slices.Sorted(maps.Keys(extra)) {
		if !empty {
			buf.WriteByte(',')
		}
		empty = false
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(extra[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements custom JSON marshaling for Document.
// This is required to flatten Extra fields (vendor extensions like x-*)
// into the top-level JSON object.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return marshalWithExtra((*alias)(d), d.Extra)
}

// MarshalJSON implements custom JSON marshaling for Info.
func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return marshalWithExtra((*alias)(i), i.Extra)
}

// MarshalJSON implements custom JSON marshaling for Contact.
func (c *Contact) MarshalJSON() ([]byte, error) {
	type alias Contact
	return marshalWithExtra((*alias)(c), c.Extra)
}

// MarshalJSON implements custom JSON marshaling for SecurityScheme.
func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	type alias SecurityScheme
	return marshalWithExtra((*alias)(s), s.Extra)
}

// MarshalJSON implements custom JSON marshaling for Schema.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type alias Schema
	return marshalWithExtra((*alias)(s), s.Extra)
}

// MarshalJSON implements custom JSON marshaling for PathItem.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	type alias PathItem
	return marshalWithExtra((*alias)(p), p.Extra)
}

// MarshalJSON implements custom JSON marshaling for Operation.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	return marshalWithExtra((*alias)(o), o.Extra)
}

// MarshalJSON implements custom JSON marshaling for Parameter.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	return marshalWithExtra((*alias)(p), p.Extra)
}

// MarshalJSON implements custom JSON marshaling for Response.
func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return marshalWithExtra((*alias)(r), r.Extra)
}
