package oderr

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// Kind represents the decode failure taxonomy
type Kind int

const (
	// KindMalformedDocument means the input is not XML or has no root element
	KindMalformedDocument Kind = iota
	// KindMissingHeader means the header or one of its required subtrees is absent
	KindMissingHeader
	// KindMissingField means a required element or attribute is absent
	KindMissingField
	// KindNoRoads means the document declares no road elements
	KindNoRoads
	// KindNoControllers means the document declares no controller elements
	KindNoControllers
	// KindNoJunctions means the document declares no junction elements
	KindNoJunctions
	// KindFormatError means an attribute value failed type coercion
	KindFormatError
)

func (k Kind) String() string {
	switch k {
	case KindMalformedDocument:
		return "malformed-document"
	case KindMissingHeader:
		return "missing-header"
	case KindMissingField:
		return "missing-field"
	case KindNoRoads:
		return "no-roads"
	case KindNoControllers:
		return "no-controllers"
	case KindNoJunctions:
		return "no-junctions"
	case KindFormatError:
		return "format-error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "malformed-document":
		*k = KindMalformedDocument
	case "missing-header":
		*k = KindMissingHeader
	case "missing-field":
		*k = KindMissingField
	case "no-roads":
		*k = KindNoRoads
	case "no-controllers":
		*k = KindNoControllers
	case "no-junctions":
		*k = KindNoJunctions
	case "format-error":
		*k = KindFormatError
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error represents a decode failure.
//
// Element and Attr locate the failure in the source document where known;
// Value carries the offending attribute text for coercion failures.
type Error struct {
	Kind    Kind   `json:"kind"`
	Element string `json:"element,omitempty"`
	Attr    string `json:"attribute,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e Error) Error() string {
	s := e.Kind.String() + " error"
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Attr != "" {
		s += " attribute:" + e.Attr
	}
	if e.Value != "" {
		s += " value:" + strconv.Quote(e.Value)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// KindOf returns the taxonomy kind carried by err, unwrapping as needed.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given taxonomy kind.
func IsKind(err error, k Kind) bool {
	kind, ok := KindOf(err)
	return ok && kind == k
}

func MalformedDocument(opts ...Option) *Error {
	e := &Error{Kind: KindMalformedDocument}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingHeader(opts ...Option) *Error {
	e := &Error{Kind: KindMissingHeader}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingField(attributeName, elementName string, opts ...Option) *Error {
	e := &Error{
		Kind:    KindMissingField,
		Element: elementName,
		Attr:    attributeName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingElement reports an absent required subtree as a missing-field
// condition located at the subtree's element name.
func MissingElement(elementName string, opts ...Option) *Error {
	e := &Error{
		Kind:    KindMissingField,
		Element: elementName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NoRoads(opts ...Option) *Error {
	e := &Error{Kind: KindNoRoads}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NoControllers(opts ...Option) *Error {
	e := &Error{Kind: KindNoControllers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NoJunctions(opts ...Option) *Error {
	e := &Error{Kind: KindNoJunctions}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func FormatError(attributeName, elementName string, opts ...Option) *Error {
	e := &Error{
		Kind:    KindFormatError,
		Element: elementName,
		Attr:    attributeName,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
