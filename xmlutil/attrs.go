package xmlutil

import (
	"strconv"
	"time"

	"github.com/antchfx/xmlquery"

	"github.com/valentinrusche/opendrive/oderr"
)

// Attr returns the value of the named attribute on n and whether the
// attribute is present. Presence is significant: an empty value is distinct
// from an absent attribute.
func Attr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs reads typed attributes from a single element, remembering the first
// failure. Call sites read a whole attribute set declaratively and check
// Err once; after a failure the remaining reads return zero values.
type Attrs struct {
	node *xmlquery.Node
	err  error
}

// AttrsOf returns an attribute reader over the element n.
func AttrsOf(n *xmlquery.Node) *Attrs { return &Attrs{node: n} }

// Err returns the first failure recorded by a reader method.
func (a *Attrs) Err() error { return a.err }

// Has reports whether the named attribute is present.
func (a *Attrs) Has(name string) bool {
	_, ok := Attr(a.node, name)
	return ok
}

func (a *Attrs) element() string { return a.node.Data }

// String reads a required string attribute.
func (a *Attrs) String(name string) string {
	if a.err != nil {
		return ""
	}
	v, ok := Attr(a.node, name)
	if !ok {
		a.err = oderr.MissingField(name, a.element())
		return ""
	}
	return v
}

// Int reads a required integer attribute.
func (a *Attrs) Int(name string) int {
	v := a.String(name)
	if a.err != nil {
		return 0
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		a.err = oderr.FormatError(name, a.element(), oderr.WithValue(v))
		return 0
	}
	return i
}

// Float reads a required floating point attribute.
func (a *Attrs) Float(name string) float64 {
	v := a.String(name)
	if a.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		a.err = oderr.FormatError(name, a.element(), oderr.WithValue(v))
		return 0
	}
	return f
}

// Bool reads a required boolean attribute.
func (a *Attrs) Bool(name string) bool {
	v := a.String(name)
	if a.err != nil {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		a.err = oderr.FormatError(name, a.element(), oderr.WithValue(v))
		return false
	}
	return b
}

// Time reads a required timestamp attribute in the given layout.
func (a *Attrs) Time(name, layout string) time.Time {
	v := a.String(name)
	if a.err != nil {
		return time.Time{}
	}
	ts, err := time.Parse(layout, v)
	if err != nil {
		a.err = oderr.FormatError(name, a.element(), oderr.WithValue(v))
		return time.Time{}
	}
	return ts
}

// OptString reads an optional string attribute, nil when absent.
func (a *Attrs) OptString(name string) *string {
	if a.err != nil {
		return nil
	}
	v, ok := Attr(a.node, name)
	if !ok {
		return nil
	}
	return &v
}

// OptInt reads an optional integer attribute, nil when absent.
func (a *Attrs) OptInt(name string) *int {
	if a.err != nil {
		return nil
	}
	v, ok := Attr(a.node, name)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		a.err = oderr.FormatError(name, a.element(), oderr.WithValue(v))
		return nil
	}
	return &i
}

// OptFloat reads an optional floating point attribute, nil when absent.
func (a *Attrs) OptFloat(name string) *float64 {
	if a.err != nil {
		return nil
	}
	v, ok := Attr(a.node, name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		a.err = oderr.FormatError(name, a.element(), oderr.WithValue(v))
		return nil
	}
	return &f
}
