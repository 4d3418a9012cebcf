package xmlutil

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/valentinrusche/opendrive/oderr"
)

// RequireElement returns the element under n at the given xpath expression,
// or a missing-field error naming the expression when there is no match.
func RequireElement(n *xmlquery.Node, path string) (*xmlquery.Node, error) {
	if el := xmlquery.FindOne(n, path); el != nil {
		return el, nil
	}
	return nil, oderr.MissingElement(path, oderr.WithMessage("in "+n.Data))
}

// Text returns the trimmed inner text of n, including CDATA content.
func Text(n *xmlquery.Node) string { return strings.TrimSpace(n.InnerText()) }
