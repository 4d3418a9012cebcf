package xmlutil

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valentinrusche/opendrive/oderr"
)

func parseElement(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	root, err := xmlquery.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	el := xmlquery.FindOne(root, "//el")
	require.NotNil(t, el)
	return el
}

func TestAttrPresence(t *testing.T) {
	el := parseElement(t, `<el empty="" set="x"/>`)

	for _, tc := range []struct {
		name    string
		value   string
		present bool
	}{
		{name: "empty", value: "", present: true},
		{name: "set", value: "x", present: true},
		{name: "absent", value: "", present: false},
	} {
		v, ok := Attr(el, tc.name)
		assert.Equal(t, tc.value, v, tc.name)
		assert.Equal(t, tc.present, ok, tc.name)
	}
}

func TestAttrsRequired(t *testing.T) {
	el := parseElement(t, `<el s="driving" i="-3" f="2.5" b="false" t="2021-06-01T12:30:00"/>`)

	at := AttrsOf(el)
	check := assert.New(t)
	check.Equal("driving", at.String("s"))
	check.Equal(-3, at.Int("i"))
	check.Equal(2.5, at.Float("f"))
	check.Equal(false, at.Bool("b"))
	check.Equal(time.Date(2021, 6, 1, 12, 30, 0, 0, time.UTC), at.Time("t", "2006-01-02T15:04:05"))
	check.True(at.Has("s"))
	check.False(at.Has("missing"))
	check.NoError(at.Err())
}

func TestAttrsOptional(t *testing.T) {
	el := parseElement(t, `<el s="left" i="7" f="0.25"/>`)

	at := AttrsOf(el)
	check := assert.New(t)
	if check.NotNil(at.OptString("s")) {
		check.Equal("left", *at.OptString("s"))
	}
	if check.NotNil(at.OptInt("i")) {
		check.Equal(7, *at.OptInt("i"))
	}
	if check.NotNil(at.OptFloat("f")) {
		check.Equal(0.25, *at.OptFloat("f"))
	}
	check.Nil(at.OptString("absent"))
	check.Nil(at.OptInt("absent"))
	check.Nil(at.OptFloat("absent"))
	check.NoError(at.Err())
}

func TestAttrsFailures(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
		read func(*Attrs)
		kind oderr.Kind
		attr string
	}{
		{
			name: "missing string",
			doc:  `<el/>`,
			read: func(a *Attrs) { a.String("name") },
			kind: oderr.KindMissingField,
			attr: "name",
		},
		{
			name: "missing int",
			doc:  `<el/>`,
			read: func(a *Attrs) { a.Int("id") },
			kind: oderr.KindMissingField,
			attr: "id",
		},
		{
			name: "int coercion",
			doc:  `<el id="twelve"/>`,
			read: func(a *Attrs) { a.Int("id") },
			kind: oderr.KindFormatError,
			attr: "id",
		},
		{
			name: "int of float text",
			doc:  `<el id="12.5"/>`,
			read: func(a *Attrs) { a.Int("id") },
			kind: oderr.KindFormatError,
			attr: "id",
		},
		{
			name: "float coercion",
			doc:  `<el s="abc"/>`,
			read: func(a *Attrs) { a.Float("s") },
			kind: oderr.KindFormatError,
			attr: "s",
		},
		{
			name: "bool coercion",
			doc:  `<el level="maybe"/>`,
			read: func(a *Attrs) { a.Bool("level") },
			kind: oderr.KindFormatError,
			attr: "level",
		},
		{
			name: "timestamp coercion",
			doc:  `<el date="June 2021"/>`,
			read: func(a *Attrs) { a.Time("date", "2006-01-02T15:04:05") },
			kind: oderr.KindFormatError,
			attr: "date",
		},
		{
			name: "optional int coercion",
			doc:  `<el type="stop"/>`,
			read: func(a *Attrs) { a.OptInt("type") },
			kind: oderr.KindFormatError,
			attr: "type",
		},
		{
			name: "optional float coercion",
			doc:  `<el width="wide"/>`,
			read: func(a *Attrs) { a.OptFloat("width") },
			kind: oderr.KindFormatError,
			attr: "width",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			at := AttrsOf(parseElement(t, tc.doc))
			tc.read(at)

			err := at.Err()
			require.Error(t, err)
			assert.True(t, oderr.IsKind(err, tc.kind))

			var oe *oderr.Error
			require.True(t, errors.As(err, &oe))
			assert.Equal(t, tc.attr, oe.Attr)
			assert.Equal(t, "el", oe.Element)
		})
	}
}

func TestAttrsStickyFirstError(t *testing.T) {
	at := AttrsOf(parseElement(t, `<el bad="x"/>`))

	_ = at.Int("bad")
	first := at.Err()
	require.Error(t, first)

	// later reads return zero values and do not replace the first failure
	assert.Equal(t, 0, at.Int("missing"))
	assert.Equal(t, "", at.String("missing"))
	assert.Nil(t, at.OptInt("bad"))
	assert.Same(t, first.(*oderr.Error), at.Err().(*oderr.Error))
}

func TestRequireElement(t *testing.T) {
	el := parseElement(t, `<el><child><inner/></child></el>`)

	got, err := RequireElement(el, "child/inner")
	require.NoError(t, err)
	assert.Equal(t, "inner", got.Data)

	_, err = RequireElement(el, "child/other")
	require.Error(t, err)
	assert.True(t, oderr.IsKind(err, oderr.KindMissingField))
}

func TestText(t *testing.T) {
	el := parseElement(t, "<el><![CDATA[ +proj=utm +zone=32 ]]></el>")
	assert.Equal(t, "+proj=utm +zone=32", Text(el))

	el = parseElement(t, "<el>\n\t\n</el>")
	assert.Equal(t, "", Text(el))
}
