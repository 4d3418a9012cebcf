package oderr

import (
	"encoding/json"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		kind  Kind
		error string
	}{
		{
			err:   MalformedDocument(WithMessage("no root element")),
			kind:  KindMalformedDocument,
			error: "malformed-document error no root element",
		},
		{
			err:   MissingHeader(WithElement("geoReference")),
			kind:  KindMissingHeader,
			error: "missing-header error element:geoReference",
		},
		{
			err:   MissingField("id", "road"),
			kind:  KindMissingField,
			error: "missing-field error element:road attribute:id",
		},
		{
			err:   MissingElement("planView"),
			kind:  KindMissingField,
			error: "missing-field error element:planView",
		},
		{
			err:   NoRoads(),
			kind:  KindNoRoads,
			error: "no-roads error",
		},
		{
			err:   NoControllers(),
			kind:  KindNoControllers,
			error: "no-controllers error",
		},
		{
			err:   NoJunctions(),
			kind:  KindNoJunctions,
			error: "no-junctions error",
		},
		{
			err:   FormatError("s", "geometry", WithValue("abc")),
			kind:  KindFormatError,
			error: `format-error error element:geometry attribute:s value:"abc"`,
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.error, tc.err.Error())

			kind, ok := KindOf(tc.err)
			check.True(ok)
			check.Equal(tc.kind, kind)
			check.True(IsKind(tc.err, tc.kind))

			// the kind must survive context wrapping at layer boundaries
			wrapped := pkgerrors.Wrap(tc.err, "road 12")
			kind, ok = KindOf(wrapped)
			check.True(ok)
			check.Equal(tc.kind, kind)
		})
	}
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(pkgerrors.New("boom"))
	assert.False(t, ok)
	assert.False(t, IsKind(pkgerrors.New("boom"), KindNoRoads))
}

func TestKindText(t *testing.T) {
	kinds := []Kind{
		KindMalformedDocument,
		KindMissingHeader,
		KindMissingField,
		KindNoRoads,
		KindNoControllers,
		KindNoJunctions,
		KindFormatError,
	}
	for _, k := range kinds {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var got Kind
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, k, got)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("bogus")))
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestErrorJSON(t *testing.T) {
	b, err := json.Marshal(FormatError("s", "geometry", WithValue("x")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"format-error","element":"geometry","attribute":"s","value":"x"}`, string(b))
}
