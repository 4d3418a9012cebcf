package opendrive

import (
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/valentinrusche/opendrive/oderr"
	"github.com/valentinrusche/opendrive/xmlutil"
)

// errSignalCut marks a signal entry that lacks one of its mandatory
// subtrees. Exporters end signal lists with such stubs, so the list is
// truncated at the first one instead of failing the whole road.
var errSignalCut = errors.New("incomplete signal entry")

func cutSignals(err error) bool { return errors.Is(err, errSignalCut) }

// buildSignals reads the signal or signalReference elements below a road.
// A road without any is fine and yields an empty list.
func buildSignals(el *xmlquery.Node, path string) ([]Signal, error) {
	return buildList(xmlquery.Find(el, path), buildSignal, cutSignals)
}

func buildSignal(el *xmlquery.Node) (Signal, error) {
	at := xmlutil.AttrsOf(el)
	for _, name := range []string{"id", "s", "t", "orientation"} {
		if !at.Has(name) {
			return Signal{}, oderr.MissingField(name, el.Data)
		}
	}

	userData := xmlquery.FindOne(el, "userData")
	if userData == nil {
		return Signal{}, errors.Wrap(errSignalCut, "no userData")
	}
	vectors := buildVectorSignals(userData)

	validity := xmlquery.FindOne(el, "validity")
	if validity == nil {
		return Signal{}, errors.Wrap(errSignalCut, "no validity")
	}
	va := xmlutil.AttrsOf(validity)
	fromLane := va.Int("fromLane")
	toLane := va.Int("toLane")
	if err := va.Err(); err != nil {
		return Signal{}, err
	}

	sig := Signal{
		ID:            at.Int("id"),
		S:             at.Float("s"),
		T:             at.Float("t"),
		Orientation:   at.String("orientation"),
		Validity:      LaneValidity{FromLane: fromLane, ToLane: toLane},
		VectorSignals: vectors,
		Name:          at.OptString("name"),
		Country:       at.OptString("country"),
		Dynamic:       at.OptString("dynamic"),
		Text:          at.OptString("text"),
		Type:          at.OptInt("type"),
		Subtype:       at.OptInt("subtype"),
		Value:         at.OptFloat("value"),
		ZOffset:       at.OptFloat("zOffset"),
		HOffset:       at.OptFloat("hOffset"),
		Roll:          at.OptFloat("roll"),
		Pitch:         at.OptFloat("pitch"),
		Height:        at.OptFloat("height"),
		Width:         at.OptFloat("width"),
	}
	if err := at.Err(); err != nil {
		return Signal{}, err
	}
	return sig, nil
}

// buildVectorSignals keeps only the extension entries that actually name a
// signal; exporters emit empty placeholders alongside them.
func buildVectorSignals(userData *xmlquery.Node) []VectorSignal {
	var out []VectorSignal
	for _, n := range xmlquery.Find(userData, "vectorSignal") {
		if id, ok := xmlutil.Attr(n, "signalId"); ok {
			out = append(out, VectorSignal{SignalID: id})
		}
	}
	return out
}
