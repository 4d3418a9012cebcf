package opendrive

import (
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/valentinrusche/opendrive/oderr"
	"github.com/valentinrusche/opendrive/xmlutil"
)

// buildRoad assembles one road entity from its element subtree. Sub-builders
// run in a fixed order so failures surface deterministically; any required
// attribute or substructure that is absent aborts the decode.
func buildRoad(el *xmlquery.Node) (Road, error) {
	at := xmlutil.AttrsOf(el)
	id := at.Int("id")
	name := at.String("name")
	length := at.Float("length")
	junction := at.Int("junction")
	if err := at.Err(); err != nil {
		return Road{}, err
	}

	link, err := buildRoadLink(el)
	if err != nil {
		return Road{}, errors.Wrapf(err, "road %d", id)
	}
	roadType, err := buildRoadType(el)
	if err != nil {
		return Road{}, errors.Wrapf(err, "road %d", id)
	}
	planView, err := buildPlanView(el)
	if err != nil {
		return Road{}, errors.Wrapf(err, "road %d", id)
	}
	elevation, lateral, err := buildProfiles(el)
	if err != nil {
		return Road{}, errors.Wrapf(err, "road %d", id)
	}
	lanes, err := buildLanes(el)
	if err != nil {
		return Road{}, errors.Wrapf(err, "road %d", id)
	}
	objects, err := buildObjects(el)
	if err != nil {
		return Road{}, errors.Wrapf(err, "road %d", id)
	}
	signals, err := buildSignals(el, "signals/signal")
	if err != nil {
		return Road{}, errors.Wrapf(err, "road %d", id)
	}
	signalRefs, err := buildSignals(el, "signals/signalReference")
	if err != nil {
		return Road{}, errors.Wrapf(err, "road %d", id)
	}

	return Road{
		ID:               id,
		Name:             name,
		Length:           length,
		Junction:         junction,
		Link:             link,
		Type:             roadType,
		PlanView:         planView,
		ElevationProfile: elevation,
		LateralProfile:   lateral,
		Lanes:            lanes,
		Objects:          objects,
		Signals:          signals,
		SignalReferences: signalRefs,
	}, nil
}

func buildRoadLink(el *xmlquery.Node) (RoadLink, error) {
	pred, err := buildLinkTarget(xmlquery.FindOne(el, "link/predecessor"))
	if err != nil {
		return RoadLink{}, err
	}
	succ, err := buildLinkTarget(xmlquery.FindOne(el, "link/successor"))
	if err != nil {
		return RoadLink{}, err
	}
	return RoadLink{Predecessor: pred, Successor: succ}, nil
}

// buildLinkTarget returns nil for an absent link element; a present one
// requires elementType and elementId.
func buildLinkTarget(el *xmlquery.Node) (*LinkTarget, error) {
	if el == nil {
		return nil, nil
	}
	at := xmlutil.AttrsOf(el)
	target := LinkTarget{
		ElementType:  at.String("elementType"),
		ElementID:    at.Int("elementId"),
		ContactPoint: at.OptString("contactPoint"),
	}
	if err := at.Err(); err != nil {
		return nil, err
	}
	return &target, nil
}

// buildRoadType returns the optional classification record. A type element
// without a nested speed element yields nil.
func buildRoadType(el *xmlquery.Node) (*RoadType, error) {
	typeEl := xmlquery.FindOne(el, "type")
	if typeEl == nil {
		return nil, nil
	}
	at := xmlutil.AttrsOf(typeEl)
	s := at.Float("s")
	kind := at.String("type")
	if err := at.Err(); err != nil {
		return nil, err
	}

	speedEl := xmlquery.FindOne(typeEl, "speed")
	if speedEl == nil {
		return nil, nil
	}
	sp := xmlutil.AttrsOf(speedEl)
	speed := SpeedLimit{
		Max:  sp.Int("max"),
		Unit: sp.String("unit"),
	}
	if err := sp.Err(); err != nil {
		return nil, err
	}
	return &RoadType{S: s, Type: kind, Speed: speed}, nil
}

func buildPlanView(el *xmlquery.Node) ([]Geometry, error) {
	pv, err := xmlutil.RequireElement(el, "planView")
	if err != nil {
		return nil, err
	}
	nodes := xmlquery.Find(pv, "geometry")
	if len(nodes) == 0 {
		return nil, oderr.MissingElement("geometry", oderr.WithMessage("empty planView"))
	}
	return buildList(nodes, buildGeometry, nil)
}

// buildGeometry reads one plan view segment. The s attribute is the
// presence sentinel for the whole positional set: exported segments carry
// either all five pose attributes or none, in which case all stay 0.0.
func buildGeometry(el *xmlquery.Node) (Geometry, error) {
	var s, x, y, hdg, length float64
	at := xmlutil.AttrsOf(el)
	if at.Has("s") {
		s = at.Float("s")
		x = at.Float("x")
		y = at.Float("y")
		hdg = at.Float("hdg")
		length = at.Float("length")
		if err := at.Err(); err != nil {
			return Geometry{}, err
		}
	}

	shape, err := buildShape(el)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{S: s, X: x, Y: y, Hdg: hdg, Length: length, Shape: shape}, nil
}

// buildShape resolves the segment variant. An arc child takes the segment;
// anything else, including an explicit line child or an unknown shape kind,
// is a line.
func buildShape(el *xmlquery.Node) (Shape, error) {
	arc := xmlquery.FindOne(el, "arc")
	if arc == nil {
		return Line{}, nil
	}
	at := xmlutil.AttrsOf(arc)
	curvature := at.Float("curvature")
	if err := at.Err(); err != nil {
		return nil, err
	}
	return Arc{Curvature: curvature}, nil
}

// buildProfiles reads the elevation and super-elevation polynomials. Both
// live under the elevationProfile subtree; exported documents carry no
// separate lateralProfile element. At least one elevation entry is
// required, super-elevation entries are optional.
func buildProfiles(el *xmlquery.Node) ([]Poly3, []Poly3, error) {
	profile, err := xmlutil.RequireElement(el, "elevationProfile")
	if err != nil {
		return nil, nil, err
	}
	elevNodes := xmlquery.Find(profile, "elevation")
	if len(elevNodes) == 0 {
		return nil, nil, oderr.MissingElement("elevation", oderr.WithMessage("empty elevationProfile"))
	}
	elevation, err := buildList(elevNodes, buildPoly3, nil)
	if err != nil {
		return nil, nil, err
	}
	lateral, err := buildList(xmlquery.Find(profile, "superelevation"), buildPoly3, nil)
	if err != nil {
		return nil, nil, err
	}
	return elevation, lateral, nil
}

// buildPoly3 reads one (s,a,b,c,d) polynomial record; every coefficient is
// required.
func buildPoly3(el *xmlquery.Node) (Poly3, error) {
	at := xmlutil.AttrsOf(el)
	p := Poly3{
		S: at.Float("s"),
		A: at.Float("a"),
		B: at.Float("b"),
		C: at.Float("c"),
		D: at.Float("d"),
	}
	if err := at.Err(); err != nil {
		return Poly3{}, err
	}
	return p, nil
}

// buildObjects returns an empty list for roads without an objects subtree.
func buildObjects(el *xmlquery.Node) ([]RoadObject, error) {
	objects := xmlquery.FindOne(el, "objects")
	if objects == nil {
		return nil, nil
	}
	return buildList(xmlquery.Find(objects, "object"), buildObject, nil)
}

func buildObject(el *xmlquery.Node) (RoadObject, error) {
	at := xmlutil.AttrsOf(el)
	obj := RoadObject{
		ID:          at.Int("id"),
		Name:        at.String("name"),
		S:           at.Float("s"),
		T:           at.Float("t"),
		ZOffset:     at.Float("zOffset"),
		Hdg:         at.Float("hdg"),
		Roll:        at.Float("roll"),
		Pitch:       at.Float("pitch"),
		Orientation: at.String("orientation"),
		Type:        at.String("type"),
		Height:      at.OptFloat("height"),
		Width:       at.Float("width"),
		Length:      at.Float("length"),
	}
	if err := at.Err(); err != nil {
		return RoadObject{}, err
	}
	return obj, nil
}
