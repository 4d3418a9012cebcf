package opendrive

import (
	"github.com/antchfx/xmlquery"

	"github.com/valentinrusche/opendrive/oderr"
	"github.com/valentinrusche/opendrive/xmlutil"
)

// buildLanes reads a road's lane table: at least one laneOffset polynomial
// and exactly one laneSection.
func buildLanes(el *xmlquery.Node) (Lanes, error) {
	lanesEl, err := xmlutil.RequireElement(el, "lanes")
	if err != nil {
		return Lanes{}, err
	}

	offsetNodes := xmlquery.Find(lanesEl, "laneOffset")
	if len(offsetNodes) == 0 {
		return Lanes{}, oderr.MissingElement("laneOffset", oderr.WithMessage("in lanes"))
	}
	offsets, err := buildList(offsetNodes, buildPoly3, nil)
	if err != nil {
		return Lanes{}, err
	}

	section, err := buildLaneSection(lanesEl)
	if err != nil {
		return Lanes{}, err
	}
	return Lanes{Offsets: offsets, Section: section}, nil
}

func buildLaneSection(lanesEl *xmlquery.Node) (LaneSection, error) {
	el, err := xmlutil.RequireElement(lanesEl, "laneSection")
	if err != nil {
		return LaneSection{}, err
	}
	at := xmlutil.AttrsOf(el)
	s := at.Float("s")
	if err := at.Err(); err != nil {
		return LaneSection{}, err
	}

	left, err := buildLaneGroup(xmlquery.FindOne(el, "left"))
	if err != nil {
		return LaneSection{}, err
	}
	center, err := buildLaneGroup(xmlquery.FindOne(el, "center"))
	if err != nil {
		return LaneSection{}, err
	}
	right, err := buildLaneGroup(xmlquery.FindOne(el, "right"))
	if err != nil {
		return LaneSection{}, err
	}
	return LaneSection{S: s, Left: left, Center: center, Right: right}, nil
}

// buildLaneGroup returns nil for an absent side. A present side with no
// lane children yields an empty group.
func buildLaneGroup(el *xmlquery.Node) (*LaneGroup, error) {
	if el == nil {
		return nil, nil
	}
	lanes, err := buildList(xmlquery.Find(el, "lane"), buildLane, nil)
	if err != nil {
		return nil, err
	}
	return &LaneGroup{Lanes: lanes}, nil
}

// buildLane reads one lane. The userData extension block is mandatory even
// though its vectorLanes payload may be empty.
func buildLane(el *xmlquery.Node) (Lane, error) {
	at := xmlutil.AttrsOf(el)
	id := at.Int("id")
	laneType := at.String("type")
	level := at.Bool("level")
	if err := at.Err(); err != nil {
		return Lane{}, err
	}

	userData, err := xmlutil.RequireElement(el, "userData")
	if err != nil {
		return Lane{}, err
	}
	vectors, err := buildList(xmlquery.Find(userData, "vectorLanes"), buildVectorLane, nil)
	if err != nil {
		return Lane{}, err
	}

	widths, err := buildList(xmlquery.Find(el, "width"), buildLaneWidth, nil)
	if err != nil {
		return Lane{}, err
	}
	marks, err := buildList(xmlquery.Find(el, "roadMark"), buildRoadMark, nil)
	if err != nil {
		return Lane{}, err
	}
	link, err := buildLaneLink(el)
	if err != nil {
		return Lane{}, err
	}

	return Lane{
		ID:          id,
		Type:        laneType,
		Level:       level,
		Link:        link,
		Widths:      widths,
		RoadMarks:   marks,
		VectorLanes: vectors,
	}, nil
}

func buildVectorLane(el *xmlquery.Node) (VectorLane, error) {
	at := xmlutil.AttrsOf(el)
	v := VectorLane{
		SOffset:   at.Float("sOffset"),
		LaneID:    at.String("laneId"),
		TravelDir: at.String("travelDir"),
	}
	if err := at.Err(); err != nil {
		return VectorLane{}, err
	}
	return v, nil
}

func buildLaneWidth(el *xmlquery.Node) (LaneWidth, error) {
	at := xmlutil.AttrsOf(el)
	w := LaneWidth{
		SOffset: at.Float("sOffset"),
		A:       at.Float("a"),
		B:       at.Float("b"),
		C:       at.Float("c"),
		D:       at.Float("d"),
	}
	if err := at.Err(); err != nil {
		return LaneWidth{}, err
	}
	return w, nil
}

// buildRoadMark reads one road-mark segment; color and width stay nil when
// the source omits them.
func buildRoadMark(el *xmlquery.Node) (RoadMark, error) {
	at := xmlutil.AttrsOf(el)
	m := RoadMark{
		SOffset:    at.Float("sOffset"),
		Type:       at.String("type"),
		Material:   at.String("material"),
		LaneChange: at.String("laneChange"),
		Color:      at.OptString("color"),
		Width:      at.OptFloat("width"),
	}
	if err := at.Err(); err != nil {
		return RoadMark{}, err
	}
	return m, nil
}

// buildLaneLink reads the optional lane link; a present predecessor or
// successor names the neighbour lane by id only.
func buildLaneLink(el *xmlquery.Node) (LaneLink, error) {
	link := xmlquery.FindOne(el, "link")
	if link == nil {
		return LaneLink{}, nil
	}
	pred, err := laneLinkID(xmlquery.FindOne(link, "predecessor"))
	if err != nil {
		return LaneLink{}, err
	}
	succ, err := laneLinkID(xmlquery.FindOne(link, "successor"))
	if err != nil {
		return LaneLink{}, err
	}
	return LaneLink{Predecessor: pred, Successor: succ}, nil
}

func laneLinkID(el *xmlquery.Node) (*int, error) {
	if el == nil {
		return nil, nil
	}
	at := xmlutil.AttrsOf(el)
	id := at.Int("id")
	if err := at.Err(); err != nil {
		return nil, err
	}
	return &id, nil
}
