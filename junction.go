package opendrive

import (
	"github.com/antchfx/xmlquery"

	"github.com/valentinrusche/opendrive/xmlutil"
)

func buildJunction(el *xmlquery.Node) (Junction, error) {
	at := xmlutil.AttrsOf(el)
	id := at.Int("id")
	name := at.String("name")
	if err := at.Err(); err != nil {
		return Junction{}, err
	}

	connections, err := buildList(xmlquery.Find(el, "connection"), buildConnection, nil)
	if err != nil {
		return Junction{}, err
	}

	vector, err := buildVectorJunction(el)
	if err != nil {
		return Junction{}, err
	}

	return Junction{
		ID:             id,
		Name:           name,
		Connections:    connections,
		Controllers:    []JunctionControllerRef{},
		VectorJunction: vector,
	}, nil
}

func buildConnection(el *xmlquery.Node) (JunctionConnection, error) {
	links, err := buildList(xmlquery.Find(el, "laneLink"), buildJunctionLaneLink, nil)
	if err != nil {
		return JunctionConnection{}, err
	}

	at := xmlutil.AttrsOf(el)
	c := JunctionConnection{
		ID:             at.Int("id"),
		IncomingRoad:   at.Int("incomingRoad"),
		ConnectingRoad: at.Int("connectingRoad"),
		ContactPoint:   at.String("contactPoint"),
		LaneLinks:      links,
	}
	if err := at.Err(); err != nil {
		return JunctionConnection{}, err
	}
	return c, nil
}

func buildJunctionLaneLink(el *xmlquery.Node) (JunctionLaneLink, error) {
	at := xmlutil.AttrsOf(el)
	l := JunctionLaneLink{
		From: at.Int("from"),
		To:   at.Int("to"),
	}
	if err := at.Err(); err != nil {
		return JunctionLaneLink{}, err
	}
	return l, nil
}

// buildVectorJunction reads the optional vendor extension; when the
// subtree exists its junctionId is mandatory.
func buildVectorJunction(el *xmlquery.Node) (*VectorJunction, error) {
	vj := xmlquery.FindOne(el, "userData/vectorJunction")
	if vj == nil {
		return nil, nil
	}
	at := xmlutil.AttrsOf(vj)
	id := at.String("junctionId")
	if err := at.Err(); err != nil {
		return nil, err
	}
	return &VectorJunction{JunctionID: id}, nil
}
