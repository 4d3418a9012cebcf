package opendrive

import (
	"github.com/antchfx/xmlquery"

	"github.com/valentinrusche/opendrive/xmlutil"
)

func buildController(el *xmlquery.Node) (Controller, error) {
	at := xmlutil.AttrsOf(el)
	id := at.Int("id")
	name := at.String("name")
	sequence := at.Int("sequence")
	if err := at.Err(); err != nil {
		return Controller{}, err
	}

	controls, err := buildList(xmlquery.Find(el, "control"), buildControl, nil)
	if err != nil {
		return Controller{}, err
	}
	return Controller{ID: id, Name: name, Sequence: sequence, Controls: controls}, nil
}

func buildControl(el *xmlquery.Node) (ControllerControl, error) {
	at := xmlutil.AttrsOf(el)
	c := ControllerControl{
		SignalID: at.Int("signalId"),
		Type:     at.String("type"),
	}
	if err := at.Err(); err != nil {
		return ControllerControl{}, err
	}
	return c, nil
}
