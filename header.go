package opendrive

import (
	"github.com/antchfx/xmlquery"

	"github.com/valentinrusche/opendrive/oderr"
	"github.com/valentinrusche/opendrive/xmlutil"
)

// headerDateLayout is the creation timestamp format of exported documents.
const headerDateLayout = "2006-01-02T15:04:05"

// buildHeader reads the document header together with its geoReference text
// and the scene descriptor of the extension block. The header carries no
// optional fields; anything absent aborts the decode.
func buildHeader(root *xmlquery.Node) (Header, error) {
	el := xmlquery.FindOne(root, "header")
	if el == nil {
		return Header{}, oderr.MissingHeader(oderr.WithMessage("no header subtree"))
	}

	geoRef := xmlquery.FindOne(el, "geoReference")
	if geoRef == nil {
		return Header{}, oderr.MissingHeader(oderr.WithElement("geoReference"))
	}
	geoText := xmlutil.Text(geoRef)
	if geoText == "" {
		return Header{}, oderr.MissingHeader(oderr.WithElement("geoReference"), oderr.WithMessage("empty projection text"))
	}

	userData := xmlquery.FindOne(el, "userData")
	if userData == nil {
		return Header{}, oderr.MissingHeader(oderr.WithElement("userData"))
	}
	sceneEl := xmlquery.FindOne(userData, "vectorScene")
	if sceneEl == nil {
		return Header{}, oderr.MissingHeader(oderr.WithElement("vectorScene"))
	}
	sat := xmlutil.AttrsOf(sceneEl)
	scene := VectorScene{
		Program: sat.String("program"),
		Version: sat.String("version"),
	}
	if err := sat.Err(); err != nil {
		return Header{}, err
	}

	at := xmlutil.AttrsOf(el)
	header := Header{
		RevMajor:     at.Int("revMajor"),
		RevMinor:     at.Int("revMinor"),
		Version:      at.Int("version"),
		Date:         at.Time("date", headerDateLayout),
		North:        at.Float("north"),
		South:        at.Float("south"),
		East:         at.Float("east"),
		West:         at.Float("west"),
		Vendor:       at.String("vendor"),
		Name:         at.String("name"),
		GeoReference: geoText,
		Scene:        scene,
	}
	if err := at.Err(); err != nil {
		return Header{}, err
	}
	return header, nil
}
