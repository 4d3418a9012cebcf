package opendrive

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/valentinrusche/opendrive/oderr"
)

// Result is the outcome of a decode: the fully populated document graph,
// the derived drivable road list and the ids of the roads the filter
// removed.
type Result struct {
	Document *OpenDRIVE
	Drivable []Road
	Removed  map[int]struct{}
}

// Decode parses an OpenDRIVE document, builds the typed road network and
// derives its drivable view. Any structural defect aborts the whole decode
// with a taxonomy error from oderr; there is no partial result. A nil
// logger disables diagnostics.
func Decode(doc string, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("Starting to parse XODR.")

	tree, err := xmlquery.Parse(strings.NewReader(doc))
	if err != nil {
		log.Error("Cannot parse XODR. No valid document root found!", zap.Error(err))
		return nil, oderr.MalformedDocument(oderr.WithMessage(err.Error()))
	}
	root := rootElement(tree)
	if root == nil {
		log.Error("Cannot parse XODR. No valid document root found!")
		return nil, oderr.MalformedDocument(oderr.WithMessage("no root element"))
	}

	header, err := buildHeader(root)
	if err != nil {
		log.Error("Cannot parse header from XODR. No valid header found!", zap.Error(err))
		return nil, errors.Wrap(err, "header")
	}

	roads, err := decodeRoads(root)
	if err != nil {
		log.Error("Cannot parse roads from XODR. No valid roads found!", zap.Error(err))
		return nil, errors.Wrap(err, "roads")
	}

	controllers, err := decodeControllers(root)
	if err != nil {
		log.Error("Cannot parse controllers from XODR. No valid controllers found!", zap.Error(err))
		return nil, errors.Wrap(err, "controllers")
	}

	junctions, err := decodeJunctions(root)
	if err != nil {
		log.Error("Cannot parse junctions from XODR. No valid junctions found!", zap.Error(err))
		return nil, errors.Wrap(err, "junctions")
	}

	document := &OpenDRIVE{
		Header:      header,
		Roads:       roads,
		Controllers: controllers,
		Junctions:   junctions,
	}
	log.Info("Parsed XODR.",
		zap.Int("roads", len(document.Roads)),
		zap.Int("controllers", len(document.Controllers)),
		zap.Int("junctions", len(document.Junctions)))
	logJunctionOccurrences(log, document.Roads)

	drivable, removed := FilterRoads(document.Roads, log)
	return &Result{Document: document, Drivable: drivable, Removed: removed}, nil
}

// rootElement returns the first element child of the document node. The
// root's tag name is not checked; exporters disagree on its capitalization.
func rootElement(doc *xmlquery.Node) *xmlquery.Node {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	return nil
}

func decodeRoads(root *xmlquery.Node) ([]Road, error) {
	nodes := xmlquery.QuerySelectorAll(root, xpRoad)
	if len(nodes) == 0 {
		return nil, oderr.NoRoads()
	}
	return buildList(nodes, buildRoad, nil)
}

func decodeControllers(root *xmlquery.Node) ([]Controller, error) {
	nodes := xmlquery.QuerySelectorAll(root, xpController)
	if len(nodes) == 0 {
		return nil, oderr.NoControllers()
	}
	return buildList(nodes, buildController, nil)
}

func decodeJunctions(root *xmlquery.Node) ([]Junction, error) {
	nodes := xmlquery.QuerySelectorAll(root, xpJunction)
	if len(nodes) == 0 {
		return nil, oderr.NoJunctions()
	}
	return buildList(nodes, buildJunction, nil)
}

// buildList builds one record per node in document order. A build failure
// aborts the fold unless cut reports it as a cutoff, in which case the
// records built so far are returned without error.
func buildList[T any](nodes []*xmlquery.Node, build func(*xmlquery.Node) (T, error), cut func(error) bool) ([]T, error) {
	out := make([]T, 0, len(nodes))
	for _, n := range nodes {
		rec, err := build(n)
		if err != nil {
			if cut != nil && cut(err) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// logJunctionOccurrences reports how often each junction id occurs across
// the road list; -1 collects the roads outside any junction.
func logJunctionOccurrences(log *zap.Logger, roads []Road) {
	occurrences := lo.CountValuesBy(roads, func(r Road) int { return r.Junction })
	log.Debug("Road junction occurrences.",
		zap.Any("occurrences", occurrences),
		zap.Int("distinct", len(occurrences)))
}

var (
	xpRoad       = xpath.MustCompile(`road`)
	xpController = xpath.MustCompile(`controller`)
	xpJunction   = xpath.MustCompile(`junction`)
)
