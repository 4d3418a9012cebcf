package opendrive

import "time"

// OpenDRIVE is the root of the decoded road network. All nested records are
// exclusively owned by their parent and must be treated as read-only once
// Decode returns.
type OpenDRIVE struct {
	Header      Header
	Roads       []Road
	Controllers []Controller
	Junctions   []Junction
}

// Header carries the document metadata, bounding box, projection text and
// the scene descriptor from the vendor extension block.
type Header struct {
	RevMajor int
	RevMinor int
	Version  int
	Date     time.Time
	North    float64
	South    float64
	East     float64
	West     float64
	Vendor   string
	Name     string

	// GeoReference is the opaque projection descriptor text.
	GeoReference string

	Scene VectorScene
}

// VectorScene is the mandatory scene descriptor of the header extension.
type VectorScene struct {
	Program string
	Version string
}

// Road is one road entity with its full substructure.
type Road struct {
	ID       int
	Name     string
	Length   float64
	Junction int // -1 when the road is not part of a junction

	Link             RoadLink
	Type             *RoadType
	PlanView         []Geometry
	ElevationProfile []Poly3
	LateralProfile   []Poly3
	Lanes            Lanes
	Objects          []RoadObject
	Signals          []Signal
	SignalReferences []Signal
}

// RoadLink connects a road to its neighbours along the reference line.
type RoadLink struct {
	Predecessor *LinkTarget
	Successor   *LinkTarget
}

// LinkTarget names a linked element, either a road or a junction.
type LinkTarget struct {
	ElementType  string // "road" or "junction"
	ElementID    int
	ContactPoint *string // "start" or "end" when specified
}

// RoadType is the optional road classification with its speed limit. The
// record exists only when the source carries both the type element and its
// nested speed element.
type RoadType struct {
	S     float64
	Type  string
	Speed SpeedLimit
}

// SpeedLimit is a maximum speed with its unit string.
type SpeedLimit struct {
	Max  int
	Unit string
}

// Geometry is one plan view segment: a pose on the reference line plus the
// shape variant describing how the segment continues.
type Geometry struct {
	S      float64
	X      float64
	Y      float64
	Hdg    float64
	Length float64
	Shape  Shape
}

// Shape is the plan view segment variant, either Line or Arc.
type Shape interface {
	isShape()
}

// Line is a straight segment.
type Line struct{}

// Arc is a constant-curvature segment.
type Arc struct {
	Curvature float64 // 1/m
}

func (Line) isShape() {}
func (Arc) isShape()  {}

// Poly3 is a cubic polynomial in local arc-length offset, used for lane
// offsets, elevation and super-elevation profiles.
type Poly3 struct {
	S float64
	A float64
	B float64
	C float64
	D float64
}

// Eval evaluates the polynomial at arc-length offset s.
func (p Poly3) Eval(s float64) float64 {
	ds := s - p.S
	return p.A + p.B*ds + p.C*ds*ds + p.D*ds*ds*ds
}

// Lanes is a road's lane table: the lane offset polynomials and the single
// lane section.
type Lanes struct {
	Offsets []Poly3
	Section LaneSection
}

// LaneSection holds the up-to-three lane groups of a road cross-section.
// A nil group means the source document omits that side.
type LaneSection struct {
	S      float64
	Left   *LaneGroup
	Center *LaneGroup
	Right  *LaneGroup
}

// LaneGroup is an ordered list of lanes on one side of a lane section.
type LaneGroup struct {
	Lanes []Lane
}

// Lane is a single lane with its links, width and road-mark profiles, and
// the vendor lane descriptors.
type Lane struct {
	ID    int
	Type  string
	Level bool

	Link        LaneLink
	Widths      []LaneWidth
	RoadMarks   []RoadMark
	VectorLanes []VectorLane
}

// LaneLink connects a lane to its neighbours by numeric id only; no
// cross-reference resolution is performed.
type LaneLink struct {
	Predecessor *int
	Successor   *int
}

// LaneWidth is a width polynomial segment local to a lane.
type LaneWidth struct {
	SOffset float64
	A       float64
	B       float64
	C       float64
	D       float64
}

// RoadMark is one road-mark segment of a lane.
type RoadMark struct {
	SOffset    float64
	Type       string
	Material   string
	LaneChange string
	Color      *string
	Width      *float64
}

// VectorLane is one vendor lane descriptor from a lane's extension block.
type VectorLane struct {
	SOffset   float64
	LaneID    string
	TravelDir string
}

// RoadObject is a static object positioned along a road.
type RoadObject struct {
	ID          int
	Name        string
	S           float64
	T           float64
	ZOffset     float64
	Hdg         float64
	Roll        float64
	Pitch       float64
	Orientation string
	Type        string
	Height      *float64
	Width       float64
	Length      float64
}

// Signal is a road signal or signal reference. Optional attributes stay nil
// when absent in the source to preserve the distinction between "not
// specified" and "specified as zero".
type Signal struct {
	ID          int
	S           float64
	T           float64
	Orientation string

	Validity      LaneValidity
	VectorSignals []VectorSignal

	Name    *string
	Country *string
	Dynamic *string
	Text    *string
	Type    *int
	Subtype *int
	Value   *float64
	ZOffset *float64
	HOffset *float64
	Roll    *float64
	Pitch   *float64
	Height  *float64
	Width   *float64
}

// LaneValidity is the lane range a signal applies to.
type LaneValidity struct {
	FromLane int
	ToLane   int
}

// VectorSignal is one external signal id from a signal's extension block.
type VectorSignal struct {
	SignalID string
}

// Controller groups signals under a named control sequence.
type Controller struct {
	ID       int
	Name     string
	Sequence int
	Controls []ControllerControl
}

// ControllerControl is one (signal, control type) pair of a controller.
type ControllerControl struct {
	SignalID int
	Type     string
}

// Junction describes the connections between incoming and connecting roads.
type Junction struct {
	ID          int
	Name        string
	Connections []JunctionConnection

	// Controllers is reserved; current documents never populate it.
	Controllers []JunctionControllerRef

	VectorJunction *VectorJunction
}

// JunctionConnection is one connection of a junction with its lane links.
type JunctionConnection struct {
	ID             int
	IncomingRoad   int
	ConnectingRoad int
	ContactPoint   string
	LaneLinks      []JunctionLaneLink
}

// JunctionLaneLink maps an incoming lane id to a connecting lane id.
type JunctionLaneLink struct {
	From int
	To   int
}

// JunctionControllerRef is a junction-level controller reference.
type JunctionControllerRef struct {
	ID       int
	Type     int
	Sequence int
}

// VectorJunction is the optional junction extension block.
type VectorJunction struct {
	JunctionID string
}
