package tvg

// Document is the root of a decoded file: the top-level records, plus any
// warnings accumulated along the way. Main, Certificate, Identity and
// Signature each hold the last record of that kind; their relative order
// on the wire is not kept. Unknown holds every unrecognized top-level
// record in wire order.
type Document struct {
	Main        *MainBody
	Certificate *UnknownRecord
	Identity    *UnknownRecord
	Signature   *UnknownRecord
	Unknown     []UnknownRecord
	Warnings    []Warning
}

// UnknownRecord preserves a tag this package doesn't interpret: its raw id
// and payload bytes, so forward-compatible re-emission is possible without
// understanding the content (§4.2's unknown-tag policy).
type UnknownRecord struct {
	Tag     string
	Payload []byte
}

// MainBody is the decoded "MAIN" container: a palette and an ordered list
// of layers. Layer order on the wire is arbitrary; Layers here is always
// normalized to a fixed kind order — underlay, color, line, overlay —
// regardless of source order, per §3's layer-ordering invariant.
type MainBody struct {
	Palette []PaletteColor
	Layers  []Layer
	Unknown []UnknownRecord
}

// PaletteColor is one entry of the palette (original_source/src/palette.rs).
// Name and ProjectName are UTF-16LE on the wire and decoded to Go strings;
// ColorID is the numeric id other layer data uses to reference this entry.
type PaletteColor struct {
	ColorID     uint64
	RGBA        [4]byte
	Name        string
	ProjectName string
}

// LayerKind classifies a layer's position in the fixed rendering order.
type LayerKind uint8

const (
	LayerUnderlay LayerKind = iota
	LayerColor
	LayerLine
	LayerOverlay
	LayerUnknown
)

// Layer is a single vector layer: its kind (for ordering) and the shapes it
// contains, in wire order (shape order within a layer is significant and is
// not renormalized).
type Layer struct {
	Kind   LayerKind
	Shapes []Shape
}

// ShapeKind mirrors the format's numeric shape-type discriminator
// (original_source/src/layer.rs ShapeType). Reserved numeric values the
// authoring tool doesn't currently emit decode as ShapeUnknown rather than
// failing, consistent with §4.2's forward-compatibility policy extended to
// discriminator values within a recognized tag.
type ShapeKind uint8

const (
	ShapeFill ShapeKind = iota
	ShapeStroke
	ShapeLine
	ShapeUnknown
)

// Shape is a vector shape: its kind and the components that draw it.
type Shape struct {
	Kind       ShapeKind
	RawKind    uint32 // the wire value, kept even when Kind == ShapeUnknown
	Components []Component
}

// ComponentKind mirrors the format's component-type discriminator.
type ComponentKind uint8

const (
	ComponentFill ComponentKind = iota
	ComponentStroke
	ComponentPencil
	ComponentUnknown
)

// Component is one drawable piece of a shape: a boundary path, an optional
// color reference, and an optional thickness profile.
type Component struct {
	Kind      ComponentKind
	RawKind   uint32
	ColorID   uint64
	HasColor  bool
	Path      Path
	Thickness *Thickness // nil unless a tGTB record follows the component, whatever its kind
}

// Segment is one drawn segment of a Path: either a straight line to the
// next point, or a cubic Bezier through the next three points.
type Segment struct {
	Kind SegmentKind
	// P1, P2 hold the cubic's control points; P1 is the Line's sole target
	// point for a Line segment (P2 unused).
	P1, P2, P3 Point
}

// SegmentKind distinguishes Line from Cubic segments in the decoded path
// bitstream (§4.4).
type SegmentKind uint8

const (
	SegLine SegmentKind = iota
	SegCubic
)

// Path is a reconstructed boundary path: a starting anchor point and the
// segments drawn from it in order. See SUPPLEMENTED FEATURES in
// SPEC_FULL.md for why Start is split out from Segments: the wire's first
// bitstream bit and first point are both consumed as the anchor before
// segment decoding begins, never assigned to a segment.
type Path struct {
	Start    Point
	Segments []Segment
}

// ThicknessPoint is one control point of a stroke thickness profile
// (original_source/tvg/src/pencil.rs StrokeThicknessPoint): a location
// along the path and independent left/right offset curves.
type ThicknessPoint struct {
	Location float64
	Left     ThicknessSide
	Right    ThicknessSide
}

// ThicknessSide is one side's scalar offset and the 2-D Bezier control
// handles used to interpolate it between neighboring ThicknessPoints
// (original_source/tvg/src/pencil.rs StrokeThicknessSide: ctrl_back and
// ctrl_fwd are each a Point, not a scalar).
type ThicknessSide struct {
	Offset   float64
	CtrlBack Point
	CtrlFwd  Point
}

// Thickness is a stroke's thickness profile. Definition is nil when the
// component reuses a previously-defined profile rather than defining a new
// one (§"Thickness profile reuse" in SPEC_FULL.md) — the caller is expected
// to have retained the Thickness from the most recently defined profile in
// that case.
type Thickness struct {
	Definition []ThicknessPoint
	Domain     [2]float64
}
