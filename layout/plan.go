package layout

// OpKind selects how a plan entry is painted.
type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpLine
	OpImage
)

// Align anchors a text run at its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Color is an opaque RGB fill or stroke color.
type Color struct {
	R, G, B uint8
}

var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	GridGray  = Color{200, 200, 200}
	LightGray = Color{240, 240, 240}
	BandGray  = Color{247, 247, 247}
)

// Op is one positioned paint operation. Coordinates are millimetres
// from the page's top-left corner. Ops on the same page paint in
// slice order, so a fill appended before a text run sits behind it.
type Op struct {
	Kind OpKind
	Page int

	X, Y float64

	// Rect and image extent.
	W, H float64

	// Line end point.
	X2, Y2 float64

	// Text run.
	Text  string
	Size  float64 // points
	Bold  bool
	Align Align
	Color Color

	// Rect styling.
	Fill    Color
	Filled  bool
	Stroked bool
	StrokeW float64

	// Image placement. Data may be nil; the renderer substitutes a
	// placeholder when it is missing or undecodable.
	Image []byte
	Slot  string // "logo" or "qr"
	Seed  string // seeds the synthetic pattern for an empty qr slot
}

// Plan is the finished layout: every op for every page, plus the page
// count, in paint order.
type Plan struct {
	Geo   Geometry
	Ops   []Op
	Pages int
}

// PageOps returns the ops belonging to one page, in paint order.
func (p *Plan) PageOps(page int) []Op {
	var out []Op
	for _, op := range p.Ops {
		if op.Page == page {
			out = append(out, op)
		}
	}
	return out
}
