// Package layout turns an invoice record into a print plan: an
// ordered list of positioned paint operations tagged with page
// indexes. It does no painting itself, so the page arithmetic is
// testable without a render surface.
package layout

// Geometry describes the page in millimetres.
type Geometry struct {
	PageW  float64
	PageH  float64
	Margin float64
}

// A4 portrait with 10mm margins.
func A4() Geometry {
	return Geometry{PageW: 210, PageH: 297, Margin: 10}
}

// Column edges of the services table. SERVICE is the wide column; the
// remainder is split between QTY, PRICE and TOTAL. The same edges are
// reused as vertical rule positions for every row.
func (g Geometry) ServiceEnd() float64 { return g.Margin + 90 }
func (g Geometry) QtyEnd() float64     { return g.Margin + 115 }
func (g Geometry) PriceEnd() float64   { return g.Margin + 145 }

// Right is the table's right edge, Bottom the printable floor below
// which rows must move to the next page.
func (g Geometry) Right() float64  { return g.PageW - g.Margin }
func (g Geometry) Bottom() float64 { return g.PageH - g.Margin }

// TableWidth spans all four columns.
func (g Geometry) TableWidth() float64 { return g.PageW - 2*g.Margin }
