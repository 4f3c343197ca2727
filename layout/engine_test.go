package layout

import (
	"strings"
	"testing"

	"omnicassion/models"
)

func sampleInvoice(items []models.LineItem) *models.InvoiceRecord {
	return &models.InvoiceRecord{
		InvoiceNumber: "OMNI/26-01/099",
		Kind:          models.KindQuotation,
		DateIssued:    "01 Sep 2026",
		IssuedTo:      "Asha Mehta",
		Items:         items,
	}
}

func findText(p *Plan, s string) []Op {
	var out []Op
	for _, op := range p.Ops {
		if op.Kind == OpText && strings.Contains(op.Text, s) {
			out = append(out, op)
		}
	}
	return out
}

func TestBuildPlanEmptyInvoiceStillHasSummary(t *testing.T) {
	p := BuildPlan(sampleInvoice(nil), nil, nil, nil, A4())

	if p.Pages != 1 {
		t.Fatalf("empty invoice should fit one page, got %d", p.Pages)
	}
	for _, label := range []string{"SERVICE", "Site Charges", "SUBTOTAL", "DISCOUNT", "GRAND TOTAL", "TOKEN MONEY PAID", "SECOND INSTALLMENT", "Company Bank Detail:"} {
		if len(findText(p, label)) == 0 {
			t.Errorf("missing %q band", label)
		}
	}
	if len(findText(p, "Amount in words")) != 0 {
		t.Error("zero total must not spell an amount in words")
	}
}

func TestBuildPlanFallbackLabels(t *testing.T) {
	rec := &models.InvoiceRecord{InvoiceNumber: "OMNI/26-01/001"}
	p := BuildPlan(rec, nil, nil, nil, A4())

	if len(findText(p, "N/A")) == 0 {
		t.Fatal("missing optional fields should render the fallback label")
	}
}

func TestBuildPlanNumberBoxMinWidth(t *testing.T) {
	rec := sampleInvoice(nil)
	rec.InvoiceNumber = "X"
	p := BuildPlan(rec, nil, nil, nil, A4())

	var box *Op
	for i, op := range p.Ops {
		if op.Kind == OpRect && op.Stroked && op.H == numberBoxH {
			box = &p.Ops[i]
			break
		}
	}
	if box == nil {
		t.Fatal("number box not found")
	}
	if box.W != numberBoxMinW {
		t.Fatalf("tiny number should floor the box width at %v, got %v", numberBoxMinW, box.W)
	}
}

func TestBuildPlanPageBreakKeepsRowWhole(t *testing.T) {
	long := strings.Repeat("full decoration setup with premium flowers and lighting ", 12)
	var items []models.LineItem
	for i := 0; i < 30; i++ {
		items = append(items, models.LineItem{
			ID: int64(i + 1), Service: long, Quantity: 1, Price: 1000, Total: 1000,
		})
	}
	p := BuildPlan(sampleInvoice(items), nil, nil, nil, A4())

	if p.Pages < 2 {
		t.Fatalf("30 tall rows must paginate, got %d page(s)", p.Pages)
	}

	// Wrapped row text never leaves the printable area: a row that
	// would cross the bottom moves whole to the next page.
	g := A4()
	for _, op := range p.Ops {
		if op.Kind == OpText && op.Size == 8 && op.X == g.Margin+cellPadX {
			if op.Y < g.Margin || op.Y > g.Bottom() {
				t.Fatalf("row text at y=%v outside printable area", op.Y)
			}
		}
	}

	// Banded row fills stay whole as well.
	for _, op := range p.Ops {
		if op.Kind == OpRect && op.Filled && op.Fill == BandGray {
			if op.Y+op.H > g.Bottom() {
				t.Fatalf("banded row from %v to %v crosses the printable bottom %v", op.Y, op.Y+op.H, g.Bottom())
			}
		}
	}
}

func TestBuildPlanRowTallerThanPageStaysInBounds(t *testing.T) {
	// One description that wraps past a full page of lines cannot stay
	// whole; it continues across pages without leaving the printable
	// area.
	huge := strings.Repeat("premium lighting and flower arrangement for the main hall ", 300)
	items := []models.LineItem{{ID: 1, Service: huge, Quantity: 2, Price: 2500, Total: 5000}}
	p := BuildPlan(sampleInvoice(items), nil, nil, nil, A4())

	if p.Pages < 2 {
		t.Fatalf("a row taller than a page must paginate, got %d page(s)", p.Pages)
	}

	g := A4()
	for _, op := range p.Ops {
		if op.Kind == OpText && op.Size == 8 && op.X == g.Margin+cellPadX {
			if op.Y < g.Margin || op.Y > g.Bottom() {
				t.Fatalf("row text at y=%v outside printable area", op.Y)
			}
		}
	}

	// The amount cells paint once, with the first segment.
	if got := len(findText(p, "2,500 Rs")); got != 1 {
		t.Fatalf("price cell painted %d times, want 1", got)
	}
}

func TestBuildPlanBandingAlternatesAcrossPages(t *testing.T) {
	desc := strings.Repeat("catering service for the main hall ", 6)
	var items []models.LineItem
	for i := 0; i < 40; i++ {
		items = append(items, models.LineItem{ID: int64(i + 1), Service: desc, Quantity: 1, Price: 100, Total: 100})
	}
	p := BuildPlan(sampleInvoice(items), nil, nil, nil, A4())

	var bands int
	for _, op := range p.Ops {
		if op.Kind == OpRect && op.Filled && op.Fill == BandGray {
			bands++
		}
	}
	// Banding toggles per item, not per page: exactly the odd-indexed
	// items are banded.
	if bands != 20 {
		t.Fatalf("expected 20 banded rows for 40 items, got %d", bands)
	}
}

func TestBuildPlanSummaryBlockAtomic(t *testing.T) {
	// 28 minimum-height rows fill page one to the point where the
	// summary block no longer fits, forcing the whole block over.
	var items []models.LineItem
	for i := 0; i < 28; i++ {
		items = append(items, models.LineItem{ID: int64(i + 1), Service: "Chairs", Quantity: 10, Price: 50, Total: 500})
	}
	p := BuildPlan(sampleInvoice(items), nil, nil, nil, A4())

	labels := []string{"Site Charges", "SUBTOTAL", "DISCOUNT", "GRAND TOTAL", "TOKEN MONEY PAID", "SECOND INSTALLMENT"}
	page := -1
	for _, label := range labels {
		ops := findText(p, label)
		if len(ops) == 0 {
			t.Fatalf("missing summary label %q", label)
		}
		if page == -1 {
			page = ops[0].Page
		} else if ops[0].Page != page {
			t.Fatalf("summary label %q on page %d, block started on page %d", label, ops[0].Page, page)
		}
	}
}

func TestBuildPlanQRSlotAlwaysPresent(t *testing.T) {
	p := BuildPlan(sampleInvoice(nil), nil, nil, nil, A4())

	var qr *Op
	for i, op := range p.Ops {
		if op.Kind == OpImage && op.Slot == "qr" {
			qr = &p.Ops[i]
			break
		}
	}
	if qr == nil {
		t.Fatal("qr image slot missing")
	}
	if qr.Image != nil {
		t.Fatal("absent qr raster should still emit a nil-data slot")
	}
	if qr.Seed != "OMNI/26-01/099" {
		t.Fatalf("qr seed = %q", qr.Seed)
	}
}
