package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"omnicassion/layout"
	"omnicassion/models"
)

func testPlan(qr []byte) *layout.Plan {
	rec := &models.InvoiceRecord{
		InvoiceNumber: "OMNI/26-01/099",
		Kind:          models.KindInvoice,
		IssuedTo:      "Asha <Mehta>",
		Items: []models.LineItem{
			{ID: 1, Service: "Stage decoration", Quantity: 2, Price: 500, Total: 1000},
		},
	}
	return layout.BuildPlan(rec, nil, nil, qr, layout.A4())
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestBuildHTMLPagesAndText(t *testing.T) {
	doc := BuildHTML(testPlan(nil))

	if got := strings.Count(doc, `<div class="pg">`); got != 1 {
		t.Fatalf("got %d page divs, want 1", got)
	}
	if !strings.Contains(doc, "OMNI/26-01/099") {
		t.Error("invoice number missing from output")
	}
	if !strings.Contains(doc, "Stage decoration") {
		t.Error("line item text missing from output")
	}
	if !strings.Contains(doc, "Asha &lt;Mehta&gt;") {
		t.Error("text must be HTML-escaped")
	}
	if strings.Contains(doc, "Asha <Mehta>") {
		t.Error("raw markup leaked into output")
	}
}

func TestBuildHTMLEmbedsDecodableImage(t *testing.T) {
	doc := BuildHTML(testPlan(pngBytes(t)))

	if !strings.Contains(doc, "data:image/png;base64,") {
		t.Fatal("decodable raster should embed as a data URI")
	}
}

func TestBuildHTMLBadImageFallsBack(t *testing.T) {
	doc := BuildHTML(testPlan([]byte("not an image")))

	if strings.Contains(doc, "data:image/") {
		t.Fatal("undecodable raster must not embed")
	}
	if !strings.Contains(doc, `class="ph"`) {
		t.Fatal("undecodable raster should render the placeholder box")
	}
	if !strings.Contains(doc, `class="dot"`) {
		t.Fatal("qr slot placeholder should carry the dot pattern")
	}
}

func TestBuildHTMLDotPatternDeterministic(t *testing.T) {
	a := BuildHTML(testPlan(nil))
	b := BuildHTML(testPlan(nil))
	if a != b {
		t.Fatal("same plan must lower to identical HTML")
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		kind, number, want string
	}{
		{"FINAL QUOTATION", "OMNI/26-01/099", "FINAL-QUOTATION-OMNI-26-01-099.pdf"},
		{"INVOICE", "OMNI/25-12/001", "INVOICE-OMNI-25-12-001.pdf"},
		{"", "", "QUOTATION-INV.pdf"},
	}
	for _, tc := range cases {
		if got := FileName(tc.kind, tc.number); got != tc.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", tc.kind, tc.number, got, tc.want)
		}
	}
}
