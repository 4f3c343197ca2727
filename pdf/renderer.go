// Package pdf paints a layout.Plan into a paginated PDF. The plan is
// lowered to absolutely-positioned HTML pages and printed with
// headless Chrome, the same pipeline the rest of the codebase uses
// for generated documents.
package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"html"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"omnicassion/layout"
)

const htmlHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
@page { size: A4; margin: 0; }
body { margin: 0; padding: 0; font-family: Arial, Helvetica, sans-serif; }
.pg { position: relative; width: 210mm; height: 297mm; overflow: hidden; page-break-after: always; }
.pg:last-child { page-break-after: auto; }
.t { position: absolute; white-space: nowrap; line-height: 1; }
.r, .ln, .ph, .dot { position: absolute; }
img.im { position: absolute; }
</style>
</head>
<body>`

// Render paints the plan and returns the PDF bytes. Rendering always
// completes: image slots that cannot be decoded fall back to
// placeholders inside BuildHTML.
func Render(p *layout.Plan) ([]byte, error) {
	doc := BuildHTML(p)

	tmpHTML := filepath.Join(os.TempDir(), "invoice_"+time.Now().Format("20060102150405.000")+".html")
	if err := os.WriteFile(tmpHTML, []byte(doc), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}

// BuildHTML lowers the plan to one absolutely-positioned div per op.
// Ops paint in plan order within a page, so banded fills emitted
// before their text end up behind it.
func BuildHTML(p *layout.Plan) string {
	var b strings.Builder
	b.WriteString(htmlHead)

	for pg := 0; pg < p.Pages; pg++ {
		b.WriteString(`<div class="pg">`)
		for _, op := range p.PageOps(pg) {
			switch op.Kind {
			case layout.OpText:
				writeText(&b, op)
			case layout.OpRect:
				writeRect(&b, op)
			case layout.OpLine:
				writeLine(&b, op)
			case layout.OpImage:
				writeImage(&b, op)
			}
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</body></html>`)
	return b.String()
}

func cssColor(c layout.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func writeText(b *strings.Builder, op layout.Op) {
	// Op text coordinates anchor the baseline; shift up by the
	// approximate ascent so the glyphs land on it.
	top := op.Y - op.Size*0.3528

	style := fmt.Sprintf("left:%.2fmm;top:%.2fmm;font-size:%.1fpt;color:%s", op.X, top, op.Size, cssColor(op.Color))
	if op.Bold {
		style += ";font-weight:bold"
	}
	switch op.Align {
	case layout.AlignCenter:
		style += ";transform:translateX(-50%)"
	case layout.AlignRight:
		style += ";transform:translateX(-100%)"
	}
	fmt.Fprintf(b, `<div class="t" style="%s">%s</div>`, style, html.EscapeString(op.Text))
}

func writeRect(b *strings.Builder, op layout.Op) {
	style := fmt.Sprintf("left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm", op.X, op.Y, op.W, op.H)
	if op.Filled {
		style += ";background:" + cssColor(op.Fill)
	}
	if op.Stroked {
		style += fmt.Sprintf(";border:%.2fmm solid %s;box-sizing:border-box", op.StrokeW, cssColor(op.Color))
	}
	fmt.Fprintf(b, `<div class="r" style="%s"></div>`, style)
}

func writeLine(b *strings.Builder, op layout.Op) {
	w := op.StrokeW
	if w == 0 {
		w = 0.2
	}
	var style string
	if op.Y == op.Y2 { // horizontal
		style = fmt.Sprintf("left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm", op.X, op.Y-w/2, op.X2-op.X, w)
	} else { // vertical
		style = fmt.Sprintf("left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm", op.X-w/2, op.Y, w, op.Y2-op.Y)
	}
	style += ";background:" + cssColor(op.Color)
	fmt.Fprintf(b, `<div class="ln" style="%s"></div>`, style)
}

// writeImage embeds the raster as a data URI when it decodes;
// otherwise it degrades to a bordered placeholder, with a synthetic
// dot-matrix pattern for the qr slot.
func writeImage(b *strings.Builder, op layout.Op) {
	if op.Image != nil {
		if cfg, format, err := image.DecodeConfig(bytes.NewReader(op.Image)); err == nil && cfg.Width > 0 {
			fmt.Fprintf(b, `<img class="im" style="left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm" src="data:image/%s;base64,%s">`,
				op.X, op.Y, op.W, op.H, format, base64.StdEncoding.EncodeToString(op.Image))
			return
		}
	}
	writePlaceholder(b, op)
}

func writePlaceholder(b *strings.Builder, op layout.Op) {
	fmt.Fprintf(b, `<div class="ph" style="left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm;border:0.3mm solid #000;box-sizing:border-box"></div>`,
		op.X, op.Y, op.W, op.H)
	if op.Slot != "qr" {
		return
	}

	// Deterministic 8x8 dot matrix seeded from the record key.
	h := fnv.New64a()
	h.Write([]byte(op.Seed))
	bits := h.Sum64()
	cell := op.W / 10
	for i := 0; i < 64; i++ {
		if bits>>uint(i)&1 == 0 {
			continue
		}
		cx := op.X + cell + float64(i%8)*cell
		cy := op.Y + cell + float64(i/8)*cell
		fmt.Fprintf(b, `<div class="dot" style="left:%.2fmm;top:%.2fmm;width:%.2fmm;height:%.2fmm;background:#000"></div>`,
			cx, cy, cell*0.8, cell*0.8)
	}
}

var separators = regexp.MustCompile(`[\s/\\]+`)

// FileName derives the artifact name from the document kind and
// number, collapsing whitespace and path separators to dashes.
func FileName(kind, number string) string {
	if kind == "" {
		kind = "QUOTATION"
	}
	if number == "" {
		number = "INV"
	}
	return separators.ReplaceAllString(kind+"-"+number, "-") + ".pdf"
}
