package layout

import (
	"strconv"

	"omnicassion/billing"
	"omnicassion/models"
	"omnicassion/utils"
)

const (
	fallbackLabel = "N/A"

	logoW  = 40.0
	logoH  = 15.0
	qrSize = 20.0

	minRowHeight = 7.0
	lineSpacing  = 3.5
	rowPadV      = 3.0
	cellPadX     = 2.0

	numberBoxPad  = 4.0
	numberBoxMinW = 30.0
	numberBoxH    = 8.0

	bankBoxH = 22.0
	footerH  = 12.0

	defaultVendor   = "omnicassion"
	defaultTagline  = "Event Management Platform"
	defaultFootnote = "Visit our website www.omnicassion.com to get access to our services."
	footerMotto     = "JUST SIT BACK AND ENJOY"
)

// builder keeps the running cursor while bands are appended.
type builder struct {
	geo  Geometry
	ops  []Op
	page int
	y    float64
}

func (b *builder) text(x, y float64, s string, size float64, bold bool, align Align, c Color) {
	b.ops = append(b.ops, Op{Kind: OpText, Page: b.page, X: x, Y: y, Text: s, Size: size, Bold: bold, Align: align, Color: c})
}

func (b *builder) fillRect(x, y, w, h float64, fill Color) {
	b.ops = append(b.ops, Op{Kind: OpRect, Page: b.page, X: x, Y: y, W: w, H: h, Fill: fill, Filled: true})
}

func (b *builder) strokeRect(x, y, w, h, strokeW float64, c Color) {
	b.ops = append(b.ops, Op{Kind: OpRect, Page: b.page, X: x, Y: y, W: w, H: h, Color: c, Stroked: true, StrokeW: strokeW})
}

func (b *builder) line(x1, y1, x2, y2, w float64, c Color) {
	b.ops = append(b.ops, Op{Kind: OpLine, Page: b.page, X: x1, Y: y1, X2: x2, Y2: y2, StrokeW: w, Color: c})
}

func (b *builder) image(x, y, w, h float64, data []byte, slot, seed string) {
	b.ops = append(b.ops, Op{Kind: OpImage, Page: b.page, X: x, Y: y, W: w, H: h, Image: data, Slot: slot, Seed: seed})
}

func (b *builder) newPage() {
	b.page++
	b.y = b.geo.Margin
}

// ensure moves the cursor to a fresh page when a band of height h
// would cross the printable bottom. The band is never split.
func (b *builder) ensure(h float64) {
	if b.y+h > b.geo.Bottom() {
		b.newPage()
	}
}

func textOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// BuildPlan lays out one invoice document. logo and qr may be nil;
// the renderer degrades those slots to placeholders.
func BuildPlan(rec *models.InvoiceRecord, profile *models.CompanyProfile, logo, qr []byte, geo Geometry) *Plan {
	if profile == nil {
		profile = &models.CompanyProfile{}
	}

	b := &builder{geo: geo, y: geo.Margin}

	subtotal := billing.Subtotal(rec.Items)
	grandTotal := billing.GrandTotal(rec.Items, rec.SiteCharges, rec.Discount)

	b.header(rec, profile, logo, qr)
	b.titleBand(rec)
	b.infoBand(rec, profile)
	b.servicesTable(rec)
	b.summaryBlock(rec, subtotal, grandTotal)
	b.wordsLine(grandTotal)
	b.bankAndFooter(profile)

	return &Plan{Geo: geo, Ops: b.ops, Pages: b.page + 1}
}

// header paints the logo region left and the QR slot right, then a
// full-width rule.
func (b *builder) header(rec *models.InvoiceRecord, profile *models.CompanyProfile, logo, qr []byte) {
	g := b.geo

	if logo != nil {
		b.image(g.Margin, b.y, logoW, logoH, logo, "logo", rec.InvoiceNumber)
	} else {
		b.strokeRect(g.Margin, b.y, logoW, logoH, 0.5, Black)
		b.text(g.Margin+2, b.y+8, textOr(profile.VendorName, "OMNICASSION"), 12, true, AlignLeft, Black)
		b.text(g.Margin+2, b.y+12, textOr(profile.Tagline, defaultTagline), 8, false, AlignLeft, Black)
	}

	b.image(g.Right()-qrSize, b.y, qrSize, qrSize, qr, "qr", rec.InvoiceNumber)

	b.y += 25
	b.line(g.Margin, b.y, g.Right(), b.y, 0.5, Black)
	b.y += 5
}

// titleBand paints the document kind on the left and the invoice
// number in a bordered box on the right. The box hugs the measured
// text width but never shrinks past a minimum.
func (b *builder) titleBand(rec *models.InvoiceRecord) {
	g := b.geo

	kind := textOr(rec.Kind, models.KindQuotation)
	b.text(g.Margin, b.y, kind, 20, true, AlignLeft, Black)

	number := rec.InvoiceNumber
	boxW := StringWidth(number, 10) + 2*numberBoxPad
	if boxW < numberBoxMinW {
		boxW = numberBoxMinW
	}
	boxX := g.Right() - boxW
	b.strokeRect(boxX, b.y-3, boxW, numberBoxH, 0.5, Black)
	b.text(boxX+numberBoxPad, b.y+2, number, 10, false, AlignLeft, Black)

	b.y += 12
}

// infoBand is three columns at fixed offsets: issue date + recipient,
// vendor, contact block.
func (b *builder) infoBand(rec *models.InvoiceRecord, profile *models.CompanyProfile) {
	g := b.geo
	col1X := g.Margin
	col2X := g.Margin + 70
	col3X := g.Right() - 50

	b.text(col1X, b.y, "Date Issued:", 9, true, AlignLeft, Black)
	b.text(col1X, b.y+5, textOr(rec.DateIssued, fallbackLabel), 9, false, AlignLeft, Black)

	b.text(col2X, b.y, "Vendor name:", 9, true, AlignLeft, Black)
	b.text(col2X, b.y+5, textOr(profile.VendorName, defaultVendor), 9, false, AlignLeft, Black)

	b.text(col3X, b.y, "Contact Info:", 9, true, AlignRight, Black)
	b.text(col3X, b.y+4, textOr(profile.ContactEmail, fallbackLabel), 8, false, AlignRight, Black)
	phones := textOr(profile.ContactPhone1, fallbackLabel)
	if profile.ContactPhone2 != "" {
		phones += ", " + profile.ContactPhone2
	}
	b.text(col3X, b.y+7, phones, 8, false, AlignRight, Black)
	b.text(col3X, b.y+10, textOr(profile.Website, fallbackLabel), 8, false, AlignRight, Black)

	b.y += 15

	b.text(col1X, b.y, "Issued to:", 10, true, AlignLeft, Black)
	b.text(col1X, b.y+5, textOr(rec.IssuedTo, fallbackLabel), 10, false, AlignLeft, Black)
	b.y += 10
}

// columnRules draws the three interior vertical rules over a row.
func (b *builder) columnRules(top, h float64, c Color, w float64) {
	g := b.geo
	b.line(g.ServiceEnd(), top, g.ServiceEnd(), top+h, w, c)
	b.line(g.QtyEnd(), top, g.QtyEnd(), top+h, w, c)
	b.line(g.PriceEnd(), top, g.PriceEnd(), top+h, w, c)
}

// servicesTable paints the inverted header row, then one row per line
// item. Row height follows the wrapped description; a row whose
// bottom would pass the printable floor moves whole to a new page.
// Every other item gets a light banding fill, toggling per item even
// across page breaks.
func (b *builder) servicesTable(rec *models.InvoiceRecord) {
	g := b.geo

	// Header row.
	b.fillRect(g.Margin, b.y, g.TableWidth(), 8, Black)
	b.text(g.Margin+2, b.y+5, "SERVICE", 9, true, AlignLeft, White)
	b.text(g.Margin+100, b.y+5, "QTY", 9, true, AlignCenter, White)
	b.text(g.Margin+130, b.y+5, "PRICE", 9, true, AlignRight, White)
	b.text(g.Right()-2, b.y+5, "TOTAL", 9, true, AlignRight, White)
	b.columnRules(b.y, 8, White, 0.3)
	b.y += 8

	interior := g.ServiceEnd() - g.Margin - 2*cellPadX

	// A row taller than a full page cannot stay whole; its wrapped
	// lines continue in page-sized segments instead of painting past
	// the bottom margin.
	maxLines := int((g.Bottom() - g.Margin - rowPadV) / lineSpacing)

	for i, item := range rec.Items {
		lines := WrapText(textOr(item.Service, "Service description"), interior, 8)
		if lines == nil {
			lines = []string{""}
		}

		first := true
		for len(lines) > 0 {
			n := len(lines)
			if n > maxLines {
				n = maxLines
			}
			seg := lines[:n]
			lines = lines[n:]

			rowH := float64(n)*lineSpacing + rowPadV
			if rowH < minRowHeight {
				rowH = minRowHeight
			}

			b.ensure(rowH)
			top := b.y

			if i%2 == 1 {
				b.fillRect(g.Margin, top, g.TableWidth(), rowH, BandGray)
			}
			b.line(g.Margin, top, g.Right(), top, 0.2, GridGray)
			b.columnRules(top, rowH, GridGray, 0.2)

			for j, ln := range seg {
				b.text(g.Margin+cellPadX, top+4+float64(j)*lineSpacing, ln, 8, false, AlignLeft, Black)
			}
			if first {
				b.text(g.Margin+100, top+4, strconv.Itoa(item.Quantity), 8, false, AlignCenter, Black)
				b.text(g.Margin+130, top+4, billing.FormatAmount(item.Price)+" Rs", 8, false, AlignRight, Black)
				b.text(g.Right()-2, top+4, billing.FormatAmount(item.Total)+" Rs", 8, false, AlignRight, Black)
				first = false
			}

			b.y += rowH
		}
	}

	b.line(g.Margin, b.y, g.Right(), b.y, 0.2, GridGray)
}

// summaryBlock is atomic: its six fixed rows page-break together or
// not at all.
func (b *builder) summaryBlock(rec *models.InvoiceRecord, subtotal, grandTotal float64) {
	g := b.geo

	const blockH = 6 + 7 + 6 + 8 + 6 + 6
	b.ensure(blockH)

	// Site Charges.
	b.columnRules(b.y, 6, GridGray, 0.2)
	b.text(g.Margin+2, b.y+4, "Site Charges", 8, false, AlignLeft, Black)
	b.text(g.Right()-2, b.y+4, billing.FormatAmount(rec.SiteCharges)+" Rs", 8, false, AlignRight, Black)
	b.y += 6
	b.line(g.Margin, b.y, g.Right(), b.y, 0.2, GridGray)

	// Subtotal, emphasized with a light fill.
	b.fillRect(g.Margin, b.y, g.TableWidth(), 7, LightGray)
	b.line(g.PriceEnd(), b.y, g.PriceEnd(), b.y+7, 0.2, GridGray)
	b.text(g.Margin+100, b.y+5, "SUBTOTAL", 9, true, AlignRight, Black)
	b.text(g.Right()-2, b.y+5, billing.FormatAmount(subtotal)+" Rs", 9, true, AlignRight, Black)
	b.y += 7
	b.line(g.Margin, b.y, g.Right(), b.y, 0.2, GridGray)

	// Discount.
	b.line(g.PriceEnd(), b.y, g.PriceEnd(), b.y+6, 0.2, GridGray)
	b.text(g.Margin+100, b.y+4, "DISCOUNT", 9, false, AlignRight, Black)
	b.text(g.Right()-2, b.y+4, billing.FormatAmount(rec.Discount)+" Rs", 9, false, AlignRight, Black)
	b.y += 6
	b.line(g.Margin, b.y, g.Right(), b.y, 0.2, GridGray)

	// Grand total, maximum emphasis: inverted fill.
	b.fillRect(g.Margin, b.y, g.TableWidth(), 8, Black)
	b.line(g.PriceEnd(), b.y, g.PriceEnd(), b.y+8, 0.2, White)
	b.text(g.Margin+100, b.y+5, "GRAND TOTAL", 10, true, AlignRight, White)
	b.text(g.Right()-2, b.y+5, billing.FormatAmount(grandTotal)+" Rs", 10, true, AlignRight, White)
	b.y += 8
	b.line(g.Margin, b.y, g.Right(), b.y, 0.2, GridGray)

	// Token money and installment.
	b.line(g.PriceEnd(), b.y, g.PriceEnd(), b.y+6, 0.2, GridGray)
	b.text(g.Margin+100, b.y+4, "TOKEN MONEY PAID", 9, false, AlignRight, Black)
	b.text(g.Right()-2, b.y+4, billing.FormatAmount(rec.TokenPaid), 9, false, AlignRight, Black)
	b.y += 6
	b.line(g.Margin, b.y, g.Right(), b.y, 0.2, GridGray)

	b.line(g.PriceEnd(), b.y, g.PriceEnd(), b.y+6, 0.2, GridGray)
	b.text(g.Margin+100, b.y+4, "SECOND INSTALLMENT", 9, false, AlignRight, Black)
	b.text(g.Right()-2, b.y+4, billing.FormatAmount(rec.SecondInstallment), 9, false, AlignRight, Black)
	b.y += 6
	b.line(g.Margin, b.y, g.Right(), b.y, 0.2, GridGray)

	b.y += 6
}

// wordsLine spells the grand total out, skipped for non-positive
// totals.
func (b *builder) wordsLine(grandTotal float64) {
	if grandTotal <= 0 {
		return
	}
	b.ensure(6)
	b.text(b.geo.Margin, b.y+4, "Amount in words: "+utils.NumberToCurrencyWords(grandTotal), 8, false, AlignLeft, Black)
	b.y += 8
}

// bankAndFooter paints the bank-details box and the footer. The pair
// moves whole to a new page when it would overflow.
func (b *builder) bankAndFooter(profile *models.CompanyProfile) {
	g := b.geo

	b.ensure(bankBoxH + 8 + footerH)

	b.fillRect(g.Margin, b.y, g.TableWidth(), bankBoxH, LightGray)
	b.text(g.Margin+3, b.y+6, "Company Bank Detail:", 10, true, AlignLeft, Black)
	b.text(g.Margin+3, b.y+10, "Bank Name: "+textOr(profile.BankName, fallbackLabel), 9, false, AlignLeft, Black)
	b.text(g.Margin+3, b.y+14, "Account No: "+textOr(profile.AccountNo, fallbackLabel), 9, false, AlignLeft, Black)
	b.text(g.Margin+3, b.y+18, "Account Name: "+textOr(profile.AccountName, fallbackLabel), 9, false, AlignLeft, Black)
	b.y += bankBoxH + 8

	b.line(g.Margin, b.y, g.Right(), b.y, 0.5, Black)
	b.y += 5
	b.text(g.PageW/2, b.y, textOr(profile.Footnote, defaultFootnote), 8, false, AlignCenter, Black)
	b.y += 5
	b.text(g.PageW/2, b.y, footerMotto, 12, true, AlignCenter, Black)
}
