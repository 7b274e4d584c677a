package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/domain/enum"
	"github.com/mkamande/tillpoint-api/pkg/apperror"
	"github.com/mkamande/tillpoint-api/pkg/barcode"
	"github.com/mkamande/tillpoint-api/pkg/money"
	"github.com/mkamande/tillpoint-api/pkg/printer"
)

// Named label sizes in millimeters.
const (
	labelSmallW  = 37.0
	labelSmallH  = 22.0
	labelMediumW = 50.0
	labelMediumH = 25.0
	labelLargeW  = 62.0
	labelLargeH  = 29.0
)

// Custom dimension bounds, mm.
const (
	customWidthMin  = 20.0
	customWidthMax  = 100.0
	customHeightMin = 10.0
	customHeightMax = 100.0
)

// LabelService resolves label dimensions from settings and renders product
// labels to PDF and to the thermal printer.
type LabelService struct {
	settings *SettingsService
	printer  printer.Printer
	barcodes barcode.Encoder
}

// NewLabelService creates a new label service
func NewLabelService(settings *SettingsService, p printer.Printer, barcodes barcode.Encoder) *LabelService {
	return &LabelService{
		settings: settings,
		printer:  p,
		barcodes: barcodes,
	}
}

// ResolveDimensions maps a label-size selection to physical millimeters and
// a preview scale factor. Pure: same settings in, same dimensions out.
//
// The preview scale compensates for physical size so every size renders at a
// comparable on-screen footprint: smaller labels scale up, larger ones down.
// Print output never uses the scale; it uses the literal millimeters.
func ResolveDimensions(cfg *entity.LabelSettings) entity.LabelDimensions {
	const baseScale = 0.5

	switch cfg.LabelSize {
	case enum.LabelSizeSmall:
		return entity.LabelDimensions{WidthMm: labelSmallW, HeightMm: labelSmallH, Scale: baseScale * 1.2}
	case enum.LabelSizeLarge:
		return entity.LabelDimensions{WidthMm: labelLargeW, HeightMm: labelLargeH, Scale: baseScale * 0.8}
	case enum.LabelSizeCustom:
		w := parseDimension(cfg.CustomWidth, labelMediumW, customWidthMin, customWidthMax)
		h := parseDimension(cfg.CustomHeight, labelMediumH, customHeightMin, customHeightMax)
		scale := baseScale
		switch {
		case w > 70:
			scale = baseScale * 0.6
		case w < 40:
			scale = baseScale * 1.3
		}
		return entity.LabelDimensions{WidthMm: w, HeightMm: h, Scale: scale}
	default:
		return entity.LabelDimensions{WidthMm: labelMediumW, HeightMm: labelMediumH, Scale: baseScale}
	}
}

// parseDimension reads a stored custom dimension. Unparseable or
// out-of-range values fall back to the medium default.
func parseDimension(raw string, fallback, min, max float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < min || v > max {
		return fallback
	}
	return v
}

// Compose builds a printable label document for the given product content
// using the current label settings.
func (s *LabelService) Compose(ctx context.Context, content entity.LabelContent) *entity.LabelDocument {
	cfg := s.settings.GetLabelSettings(ctx)
	return &entity.LabelDocument{
		Dimensions:    ResolveDimensions(cfg),
		Content:       content,
		FontSizePx:    cfg.FontSize,
		ShowSKU:       cfg.ShowSKU,
		ShowBarcode:   cfg.ShowBarcode,
		ShowPrice:     cfg.ShowPrice,
		BarcodeFormat: cfg.BarcodeFormat,
	}
}

// RenderPDF renders one label as a single PDF page at the label's exact
// physical size. A barcode that cannot be produced in the configured
// symbology is omitted and logged; the rest of the label still renders.
func (s *LabelService) RenderPDF(doc *entity.LabelDocument) ([]byte, error) {
	dims := doc.Dimensions
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: dims.WidthMm, Ht: dims.HeightMm},
	})
	margin := dims.WidthMm * 0.04
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	usable := dims.WidthMm - 2*margin

	// Label font sizes are configured in px at 96 DPI; pt = px * 72 / 96.
	namePt := float64(doc.FontSizePx) * 0.75
	detailPt := namePt * 0.85

	pdf.SetFont("Helvetica", "B", namePt)
	pdf.CellFormat(usable, namePt*0.55, doc.Content.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", detailPt)
	if doc.ShowSKU && doc.Content.SKU != "" {
		pdf.CellFormat(usable, detailPt*0.55, doc.Content.SKU, "", 1, "C", false, 0, "")
	}

	if doc.ShowBarcode {
		barH := dims.HeightMm * 0.35
		barW := usable * 0.9
		if err := s.drawBarcode(pdf, doc, margin+(usable-barW)/2, pdf.GetY()+0.5, barW, barH); err != nil {
			log.Printf("label: barcode omitted: %v", err)
		} else {
			pdf.SetY(pdf.GetY() + barH + 1)
		}
	}

	if doc.ShowPrice {
		pdf.SetFont("Helvetica", "B", namePt)
		pdf.CellFormat(usable, namePt*0.55, "$"+money.Format(doc.Content.Price), "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("label: pdf render: %w", err)
	}
	return buf.Bytes(), nil
}

// drawBarcode encodes the payload in the configured symbology and places it
// on the page. Rendering targets roughly 8 px/mm so the bars stay crisp.
func (s *LabelService) drawBarcode(pdf *gofpdf.Fpdf, doc *entity.LabelDocument, x, y, wMm, hMm float64) error {
	img, err := s.barcodes.Encode(
		doc.Content.BarcodePayload(),
		barcode.Format(doc.BarcodeFormat),
		int(wMm*8), int(hMm*8),
	)
	if err != nil {
		return err
	}

	// Redraw into 8-bit grayscale before encoding; the scaled barcode image
	// carries a 16-bit color model that the PDF embedder rejects.
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return fmt.Errorf("label: barcode png: %w", err)
	}

	name := "label-barcode-" + doc.Content.BarcodePayload()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, x, y, wMm, hMm, false, opts, 0, "")
	return nil
}

// RenderCalibrationPDF renders the printer-alignment test page for the
// current label size: a border, corner registration marks, millimeter tick
// rulers along the top and left edges, and the physical size printed in the
// center. Taping the print over a blank label shows exactly how far the
// printer drifts.
func (s *LabelService) RenderCalibrationPDF(ctx context.Context) ([]byte, error) {
	cfg := s.settings.GetLabelSettings(ctx)
	dims := ResolveDimensions(cfg)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: dims.WidthMm, Ht: dims.HeightMm},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetDrawColor(0, 0, 0)

	w, h := dims.WidthMm, dims.HeightMm

	// Full border at the die-cut edge.
	pdf.SetLineWidth(0.2)
	pdf.Rect(0.1, 0.1, w-0.2, h-0.2, "D")

	// Corner registration marks, 3mm arms.
	const arm = 3.0
	corners := [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	for _, c := range corners {
		dx, dy := arm, arm
		if c[0] > 0 {
			dx = -arm
		}
		if c[1] > 0 {
			dy = -arm
		}
		pdf.Line(c[0], c[1], c[0]+dx, c[1])
		pdf.Line(c[0], c[1], c[0], c[1]+dy)
	}

	// Millimeter rulers: short tick every 1mm, long tick every 5mm.
	pdf.SetLineWidth(0.1)
	for mm := 1.0; mm < w; mm++ {
		tick := 1.0
		if int(mm)%5 == 0 {
			tick = 2.0
		}
		pdf.Line(mm, 0, mm, tick)
	}
	for mm := 1.0; mm < h; mm++ {
		tick := 1.0
		if int(mm)%5 == 0 {
			tick = 2.0
		}
		pdf.Line(0, mm, tick, mm)
	}

	// Physical size in the middle.
	pdf.SetFont("Helvetica", "B", 8)
	caption := fmt.Sprintf("%.0f x %.0f mm", w, h)
	pdf.SetXY(0, h/2-3)
	pdf.CellFormat(w, 4, caption, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 6)
	pdf.CellFormat(w, 3, cfg.LabelSize.String(), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("label: calibration pdf render: %w", err)
	}
	return buf.Bytes(), nil
}

// Print sends one label to the thermal printer as ESC/POS. The printer's
// native CODE128 is used when that symbology is configured; other formats
// fall back to the SKU printed as text under the name.
func (s *LabelService) Print(ctx context.Context, doc *entity.LabelDocument) error {
	if !s.printer.IsConnected() {
		return apperror.ErrPrinterUnavailable
	}

	d := printer.NewDocument(32)
	d.SetAlign(printer.AlignCenter)
	d.SetBold(true)
	d.Text(doc.Content.Name)
	d.SetBold(false)

	if doc.ShowBarcode && doc.BarcodeFormat == enum.BarcodeCode128 {
		d.BarcodeCode128(doc.Content.BarcodePayload(), 50)
	} else if doc.ShowSKU && doc.Content.SKU != "" {
		d.Text(doc.Content.SKU)
	}

	if doc.ShowPrice {
		d.SetFontSize(printer.FontDouble)
		d.Text("$" + money.Format(doc.Content.Price))
		d.SetFontSize(printer.FontNormal)
	}

	d.FeedLines(2)
	d.PartialCut()

	if err := s.printer.Print(d.Bytes()); err != nil {
		log.Printf("label: print failed: %v", err)
		return apperror.ErrPrinterUnavailable
	}
	return nil
}

// TestPrint composes and prints a sample label with fixed content so the
// cashier can verify alignment without touching real product data.
func (s *LabelService) TestPrint(ctx context.Context) error {
	doc := s.Compose(ctx, entity.LabelContent{
		Name:  "Sample Product",
		SKU:   "SAMPLE-123",
		Price: 999,
	})
	return s.Print(ctx, doc)
}

// SupportedSymbology reports whether the configured format can actually be
// rendered, so the settings screen can warn before the first failed label.
func (s *LabelService) SupportedSymbology(format enum.BarcodeFormat) bool {
	_, err := s.barcodes.Encode("0123456789", barcode.Format(format), 200, 60)
	if err != nil && errors.Is(err, barcode.ErrUnsupportedSymbology) {
		return false
	}
	return true
}
