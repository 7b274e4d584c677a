package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/pkg/apperror"
	"github.com/mkamande/tillpoint-api/pkg/money"
	"github.com/mkamande/tillpoint-api/pkg/printer"
	"github.com/mkamande/tillpoint-api/pkg/qr"
)

// Thermal roll geometry: 80mm paper, 48 characters per line.
const (
	receiptCharWidth = 48
	receiptPaperMm   = 80.0
)

// ReceiptService composes receipt documents from completed orders and
// renders them to the print surfaces (ESC/POS bytes, PDF). Composition is
// deterministic: the same order and settings always produce the same
// document.
type ReceiptService struct {
	settings       *SettingsService
	printer        printer.Printer
	qrEncoder      qr.Encoder
	autoPrintDelay time.Duration
}

// NewReceiptService creates a new receipt service
func NewReceiptService(settings *SettingsService, p printer.Printer, qrEncoder qr.Encoder, autoPrintDelay time.Duration) *ReceiptService {
	if autoPrintDelay <= 0 {
		autoPrintDelay = 400 * time.Millisecond
	}
	return &ReceiptService{
		settings:       settings,
		printer:        p,
		qrEncoder:      qrEncoder,
		autoPrintDelay: autoPrintDelay,
	}
}

// BuildQRPayload derives the string encoded into the receipt QR code. When
// the store configured an explicit QR URL it is used verbatim; otherwise the
// canonical order summary is built from the order fields.
func BuildQRPayload(order *entity.CompletedOrder, settings *entity.ReceiptSettings) string {
	if settings != nil && settings.QRCodeURL != "" {
		return settings.QRCodeURL
	}
	return fmt.Sprintf("order=%s&date=%s&total=%s&items=%d",
		order.ID,
		order.Date.UTC().Format(time.RFC3339),
		money.Format(order.Total),
		len(order.Items),
	)
}

// Compose builds a presentation-ready receipt document from a completed
// order and the current receipt and general settings. Orders without an id
// or line items are rejected before any rendering work happens.
func (s *ReceiptService) Compose(ctx context.Context, order *entity.CompletedOrder) (*entity.ReceiptDocument, error) {
	if !order.Renderable() {
		return nil, apperror.ErrInvalidOrderData
	}

	receiptCfg := s.settings.GetReceiptSettings(ctx)
	generalCfg := s.settings.GetGeneralSettings(ctx)

	storeName := receiptCfg.StoreName
	if generalCfg.StoreName != "" {
		storeName = generalCfg.StoreName
	}

	customer := order.Customer
	if customer == "" {
		customer = "Walk in customer"
	}

	doc := &entity.ReceiptDocument{
		Header: entity.ReceiptHeader{
			StoreName:    storeName,
			Address:      receiptCfg.Address,
			Phone:        receiptCfg.Phone,
			Email:        receiptCfg.Email,
			LicenseLines: licenseLines(receiptCfg.LicenseText),
		},
		Info: entity.ReceiptInfo{
			OrderID:  order.ID,
			Date:     formatOrderDate(order.Date, generalCfg.DateFormat, generalCfg.Timezone),
			Customer: customer,
			Cashier:  order.Cashier,
		},
		Summary: entity.ReceiptSummary{
			SubTotal: money.ToFloat(order.SubTotal),
			Discount: money.ToFloat(order.Discount),
			Tax:      money.ToFloat(order.Tax),
			Total:    money.ToFloat(order.Total),
		},
		Change: money.ToFloat(order.Change),
		Footer: entity.ReceiptFooter{
			ReturnPolicy: receiptCfg.ReturnPolicy,
			FooterText:   receiptCfg.FooterText,
			ThankYou:     receiptCfg.ThankYou,
			ShowQRCode:   receiptCfg.ShowQRCode,
		},
		AutoPrint: receiptCfg.AutoPrint,
		Copies:    receiptCfg.CopyCount,
	}

	if receiptCfg.ShowLogo && receiptCfg.LogoURL != "" {
		doc.Header.LogoURL = receiptCfg.LogoURL
	}
	if receiptCfg.ShowQRCode {
		doc.Footer.QRPayload = BuildQRPayload(order, receiptCfg)
	}

	for _, item := range order.Items {
		doc.Items = append(doc.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: money.ToFloat(item.Price),
			Total:     money.ToFloat(item.Extension()),
		})
	}
	for _, p := range order.Payments {
		doc.Payments = append(doc.Payments, entity.ReceiptPayment{
			Method: p.Method,
			Amount: money.ToFloat(p.Amount),
		})
	}

	return doc, nil
}

// FormatESCPOS renders the receipt document into the ESC/POS byte stream
// for an 80mm thermal printer.
func (s *ReceiptService) FormatESCPOS(doc *entity.ReceiptDocument) []byte {
	d := printer.NewDocument(receiptCharWidth)

	// Header
	d.SetAlign(printer.AlignCenter)
	d.SetFontSize(printer.FontDouble)
	d.SetBold(true)
	d.Text(doc.Header.StoreName)
	d.SetBold(false)
	d.SetFontSize(printer.FontNormal)
	if doc.Header.Address != "" {
		d.Text(doc.Header.Address)
	}
	if doc.Header.Phone != "" {
		d.Text("Tel: " + doc.Header.Phone)
	}
	if doc.Header.Email != "" {
		d.Text(doc.Header.Email)
	}
	for _, line := range doc.Header.LicenseLines {
		d.Text(line)
	}
	d.LineFeed()

	// Order info
	d.SetAlign(printer.AlignLeft)
	d.KeyValue("Order", doc.Info.OrderID)
	d.KeyValue("Date", doc.Info.Date)
	d.KeyValue("Customer", doc.Info.Customer)
	if doc.Info.Cashier != "" {
		d.KeyValue("Cashier", doc.Info.Cashier)
	}
	d.Separator('-')

	// Items
	for _, item := range doc.Items {
		d.ItemLine(item.Quantity, item.Name, formatAmount(item.Total))
	}
	d.Separator('-')

	// Totals. Zero discount and zero tax lines are omitted; the discount is
	// shown negated.
	d.KeyValue("Subtotal", formatAmount(doc.Summary.SubTotal))
	if doc.Summary.Discount > 0 {
		d.KeyValue("Discount", "-"+formatAmount(doc.Summary.Discount))
	}
	if doc.Summary.Tax > 0 {
		d.KeyValue("Tax", formatAmount(doc.Summary.Tax))
	}
	d.SetBold(true)
	d.KeyValue("TOTAL", formatAmount(doc.Summary.Total))
	d.SetBold(false)
	d.Separator('-')

	// Payments and change
	for _, p := range doc.Payments {
		d.KeyValue(p.Method, formatAmount(p.Amount))
	}
	if doc.Change > 0 {
		d.KeyValue("Change", formatAmount(doc.Change))
	}

	// Footer
	d.LineFeed()
	d.SetAlign(printer.AlignCenter)
	if doc.Footer.ReturnPolicy != "" {
		d.TextLines(doc.Footer.ReturnPolicy)
	}
	if doc.Footer.FooterText != "" {
		d.Text(doc.Footer.FooterText)
	}
	if doc.Footer.ShowQRCode && doc.Footer.QRPayload != "" {
		d.LineFeed()
		d.QRCode(doc.Footer.QRPayload, 4, printer.QRCorrectionM)
	}
	if doc.Footer.ThankYou != "" {
		d.LineFeed()
		d.SetBold(true)
		d.Text(doc.Footer.ThankYou)
		d.SetBold(false)
	}

	d.FeedLines(3)
	d.Cut()
	return d.Bytes()
}

// RenderPDF renders the receipt as an 80mm-wide PDF, the fallback surface
// when no thermal printer is attached.
func (s *ReceiptService) RenderPDF(doc *entity.ReceiptDocument) ([]byte, error) {
	height := estimateReceiptHeightMm(doc)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: receiptPaperMm, Ht: height},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	usable := receiptPaperMm - 8

	// Header
	pdf.SetFont("Courier", "B", 12)
	pdf.CellFormat(usable, 6, doc.Header.StoreName, "", 1, "C", false, 0, "")
	pdf.SetFont("Courier", "", 8)
	if doc.Header.Address != "" {
		pdf.CellFormat(usable, 4, doc.Header.Address, "", 1, "C", false, 0, "")
	}
	if doc.Header.Phone != "" {
		pdf.CellFormat(usable, 4, "Tel: "+doc.Header.Phone, "", 1, "C", false, 0, "")
	}
	if doc.Header.Email != "" {
		pdf.CellFormat(usable, 4, doc.Header.Email, "", 1, "C", false, 0, "")
	}
	for _, line := range doc.Header.LicenseLines {
		pdf.CellFormat(usable, 4, line, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	// Order info
	kv := func(key, value string) {
		pdf.CellFormat(usable/2, 4, key, "", 0, "L", false, 0, "")
		pdf.CellFormat(usable/2, 4, value, "", 1, "R", false, 0, "")
	}
	kv("Order", doc.Info.OrderID)
	kv("Date", doc.Info.Date)
	kv("Customer", doc.Info.Customer)
	if doc.Info.Cashier != "" {
		kv("Cashier", doc.Info.Cashier)
	}
	rule(pdf, usable)

	// Items
	for _, item := range doc.Items {
		kv(fmt.Sprintf("%dx %s", item.Quantity, item.Name), formatAmount(item.Total))
	}
	rule(pdf, usable)

	// Totals
	kv("Subtotal", formatAmount(doc.Summary.SubTotal))
	if doc.Summary.Discount > 0 {
		kv("Discount", "-"+formatAmount(doc.Summary.Discount))
	}
	if doc.Summary.Tax > 0 {
		kv("Tax", formatAmount(doc.Summary.Tax))
	}
	pdf.SetFont("Courier", "B", 9)
	kv("TOTAL", formatAmount(doc.Summary.Total))
	pdf.SetFont("Courier", "", 8)
	rule(pdf, usable)

	// Payments and change
	for _, p := range doc.Payments {
		kv(p.Method, formatAmount(p.Amount))
	}
	if doc.Change > 0 {
		kv("Change", formatAmount(doc.Change))
	}
	pdf.Ln(2)

	// Footer
	if doc.Footer.ReturnPolicy != "" {
		pdf.MultiCell(usable, 4, doc.Footer.ReturnPolicy, "", "C", false)
	}
	if doc.Footer.FooterText != "" {
		pdf.CellFormat(usable, 4, doc.Footer.FooterText, "", 1, "C", false, 0, "")
	}
	if doc.Footer.ShowQRCode && doc.Footer.QRPayload != "" {
		png, err := s.qrEncoder.Encode(doc.Footer.QRPayload, 256)
		if err != nil {
			// A broken QR encode never kills the receipt; the code is
			// simply omitted.
			log.Printf("receipt: qr encode failed, omitting: %v", err)
		} else {
			name := "receipt-qr"
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
			const qrMm = 22.0
			x := (receiptPaperMm - qrMm) / 2
			pdf.ImageOptions(name, x, pdf.GetY()+1, qrMm, qrMm, false, opts, 0, "")
			pdf.SetY(pdf.GetY() + qrMm + 2)
		}
	}
	if doc.Footer.ThankYou != "" {
		pdf.SetFont("Courier", "B", 9)
		pdf.CellFormat(usable, 5, doc.Footer.ThankYou, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: pdf render: %w", err)
	}
	return buf.Bytes(), nil
}

// Print sends the receipt to the configured printer, once per configured
// copy. The composed document is never lost on failure; callers keep it and
// can retry.
func (s *ReceiptService) Print(ctx context.Context, doc *entity.ReceiptDocument) error {
	if !s.printer.IsConnected() {
		return apperror.ErrPrinterUnavailable
	}

	data := s.FormatESCPOS(doc)
	copies := doc.Copies
	if copies < 1 {
		copies = 1
	}
	if copies > 5 {
		copies = 5
	}
	for i := 0; i < copies; i++ {
		if err := s.printer.Print(data); err != nil {
			log.Printf("receipt: print copy %d/%d failed: %v", i+1, copies, err)
			return apperror.ErrPrinterUnavailable
		}
	}
	return nil
}

// AutoPrint schedules a background print shortly after finalize when the
// store enabled auto-printing. The short delay lets the register finish its
// confirmation dance first. Failures are logged, never surfaced: the cashier
// can always reprint from the receipt screen.
func (s *ReceiptService) AutoPrint(doc *entity.ReceiptDocument) {
	if !doc.AutoPrint {
		return
	}
	go func() {
		time.Sleep(s.autoPrintDelay)
		if err := s.Print(context.Background(), doc); err != nil {
			log.Printf("receipt: auto-print failed for order %s: %v", doc.Info.OrderID, err)
		}
	}()
}

// PrinterConnected reports whether the configured print surface is reachable.
func (s *ReceiptService) PrinterConnected() bool {
	return s.printer.IsConnected()
}

// estimateReceiptHeightMm sizes the single PDF page before rendering by
// summing the fixed line heights each section emits, mirroring RenderPDF.
// A little slack at the bottom keeps a long footer off the page edge.
func estimateReceiptHeightMm(doc *entity.ReceiptDocument) float64 {
	h := 8.0 // top + bottom margins

	// Header: store name plus optional contact lines.
	h += 6
	if doc.Header.Address != "" {
		h += 4
	}
	if doc.Header.Phone != "" {
		h += 4
	}
	if doc.Header.Email != "" {
		h += 4
	}
	h += 4 * float64(len(doc.Header.LicenseLines))
	h += 2

	// Order info block.
	h += 4 * 3
	if doc.Info.Cashier != "" {
		h += 4
	}

	// Items, totals, payments; three rules at 2mm each.
	h += 3 * 2
	h += 4 * float64(len(doc.Items))
	h += 4 // subtotal
	if doc.Summary.Discount > 0 {
		h += 4
	}
	if doc.Summary.Tax > 0 {
		h += 4
	}
	h += 4 // total
	h += 4 * float64(len(doc.Payments))
	if doc.Change > 0 {
		h += 4
	}
	h += 2

	// Footer.
	if doc.Footer.ReturnPolicy != "" {
		wrapped := float64(len(doc.Footer.ReturnPolicy)/receiptCharWidth + 1)
		h += 4 * wrapped
	}
	if doc.Footer.FooterText != "" {
		h += 4
	}
	if doc.Footer.ShowQRCode && doc.Footer.QRPayload != "" {
		h += 22 + 3
	}
	if doc.Footer.ThankYou != "" {
		h += 5
	}

	return h + 10
}

func rule(pdf *gofpdf.Fpdf, usable float64) {
	pdf.SetDrawColor(120, 120, 120)
	y := pdf.GetY() + 1
	pdf.Line(4, y, 4+usable, y)
	pdf.SetY(y + 1)
}

func formatAmount(v float64) string {
	return money.Format(money.FromFloat(v))
}

// licenseLines splits stored license text into at most four literal lines.
func licenseLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			line := text[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if len(lines) > 4 {
		lines = lines[:4]
	}
	return lines
}

// formatOrderDate renders the order timestamp in the store's configured
// display format and timezone. Unknown formats fall back to MM/DD/YYYY.
func formatOrderDate(t time.Time, dateFormat, timezone string) string {
	if loc, err := time.LoadLocation(timezone); err == nil {
		t = t.In(loc)
	}
	layout := "01/02/2006"
	switch dateFormat {
	case "DD/MM/YYYY":
		layout = "02/01/2006"
	case "YYYY-MM-DD":
		layout = "2006-01-02"
	case "MM/DD/YYYY":
		layout = "01/02/2006"
	}
	return t.Format(layout + " 15:04")
}
