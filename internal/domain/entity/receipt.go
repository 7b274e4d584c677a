package entity

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName    string   `json:"store_name"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	LogoURL      string   `json:"logo_url,omitempty"`
	LicenseLines []string `json:"license_lines,omitempty"`
}

// ReceiptInfo is the order identity block under the header.
type ReceiptInfo struct {
	OrderID  string `json:"order_id"`
	Date     string `json:"date"` // preformatted per the store's date format
	Customer string `json:"customer"`
	Cashier  string `json:"cashier,omitempty"`
}

// ReceiptItem represents a single line item on a receipt. Amounts are
// decimals; the document is presentation-ready.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// ReceiptSummary is the totals block. Discount is carried positive; the
// renderer displays it negated and omits zero discount/tax lines.
type ReceiptSummary struct {
	SubTotal float64 `json:"sub_total"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ReceiptPayment is one payment line in the payments block.
type ReceiptPayment struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// ReceiptFooter closes out the receipt.
type ReceiptFooter struct {
	ReturnPolicy string `json:"return_policy,omitempty"`
	FooterText   string `json:"footer_text,omitempty"`
	ThankYou     string `json:"thank_you"`
	ShowQRCode   bool   `json:"show_qr_code"`
	QRPayload    string `json:"qr_payload,omitempty"`
}

// ReceiptDocument is a structured, print-targeted receipt. It is NOT a
// database entity — it is composed from a completed order and the receipt
// settings at render time, and the same inputs always produce the same
// document.
type ReceiptDocument struct {
	Header   ReceiptHeader    `json:"header"`
	Info     ReceiptInfo      `json:"info"`
	Items    []ReceiptItem    `json:"items"`
	Summary  ReceiptSummary   `json:"summary"`
	Payments []ReceiptPayment `json:"payments,omitempty"`
	Change   float64          `json:"change"`
	Footer   ReceiptFooter    `json:"footer"`
	AutoPrint bool            `json:"auto_print"`
	Copies    int             `json:"copies"`
}
