package entity

import "github.com/mkamande/tillpoint-api/internal/domain/enum"

// LabelDimensions is the resolved physical size of a label plus the scale
// factor used for on-screen preview. Derived from settings, never persisted.
//
// Scale exists only so a preview stays visually proportionate across wildly
// different physical sizes; print output always uses the literal millimeter
// dimensions.
type LabelDimensions struct {
	WidthMm  float64 `json:"width_mm"`
	HeightMm float64 `json:"height_mm"`
	Scale    float64 `json:"scale"`
}

// LabelContent is the product data stamped onto a single label.
type LabelContent struct {
	Name  string `json:"name"`
	SKU   string `json:"sku,omitempty"`
	Price int64  `json:"-"` // cents
}

// BarcodePayload returns the string encoded into the label barcode: the SKU
// when present, otherwise the fixed sample payload used on preview labels.
func (c LabelContent) BarcodePayload() string {
	if c.SKU != "" {
		return c.SKU
	}
	return "SAMPLE-123"
}

// LabelDocument describes one printable label: resolved dimensions, content,
// and the presentation toggles in force when it was composed.
type LabelDocument struct {
	Dimensions    LabelDimensions    `json:"dimensions"`
	Content       LabelContent       `json:"content"`
	FontSizePx    int                `json:"font_size_px"`
	ShowSKU       bool               `json:"show_sku"`
	ShowBarcode   bool               `json:"show_barcode"`
	ShowPrice     bool               `json:"show_price"`
	BarcodeFormat enum.BarcodeFormat `json:"barcode_format"`
}
