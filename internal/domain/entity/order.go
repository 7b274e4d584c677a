package entity

import (
	"encoding/json"
	"time"

	"github.com/mkamande/tillpoint-api/pkg/money"
)

// OrderTotals carries the computed monetary summary of an order at
// checkout-open time. All amounts are cents.
type OrderTotals struct {
	SubTotal int64 `json:"-"`
	Discount int64 `json:"-"`
	Tax      int64 `json:"-"`
	Total    int64 `json:"-"`
}

// Consistent verifies total == subtotal - discount + tax within one cent
// and that no component is negative.
func (t OrderTotals) Consistent() bool {
	if t.SubTotal < 0 || t.Discount < 0 || t.Tax < 0 || t.Total < 0 {
		return false
	}
	diff := t.SubTotal - t.Discount + t.Tax - t.Total
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

// MarshalJSON custom marshaler to convert cents to decimals for API responses
func (t OrderTotals) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		SubTotal float64 `json:"sub_total"`
		Discount float64 `json:"discount"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}{
		SubTotal: money.ToFloat(t.SubTotal),
		Discount: money.ToFloat(t.Discount),
		Tax:      money.ToFloat(t.Tax),
		Total:    money.ToFloat(t.Total),
	})
}

// LineItem represents a single order line. Price is the unit price in cents.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"-"`
}

// Extension returns quantity * unit price in cents.
func (li LineItem) Extension() int64 {
	return int64(li.Quantity) * li.Price
}

// MarshalJSON custom marshaler to convert cents to decimals for API responses
func (li LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		Price     float64 `json:"price"`
		Extension float64 `json:"extension"`
	}{
		Alias:     Alias(li),
		Price:     money.ToFloat(li.Price),
		Extension: money.ToFloat(li.Extension()),
	})
}

// PaymentLine is one tender recorded against a completed order.
type PaymentLine struct {
	Method string `json:"method"`
	Amount int64  `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimals for API responses
func (p PaymentLine) MarshalJSON() ([]byte, error) {
	type Alias PaymentLine
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: money.ToFloat(p.Amount),
	})
}

// CompletedOrder is the immutable record produced by finalizing a checkout.
// It is created once, handed to the receipt renderer and the order-management
// caller, and never mutated afterwards.
type CompletedOrder struct {
	ID       string        `json:"id"`
	Date     time.Time     `json:"date"`
	Customer string        `json:"customer,omitempty"`
	Cashier  string        `json:"cashier,omitempty"`
	Items    []LineItem    `json:"items"`
	SubTotal int64         `json:"-"`
	Discount int64         `json:"-"`
	Tax      int64         `json:"-"`
	Total    int64         `json:"-"`
	Payments []PaymentLine `json:"payments"`
	Change   int64         `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimals for API responses
func (o CompletedOrder) MarshalJSON() ([]byte, error) {
	type Alias CompletedOrder
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Discount float64 `json:"discount"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
		Change   float64 `json:"change"`
	}{
		Alias:    Alias(o),
		SubTotal: money.ToFloat(o.SubTotal),
		Discount: money.ToFloat(o.Discount),
		Tax:      money.ToFloat(o.Tax),
		Total:    money.ToFloat(o.Total),
		Change:   money.ToFloat(o.Change),
	})
}

// Renderable reports whether the order can be turned into a receipt.
// Finalize never produces an order that fails this; the renderer still
// refuses to compose from one.
func (o *CompletedOrder) Renderable() bool {
	return o != nil && o.ID != "" && len(o.Items) > 0
}
