package request

import (
	"time"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/pkg/money"
)

// ReceiptPayment is one payment line in a receipt order payload.
type ReceiptPayment struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// ReceiptOrderRequest is a completed-order payload submitted for receipt
// preview, PDF, or print. Amounts are decimals and converted to cents on the
// way into the domain.
type ReceiptOrderRequest struct {
	ID       string           `json:"id" binding:"required"`
	Date     time.Time        `json:"date"`
	Customer string           `json:"customer"`
	Cashier  string           `json:"cashier"`
	Items    []CheckoutItem   `json:"items" binding:"required,min=1,dive"`
	SubTotal float64          `json:"sub_total"`
	Discount float64          `json:"discount"`
	Tax      float64          `json:"tax"`
	Total    float64          `json:"total"`
	Payments []ReceiptPayment `json:"payments"`
	Change   float64          `json:"change"`
}

// ToEntity converts the payload into the domain order.
func (r *ReceiptOrderRequest) ToEntity() *entity.CompletedOrder {
	date := r.Date
	if date.IsZero() {
		date = time.Now()
	}

	order := &entity.CompletedOrder{
		ID:       r.ID,
		Date:     date,
		Customer: r.Customer,
		Cashier:  r.Cashier,
		SubTotal: money.FromFloat(r.SubTotal),
		Discount: money.FromFloat(r.Discount),
		Tax:      money.FromFloat(r.Tax),
		Total:    money.FromFloat(r.Total),
		Change:   money.FromFloat(r.Change),
	}
	for _, item := range r.Items {
		order.Items = append(order.Items, entity.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    money.FromFloat(item.Price),
		})
	}
	for _, p := range r.Payments {
		order.Payments = append(order.Payments, entity.PaymentLine{
			Method: p.Method,
			Amount: money.FromFloat(p.Amount),
		})
	}
	return order
}
