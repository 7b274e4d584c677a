package response

import (
	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/pkg/money"
)

// CheckoutSessionResponse is the wire view of a checkout session. Validity
// and change are derived on every read so the register can re-render after
// each field edit.
type CheckoutSessionResponse struct {
	ID           string             `json:"id"`
	State        string             `json:"state"`
	OrderID      string             `json:"order_id,omitempty"`
	Customer     string             `json:"customer,omitempty"`
	Cashier      string             `json:"cashier,omitempty"`
	Totals       entity.OrderTotals `json:"totals"`
	Method       string             `json:"method"`
	CardType     string             `json:"card_type,omitempty"`
	Provider     string             `json:"provider,omitempty"`
	CashReceived string             `json:"cash_received,omitempty"`
	Confirmed    bool               `json:"confirmed"`
	IsValid      bool               `json:"is_valid"`
	ChangeDue    float64            `json:"change_due"`
	PaymentLabel string             `json:"payment_label"`
}

// NewCheckoutSessionResponse builds the wire view from a session.
func NewCheckoutSessionResponse(s *entity.CheckoutSession) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		ID:           s.ID.String(),
		State:        string(s.State),
		OrderID:      s.OrderID,
		Customer:     s.Customer,
		Cashier:      s.Cashier,
		Totals:       s.Totals,
		Method:       string(s.Method),
		CardType:     string(s.CardType),
		Provider:     string(s.Provider),
		CashReceived: s.CashReceived,
		Confirmed:    s.Confirmed,
		IsValid:      s.IsValid(),
		ChangeDue:    money.ToFloat(s.ChangeDue()),
		PaymentLabel: s.PaymentLabel(),
	}
}

// SuggestedAmountsResponse lists the quick-cash amounts as decimals.
type SuggestedAmountsResponse struct {
	Amounts []float64 `json:"amounts"`
}

// NewSuggestedAmountsResponse converts cents to decimals.
func NewSuggestedAmountsResponse(cents []int64) *SuggestedAmountsResponse {
	amounts := make([]float64, 0, len(cents))
	for _, a := range cents {
		amounts = append(amounts, money.ToFloat(a))
	}
	return &SuggestedAmountsResponse{Amounts: amounts}
}
