package entity

import (
	"encoding/json"

	"github.com/mkamande/tillpoint-api/internal/domain/enum"
	"github.com/mkamande/tillpoint-api/pkg/money"
)

// PaymentDetails captures the tender applied to an order. It is built only
// at finalize time, after validation, and is immutable thereafter.
type PaymentDetails struct {
	Method       enum.PaymentMethod   `json:"method"`
	CardType     enum.CardType        `json:"card_type,omitempty"`
	Provider     enum.DigitalProvider `json:"provider,omitempty"`
	Amount       int64                `json:"-"`
	CashReceived int64                `json:"-"`
	Change       int64                `json:"-"`
	Confirmed    bool                 `json:"confirmed,omitempty"`
}

// Label derives the receipt payment-line label from the method.
func (p PaymentDetails) Label() string {
	switch p.Method {
	case enum.PaymentMethodCard:
		return p.CardType.Label()
	case enum.PaymentMethodDigital:
		return p.Provider.DisplayName()
	default:
		return "Cash"
	}
}

// MarshalJSON custom marshaler to convert cents to decimals for API responses
func (p PaymentDetails) MarshalJSON() ([]byte, error) {
	type Alias PaymentDetails
	return json.Marshal(&struct {
		Alias
		Amount       float64 `json:"amount"`
		CashReceived float64 `json:"cash_received,omitempty"`
		Change       float64 `json:"change"`
	}{
		Alias:        Alias(p),
		Amount:       money.ToFloat(p.Amount),
		CashReceived: money.ToFloat(p.CashReceived),
		Change:       money.ToFloat(p.Change),
	})
}
