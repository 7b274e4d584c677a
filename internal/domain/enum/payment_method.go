package enum

// PaymentMethod represents the tender type offered against an order total.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodDigital PaymentMethod = "digital"
)

// Valid reports whether the method is one of the known tender types.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodDigital:
		return true
	}
	return false
}

// CardType distinguishes the card variant for card payments.
type CardType string

const (
	CardTypeCredit CardType = "credit"
	CardTypeDebit  CardType = "debit"
)

// Valid reports whether the card type is known.
func (t CardType) Valid() bool {
	return t == CardTypeCredit || t == CardTypeDebit
}

// Label returns the payment-line label for the card type.
func (t CardType) Label() string {
	if t == CardTypeDebit {
		return "Debit Card"
	}
	return "Credit Card"
}

// DigitalProvider identifies the external digital-payment channel.
type DigitalProvider string

const (
	ProviderVenmo   DigitalProvider = "venmo"
	ProviderZelle   DigitalProvider = "zelle"
	ProviderCashApp DigitalProvider = "cashapp"
	ProviderPayPal  DigitalProvider = "paypal"
)

// Valid reports whether the provider is known.
func (p DigitalProvider) Valid() bool {
	switch p {
	case ProviderVenmo, ProviderZelle, ProviderCashApp, ProviderPayPal:
		return true
	}
	return false
}

// DisplayName returns the provider name as printed on receipts.
func (p DigitalProvider) DisplayName() string {
	switch p {
	case ProviderVenmo:
		return "Venmo"
	case ProviderZelle:
		return "Zelle"
	case ProviderCashApp:
		return "Cash App"
	case ProviderPayPal:
		return "PayPal"
	}
	return string(p)
}
