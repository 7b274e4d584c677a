package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mkamande/tillpoint-api/internal/domain/enum"
	"github.com/mkamande/tillpoint-api/pkg/money"
)

// State machine errors. These are gating conditions, not failures: the HTTP
// layer maps them to client errors and the session stays usable (except
// after close).
var (
	ErrSessionFinalized  = errors.New("checkout: session already finalized")
	ErrSessionClosed     = errors.New("checkout: session closed")
	ErrPaymentInvalid    = errors.New("checkout: payment state does not allow completion")
	ErrFieldNotForMethod = errors.New("checkout: field does not apply to the selected payment method")
)

// CheckoutSession is the editable payment state between opening a checkout
// and finalizing it. Every opening creates a fresh session; nothing survives
// from a previous, possibly abandoned, checkout.
//
// States: idle (method=cash, fields reset) -> editing -> finalized -> closed.
// Validity is derived from the current fields on every read, never stored.
type CheckoutSession struct {
	ID       uuid.UUID
	State    enum.CheckoutState
	Totals   OrderTotals
	Items    []LineItem
	OrderID  string // supplied by the order-management caller, may be empty
	Customer string
	Cashier  string

	Method       enum.PaymentMethod
	CardType     enum.CardType
	Provider     enum.DigitalProvider
	CashReceived string // raw field text as entered at the register
	Confirmed    bool

	CreatedAt time.Time
	Completed *CompletedOrder
}

// NewCheckoutSession opens a fresh session in the idle state with cash
// preselected and all method fields reset.
func NewCheckoutSession(totals OrderTotals, items []LineItem, orderID, customer, cashier string) *CheckoutSession {
	return &CheckoutSession{
		ID:        uuid.New(),
		State:     enum.CheckoutStateIdle,
		Totals:    totals,
		Items:     items,
		OrderID:   orderID,
		Customer:  customer,
		Cashier:   cashier,
		Method:    enum.PaymentMethodCash,
		CreatedAt: time.Now(),
	}
}

func (s *CheckoutSession) editable() error {
	switch s.State {
	case enum.CheckoutStateFinalized:
		return ErrSessionFinalized
	case enum.CheckoutStateClosed:
		return ErrSessionClosed
	}
	return nil
}

// SelectMethod switches the payment method, resetting all method-specific
// fields while preserving the order totals.
func (s *CheckoutSession) SelectMethod(method enum.PaymentMethod, cardType enum.CardType, provider enum.DigitalProvider) error {
	if err := s.editable(); err != nil {
		return err
	}

	s.Method = method
	s.CashReceived = ""
	s.Confirmed = false
	s.CardType = ""
	s.Provider = ""

	switch method {
	case enum.PaymentMethodCard:
		if !cardType.Valid() {
			cardType = enum.CardTypeCredit
		}
		s.CardType = cardType
	case enum.PaymentMethodDigital:
		if provider.Valid() {
			s.Provider = provider
		}
	}

	s.State = enum.CheckoutStateEditing
	return nil
}

// SetCashReceived records the tendered-cash field. Only meaningful for cash.
func (s *CheckoutSession) SetCashReceived(raw string) error {
	if err := s.editable(); err != nil {
		return err
	}
	if s.Method != enum.PaymentMethodCash {
		return ErrFieldNotForMethod
	}
	s.CashReceived = raw
	s.State = enum.CheckoutStateEditing
	return nil
}

// SetConfirmed toggles the "payment received" acknowledgment for digital
// payments.
func (s *CheckoutSession) SetConfirmed(confirmed bool) error {
	if err := s.editable(); err != nil {
		return err
	}
	if s.Method != enum.PaymentMethodDigital {
		return ErrFieldNotForMethod
	}
	s.Confirmed = confirmed
	s.State = enum.CheckoutStateEditing
	return nil
}

// IsValid derives whether the current payment state is sufficient to
// finalize. Pure; re-evaluated on every read.
//
//   - cash: tendered parses as a non-negative two-decimal amount and covers
//     the total
//   - card: selecting the card is sufficient; the charge happens on an
//     external terminal
//   - digital: a provider is selected and receipt of payment was confirmed
func (s *CheckoutSession) IsValid() bool {
	switch s.Method {
	case enum.PaymentMethodCash:
		cash, err := money.ParseNonNegative(s.CashReceived)
		return err == nil && cash >= s.Totals.Total
	case enum.PaymentMethodCard:
		return true
	case enum.PaymentMethodDigital:
		return s.Provider.Valid() && s.Confirmed
	}
	return false
}

// ChangeDue computes change for cash tenders: max(0, tendered - total),
// zero when the field is absent or unparseable. Never negative.
func (s *CheckoutSession) ChangeDue() int64 {
	if s.Method != enum.PaymentMethodCash {
		return 0
	}
	cash, err := money.ParseNonNegative(s.CashReceived)
	if err != nil || cash < s.Totals.Total {
		return 0
	}
	return cash - s.Totals.Total
}

// PaymentLabel derives the receipt payment-line label for the current
// method selection.
func (s *CheckoutSession) PaymentLabel() string {
	switch s.Method {
	case enum.PaymentMethodCard:
		return s.CardType.Label()
	case enum.PaymentMethodDigital:
		return s.Provider.DisplayName()
	default:
		return "Cash"
	}
}

// Finalize combines totals, line items, and the validated payment state
// into an immutable CompletedOrder and moves the session to finalized.
//
// Validity is a precondition: callers must gate on IsValid before invoking
// Finalize. The check here is the last line of defense, not the gate.
func (s *CheckoutSession) Finalize(orderID string, date time.Time) (*CompletedOrder, error) {
	if err := s.editable(); err != nil {
		return nil, err
	}
	if !s.IsValid() {
		return nil, ErrPaymentInvalid
	}

	var cashReceived int64
	if s.Method == enum.PaymentMethodCash {
		cashReceived, _ = money.ParseNonNegative(s.CashReceived)
	}
	details := PaymentDetails{
		Method:       s.Method,
		CardType:     s.CardType,
		Provider:     s.Provider,
		Amount:       s.Totals.Total,
		CashReceived: cashReceived,
		Change:       s.ChangeDue(),
		Confirmed:    s.Confirmed,
	}

	order := &CompletedOrder{
		ID:       orderID,
		Date:     date,
		Customer: s.Customer,
		Cashier:  s.Cashier,
		Items:    s.Items,
		SubTotal: s.Totals.SubTotal,
		Discount: s.Totals.Discount,
		Tax:      s.Totals.Tax,
		Total:    s.Totals.Total,
		Payments: []PaymentLine{{Method: details.Label(), Amount: s.Totals.Total}},
		Change:   details.Change,
	}

	s.Completed = order
	s.State = enum.CheckoutStateFinalized
	return order, nil
}

// Close abandons or dismisses the session. All in-progress payment state is
// discarded; there is no partial commit.
func (s *CheckoutSession) Close() error {
	if s.State == enum.CheckoutStateClosed {
		return ErrSessionClosed
	}
	s.State = enum.CheckoutStateClosed
	return nil
}

// Fixed quick-cash denominations offered at the register, in currency units.
var quickCashUnits = []int64{20, 40, 50, 100}

// SuggestedCashAmounts returns the quick-amount set for a total, in cents:
// the exact total, the total rounded up to the next unit, to the next 10,
// to the next 20, then the fixed denominations. The caller de-duplicates.
func SuggestedCashAmounts(total int64) []int64 {
	amounts := []int64{
		total,
		money.CeilToUnit(total, 1),
		money.CeilToUnit(total, 10),
		money.CeilToUnit(total, 20),
	}
	for _, unit := range quickCashUnits {
		amounts = append(amounts, unit*100)
	}
	return amounts
}
