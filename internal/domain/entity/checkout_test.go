package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamande/tillpoint-api/internal/domain/enum"
)

func testTotals() OrderTotals {
	// 64.94 - 5.00 + 4.79 = 64.73
	return OrderTotals{SubTotal: 6494, Discount: 500, Tax: 479, Total: 6473}
}

func testItems() []LineItem {
	return []LineItem{
		{Name: "Espresso Beans 1kg", Quantity: 2, Price: 2497},
		{Name: "Filter Papers", Quantity: 1, Price: 1500},
	}
}

func TestTotalsConsistent(t *testing.T) {
	assert.True(t, testTotals().Consistent())
	assert.False(t, OrderTotals{SubTotal: 6494, Discount: 500, Tax: 479, Total: 7000}.Consistent())
	assert.False(t, OrderTotals{SubTotal: -1, Total: -1}.Consistent())

	// One-cent rounding slack is tolerated.
	assert.True(t, OrderTotals{SubTotal: 6494, Discount: 500, Tax: 479, Total: 6474}.Consistent())
}

func TestNewSessionStartsIdleWithCash(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")

	assert.Equal(t, enum.CheckoutStateIdle, s.State)
	assert.Equal(t, enum.PaymentMethodCash, s.Method)
	assert.Empty(t, s.CashReceived)
	assert.False(t, s.Confirmed)
}

func TestSelectMethodResetsFields(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")

	require.NoError(t, s.SetCashReceived("100"))
	require.NoError(t, s.SelectMethod(enum.PaymentMethodDigital, "", enum.ProviderVenmo))
	require.NoError(t, s.SetConfirmed(true))

	// Switching back to cash wipes the digital state.
	require.NoError(t, s.SelectMethod(enum.PaymentMethodCash, "", ""))
	assert.Empty(t, s.CashReceived)
	assert.False(t, s.Confirmed)
	assert.Empty(t, string(s.Provider))
	assert.Equal(t, enum.CheckoutStateEditing, s.State)
}

func TestSelectCardDefaultsToCredit(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")

	require.NoError(t, s.SelectMethod(enum.PaymentMethodCard, "", ""))
	assert.Equal(t, enum.CardTypeCredit, s.CardType)

	require.NoError(t, s.SelectMethod(enum.PaymentMethodCard, enum.CardTypeDebit, ""))
	assert.Equal(t, enum.CardTypeDebit, s.CardType)
}

func TestCashValidity(t *testing.T) {
	tests := []struct {
		name  string
		cash  string
		valid bool
	}{
		{"exact amount", "64.73", true},
		{"over tender", "70.00", true},
		{"under tender", "60", false},
		{"empty field", "", false},
		{"garbage", "seventy", false},
		{"negative", "-70", false},
		{"three decimals", "70.000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCheckoutSession(testTotals(), testItems(), "", "", "")
			if tt.cash != "" {
				require.NoError(t, s.SetCashReceived(tt.cash))
			}
			assert.Equal(t, tt.valid, s.IsValid())
		})
	}
}

func TestCardAlwaysValid(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")
	require.NoError(t, s.SelectMethod(enum.PaymentMethodCard, enum.CardTypeCredit, ""))
	assert.True(t, s.IsValid())
}

func TestDigitalRequiresProviderAndConfirmation(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")

	require.NoError(t, s.SelectMethod(enum.PaymentMethodDigital, "", enum.ProviderZelle))
	assert.False(t, s.IsValid(), "unconfirmed digital payment must not be valid")

	require.NoError(t, s.SetConfirmed(true))
	assert.True(t, s.IsValid())

	require.NoError(t, s.SetConfirmed(false))
	assert.False(t, s.IsValid())
}

func TestDigitalWithoutProviderInvalid(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")

	require.NoError(t, s.SelectMethod(enum.PaymentMethodDigital, "", ""))
	require.NoError(t, s.SetConfirmed(true))
	assert.False(t, s.IsValid())
}

func TestFieldMethodMismatch(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")

	assert.ErrorIs(t, s.SetConfirmed(true), ErrFieldNotForMethod)

	require.NoError(t, s.SelectMethod(enum.PaymentMethodCard, "", ""))
	assert.ErrorIs(t, s.SetCashReceived("70"), ErrFieldNotForMethod)
}

func TestChangeDue(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")

	assert.Equal(t, int64(0), s.ChangeDue(), "no tender, no change")

	require.NoError(t, s.SetCashReceived("70.00"))
	assert.Equal(t, int64(527), s.ChangeDue())

	require.NoError(t, s.SetCashReceived("64.73"))
	assert.Equal(t, int64(0), s.ChangeDue())

	require.NoError(t, s.SetCashReceived("60"))
	assert.Equal(t, int64(0), s.ChangeDue(), "under tender never reports negative change")
}

func TestFinalizeCashScenario(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "Jordan", "Alex")
	require.NoError(t, s.SetCashReceived("70.00"))

	date := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	order, err := s.Finalize("INV-1001", date)
	require.NoError(t, err)

	assert.Equal(t, "INV-1001", order.ID)
	assert.Equal(t, int64(6473), order.Total)
	assert.Equal(t, int64(527), order.Change)
	require.Len(t, order.Payments, 1)
	assert.Equal(t, "Cash", order.Payments[0].Method)
	assert.Equal(t, int64(6473), order.Payments[0].Amount, "payment line carries the order total, not the tender")
	assert.Equal(t, enum.CheckoutStateFinalized, s.State)
	assert.True(t, order.Renderable())
}

func TestFinalizeDigitalLabel(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")
	require.NoError(t, s.SelectMethod(enum.PaymentMethodDigital, "", enum.ProviderCashApp))
	require.NoError(t, s.SetConfirmed(true))

	order, err := s.Finalize("INV-1002", time.Now())
	require.NoError(t, err)
	require.Len(t, order.Payments, 1)
	assert.Equal(t, "Cash App", order.Payments[0].Method)
	assert.Equal(t, int64(0), order.Change)
}

func TestFinalizeRejectsInvalidPayment(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")
	require.NoError(t, s.SetCashReceived("10"))

	_, err := s.Finalize("INV-1003", time.Now())
	assert.ErrorIs(t, err, ErrPaymentInvalid)
	assert.Equal(t, enum.CheckoutStateEditing, s.State, "failed finalize leaves the session editable")
}

func TestFinalizedSessionIsImmutable(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")
	require.NoError(t, s.SetCashReceived("70"))
	_, err := s.Finalize("INV-1004", time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetCashReceived("80"), ErrSessionFinalized)
	assert.ErrorIs(t, s.SelectMethod(enum.PaymentMethodCard, "", ""), ErrSessionFinalized)
	_, err = s.Finalize("INV-1005", time.Now())
	assert.ErrorIs(t, err, ErrSessionFinalized)
}

func TestCloseDiscardsSession(t *testing.T) {
	s := NewCheckoutSession(testTotals(), testItems(), "", "", "")
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.SetCashReceived("70"), ErrSessionClosed)
	assert.ErrorIs(t, s.Close(), ErrSessionClosed)
}

func TestSuggestedCashAmounts(t *testing.T) {
	amounts := SuggestedCashAmounts(6473)

	// exact, next unit, next 10, next 20, then 20/40/50/100 denominations
	assert.Equal(t, []int64{6473, 6500, 7000, 8000, 2000, 4000, 5000, 10000}, amounts)
}

func TestRenderable(t *testing.T) {
	var nilOrder *CompletedOrder
	assert.False(t, nilOrder.Renderable())
	assert.False(t, (&CompletedOrder{ID: "X"}).Renderable())
	assert.False(t, (&CompletedOrder{Items: testItems()}).Renderable())
	assert.True(t, (&CompletedOrder{ID: "X", Items: testItems()}).Renderable())
}
