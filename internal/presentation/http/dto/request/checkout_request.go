package request

// CheckoutTotals carries the order's monetary summary as decimals. The
// service converts to cents on the way in.
type CheckoutTotals struct {
	SubTotal float64 `json:"sub_total"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CheckoutItem is one order line in an open-checkout payload.
type CheckoutItem struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price"`
}

// OpenCheckoutRequest opens a fresh checkout session for an order snapshot.
type OpenCheckoutRequest struct {
	OrderID  string         `json:"order_id"`
	Customer string         `json:"customer"`
	Cashier  string         `json:"cashier"`
	Totals   CheckoutTotals `json:"totals" binding:"required"`
	Items    []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// SelectMethodRequest switches the payment method on a session.
type SelectMethodRequest struct {
	Method   string `json:"method" binding:"required"`
	CardType string `json:"card_type"`
	Provider string `json:"provider"`
}

// CashReceivedRequest carries the raw tendered-cash field text. It is kept
// as a string so the service sees exactly what the cashier typed.
type CashReceivedRequest struct {
	Amount string `json:"amount"`
}

// ConfirmRequest toggles the digital payment-received acknowledgment.
type ConfirmRequest struct {
	Confirmed bool `json:"confirmed"`
}
