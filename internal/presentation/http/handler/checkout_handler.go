package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkamande/tillpoint-api/internal/application/service"
	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/domain/enum"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/mkamande/tillpoint-api/pkg/money"
)

// CheckoutHandler handles checkout session HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Open opens a fresh checkout session for an order snapshot
func (h *CheckoutHandler) Open(c *gin.Context) {
	var req request.OpenCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	totals := entity.OrderTotals{
		SubTotal: money.FromFloat(req.Totals.SubTotal),
		Discount: money.FromFloat(req.Totals.Discount),
		Tax:      money.FromFloat(req.Totals.Tax),
		Total:    money.FromFloat(req.Totals.Total),
	}
	items := make([]entity.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    money.FromFloat(item.Price),
		})
	}

	cashier := req.Cashier
	if cashier == "" {
		cashier = GetCashier(c)
	}

	session, err := h.checkoutService.Open(c.Request.Context(), totals, items, req.OrderID, req.Customer, cashier)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout session opened", response.NewCheckoutSessionResponse(session))
}

// Get returns the current state of a checkout session
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	session, err := h.checkoutService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout session retrieved", response.NewCheckoutSessionResponse(session))
}

// SelectMethod switches the payment method on a session
func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req request.SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.checkoutService.SelectMethod(
		c.Request.Context(), id,
		enum.PaymentMethod(req.Method),
		enum.CardType(req.CardType),
		enum.DigitalProvider(req.Provider),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method selected", response.NewCheckoutSessionResponse(session))
}

// SetCashReceived records the tendered-cash field text
func (h *CheckoutHandler) SetCashReceived(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req request.CashReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.checkoutService.SetCashReceived(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash amount recorded", response.NewCheckoutSessionResponse(session))
}

// SetConfirmed toggles the digital payment-received acknowledgment
func (h *CheckoutHandler) SetConfirmed(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req request.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.checkoutService.SetConfirmed(c.Request.Context(), id, req.Confirmed)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Confirmation recorded", response.NewCheckoutSessionResponse(session))
}

// Suggestions returns the quick-cash amounts for a session's total
func (h *CheckoutHandler) Suggestions(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	amounts, err := h.checkoutService.Suggestions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Suggested amounts retrieved", response.NewSuggestedAmountsResponse(amounts))
}

// Complete finalizes a valid session and returns the completed order with
// its composed receipt
func (h *CheckoutHandler) Complete(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	order, receipt, err := h.checkoutService.Complete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout completed", gin.H{
		"order":   order,
		"receipt": receipt,
	})
}

// Close dismisses a checkout session
func (h *CheckoutHandler) Close(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	if err := h.checkoutService.Close(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session id")
		return uuid.Nil, false
	}
	return id, true
}
