package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/domain/enum"
	"github.com/mkamande/tillpoint-api/pkg/apperror"
)

// CheckoutService owns the in-memory registry of open checkout sessions and
// drives each one through its payment lifecycle. Sessions never touch the
// database: a checkout that is abandoned or crashed simply evaporates, which
// is exactly the reset-on-open behavior the register expects.
type CheckoutService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.CheckoutSession

	receipts *ReceiptService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(receipts *ReceiptService) *CheckoutService {
	return &CheckoutService{
		sessions: make(map[uuid.UUID]*entity.CheckoutSession),
		receipts: receipts,
	}
}

// Open validates the order snapshot and opens a fresh session for it. The
// totals must be internally consistent and there must be at least one line
// item; nothing carries over from any previous session.
func (s *CheckoutService) Open(ctx context.Context, totals entity.OrderTotals, items []entity.LineItem, orderID, customer, cashier string) (*entity.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, apperror.NewUnprocessableError("Checkout requires at least one line item")
	}
	if !totals.Consistent() {
		return nil, apperror.NewUnprocessableError("Order totals are inconsistent")
	}

	session := entity.NewCheckoutSession(totals, items, orderID, customer, cashier)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// Get returns the session by id.
func (s *CheckoutService) Get(ctx context.Context, id uuid.UUID) (*entity.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Checkout session")
	}
	return session, nil
}

// SelectMethod switches the session's payment method, resetting all
// method-specific fields.
func (s *CheckoutService) SelectMethod(ctx context.Context, id uuid.UUID, method enum.PaymentMethod, cardType enum.CardType, provider enum.DigitalProvider) (*entity.CheckoutSession, error) {
	if !method.Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Checkout session")
	}
	if err := session.SelectMethod(method, cardType, provider); err != nil {
		return nil, stateError(err)
	}
	return session, nil
}

// SetCashReceived records the tendered-cash field text.
func (s *CheckoutService) SetCashReceived(ctx context.Context, id uuid.UUID, raw string) (*entity.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Checkout session")
	}
	if err := session.SetCashReceived(raw); err != nil {
		return nil, stateError(err)
	}
	return session, nil
}

// SetConfirmed records the digital payment-received acknowledgment.
func (s *CheckoutService) SetConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) (*entity.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Checkout session")
	}
	if err := session.SetConfirmed(confirmed); err != nil {
		return nil, stateError(err)
	}
	return session, nil
}

// Complete finalizes a valid session: it freezes the completed order,
// composes its receipt, and kicks off auto-printing when configured.
// Sessions that are not valid for their selected method are rejected and
// stay editable.
func (s *CheckoutService) Complete(ctx context.Context, id uuid.UUID) (*entity.CompletedOrder, *entity.ReceiptDocument, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, nil, apperror.NewNotFoundError("Checkout session")
	}

	if !session.IsValid() {
		s.mu.Unlock()
		return nil, nil, apperror.NewConflictError("Payment details are incomplete for the selected method")
	}

	orderID := session.OrderID
	if orderID == "" {
		orderID = generateOrderID()
	}

	order, err := session.Finalize(orderID, time.Now())
	s.mu.Unlock()
	if err != nil {
		return nil, nil, stateError(err)
	}

	doc, err := s.receipts.Compose(ctx, order)
	if err != nil {
		// The order is already final; a receipt problem must not undo it.
		log.Printf("checkout: receipt compose failed for order %s: %v", order.ID, err)
		return order, nil, nil
	}

	s.receipts.AutoPrint(doc)
	return order, doc, nil
}

// Close dismisses a session and drops it from the registry. All in-progress
// payment state is discarded.
func (s *CheckoutService) Close(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return apperror.NewNotFoundError("Checkout session")
	}
	if err := session.Close(); err != nil {
		return stateError(err)
	}
	delete(s.sessions, id)
	return nil
}

// Suggestions returns the de-duplicated quick-cash amounts for a session's
// total, in cents, preserving first-occurrence order.
func (s *CheckoutService) Suggestions(ctx context.Context, id uuid.UUID) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Checkout session")
	}

	raw := entity.SuggestedCashAmounts(session.Totals.Total)
	seen := make(map[int64]bool, len(raw))
	amounts := make([]int64, 0, len(raw))
	for _, a := range raw {
		if !seen[a] {
			seen[a] = true
			amounts = append(amounts, a)
		}
	}
	return amounts, nil
}

// generateOrderID mints a short order number for checkouts opened without
// one, e.g. "INV-3F2A9B1C".
func generateOrderID() string {
	id := strings.ToUpper(uuid.New().String())
	return "INV-" + strings.ReplaceAll(id, "-", "")[:8]
}

// stateError maps session state-machine errors to HTTP-facing errors.
func stateError(err error) error {
	switch err {
	case entity.ErrSessionFinalized:
		return apperror.NewConflictError("Checkout has already been completed")
	case entity.ErrSessionClosed:
		return apperror.NewConflictError("Checkout session has been closed")
	case entity.ErrPaymentInvalid:
		return apperror.NewConflictError("Payment details are incomplete for the selected method")
	case entity.ErrFieldNotForMethod:
		return apperror.NewBadRequestError("Field does not apply to the selected payment method")
	}
	return err
}
