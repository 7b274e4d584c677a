package enum

// CheckoutState names the phases of a checkout session. Validity is derived
// from the entered payment data, not stored as its own state.
type CheckoutState string

const (
	CheckoutStateIdle      CheckoutState = "idle"
	CheckoutStateEditing   CheckoutState = "editing"
	CheckoutStateFinalized CheckoutState = "finalized"
	CheckoutStateClosed    CheckoutState = "closed"
)
