package request

// SignInRequest is the terminal sign-in payload. The PIN is shared per
// store; the terminal id and cashier name identify the register session.
type SignInRequest struct {
	TerminalID string `json:"terminal_id" binding:"required"`
	Cashier    string `json:"cashier"`
	PIN        string `json:"pin" binding:"required"`
}
