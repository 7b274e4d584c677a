package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mkamande/tillpoint-api/internal/application/service"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/request"
	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/response"
)

// AuthHandler handles terminal authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignIn signs a register terminal in with the store PIN
// @Summary Terminal sign-in
// @Description Verify the store PIN and issue a terminal token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.SignInRequest true "Terminal credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req request.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.SignIn(c.Request.Context(), req.TerminalID, req.Cashier, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Terminal signed in", gin.H{
		"token":       token,
		"terminal_id": req.TerminalID,
		"cashier":     req.Cashier,
	})
}
