package handler

import (
	"github.com/gin-gonic/gin"
)

// GetTerminalID extracts the terminal id from the Gin context
func GetTerminalID(c *gin.Context) string {
	id, exists := c.Get("terminal_id")
	if !exists {
		return ""
	}
	terminalID, ok := id.(string)
	if !ok {
		return ""
	}
	return terminalID
}

// GetCashier extracts the cashier name from the Gin context
func GetCashier(c *gin.Context) string {
	name, exists := c.Get("cashier")
	if !exists {
		return ""
	}
	cashier, ok := name.(string)
	if !ok {
		return ""
	}
	return cashier
}
