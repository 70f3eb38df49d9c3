package handlers

import (
	"github.com/gin-gonic/gin"
)

// JSONError writes the single error shape every endpoint uses.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": code, "message": message})
}
