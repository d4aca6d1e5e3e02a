package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse wraps payloads in the {status, message, data} envelope the
// frontend expects on successful writes and listings.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends the envelope with an error field instead of data
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
