package utils

import (
	"github.com/gin-gonic/gin"

	"dive-booking/validation"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFieldErrors reports user-correctable input problems keyed by form field.
func JSONFieldErrors(c *gin.Context, code int, errs validation.FieldErrors) {
	c.JSON(code, gin.H{"success": false, "error": "validation_failed", "fields": errs.ByField()})
}
