package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/just-manoj/PathoAi-API/internal/shared/telemetry"
)

// Error sends an error envelope: same shape as success, status=false, no data.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, Envelope{Status: false, Message: message})
}
