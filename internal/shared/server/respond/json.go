package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes a success envelope with the given status code.
func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Status: true, Message: message, Data: data})
}

// OK writes a 200 OK success envelope.
func OK(c *gin.Context, message string, data any) {
	JSON(c, http.StatusOK, message, data)
}
