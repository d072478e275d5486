package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape of every response:
// status is "success", "fail" (client fault), or "error" (server fault).
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ServerErrorMessage is the fixed message for any uncaught fault; internals
// are never leaked to the client.
const ServerErrorMessage = "terjadi kegagalan pada server kami"

func Success(c *gin.Context, status int, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Envelope{Status: "success", Data: data})
}

func Fail(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, Envelope{Status: "fail", Message: message})
}

// AbortFail writes a fail envelope and stops the handler chain; used by
// middleware.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Status: "fail", Message: message})
}

func Error(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Envelope{Status: "error", Message: ServerErrorMessage})
}
