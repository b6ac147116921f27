package api

import (
	"errors"                             // Fault unwrapping
	"net/http"                           // HTTP status codes
	"transaction_system/internal/domain" // Execution codes and faults

	"github.com/gin-gonic/gin" // Gin web framework
)

// Response is the envelope returned by every transaction endpoint
type Response struct {
	Code    int    `json:"code"`    // Execution code, 200 on success
	Message string `json:"message"` // Human-readable message
	Data    any    `json:"data"`    // Operation payload
}

// respondOK writes a success envelope
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    domain.CodeSuccess,
		Message: domain.CodeMessage(domain.CodeSuccess),
		Data:    data,
	})
}

// respondError maps a fault to the error envelope. Business faults keep their
// execution code; anything else is reported as a system error.
func respondError(c *gin.Context, err error) {
	var businessErr *domain.BusinessError
	if errors.As(err, &businessErr) {
		c.JSON(http.StatusOK, Response{Code: businessErr.Code, Message: businessErr.Message})
		return
	}
	c.JSON(http.StatusOK, Response{
		Code:    domain.CodeSystemError,
		Message: "Internal Server Error - " + err.Error(),
	})
}
