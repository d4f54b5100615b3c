package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden      = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Validation and delivery error types
var (
	ErrValidation     = New(http.StatusBadRequest, "Validation error", nil)
	ErrDeliveryFailed = New(http.StatusBadGateway, "Delivery failed", nil)
)

// ErrorMiddleware renders the last error attached to the gin context.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *Error
			if e, ok := err.(*Error); ok {
				appErr = e
			} else {
				appErr = New(http.StatusInternalServerError, "Internal server error", err)
			}

			c.JSON(appErr.Code, appErr)
			c.Abort()
		}
	}
}
