package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONAppError maps a service error onto the HTTP status for its code and
// sends the standard error payload. Unknown errors become a 500.
func JSONAppError(c *gin.Context, err error) {
	var ae *AppError
	if !errors.As(err, &ae) {
		JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	status := http.StatusInternalServerError
	switch ae.Code {
	case CodeNotFound:
		status = http.StatusNotFound
	case CodeValidation:
		status = http.StatusBadRequest
	case CodeConflict:
		status = http.StatusConflict
	case CodeAuth:
		status = http.StatusUnauthorized
	}
	JSONError(c, status, ae.Code, ae.Message)
}
