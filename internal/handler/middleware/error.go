package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"tourism-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs the full chain of internal failures, whose message is
// hidden from the client, and renders a response when a handler left an error
// behind without writing one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ge := range c.Errors {
			resp, ok := ge.Meta.(httperr.Response)
			if ok && resp.Status >= http.StatusInternalServerError {
				slog.Error("request failed",
					"request_id", GetRequestID(c),
					"route", c.FullPath(),
					"error", fmt.Sprintf("%+v", ge.Err))
			}
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		// 204 from Cancel and friends: headers only.
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// NoRoute keeps unknown paths in the same error envelope as every other refusal.
func NoRoute(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusNotFound}
	resp.Error.Message = "Route not found"
	c.JSON(http.StatusNotFound, resp)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
