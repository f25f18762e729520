package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitRequestSize caps the request body so multipart parsing fails instead of
// buffering an arbitrarily large upload.
func LimitRequestSize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
