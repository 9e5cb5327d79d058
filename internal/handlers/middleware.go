package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const errReadOnly = "read-only API: only GET and HEAD are allowed"

// readOnly rejects any method that could mutate state.
func readOnly(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
		c.Next()
	default:
		c.Header("Allow", "GET, HEAD")
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": errReadOnly})
	}
}

// requestLog writes one structured line per request.
func (h *Handler) requestLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}
