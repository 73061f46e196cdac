package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeproject/forge/pkg/store"
)

func badRequest(c *gin.Context, format string, args ...any) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(format, args...)})
}

func notFound(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": msg})
}

func conflict(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": msg})
}

func internalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// rateLimited writes the 429 with a Retry-After hint.
func rateLimited(c *gin.Context, d store.RateDecision) {
	retry := int(d.RetryAfter / time.Second)
	if retry < 1 {
		retry = 1
	}
	c.Header("Retry-After", fmt.Sprintf("%d", retry))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error":               "rate limit exceeded",
		"retry_after_seconds": retry,
	})
}

// checkRate applies one rate-limit scope for the caller. Returns false
// after writing the response when the request does not fit.
func (s *Server) checkRate(c *gin.Context, scope string) bool {
	if s.limiter == nil {
		return true
	}
	d, err := s.limiter.Allow(c.Request.Context(), owner(c), scope)
	if err != nil {
		internalError(c, err)
		return false
	}
	if !d.Allowed {
		rateLimited(c, d)
		return false
	}
	return true
}
