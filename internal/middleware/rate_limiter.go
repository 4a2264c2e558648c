package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/util"
)

// RateLimiterMiddleware throttles by client IP using a fixed window.
func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		ctx.Header("Retry-After", retryAfter.String())
		util.ResponseFailed(ctx, http.StatusTooManyRequests, apperror.NewValidation("rate limit exceeded, retry after: %s", retryAfter))
		ctx.Abort()
		return
	}

	ctx.Next()
}
