package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/shared/constants"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

// quietPrefixes are polled or static paths logged only when they fail.
var quietPrefixes = []string{"/health", "/metrics", "/assets/", "/swagger/"}

// CustomLogger writes one access line per request. The route pattern is logged next to the
// raw path so that ticket ids do not scatter the same endpoint across many keys.
func CustomLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		if status < 400 && isQuiet(c.Request.URL.Path) {
			return
		}

		args := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		if userName, exists := c.Get(constants.ContextKeyUserName); exists {
			args = append(args, "user", userName)
		}
		if role, exists := c.Get(constants.ContextKeyUserRole); exists {
			args = append(args, "role", role)
		}

		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status == 401 || status == 403 || status == 429:
			log.Infow("request denied", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Debugw("request completed", args...)
		}
	}
}

func isQuiet(path string) bool {
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
