package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ua "github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request id assigned by RequestLogger
const RequestIDHeader = "X-Request-ID"

// RequestLogger logs every HTTP request with a generated request id and
// the client's browser/OS parsed from the User-Agent header. Responses
// with 5xx status are logged as errors, 4xx as warnings.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
		}

		if rawUA := c.Request.UserAgent(); rawUA != "" {
			parser := ua.New(rawUA)
			browser, version := parser.Browser()
			fields["browser"] = browser
			fields["browser_version"] = version
			fields["os"] = parser.OSInfo().Name
			if parser.Mobile() {
				fields["device"] = "mobile"
			} else {
				fields["device"] = "desktop"
			}
		}

		entry := logger.WithFields(fields)

		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
			entry.Error("Request failed with errors")
			return
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}
