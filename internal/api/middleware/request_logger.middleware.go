package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/platformbuilds/mirador-relay/pkg/logger"
)

// Unknown identifier for logging when context is not available
const UnknownRequestID = "unknown"

// RequestLogger logs HTTP requests through the structured logger.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID := UnknownRequestID
		if param.Keys != nil {
			if rid, exists := param.Keys[RequestIDKey]; exists {
				if ridStr, ok := rid.(string); ok {
					requestID = ridStr
				}
			}
		}

		fields := []interface{}{
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency", param.Latency,
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
			"request_id", requestID,
			"content_length", param.Request.ContentLength,
		}
		if param.ErrorMessage != "" {
			fields = append(fields, "error", param.ErrorMessage)
		}

		// Log level based on status code
		switch {
		case param.StatusCode >= 500:
			log.Error("HTTP Request", fields...)
		case param.StatusCode >= 400:
			log.Warn("HTTP Request", fields...)
		default:
			log.Info("HTTP Request", fields...)
		}

		return ""
	})
}
