package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartplan/internal/model"
)

// CORS allows cross-origin requests. In production the allowed origin should
// be restricted via a reverse proxy; the API itself stays permissive for the
// web client.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := "*"
		if m.cfg.Environment.Name == string(model.EnvironmentProduction) {
			origin = c.GetHeader("Origin")
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestLog logs method, path, status and latency for every request.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
