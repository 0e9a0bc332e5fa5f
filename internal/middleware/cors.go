package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CORS allows the local dev frontends plus anything listed in
// CORS_ALLOWED_ORIGINS (comma separated). Preflight requests are
// answered here so they never reach the auth middleware.
func CORS() gin.HandlerFunc {
	allowed := make(map[string]bool, len(defaultOrigins))
	for _, o := range defaultOrigins {
		allowed[o] = true
	}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}

	headers := strings.Join([]string{
		"Content-Type", "Content-Length", "Authorization", "Accept", "Origin", "X-Requested-With",
	}, ", ")
	methods := "GET, POST, PUT, PATCH, DELETE, OPTIONS"

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Vary", "Origin")

		if origin := c.GetHeader("Origin"); origin != "" && allowed[origin] {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
		}

		h.Set("Access-Control-Allow-Headers", headers)
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Max-Age", "600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
