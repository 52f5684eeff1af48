package middleware

import "github.com/gin-gonic/gin"

// NoCacheMiddleware disables every caching layer for the metric
// endpoints; dashboards must always see fresh numbers.
func NoCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Writer.Header().Set("Pragma", "no-cache")
		c.Writer.Header().Set("Expires", "0")
		c.Next()
	}
}
