package middleware

import "github.com/gin-gonic/gin"

const cacheHeader = "X-Cache"

// SetCacheHit records on the response whether it was served from cache.
// Response bodies keep their documented shapes; the signal rides a header.
func SetCacheHit(c *gin.Context, hit bool) {
	if c == nil {
		return
	}
	if hit {
		c.Header(cacheHeader, "HIT")
		return
	}
	c.Header(cacheHeader, "MISS")
}
