package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/medialib/content-api/pkg/errors"
)

// JSON sends a success payload as-is. Endpoint shapes are owned by the handlers.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Error sends an error response. Clients only ever see the carried message,
// never raw driver or query error text.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
