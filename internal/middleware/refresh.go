package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Refresher is told about every successful write request.
type Refresher interface {
	Refresh()
}

// RefreshOnWrite notifies the refresher after successful non-read requests.
func RefreshOnWrite(r Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if r == nil || c.Writer.Status() >= 400 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		r.Refresh()
	}
}
