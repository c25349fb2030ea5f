package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDHeader     = "X-User-ID"
	ContextUserIDKey = "userID"
)

// UserIdentity copies the caller's user id from the X-User-ID header into the
// request context. Requests without the header pass through unidentified.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
			c.Set(ContextUserIDKey, id)
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}
