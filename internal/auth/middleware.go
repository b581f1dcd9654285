package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"biomind/ent"
	"biomind/internal/store"
)

// userKey is the gin context key the middleware stores the user under.
const userKey = "auth_user"

// Middleware authenticates requests with a Bearer token, loads the
// account, and aborts with 401 on any failure.
func Middleware(issuer *TokenIssuer, users store.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		userID, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		u, err := users.ByID(c.Request.Context(), userID)
		if err != nil {
			abortUnauthorized(c, "unknown user")
			return
		}
		if !u.IsActive {
			abortUnauthorized(c, "account disabled")
			return
		}

		c.Set(userKey, u)
		c.Next()
	}
}

// UserFrom returns the authenticated user stored by the middleware.
func UserFrom(c *gin.Context) (*ent.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*ent.User)
	return u, ok
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
