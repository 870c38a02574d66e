package middleware

import (
	"net/http"

	"lendshare/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderUserID carries the caller's identity, set by the upstream gateway.
const HeaderUserID = "X-Sharer-User-Id"

const userIDKey = "sharer_user_id"

// Identity resolves the caller from the identity header. There is no token
// auth here; the gateway is trusted to have authenticated the user.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing "+HeaderUserID+" header")
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+HeaderUserID+" header")
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
