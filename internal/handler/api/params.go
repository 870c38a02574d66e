package api

import (
	"net/http"
	"strconv"

	"lendshare/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads the optional from/size query parameters; absence means nil
// so the listing layer applies its defaults.
func pageParams(c *gin.Context) (from, size *int32, ok bool) {
	from, ok = int32Query(c, "from")
	if !ok {
		return nil, nil, false
	}
	size, ok = int32Query(c, "size")
	if !ok {
		return nil, nil, false
	}
	return from, size, true
}

func int32Query(c *gin.Context, key string) (*int32, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key+" parameter")
		return nil, false
	}
	out := int32(v)
	return &out, true
}
