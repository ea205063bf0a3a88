package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, key string) (*int64, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func queryString(c *gin.Context, key string) *string {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &raw
}

func queryPage(c *gin.Context) (offset, limit int32) {
	if raw, ok := c.GetQuery("offset"); ok {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			offset = int32(v)
		}
	}
	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			limit = int32(v)
		}
	}
	return offset, limit
}
