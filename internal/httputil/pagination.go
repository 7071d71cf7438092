package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Listing bounds for the offset/limit query parameters.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ParsePagination reads ?offset= and ?limit=. Missing values default to 0 and
// DefaultLimit. Negative offsets and limits outside 1..MaxLimit are rejected.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, ok := queryInt(c, "offset", 0)
	if !ok || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, ok = queryInt(c, "limit", DefaultLimit)
	if !ok || limit < 1 || limit > MaxLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", MaxLimit)
	}

	return offset, limit, nil
}

func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw, present := c.GetQuery(key)
	if !present {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
