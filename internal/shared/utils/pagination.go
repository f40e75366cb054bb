package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/complaintdesk/internal/shared/db"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the query string, applying
// the same clamping as the storage scope.
func ParsePagination(c *gin.Context) Pagination {
	page, pageSize := db.NormalizePage(parseQueryInt(c, "page"), parseQueryInt(c, "page_size"))
	return Pagination{Page: page, PageSize: pageSize}
}

func parseQueryInt(c *gin.Context, key string) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return 0
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
