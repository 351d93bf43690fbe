package utils

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageParams are the standard pagination query parameters.
type PageParams struct {
	Page  int
	Limit int
}

// Skip returns the number of documents to skip for this page.
func (p PageParams) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// ParsePageParams reads page/limit with sane bounds.
func ParsePageParams(c *gin.Context) PageParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return PageParams{Page: page, Limit: limit}
}

type pageCursor struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries next/prev cursors in the list envelope.
type Pagination struct {
	Next *pageCursor `json:"next,omitempty"`
	Prev *pageCursor `json:"prev,omitempty"`
}

// RespondOK writes the standard success envelope.
func RespondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// RespondMessage writes a success envelope with only a message.
func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

// RespondList writes the paginated list envelope with count, total and
// next/prev cursors.
func RespondList(c *gin.Context, data interface{}, count int, total int64, params PageParams) {
	pagination := Pagination{}
	lastPage := int(math.Ceil(float64(total) / float64(params.Limit)))
	if params.Page < lastPage {
		pagination.Next = &pageCursor{Page: params.Page + 1, Limit: params.Limit}
	}
	if params.Page > 1 {
		pagination.Prev = &pageCursor{Page: params.Page - 1, Limit: params.Limit}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      count,
		"total":      total,
		"pagination": pagination,
		"data":       data,
	})
}
