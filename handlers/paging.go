package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pageParams reads ?limit and ?page, treating garbage as unset.
func pageParams(c *gin.Context) (limit, page int64) {
	limit, _ = strconv.ParseInt(c.Query("limit"), 10, 64)
	page, _ = strconv.ParseInt(c.Query("page"), 10, 64)
	return limit, page
}
