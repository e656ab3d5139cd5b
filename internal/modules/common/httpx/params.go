package httpx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 解析路径中的数字 ID，非法时直接写入 404 并返回 false
func ParseIDParam(c *gin.Context, name string, notFoundMessage string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return 0, false
	}
	return uint(id), true
}

// PageQuery 读取 ?page=N，缺省或非法时为 1
func PageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
