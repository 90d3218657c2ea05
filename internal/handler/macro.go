package handler

import (
	"net/http"

	"gold-insight-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GetMacroScore 获取宏观因素评分
func GetMacroScore(c *gin.Context) {
	c.JSON(http.StatusOK, service.GetMacroScore())
}
