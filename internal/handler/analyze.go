package handler

import (
	"net/http"

	"gold-insight-backend/internal/model"
	"gold-insight-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyzeGold 执行黄金分析
func AnalyzeGold(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "请求参数错误: " + err.Error(),
		})
		return
	}

	analysis, err := service.AnalyzeGold(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
