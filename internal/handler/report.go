package handler

import (
	"net/http"
	"strconv"

	"gold-insight-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GetLatestReport 查询最新报告记录
func GetLatestReport(c *gin.Context) {
	code := c.Query("code")

	record, err := service.LatestReport(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetReportHistory 查询报告历史
func GetReportHistory(c *gin.Context) {
	code := c.Query("code")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	records, err := service.ReportHistory(code, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": records,
	})
}

// RunReports 手动触发日报生成
func RunReports(c *gin.Context) {
	paths, err := service.RunDailyReports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"paths": paths,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paths": paths,
	})
}
