package handler

import (
	"net/http"

	"gold-insight-backend/internal/golddata"

	"github.com/gin-gonic/gin"
)

// GetGoldKline 获取黄金K线数据
func GetGoldKline(c *gin.Context) {
	code := c.DefaultQuery("code", "Au9999")
	period := c.DefaultQuery("period", "daily")
	refresh := c.Query("refresh") == "1"

	kline, err := golddata.GetGoldKlineWithRefresh(code, period, refresh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, kline)
}

// GetGoldCodes 获取支持的黄金品种列表
func GetGoldCodes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": golddata.SupportedCodes(),
	})
}
