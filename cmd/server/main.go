package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gold-insight-backend/internal/cache"
	"gold-insight-backend/internal/config"
	"gold-insight-backend/internal/golddata"
	"gold-insight-backend/internal/handler"
	"gold-insight-backend/internal/holiday"
	"gold-insight-backend/internal/scheduler"
	"gold-insight-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// Redis 可选，未配置时K线缓存退回进程内实现
	if cfg.RedisAddr != "" {
		if err := cache.InitRedis(cfg.RedisAddr); err != nil {
			log.Printf("Redis初始化失败，使用进程内缓存: %v", err)
		} else {
			golddata.SetCacheProvider(cache.NewProvider())
			defer cache.Close()
		}
	}

	if err := service.Setup(cfg); err != nil {
		log.Fatalf("初始化服务失败: %v", err)
	}
	defer service.Shutdown()

	if err := holiday.LoadCustomHolidays(cfg.HolidayFile); err != nil {
		log.Printf("加载节假日配置失败: %v", err)
	}

	sched := scheduler.New(cfg)
	if err := sched.Start(); err != nil {
		log.Fatalf("启动定时任务失败: %v", err)
	}
	defer sched.Stop()

	r := gin.Default()

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 注册路由
	api := r.Group("/api")
	{
		// 黄金分析
		api.POST("/gold/analyze", handler.AnalyzeGold)
		api.GET("/gold/kline", handler.GetGoldKline)
		api.GET("/gold/codes", handler.GetGoldCodes)

		// 宏观评分
		api.GET("/macro/score", handler.GetMacroScore)

		// 报告
		api.GET("/reports/latest", handler.GetLatestReport)
		api.GET("/reports/history", handler.GetReportHistory)
		api.POST("/reports/run", handler.RunReports)
	}

	log.Printf("服务启动在端口 %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}
