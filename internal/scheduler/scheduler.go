package scheduler

import (
	"log"
	"time"

	"gold-insight-backend/internal/config"
	"gold-insight-backend/internal/holiday"
	"gold-insight-backend/internal/mail"
	"gold-insight-backend/internal/service"

	"github.com/robfig/cron/v3"
)

// Scheduler 日报定时任务
type Scheduler struct {
	cron *cron.Cron
	cfg  *config.Config
}

func New(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		cfg:  cfg,
	}
}

// Start 注册并启动定时任务
//
// 默认 cron 表达式为 "30 17 * * 1-5"，即工作日 17:30 收盘后执行。
func (s *Scheduler) Start() error {
	if !s.cfg.DailyReportEnabled {
		log.Println("日报定时任务已禁用")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.DailyReportCron, s.runDailyReports)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("日报定时任务已启动: %s（品种: %s）", s.cfg.DailyReportCron, s.cfg.ReportCodes)
	return nil
}

// Stop 停止定时任务，等待运行中的任务结束
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// runDailyReports 执行日报生成并发送邮件通知
func (s *Scheduler) runDailyReports() {
	start := time.Now()
	// cron 表达式只排除周末，法定节假日在这里拦截
	if !holiday.IsTradingDayNow() {
		log.Println("今日非交易日，跳过日报任务")
		return
	}
	log.Println("开始执行收盘后日报任务...")

	paths, err := service.RunDailyReports()
	if err != nil {
		log.Printf("日报任务执行出错: %v", err)
	}
	log.Printf("日报任务完成，耗时: %v，生成报告: %d 份", time.Since(start).Round(time.Second), len(paths))

	if len(paths) == 0 {
		return
	}

	if s.cfg.NotifyEmails == "" {
		log.Println("未配置通知邮箱，跳过邮件发送")
		return
	}

	date := start.Format("2006-01-02")
	if err := mail.SendDailyReportNotification(date, paths); err != nil {
		log.Printf("发送日报通知邮件失败: %v", err)
	} else {
		log.Println("日报通知邮件已发送")
	}
}
