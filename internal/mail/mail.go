package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"os"
	"strconv"
	"strings"
)

// SendMail 发送邮件
func SendMail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	if host == "" || user == "" || pass == "" {
		return fmt.Errorf("邮件配置不完整，请检查 SMTP_HOST, SMTP_USER, SMTP_PASS")
	}

	port := 465
	if portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	// 构建邮件内容
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		user, to, subject, body)

	// 使用 TLS 连接（163邮箱需要SSL）
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         host,
	}

	conn, err := tls.Dial("tcp", fmt.Sprintf("%s:%d", host, port), tlsConfig)
	if err != nil {
		return fmt.Errorf("连接邮件服务器失败: %v", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return fmt.Errorf("创建SMTP客户端失败: %v", err)
	}
	defer client.Close()

	// 认证
	auth := smtp.PlainAuth("", user, pass, host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("邮件认证失败: %v", err)
	}

	// 设置发件人和收件人
	if err := client.Mail(user); err != nil {
		return fmt.Errorf("设置发件人失败: %v", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("设置收件人失败: %v", err)
	}

	// 发送邮件内容
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("获取写入器失败: %v", err)
	}
	_, err = w.Write([]byte(msg))
	if err != nil {
		return fmt.Errorf("写入邮件内容失败: %v", err)
	}
	err = w.Close()
	if err != nil {
		return fmt.Errorf("关闭写入器失败: %v", err)
	}

	return client.Quit()
}

// SendDailyReportNotification 发送日报生成通知（支持多个邮箱，用逗号分隔）
func SendDailyReportNotification(date string, paths []string) error {
	emails := os.Getenv("NOTIFY_EMAILS")
	if emails == "" {
		return fmt.Errorf("未配置通知邮箱 NOTIFY_EMAILS")
	}

	var items strings.Builder
	for _, p := range paths {
		items.WriteString(fmt.Sprintf("<li style=\"margin: 4px 0; font-family: monospace;\">%s</li>", p))
	}

	subject := fmt.Sprintf("【黄金分析系统】%s 日报已生成", date)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h2 style="color: #f59e0b;">黄金分析系统 - 日报生成通知</h2>
			<p>%s 收盘后分析报告已生成，共 %d 份：</p>
			<ul style="background: #1e293b; color: #f59e0b; padding: 20px 40px; border-radius: 8px;">
				%s
			</ul>
			<p style="color: #64748b; font-size: 12px; margin-top: 20px;">
				此邮件由系统自动发送，请勿回复。
			</p>
		</div>
	`, date, len(paths), items.String())

	// 支持多个邮箱，用逗号分隔
	emailList := strings.Split(emails, ",")
	var lastErr error
	for _, email := range emailList {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if err := SendMail(email, subject, body); err != nil {
			lastErr = err
			fmt.Printf("发送邮件到 %s 失败: %v\n", email, err)
		} else {
			fmt.Printf("日报通知已发送到 %s\n", email)
		}
	}
	return lastErr
}
