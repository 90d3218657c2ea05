package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Report 一次分析的完整报告内容
type Report struct {
	Date      time.Time
	Code      string
	Analysis  string // 格式化的技术分析文本
	Narrative string // AI 叙述，可为空
}

// Render 渲染 Markdown 报告
func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 黄金投资分析报告（%s）\n\n", r.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "## 🥇 %s 技术分析\n\n", r.Code)
	b.WriteString("```\n")
	b.WriteString(strings.TrimRight(r.Analysis, "\n"))
	b.WriteString("\n```\n")

	if r.Narrative != "" {
		b.WriteString("\n## 🤖 AI 黄金投资分析\n\n")
		b.WriteString(strings.TrimRight(r.Narrative, "\n"))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n---\n生成时间: %s\n", r.Date.Format("2006-01-02 15:04:05"))
	return b.String()
}

// Write 写入报告文件 reports/report_YYYYMMDD.md，返回文件路径
func (r *Report) Write(dir string) (string, error) {
	if dir == "" {
		dir = "reports"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("创建报告目录失败: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.md", r.Date.Format("20060102")))
	if err := os.WriteFile(path, []byte(r.Render()), 0o644); err != nil {
		return "", fmt.Errorf("写入报告文件失败: %w", err)
	}
	return path, nil
}
