package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckItem 单项检查结果
type CheckItem struct {
	Desc   string
	Passed bool
}

// CheckResult 单个报告文件的检查结果
type CheckResult struct {
	Path     string
	Exists   bool
	Size     int
	Items    []CheckItem
	HasGold  bool
	Snippets []string
}

// 黄金分析标记，任一命中即认为报告包含黄金分析
var goldMarkers = []struct {
	marker string
	desc   string
}{
	{"黄金", "包含'黄金'字样"},
	{"🥇", "包含黄金emoji"},
	{"Au9999", "包含Au9999代码"},
	{"GC", "包含GC代码"},
	{"黄金投资分析", "包含黄金章节"},
}

// CheckFile 检查单个报告文件是否包含黄金分析内容
func CheckFile(path string) *CheckResult {
	result := &CheckResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return result
	}
	result.Exists = true
	content := string(data)
	result.Size = len([]rune(content))

	for _, m := range goldMarkers {
		result.Items = append(result.Items, CheckItem{
			Desc:   m.desc,
			Passed: strings.Contains(content, m.marker),
		})
	}
	result.HasGold = strings.Contains(content, "黄金") || strings.Contains(content, "🥇")

	if result.HasGold {
		for i, line := range strings.Split(content, "\n") {
			if strings.Contains(line, "黄金") || strings.Contains(line, "🥇") || strings.Contains(line, "Au9999") {
				runes := []rune(line)
				if len(runes) > 100 {
					line = string(runes[:100])
				}
				result.Snippets = append(result.Snippets, fmt.Sprintf("行 %d: %s", i+1, line))
				if len(result.Snippets) >= 10 {
					break
				}
			}
		}
	}
	return result
}

// CheckDir 检查目录下所有 Markdown 报告，返回各文件结果
func CheckDir(dir string) ([]*CheckResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("扫描报告目录失败: %w", err)
	}

	results := make([]*CheckResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, CheckFile(path))
	}
	return results, nil
}
