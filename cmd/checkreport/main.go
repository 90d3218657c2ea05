package main

import (
	"flag"
	"fmt"
	"os"

	"gold-insight-backend/internal/report"
)

// checkreport 检查报告文件是否包含黄金分析内容
//
// 用法:
//
//	checkreport -file reports/report_20260823.md
//	checkreport -dir reports
func main() {
	file := flag.String("file", "", "检查单个报告文件")
	dir := flag.String("dir", "", "检查目录下全部 Markdown 报告")
	flag.Parse()

	if *file == "" && *dir == "" {
		*dir = "reports"
	}

	var results []*report.CheckResult
	if *file != "" {
		results = append(results, report.CheckFile(*file))
	} else {
		var err error
		results, err = report.CheckDir(*dir)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		if len(results) == 0 {
			fmt.Printf("❌ 目录 %s 下没有找到报告文件\n", *dir)
			os.Exit(1)
		}
	}

	allOK := true
	for _, r := range results {
		printResult(r)
		if !r.Exists || !r.HasGold {
			allOK = false
		}
	}

	if allOK {
		fmt.Println("✅ 检查通过：报告包含黄金分析内容")
		os.Exit(0)
	}
	fmt.Println("❌ 检查未通过：存在缺少黄金分析的报告")
	os.Exit(1)
}

func printResult(r *report.CheckResult) {
	fmt.Printf("\n=== %s ===\n", r.Path)
	if !r.Exists {
		fmt.Println("❌ 文件不存在或无法读取")
		return
	}
	fmt.Printf("文件大小: %d 字符\n", r.Size)

	for _, item := range r.Items {
		mark := "❌"
		if item.Passed {
			mark = "✅"
		}
		fmt.Printf("%s %s\n", mark, item.Desc)
	}

	if len(r.Snippets) > 0 {
		fmt.Println("\n相关内容片段:")
		for _, s := range r.Snippets {
			fmt.Printf("  %s\n", s)
		}
	}
}
