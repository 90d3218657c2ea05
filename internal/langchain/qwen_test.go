package langchain

import (
	"strings"
	"testing"

	"gold-insight-backend/internal/analyzer"
	"gold-insight-backend/internal/macro"
	"gold-insight-backend/internal/news"
)

func TestBuildMacroPrompt(t *testing.T) {
	r := analyzer.NewResult("Au9999")
	r.TrendStatus = analyzer.TrendStrongBull
	r.TrendStrength = 85
	r.MAAlignment = "MA5 > MA10 > MA20 多头排列（黄金多头趋势可能更持久）"
	r.CurrentPrice = 2050.50
	r.SignalScore = 80
	r.BuySignal = analyzer.SignalBuy

	report := &macro.ScoreReport{
		TotalScore: 75,
		Summary:    "宏观环境整体利好黄金（3项利好因素）",
		Factors: map[string]macro.Factor{
			"dxy":       {Value: 102.5, Change: -0.5, Impact: "bullish", Score: 70},
			"inflation": {Value: 3.5, Impact: "bullish", Score: 70},
		},
	}

	macroNews := map[string]news.SearchResponse{
		"美联储政策": {
			Success: true,
			Results: []news.SearchResult{
				{Title: "美联储暗示可能降息", Snippet: "美联储主席表示，如果通胀持续下降，可能会考虑降息"},
			},
		},
		"地缘政治": {Success: false},
	}

	prompt := BuildMacroPrompt(r, report, macroNews)

	for _, want := range []string{
		"【技术分析数据】",
		"趋势判断: 强势多头",
		"技术评分: 80/100",
		"【宏观数据】",
		"宏观评分: 75/100",
		"- dxy: 102.50 (bullish) - 70/100",
		"【宏观新闻摘要】",
		"美联储暗示可能降息",
		"请提供以下分析",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("提示词缺少 %q", want)
		}
	}
	if strings.Contains(prompt, "地缘政治") {
		t.Error("失败的新闻类别不应进入提示词")
	}
}

func TestBuildMacroPrompt_TechnicalScoreBeforeFusion(t *testing.T) {
	// 融合后 SignalScore 已是最终评分，提示词里的技术评分取融合前的值
	r := analyzer.NewResult("Au9999")
	r.SignalScore = 76
	r.Macro = &analyzer.MacroExtension{TechnicalScore: 80}

	prompt := BuildMacroPrompt(r, nil, nil)
	if !strings.Contains(prompt, "技术评分: 80/100") {
		t.Error("应使用融合前技术评分")
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("黄金价格上涨", 3); got != "黄金价" {
		t.Errorf("中文截断错误: %q", got)
	}
	if got := truncateRunes("short", 100); got != "short" {
		t.Errorf("短文本不应截断: %q", got)
	}
}
