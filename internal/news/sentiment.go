package news

import "strings"

// 黄金视角的情绪关键词：降息、避险、央行购金等利好，加息、美元走强等利空
var bullishKeywords = []string{
	"降息", "宽松", "避险", "冲突", "紧张", "升级",
	"通胀上升", "通胀高企", "购金", "增持", "黄金储备",
	"美元走弱", "美元下跌", "衰退", "鸽派",
}

var bearishKeywords = []string{
	"加息", "紧缩", "鹰派", "缓和", "和谈",
	"通胀回落", "通胀降温", "抛售", "减持",
	"美元走强", "美元上涨", "风险偏好回升",
}

// categoryScore 单类别情绪评分
//
// 统计标题+摘要中多空关键词出现次数，
// 评分 = 50 + clamp((多头-空头)*10, ±30)，即每类别限定在 [20,80]
func categoryScore(results []SearchResult) int {
	var bullish, bearish int
	for _, item := range results {
		text := item.Title + " " + item.Snippet
		for _, kw := range bullishKeywords {
			bullish += strings.Count(text, kw)
		}
		for _, kw := range bearishKeywords {
			bearish += strings.Count(text, kw)
		}
	}

	delta := (bullish - bearish) * 10
	if delta > 30 {
		delta = 30
	}
	if delta < -30 {
		delta = -30
	}
	return 50 + delta
}

// ScoreNews 计算整体新闻情绪评分
//
// 每个成功类别对中性基线 50 贡献其偏离量的十分之一，
// 失败类别跳过，最终截断到 [0,100]
func ScoreNews(responses map[string]SearchResponse) int {
	score := 50.0
	for _, resp := range responses {
		if !resp.Success {
			continue
		}
		cat := categoryScore(resp.Results)
		score += float64(cat-50) * 0.1
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score + 0.5)
}
