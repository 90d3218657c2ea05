package fusion

import (
	"log"
	"math"

	"gold-insight-backend/internal/analyzer"
	"gold-insight-backend/internal/macro"
	"gold-insight-backend/internal/news"
)

// 融合权重固定：宏观内部新闻 30% 数据 70%，最终技术 60% 宏观 40%
const (
	newsWeight      = 0.3
	dataWeight      = 0.7
	technicalWeight = 0.6
	macroWeight     = 0.4
)

// FuseScores 两级加权融合，纯函数
//
// total_macro = round(clamp(news*0.3 + data*0.7))
// final = round(clamp(technical*0.6 + total_macro*0.4))
func FuseScores(technical, newsScore, dataScore int) (totalMacro, final int) {
	totalMacro = roundClamp(float64(newsScore)*newsWeight + float64(dataScore)*dataWeight)
	final = roundClamp(float64(technical)*technicalWeight + float64(totalMacro)*macroWeight)
	return totalMacro, final
}

func roundClamp(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// Engine 宏观融合引擎，协作方不可用时对应项降级为中性 50
type Engine struct {
	macroAnalyzer  *macro.Analyzer
	searcher       news.Searcher
	maxNewsResults int
}

// NewEngine 创建融合引擎，macroAnalyzer/searcher 允许为 nil
func NewEngine(macroAnalyzer *macro.Analyzer, searcher news.Searcher, maxNewsResults int) *Engine {
	if maxNewsResults <= 0 {
		maxNewsResults = 5
	}
	return &Engine{
		macroAnalyzer:  macroAnalyzer,
		searcher:       searcher,
		maxNewsResults: maxNewsResults,
	}
}

// Apply 对技术分析结果执行宏观融合
//
// 融合前的技术评分保留在扩展字段中，融合后的最终评分写回 SignalScore，
// 操作建议保持技术面结论不变。返回新闻搜索结果和宏观报告供叙述生成复用。
func (e *Engine) Apply(r *analyzer.Result) (map[string]news.SearchResponse, *macro.ScoreReport) {
	technical := r.SignalScore

	var report *macro.ScoreReport
	dataScore := 50
	if e.macroAnalyzer != nil {
		report = e.macroAnalyzer.GetMacroScore()
		dataScore = report.TotalScore
	} else {
		log.Printf("宏观数据分析器不可用，宏观数据项降级为中性 50")
	}

	var responses map[string]news.SearchResponse
	newsScore := 50
	if e.searcher != nil {
		responses = e.searcher.SearchMacroNews(e.maxNewsResults)
		newsScore = news.ScoreNews(responses)
	} else {
		log.Printf("新闻搜索器不可用，新闻情绪项降级为中性 50")
	}

	totalMacro, final := FuseScores(technical, newsScore, dataScore)

	ext := &analyzer.MacroExtension{
		TechnicalScore:  technical,
		NewsScore:       newsScore,
		DataScore:       dataScore,
		TotalMacroScore: totalMacro,
	}
	if report != nil {
		ext.MacroScore = report.TotalScore
		ext.MacroSummary = report.Summary
		ext.MacroTimestamp = report.Timestamp
		ext.MacroFactors = make(map[string]analyzer.MacroFactor, len(report.Factors))
		for name, f := range report.Factors {
			ext.MacroFactors[name] = analyzer.MacroFactor{
				Value:  f.Value,
				Change: f.Change,
				Impact: f.Impact,
				Score:  f.Score,
			}
		}
	} else {
		ext.MacroScore = 50
		ext.MacroSummary = "暂无宏观数据，保持中性看法"
	}

	r.Macro = ext
	r.SignalScore = final
	return responses, report
}
