package macro

import (
	"fmt"
	"log"
	"math"
	"time"
)

// Factor 单项宏观因素评估
type Factor struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change,omitempty"`
	Impact string  `json:"impact"`
	Score  int     `json:"score"`
}

// ScoreReport 综合宏观评分报告，每次调用新建，缺失因素直接不出现在 Factors 中
type ScoreReport struct {
	TotalScore int               `json:"total_score"`
	Factors    map[string]Factor `json:"factors"`
	Summary    string            `json:"summary"`
	Timestamp  string            `json:"timestamp"`
}

// Analyzer 黄金宏观因素分析器
type Analyzer struct {
	source DataSource
}

// NewAnalyzer 创建宏观分析器
func NewAnalyzer(source DataSource) *Analyzer {
	return &Analyzer{source: source}
}

// GetMacroScore 计算综合宏观评分（0-100，越高越利好黄金）
//
// 各因素独立取数，失败的因素跳过并记录日志；
// 总分为可得因素评分的算术平均，无任何因素时取中性 50。
func (a *Analyzer) GetMacroScore() *ScoreReport {
	factors := map[string]Factor{}

	// 1. 美元指数：美元上涨利空黄金
	if points, err := a.source.GetFXIndex(5); err != nil {
		log.Printf("获取美元指数失败: %v", err)
	} else if len(points) >= 2 {
		current := points[len(points)-1].Close
		prev := points[len(points)-2].Close
		change := (current - prev) / prev * 100
		score, impact := scoreFXChange(change)
		factors["dxy"] = Factor{
			Value:  math.Round(current*100) / 100,
			Change: math.Round(change*100) / 100,
			Impact: impact,
			Score:  score,
		}
	}

	// 2. 实际利率：利率上升利空黄金
	if realRate, err := a.source.GetRealRate(); err != nil {
		log.Printf("获取实际利率失败: %v", err)
	} else {
		score, impact := scoreRealRate(realRate)
		factors["real_rate"] = Factor{Value: realRate, Impact: impact, Score: score}
	}

	// 3. 通胀：通胀上升利好黄金
	if inflation, err := a.source.GetInflationRate(); err != nil {
		log.Printf("获取通胀率失败: %v", err)
	} else {
		score, impact := scoreInflation(inflation)
		factors["inflation"] = Factor{Value: inflation, Impact: impact, Score: score}
	}

	// 4. 央行购金
	if cb, err := a.source.GetCentralBankPurchases(); err != nil {
		log.Printf("获取央行购金数据失败: %v", err)
	} else if cb != nil {
		score, impact := scoreCentralBank(cb.TotalPurchases)
		factors["central_bank"] = Factor{Value: cb.TotalPurchases, Impact: impact, Score: score}
	}

	// 5. 地缘政治风险：风险上升利好黄金
	if risk, err := a.source.GetGeopoliticalRiskIndex(); err != nil {
		log.Printf("获取地缘政治风险指数失败: %v", err)
	} else {
		score, impact := scoreGeopolitical(risk)
		factors["geopolitical"] = Factor{Value: risk, Impact: impact, Score: score}
	}

	total := 50
	if len(factors) > 0 {
		sum := 0
		for _, f := range factors {
			sum += f.Score
		}
		total = int(math.Round(float64(sum) / float64(len(factors))))
	}

	return &ScoreReport{
		TotalScore: total,
		Factors:    factors,
		Summary:    buildSummary(factors),
		Timestamp:  time.Now().Format(time.RFC3339),
	}
}

// scoreFXChange 美元指数日变化评分，±0.5% 为中性带
func scoreFXChange(changePct float64) (int, string) {
	switch {
	case changePct > 0.5:
		return 30, "bearish"
	case changePct < -0.5:
		return 70, "bullish"
	default:
		return 50, "neutral"
	}
}

// scoreRealRate 实际利率评分
func scoreRealRate(realRate float64) (int, string) {
	switch {
	case realRate > 2.0:
		return 20, "strongly_bearish"
	case realRate > 1.0:
		return 35, "bearish"
	case realRate > 0:
		return 50, "neutral"
	default:
		return 75, "bullish"
	}
}

// scoreInflation 通胀率评分
func scoreInflation(inflation float64) (int, string) {
	switch {
	case inflation > 4.0:
		return 80, "strongly_bullish"
	case inflation > 3.0:
		return 70, "bullish"
	case inflation > 2.0:
		return 50, "neutral"
	default:
		return 30, "bearish"
	}
}

// scoreCentralBank 央行购金量评分（吨）
func scoreCentralBank(tonnes float64) (int, string) {
	switch {
	case tonnes > 300:
		return 85, "strongly_bullish"
	case tonnes > 150:
		return 75, "bullish"
	case tonnes > 50:
		return 60, "slightly_bullish"
	default:
		return 50, "neutral"
	}
}

// scoreGeopolitical 地缘政治风险指数评分
func scoreGeopolitical(risk float64) (int, string) {
	switch {
	case risk > 70:
		return 80, "strongly_bullish"
	case risk > 50:
		return 65, "bullish"
	case risk > 30:
		return 50, "neutral"
	default:
		return 30, "bearish"
	}
}

// buildSummary 按多空因素数量生成总结文本
func buildSummary(factors map[string]Factor) string {
	if len(factors) == 0 {
		return "暂无宏观数据，保持中性看法"
	}

	var bullish, bearish int
	for _, f := range factors {
		switch f.Impact {
		case "bullish", "strongly_bullish", "slightly_bullish":
			bullish++
		case "bearish", "strongly_bearish":
			bearish++
		}
	}

	switch {
	case bullish > 0 && bearish == 0:
		return fmt.Sprintf("宏观环境整体利好黄金（%d项利好因素）", bullish)
	case bearish > 0 && bullish == 0:
		return fmt.Sprintf("宏观环境整体利空黄金（%d项利空因素）", bearish)
	case bullish > bearish:
		return fmt.Sprintf("宏观环境偏利好黄金（%d项利好 vs %d项利空）", bullish, bearish)
	case bearish > bullish:
		return fmt.Sprintf("宏观环境偏利空黄金（%d项利好 vs %d项利空）", bullish, bearish)
	default:
		return "宏观环境中性，关注技术面信号"
	}
}
