package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// FormatAnalysis 将分析结果渲染为多段文本报告
//
// 纯渲染，不修改结果；宏观段仅在融合扩展存在时输出。
func (a *Analyzer) FormatAnalysis(r *Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s %s ===\n", r.Code, a.profile.ReportTitle)
	b.WriteString("\n")

	fmt.Fprintf(&b, "📊 趋势判断: %s\n", r.TrendStatus)
	fmt.Fprintf(&b, "   均线排列: %s\n", r.MAAlignment)
	fmt.Fprintf(&b, "   趋势强度: %d/100\n", r.TrendStrength)
	b.WriteString("\n")

	b.WriteString("📈 均线数据:\n")
	fmt.Fprintf(&b, "   现价: %.2f\n", r.CurrentPrice)
	fmt.Fprintf(&b, "   MA5:  %.2f (乖离 %+.2f%%)\n", r.MA5, r.BiasMA5)
	fmt.Fprintf(&b, "   MA10: %.2f (乖离 %+.2f%%)\n", r.MA10, r.BiasMA10)
	fmt.Fprintf(&b, "   MA20: %.2f (乖离 %+.2f%%)\n", r.MA20, r.BiasMA20)
	b.WriteString("\n")

	fmt.Fprintf(&b, "📊 量能分析: %s\n", r.VolumeStatus)
	fmt.Fprintf(&b, "   量比(vs5日): %.2f\n", r.VolumeRatio5D)
	fmt.Fprintf(&b, "   量能趋势: %s\n", r.VolumeTrend)
	b.WriteString("\n")

	fmt.Fprintf(&b, "📈 MACD指标: %s\n", r.MACDStatus)
	fmt.Fprintf(&b, "   DIF: %.4f\n", r.MACDDIF)
	fmt.Fprintf(&b, "   DEA: %.4f\n", r.MACDDEA)
	fmt.Fprintf(&b, "   MACD: %.4f\n", r.MACDBar)
	fmt.Fprintf(&b, "   信号: %s\n", r.MACDSignal)
	b.WriteString("\n")

	fmt.Fprintf(&b, "📊 RSI指标: %s\n", r.RSIStatus)
	fmt.Fprintf(&b, "   RSI(6): %.1f\n", r.RSI6)
	fmt.Fprintf(&b, "   RSI(12): %.1f\n", r.RSI12)
	fmt.Fprintf(&b, "   RSI(24): %.1f\n", r.RSI24)
	fmt.Fprintf(&b, "   信号: %s\n", r.RSISignal)
	b.WriteString("\n")

	fmt.Fprintf(&b, "🎯 操作建议: %s\n", r.BuySignal)
	fmt.Fprintf(&b, "   综合评分: %d/100\n", r.SignalScore)

	if len(r.SignalReasons) > 0 {
		b.WriteString("\n✅ 买入理由:\n")
		for _, reason := range r.SignalReasons {
			fmt.Fprintf(&b, "   %s\n", reason)
		}
	}

	if len(r.RiskFactors) > 0 {
		b.WriteString("\n⚠️ 风险因素:\n")
		for _, risk := range r.RiskFactors {
			fmt.Fprintf(&b, "   %s\n", risk)
		}
	}

	if len(a.profile.MarketNotes) > 0 {
		fmt.Fprintf(&b, "\n💡 %s市场提示:\n", marketNoteLabel(a.profile.Name))
		for _, note := range a.profile.MarketNotes {
			fmt.Fprintf(&b, "   - %s\n", note)
		}
	}

	if r.Macro != nil {
		b.WriteString("\n🌍 宏观因素分析:\n")
		fmt.Fprintf(&b, "   宏观评分: %d/100\n", r.Macro.MacroScore)
		fmt.Fprintf(&b, "   宏观总结: %s\n", r.Macro.MacroSummary)
		names := make([]string, 0, len(r.Macro.MacroFactors))
		for name := range r.Macro.MacroFactors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			f := r.Macro.MacroFactors[name]
			fmt.Fprintf(&b, "   - %s: %.2f (%s) - %d/100\n", name, f.Value, f.Impact, f.Score)
		}
		fmt.Fprintf(&b, "   技术评分: %d/100\n", r.Macro.TechnicalScore)
		fmt.Fprintf(&b, "   新闻情绪: %d/100\n", r.Macro.NewsScore)
		fmt.Fprintf(&b, "   综合宏观: %d/100\n", r.Macro.TotalMacroScore)
		fmt.Fprintf(&b, "   融合评分: %d/100\n", r.SignalScore)
	}

	return b.String()
}

func marketNoteLabel(profileName string) string {
	if profileName == "gold" {
		return "黄金"
	}
	return "市场"
}
