package analyzer

import "fmt"

// generateSignal 按加权规则把各项分类状态汇总为综合评分和操作建议
//
// 评分从 50 起步，趋势、量能、MACD、RSI 各自加减分，最终截断到 [0,100]。
// 严进策略：现价乖离 MA5 超过品种阈值时，买入类信号降一级并记录风险。
func generateSignal(r *Result, p *Profile) {
	score := 50

	// 趋势
	switch r.TrendStatus {
	case TrendStrongBull:
		score += 20
		r.addReason("强势多头排列，趋势向上")
	case TrendBull:
		score += 15
		r.addReason("多头排列，趋势向上")
	case TrendBear:
		score -= 15
		r.addRisk("空头排列，趋势向下")
	case TrendStrongBear:
		score -= 20
		r.addRisk("强势空头排列，趋势向下")
	}

	// 乖离率：不追高
	chasing := false
	if r.MA5 > 0 {
		if r.BiasMA5 > p.BiasThreshold {
			chasing = true
			score -= 10
			r.addRisk(fmt.Sprintf("现价偏离 MA5 达 %.2f%%，超过 %.1f%% 阈值，不宜追高", r.BiasMA5, p.BiasThreshold))
		} else if r.BiasMA5 > 0 && (r.TrendStatus == TrendBull || r.TrendStatus == TrendStrongBull) {
			score += 10
			r.addReason(fmt.Sprintf("现价偏离 MA5 仅 %.2f%%，处于合理买入区间", r.BiasMA5))
		}
		// 回踩均线支撑
		if r.BiasMA5 >= -p.MASupportTolerance*100 && r.BiasMA5 <= p.MASupportTolerance*100 &&
			(r.TrendStatus == TrendBull || r.TrendStatus == TrendStrongBull) {
			score += 5
			r.addReason("价格回踩 MA5 附近，支撑位买点")
		}
	}

	// 量能
	switch r.VolumeStatus {
	case VolumeHeavyUp:
		score += 15
		r.addReason("放量上涨，量价配合良好")
	case VolumeShrinkDown:
		score += 10
		r.addReason("缩量回调，抛压有限")
	case VolumeHeavyDown:
		score -= 15
		r.addRisk("放量下跌，抛压沉重")
	case VolumeShrinkUp:
		score -= 5
		r.addRisk("缩量上涨，上攻动能不足")
	}

	// MACD
	switch r.MACDStatus {
	case MACDGoldenCross:
		score += 10
		r.addReason("MACD 金叉，动能转强")
	case MACDBullish:
		score += 5
		r.addReason("MACD 多头运行")
	case MACDDeadCross:
		score -= 10
		r.addRisk("MACD 死叉，动能转弱")
	case MACDBearish:
		score -= 5
		r.addRisk("MACD 空头运行")
	}

	// RSI
	switch r.RSIStatus {
	case RSIOversold:
		score += 5
		r.addReason("RSI 超卖，存在反弹需求")
	case RSIOverbought:
		score -= 10
		r.addRisk("RSI 超买，注意回调风险")
	}

	r.SignalScore = clampScore(score)
	r.BuySignal = mapBuySignal(r.SignalScore)

	if chasing && r.BuySignal.IsBuyClass() {
		r.BuySignal = downgradeBuySignal(r.BuySignal)
	}
}

// mapBuySignal 评分到操作建议的映射
func mapBuySignal(score int) BuySignal {
	switch {
	case score >= 80:
		return SignalStrongBuy
	case score >= 60:
		return SignalBuy
	case score >= 40:
		return SignalHold
	case score >= 25:
		return SignalSell
	default:
		return SignalStrongSell
	}
}

// downgradeBuySignal 买入类信号降一级
func downgradeBuySignal(s BuySignal) BuySignal {
	switch s {
	case SignalStrongBuy:
		return SignalBuy
	case SignalBuy:
		return SignalHold
	default:
		return s
	}
}
