package analyzer

import "fmt"

// classifyTrend 判断趋势状态和趋势强度
//
// 多头排列 MA5 > MA10 > MA20，强弱由均线间距和排列持续性区分；
// 空头为镜像条件；不足 20 根K线时保持默认震荡状态。
func classifyTrend(bars []Bar, r *Result) {
	if len(bars) < 20 {
		return
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	ma5 := calculateMA(closes, 5)
	ma10 := calculateMA(closes, 10)
	ma20 := calculateMA(closes, 20)

	cur5, cur10, cur20 := ma5[len(ma5)-1], ma10[len(ma10)-1], ma20[len(ma20)-1]
	bullish := cur5 > cur10 && cur10 > cur20
	bearish := cur5 < cur10 && cur10 < cur20

	// 上一交易日是否保持同向排列，用于判断排列持续性
	persistent := false
	if len(ma20) >= 2 {
		prev5, prev10, prev20 := ma5[len(ma5)-2], ma10[len(ma10)-2], ma20[len(ma20)-2]
		if bullish {
			persistent = prev5 > prev10 && prev10 > prev20
		} else if bearish {
			persistent = prev5 < prev10 && prev10 < prev20
		}
	}

	separation := (cur5 - cur20) / cur20 * 100

	switch {
	case bullish:
		r.TrendStatus = TrendBull
		r.MAAlignment = "MA5 > MA10 > MA20 多头排列"
		if persistent && (separation >= 2.0 || r.BiasMA20 >= 5.0) {
			r.TrendStatus = TrendStrongBull
		}
		strength := 60 + int(minFloat(25, separation*10))
		if persistent {
			strength += 15
		}
		r.TrendStrength = clampScore(strength)
	case bearish:
		r.TrendStatus = TrendBear
		r.MAAlignment = "MA5 < MA10 < MA20 空头排列"
		if persistent && (separation <= -2.0 || r.BiasMA20 <= -5.0) {
			r.TrendStatus = TrendStrongBear
		}
		strength := 60 + int(minFloat(25, -separation*10))
		if persistent {
			strength += 15
		}
		r.TrendStrength = clampScore(strength)
	default:
		r.TrendStatus = TrendNeutral
		r.MAAlignment = "均线交织，方向不明"
		r.TrendStrength = 30
	}
}

// classifyVolume 根据量比和涨跌方向划分量能形态，阈值由品种配置提供
func classifyVolume(bars []Bar, r *Result, p *Profile) {
	if len(bars) < 2 {
		return
	}
	prevClose := bars[len(bars)-2].Close
	if prevClose <= 0 {
		return
	}
	priceChange := (bars[len(bars)-1].Close - prevClose) / prevClose * 100

	ratio := r.VolumeRatio5D
	switch {
	case ratio >= p.VolumeHeavyRatio && priceChange > 0:
		r.VolumeStatus = VolumeHeavyUp
		r.VolumeTrend = "放量上涨，买盘积极"
	case ratio >= p.VolumeHeavyRatio:
		r.VolumeStatus = VolumeHeavyDown
		r.VolumeTrend = "放量下跌，抛压沉重"
	case ratio <= p.VolumeShrinkRatio && priceChange > 0:
		r.VolumeStatus = VolumeShrinkUp
		r.VolumeTrend = "缩量上涨，上攻动能不足"
	case ratio <= p.VolumeShrinkRatio:
		r.VolumeStatus = VolumeShrinkDown
		r.VolumeTrend = "缩量回调，抛压减轻"
	default:
		r.VolumeStatus = VolumeNormal
		r.VolumeTrend = "量能正常"
	}
}

// classifyMACD 判断 MACD 金叉/死叉及多空运行状态
func classifyMACD(bars []Bar, r *Result) {
	// DIF 需要 26 根起算，DEA 再需要 9 个 DIF 点，判断交叉还要前一个点
	if len(bars) < 36 {
		return
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	difs, deas, _ := macdSeries(closes)
	if len(deas) < 2 {
		return
	}
	offset := len(difs) - len(deas)
	curDiff := difs[len(difs)-1] - deas[len(deas)-1]
	prevDiff := difs[offset+len(deas)-2] - deas[len(deas)-2]

	switch {
	case prevDiff <= 0 && curDiff > 0:
		r.MACDStatus = MACDGoldenCross
		r.MACDSignal = "MACD 金叉，短期动能转强"
	case prevDiff >= 0 && curDiff < 0:
		r.MACDStatus = MACDDeadCross
		r.MACDSignal = "MACD 死叉，短期动能转弱"
	case curDiff > 0:
		r.MACDStatus = MACDBullish
		r.MACDSignal = "DIF 位于 DEA 上方，多头趋势延续"
	case curDiff < 0:
		r.MACDStatus = MACDBearish
		r.MACDSignal = "DIF 位于 DEA 下方，空头趋势延续"
	default:
		r.MACDStatus = MACDNeutral
		r.MACDSignal = "MACD 中性，等待方向选择"
	}
}

// classifyRSI 按 6/12/24 三个周期判断超买超卖，超卖优先于超买
func classifyRSI(bars []Bar, r *Result) {
	if len(bars) < 7 {
		return
	}
	windows := []struct {
		period int
		value  float64
	}{
		{6, r.RSI6},
		{12, r.RSI12},
		{24, r.RSI24},
	}

	var oversold, overbought []int
	for _, w := range windows {
		if w.value < 30 {
			oversold = append(oversold, w.period)
		} else if w.value > 70 {
			overbought = append(overbought, w.period)
		}
	}

	switch {
	case len(oversold) > 0:
		r.RSIStatus = RSIOversold
		r.RSISignal = fmt.Sprintf("RSI%v 进入超卖区，存在反弹需求", oversold)
	case len(overbought) > 0:
		r.RSIStatus = RSIOverbought
		r.RSISignal = fmt.Sprintf("RSI%v 进入超买区，注意回调风险", overbought)
	default:
		r.RSIStatus = RSINeutral
		r.RSISignal = "RSI 处于中性区间"
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
