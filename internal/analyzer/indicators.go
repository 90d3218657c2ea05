package analyzer

// 指标计算均为纯函数，不修改输入K线，数据不足时保留默认值

// calculateMA 计算简单移动平均线
func calculateMA(values []float64, period int) []float64 {
	if len(values) < period {
		return nil
	}
	result := make([]float64, 0, len(values)-period+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			result = append(result, sum/float64(period))
		}
	}
	return result
}

// calculateEMA 计算指数移动平均线，首值用前 period 日均值起算
func calculateEMA(values []float64, period int) []float64 {
	if len(values) < period {
		return nil
	}
	result := make([]float64, 0, len(values)-period+1)
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	prev := sum / float64(period)
	result = append(result, prev)
	k := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		prev = values[i]*k + prev*(1-k)
		result = append(result, prev)
	}
	return result
}

// macdSeries 计算 MACD 指标序列
// DIF = EMA12 - EMA26，DEA = DIF 的 9 日 EMA，MACD 柱 = 2 * (DIF - DEA)
func macdSeries(closes []float64) (difs, deas, bars []float64) {
	ema12 := calculateEMA(closes, 12)
	ema26 := calculateEMA(closes, 26)
	if ema26 == nil {
		return nil, nil, nil
	}
	// EMA12 比 EMA26 多出前 14 个点，对齐到 EMA26 的起点
	offset := len(ema12) - len(ema26)
	difs = make([]float64, len(ema26))
	for i := range ema26 {
		difs[i] = ema12[i+offset] - ema26[i]
	}
	deas = calculateEMA(difs, 9)
	if deas == nil {
		return difs, nil, nil
	}
	difOffset := len(difs) - len(deas)
	bars = make([]float64, len(deas))
	for i := range deas {
		bars[i] = 2 * (difs[i+difOffset] - deas[i])
	}
	return difs, deas, bars
}

// calculateRSI 计算 RSI，平均跌幅为零时返回 100，数据不足返回中性 50
func calculateRSI(closes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 50
	}
	var gain, loss float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// calculateVolumeRatio 计算量比：当日成交量 / 前5日均量，不含当日
func calculateVolumeRatio(bars []Bar) float64 {
	if len(bars) < 6 {
		return 1.0
	}
	sum := 0.0
	for i := len(bars) - 6; i < len(bars)-1; i++ {
		sum += bars[i].Volume
	}
	avg := sum / 5
	if avg <= 0 {
		return 1.0
	}
	return bars[len(bars)-1].Volume / avg
}

// computeIndicators 计算均线、乖离率、MACD、RSI 和量比，填入结果
func computeIndicators(bars []Bar, r *Result) {
	if len(bars) == 0 {
		return
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	r.CurrentPrice = closes[len(closes)-1]

	if ma5 := calculateMA(closes, 5); ma5 != nil {
		r.MA5 = ma5[len(ma5)-1]
		r.BiasMA5 = (r.CurrentPrice - r.MA5) / r.MA5 * 100
	}
	if ma10 := calculateMA(closes, 10); ma10 != nil {
		r.MA10 = ma10[len(ma10)-1]
		r.BiasMA10 = (r.CurrentPrice - r.MA10) / r.MA10 * 100
	}
	if ma20 := calculateMA(closes, 20); ma20 != nil {
		r.MA20 = ma20[len(ma20)-1]
		r.BiasMA20 = (r.CurrentPrice - r.MA20) / r.MA20 * 100
	}

	difs, deas, macdBars := macdSeries(closes)
	if len(difs) > 0 {
		r.MACDDIF = difs[len(difs)-1]
	}
	if len(deas) > 0 {
		r.MACDDEA = deas[len(deas)-1]
	}
	if len(macdBars) > 0 {
		r.MACDBar = macdBars[len(macdBars)-1]
	}

	r.RSI6 = calculateRSI(closes, 6)
	r.RSI12 = calculateRSI(closes, 12)
	r.RSI24 = calculateRSI(closes, 24)

	r.VolumeRatio5D = calculateVolumeRatio(bars)
}
