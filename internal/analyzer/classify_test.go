package analyzer

import "testing"

// makeTrendBars 生成指定收盘价序列的K线，成交量恒定
func makeTrendBars(closes []float64) []Bar {
	bars := make([]Bar, len(closes))
	for i, c := range closes {
		bars[i] = Bar{Close: c, Open: c, High: c, Low: c, Volume: 100000}
	}
	return bars
}

func risingCloses(n int, start, step float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return closes
}

func TestClassifyTrend_StrongBull(t *testing.T) {
	bars := makeTrendBars(risingCloses(25, 100, 1))
	r := NewResult("TEST")
	computeIndicators(bars, r)
	classifyTrend(bars, r)
	if r.TrendStatus != TrendStrongBull {
		t.Errorf("持续多头排列且乖离充分时应为强势多头, 得到 %s", r.TrendStatus)
	}
	if r.TrendStrength < 60 {
		t.Errorf("多头排列趋势强度应不低于 60, 得到 %d", r.TrendStrength)
	}
}

func TestClassifyTrend_StrongBear(t *testing.T) {
	bars := makeTrendBars(risingCloses(25, 200, -1))
	r := NewResult("TEST")
	computeIndicators(bars, r)
	classifyTrend(bars, r)
	if r.TrendStatus != TrendStrongBear {
		t.Errorf("持续空头排列时应为强势空头, 得到 %s", r.TrendStatus)
	}
}

func TestClassifyTrend_Neutral(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100
	}
	bars := makeTrendBars(closes)
	r := NewResult("TEST")
	computeIndicators(bars, r)
	classifyTrend(bars, r)
	if r.TrendStatus != TrendNeutral {
		t.Errorf("横盘应为震荡, 得到 %s", r.TrendStatus)
	}
	if r.TrendStrength != 30 {
		t.Errorf("震荡趋势强度应为 30, 得到 %d", r.TrendStrength)
	}
}

func TestClassifyTrend_Insufficient(t *testing.T) {
	bars := makeTrendBars(risingCloses(10, 100, 1))
	r := NewResult("TEST")
	classifyTrend(bars, r)
	if r.TrendStatus != TrendNeutral || r.MAAlignment != "数据不足，趋势未明" {
		t.Errorf("不足 20 根K线时趋势应保持默认, 得到 %s / %s", r.TrendStatus, r.MAAlignment)
	}
}

func TestClassifyVolume_Regimes(t *testing.T) {
	gold := GoldProfile()
	tests := []struct {
		name      string
		ratio     float64
		prevClose float64
		close     float64
		want      VolumeStatus
	}{
		{"放量且上涨", 1.8, 100, 101, VolumeHeavyUp},
		{"放量且下跌", 2.5, 100, 99, VolumeHeavyDown},
		{"放量且平盘", 1.9, 100, 100, VolumeHeavyDown},
		{"缩量且上涨", 0.7, 100, 101, VolumeShrinkUp},
		{"缩量且下跌", 0.5, 100, 99, VolumeShrinkDown},
		{"缩量且平盘", 0.6, 100, 100, VolumeShrinkDown},
		{"量能正常上涨", 1.0, 100, 101, VolumeNormal},
		{"量能正常下跌", 1.2, 100, 99, VolumeNormal},
		{"阈值边界内", 1.79, 100, 101, VolumeNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars := []Bar{{Close: tt.prevClose}, {Close: tt.close}}
			r := NewResult("TEST")
			r.VolumeRatio5D = tt.ratio
			classifyVolume(bars, r, gold)
			if r.VolumeStatus != tt.want {
				t.Errorf("量比 %.2f 收盘 %.0f→%.0f: 期望 %s, 得到 %s",
					tt.ratio, tt.prevClose, tt.close, tt.want, r.VolumeStatus)
			}
		})
	}
}

func TestClassifyMACD_BullishRun(t *testing.T) {
	bars := makeTrendBars(risingCloses(40, 100, 1))
	r := NewResult("TEST")
	computeIndicators(bars, r)
	classifyMACD(bars, r)
	if r.MACDStatus != MACDBullish && r.MACDStatus != MACDGoldenCross {
		t.Errorf("持续上涨应为多头运行或金叉, 得到 %s", r.MACDStatus)
	}
}

func TestClassifyMACD_BearishRun(t *testing.T) {
	bars := makeTrendBars(risingCloses(40, 200, -1))
	r := NewResult("TEST")
	computeIndicators(bars, r)
	classifyMACD(bars, r)
	if r.MACDStatus != MACDBearish && r.MACDStatus != MACDDeadCross {
		t.Errorf("持续下跌应为空头运行或死叉, 得到 %s", r.MACDStatus)
	}
}

func TestClassifyMACD_Insufficient(t *testing.T) {
	bars := makeTrendBars(risingCloses(30, 100, 1))
	r := NewResult("TEST")
	classifyMACD(bars, r)
	if r.MACDStatus != MACDNeutral {
		t.Errorf("不足 36 根K线时 MACD 应保持中性, 得到 %s", r.MACDStatus)
	}
}

func TestClassifyRSI_OversoldPrecedence(t *testing.T) {
	bars := makeTrendBars(risingCloses(10, 100, 1))
	r := NewResult("TEST")
	r.RSI6 = 25
	r.RSI12 = 75
	r.RSI24 = 50
	classifyRSI(bars, r)
	if r.RSIStatus != RSIOversold {
		t.Errorf("超卖优先于超买, 得到 %s", r.RSIStatus)
	}
}

func TestClassifyRSI_Overbought(t *testing.T) {
	bars := makeTrendBars(risingCloses(10, 100, 1))
	r := NewResult("TEST")
	r.RSI6 = 85
	r.RSI12 = 72
	r.RSI24 = 60
	classifyRSI(bars, r)
	if r.RSIStatus != RSIOverbought {
		t.Errorf("RSI 超过 70 应为超买, 得到 %s", r.RSIStatus)
	}
}

func TestClassifyRSI_Neutral(t *testing.T) {
	bars := makeTrendBars(risingCloses(10, 100, 1))
	r := NewResult("TEST")
	r.RSI6 = 55
	r.RSI12 = 50
	r.RSI24 = 45
	classifyRSI(bars, r)
	if r.RSIStatus != RSINeutral {
		t.Errorf("RSI 处于 30-70 区间应为中性, 得到 %s", r.RSIStatus)
	}
}
