package analyzer

import (
	"strings"
	"testing"
)

func TestLookupProfile(t *testing.T) {
	gold, err := LookupProfile("gold")
	if err != nil {
		t.Fatalf("gold 配置查找失败: %v", err)
	}
	if gold.BiasThreshold != 3.0 || gold.VolumeHeavyRatio != 1.8 ||
		gold.VolumeShrinkRatio != 0.7 || gold.MASupportTolerance != 0.02 {
		t.Errorf("gold 阈值不符: %+v", gold)
	}
	if _, err := LookupProfile("crypto"); err == nil {
		t.Error("未知品种名称应返回错误")
	}
}

func TestApplyOverride(t *testing.T) {
	p := GoldProfile()
	bias := 2.5
	p.ApplyOverride(&ProfileOverride{BiasThreshold: &bias})
	if p.BiasThreshold != 2.5 {
		t.Errorf("乖离率阈值覆盖失败, 得到 %.1f", p.BiasThreshold)
	}
	if p.VolumeHeavyRatio != 1.8 {
		t.Errorf("未覆盖字段应保持默认值, 得到 %.1f", p.VolumeHeavyRatio)
	}
	p.ApplyOverride(nil)
	if p.BiasThreshold != 2.5 {
		t.Error("nil 覆盖不应改变配置")
	}
}

// TestHookInvariance 品种钩子只改描述文本和理由/风险，数值状态必须与无钩子时一致
func TestHookInvariance(t *testing.T) {
	bars := makeTrendBars(risingCloses(60, 2000, 2))
	for i := range bars {
		bars[i].Volume = 100000 + float64(i%5)*10000
	}

	withHooks := NewWithProfile(GoldProfile())
	noHooks := GoldProfile()
	noHooks.Hooks = nil
	withoutHooks := NewWithProfile(noHooks)

	r1 := withHooks.Analyze(bars, "Au9999")
	r2 := withoutHooks.Analyze(bars, "Au9999")

	if r1.TrendStatus != r2.TrendStatus {
		t.Errorf("趋势状态被钩子改变: %s vs %s", r1.TrendStatus, r2.TrendStatus)
	}
	if r1.VolumeStatus != r2.VolumeStatus {
		t.Errorf("量能状态被钩子改变: %s vs %s", r1.VolumeStatus, r2.VolumeStatus)
	}
	if r1.MACDStatus != r2.MACDStatus {
		t.Errorf("MACD 状态被钩子改变: %s vs %s", r1.MACDStatus, r2.MACDStatus)
	}
	if r1.RSIStatus != r2.RSIStatus {
		t.Errorf("RSI 状态被钩子改变: %s vs %s", r1.RSIStatus, r2.RSIStatus)
	}
	if r1.SignalScore != r2.SignalScore {
		t.Errorf("综合评分被钩子改变: %d vs %d", r1.SignalScore, r2.SignalScore)
	}
}

func TestGoldHooks_Commentary(t *testing.T) {
	bars := makeTrendBars(risingCloses(60, 2000, 2))
	a := NewWithProfile(GoldProfile())
	r := a.Analyze(bars, "Au9999")

	if !strings.Contains(r.MAAlignment, "黄金多头趋势可能更持久") {
		t.Errorf("多头趋势应追加黄金点评, 得到 %q", r.MAAlignment)
	}
	if !strings.Contains(r.VolumeTrend, "黄金") {
		t.Errorf("量能趋势应为黄金视角描述, 得到 %q", r.VolumeTrend)
	}
	if r.BuySignal.IsBuyClass() {
		found := false
		for _, reason := range r.SignalReasons {
			if strings.Contains(reason, "避险资产特性增强可靠性") {
				found = true
			}
		}
		if !found {
			t.Error("买入类信号应追加黄金特有理由")
		}
	}
}
