package macro

import (
	"fmt"
	"strings"
	"testing"
)

func TestScoreFXChange(t *testing.T) {
	tests := []struct {
		change     float64
		wantScore  int
		wantImpact string
	}{
		{0.6, 30, "bearish"},
		{-0.6, 70, "bullish"},
		{0.1, 50, "neutral"},
		{0.5, 50, "neutral"},
		{-0.5, 50, "neutral"},
	}
	for _, tt := range tests {
		score, impact := scoreFXChange(tt.change)
		if score != tt.wantScore || impact != tt.wantImpact {
			t.Errorf("美元指数变化 %+.1f%%: 期望 %d/%s, 得到 %d/%s",
				tt.change, tt.wantScore, tt.wantImpact, score, impact)
		}
	}
}

func TestScoreRealRate(t *testing.T) {
	tests := []struct {
		rate      float64
		wantScore int
	}{
		{2.5, 20},
		{1.5, 35},
		{0.5, 50},
		{0, 75},
		{-0.5, 75},
	}
	for _, tt := range tests {
		if score, _ := scoreRealRate(tt.rate); score != tt.wantScore {
			t.Errorf("实际利率 %.1f: 期望 %d, 得到 %d", tt.rate, tt.wantScore, score)
		}
	}
}

func TestScoreInflation(t *testing.T) {
	tests := []struct {
		inflation float64
		wantScore int
	}{
		{4.5, 80},
		{3.5, 70},
		{2.5, 50},
		{1.5, 30},
	}
	for _, tt := range tests {
		if score, _ := scoreInflation(tt.inflation); score != tt.wantScore {
			t.Errorf("通胀率 %.1f: 期望 %d, 得到 %d", tt.inflation, tt.wantScore, score)
		}
	}
}

func TestScoreCentralBank(t *testing.T) {
	tests := []struct {
		tonnes    float64
		wantScore int
	}{
		{350, 85},
		{228, 75},
		{100, 60},
		{30, 50},
	}
	for _, tt := range tests {
		if score, _ := scoreCentralBank(tt.tonnes); score != tt.wantScore {
			t.Errorf("央行购金 %.0f吨: 期望 %d, 得到 %d", tt.tonnes, tt.wantScore, score)
		}
	}
}

func TestScoreGeopolitical(t *testing.T) {
	tests := []struct {
		risk      float64
		wantScore int
	}{
		{75, 80},
		{65, 65},
		{40, 50},
		{20, 30},
	}
	for _, tt := range tests {
		if score, _ := scoreGeopolitical(tt.risk); score != tt.wantScore {
			t.Errorf("地缘风险 %.0f: 期望 %d, 得到 %d", tt.risk, tt.wantScore, score)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	allBullish := map[string]Factor{
		"inflation":    {Impact: "bullish"},
		"central_bank": {Impact: "strongly_bullish"},
		"geopolitical": {Impact: "slightly_bullish"},
	}
	if s := buildSummary(allBullish); s != "宏观环境整体利好黄金（3项利好因素）" {
		t.Errorf("全利好总结错误: %s", s)
	}

	allBearish := map[string]Factor{
		"dxy":       {Impact: "bearish"},
		"real_rate": {Impact: "strongly_bearish"},
	}
	if s := buildSummary(allBearish); s != "宏观环境整体利空黄金（2项利空因素）" {
		t.Errorf("全利空总结错误: %s", s)
	}

	mixed := map[string]Factor{
		"inflation":    {Impact: "bullish"},
		"central_bank": {Impact: "bullish"},
		"dxy":          {Impact: "bearish"},
	}
	if s := buildSummary(mixed); s != "宏观环境偏利好黄金（2项利好 vs 1项利空）" {
		t.Errorf("偏利好总结错误: %s", s)
	}

	balanced := map[string]Factor{
		"inflation": {Impact: "bullish"},
		"dxy":       {Impact: "bearish"},
	}
	if s := buildSummary(balanced); s != "宏观环境中性，关注技术面信号" {
		t.Errorf("均衡总结错误: %s", s)
	}

	if s := buildSummary(nil); s != "暂无宏观数据，保持中性看法" {
		t.Errorf("空因素总结错误: %s", s)
	}
}

// fakeSource 可控的宏观数据源
type fakeSource struct {
	fxPoints  []FXPoint
	fxErr     error
	realRate  float64
	rateErr   error
	inflation float64
	inflErr   error
	cb        *CentralBankPurchases
	cbErr     error
	geo       float64
	geoErr    error
}

func (f *fakeSource) GetFXIndex(days int) ([]FXPoint, error) { return f.fxPoints, f.fxErr }
func (f *fakeSource) GetRealRate() (float64, error)          { return f.realRate, f.rateErr }
func (f *fakeSource) GetInflationRate() (float64, error)     { return f.inflation, f.inflErr }
func (f *fakeSource) GetCentralBankPurchases() (*CentralBankPurchases, error) {
	return f.cb, f.cbErr
}
func (f *fakeSource) GetGeopoliticalRiskIndex() (float64, error) { return f.geo, f.geoErr }

func TestGetMacroScore_AllFactors(t *testing.T) {
	src := &fakeSource{
		fxPoints:  []FXPoint{{Date: "2025-08-20", Close: 104.0}, {Date: "2025-08-21", Close: 103.3}},
		realRate:  1.5,
		inflation: 3.5,
		cb:        &CentralBankPurchases{TotalPurchases: 228},
		geo:       65,
	}
	report := NewAnalyzer(src).GetMacroScore()

	if len(report.Factors) != 5 {
		t.Fatalf("期望 5 项因素, 得到 %d", len(report.Factors))
	}
	// dxy 变化 (103.3-104)/104*100 ≈ -0.67% → 利好 70 分
	if report.Factors["dxy"].Score != 70 {
		t.Errorf("dxy 评分应为 70, 得到 %d", report.Factors["dxy"].Score)
	}
	// (70+35+70+75+65)/5 = 63
	if report.TotalScore != 63 {
		t.Errorf("总分应为 63, 得到 %d", report.TotalScore)
	}
	if report.Timestamp == "" {
		t.Error("报告应带时间戳")
	}
}

func TestGetMacroScore_AllFailed(t *testing.T) {
	err := fmt.Errorf("网络错误")
	src := &fakeSource{fxErr: err, rateErr: err, inflErr: err, cbErr: err, geoErr: err}
	report := NewAnalyzer(src).GetMacroScore()

	if report.TotalScore != 50 {
		t.Errorf("无任何因素时总分应为中性 50, 得到 %d", report.TotalScore)
	}
	if len(report.Factors) != 0 {
		t.Errorf("失败的因素不应出现在报告中, 得到 %d 项", len(report.Factors))
	}
	if !strings.Contains(report.Summary, "暂无宏观数据") {
		t.Errorf("空报告总结错误: %s", report.Summary)
	}
}

func TestGetMacroScore_PartialFactors(t *testing.T) {
	src := &fakeSource{
		fxErr:     fmt.Errorf("网络错误"),
		rateErr:   fmt.Errorf("网络错误"),
		inflation: 4.5,
		cb:        &CentralBankPurchases{TotalPurchases: 350},
		geoErr:    fmt.Errorf("网络错误"),
	}
	report := NewAnalyzer(src).GetMacroScore()

	if len(report.Factors) != 2 {
		t.Fatalf("期望 2 项因素, 得到 %d", len(report.Factors))
	}
	// (80+85)/2 = 82.5 → 83
	if report.TotalScore != 83 {
		t.Errorf("部分因素总分应为 83, 得到 %d", report.TotalScore)
	}
}
