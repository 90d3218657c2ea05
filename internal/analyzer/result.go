package analyzer

// Bar 单根K线
type Bar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume float64 `json:"volume"`
}

// TrendStatus 趋势状态
type TrendStatus string

const (
	TrendStrongBull TrendStatus = "强势多头"
	TrendBull       TrendStatus = "多头"
	TrendNeutral    TrendStatus = "震荡"
	TrendBear       TrendStatus = "空头"
	TrendStrongBear TrendStatus = "强势空头"
)

// VolumeStatus 量能状态
type VolumeStatus string

const (
	VolumeHeavyUp    VolumeStatus = "放量上涨"
	VolumeHeavyDown  VolumeStatus = "放量下跌"
	VolumeShrinkUp   VolumeStatus = "缩量上涨"
	VolumeShrinkDown VolumeStatus = "缩量下跌"
	VolumeNormal     VolumeStatus = "量能正常"
)

// MACDStatus MACD状态
type MACDStatus string

const (
	MACDGoldenCross MACDStatus = "金叉"
	MACDBullish     MACDStatus = "多头运行"
	MACDDeadCross   MACDStatus = "死叉"
	MACDBearish     MACDStatus = "空头运行"
	MACDNeutral     MACDStatus = "中性"
)

// RSIStatus RSI状态
type RSIStatus string

const (
	RSIOversold   RSIStatus = "超卖"
	RSIOverbought RSIStatus = "超买"
	RSINeutral    RSIStatus = "中性"
)

// BuySignal 操作建议
type BuySignal string

const (
	SignalStrongBuy  BuySignal = "强烈买入"
	SignalBuy        BuySignal = "买入"
	SignalHold       BuySignal = "持有观望"
	SignalSell       BuySignal = "卖出"
	SignalStrongSell BuySignal = "强烈卖出"
)

// MacroFactor 单项宏观因素评估
type MacroFactor struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change,omitempty"`
	Impact string  `json:"impact"`
	Score  int     `json:"score"`
}

// MacroExtension 宏观融合扩展字段，仅在执行过宏观融合时填充
type MacroExtension struct {
	MacroScore      int                    `json:"macro_score"`
	MacroFactors    map[string]MacroFactor `json:"macro_factors"`
	MacroSummary    string                 `json:"macro_summary"`
	MacroTimestamp  string                 `json:"macro_timestamp"`
	TechnicalScore  int                    `json:"technical_score"`
	NewsScore       int                    `json:"macro_news_score"`
	DataScore       int                    `json:"macro_data_score"`
	TotalMacroScore int                    `json:"total_macro_score"`
}

// Result 趋势分析结果
//
// 由分析管线按固定顺序逐段填充（指标 → 分类 → 信号 → 品种钩子 → 可选宏观融合），
// 每次分析独占一个 Result，不跨分析复用。
type Result struct {
	Code         string  `json:"code"`
	CurrentPrice float64 `json:"current_price"`

	MA5      float64 `json:"ma5"`
	MA10     float64 `json:"ma10"`
	MA20     float64 `json:"ma20"`
	BiasMA5  float64 `json:"bias_ma5"`
	BiasMA10 float64 `json:"bias_ma10"`
	BiasMA20 float64 `json:"bias_ma20"`

	TrendStatus   TrendStatus `json:"trend_status"`
	TrendStrength int         `json:"trend_strength"`
	MAAlignment   string      `json:"ma_alignment"`

	VolumeStatus  VolumeStatus `json:"volume_status"`
	VolumeRatio5D float64      `json:"volume_ratio_5d"`
	VolumeTrend   string       `json:"volume_trend"`

	MACDDIF    float64    `json:"macd_dif"`
	MACDDEA    float64    `json:"macd_dea"`
	MACDBar    float64    `json:"macd_bar"`
	MACDStatus MACDStatus `json:"macd_status"`
	MACDSignal string     `json:"macd_signal"`

	RSI6      float64   `json:"rsi_6"`
	RSI12     float64   `json:"rsi_12"`
	RSI24     float64   `json:"rsi_24"`
	RSIStatus RSIStatus `json:"rsi_status"`
	RSISignal string    `json:"rsi_signal"`

	BuySignal     BuySignal `json:"buy_signal"`
	SignalScore   int       `json:"signal_score"`
	SignalReasons []string  `json:"signal_reasons"`
	RiskFactors   []string  `json:"risk_factors"`

	Macro *MacroExtension `json:"macro,omitempty"`
}

// NewResult 创建带中性默认值的分析结果，数据不足时各段保持默认
func NewResult(code string) *Result {
	return &Result{
		Code:          code,
		TrendStatus:   TrendNeutral,
		MAAlignment:   "数据不足，趋势未明",
		VolumeStatus:  VolumeNormal,
		VolumeRatio5D: 1.0,
		VolumeTrend:   "数据不足",
		MACDStatus:    MACDNeutral,
		MACDSignal:    "数据不足，MACD未计算",
		RSI6:          50,
		RSI12:         50,
		RSI24:         50,
		RSIStatus:     RSINeutral,
		RSISignal:     "数据不足，RSI未计算",
		BuySignal:     SignalHold,
		SignalScore:   50,
	}
}

// IsBuyClass 是否为买入类信号
func (s BuySignal) IsBuyClass() bool {
	return s == SignalStrongBuy || s == SignalBuy
}

// IsSellClass 是否为卖出类信号
func (s BuySignal) IsSellClass() bool {
	return s == SignalStrongSell || s == SignalSell
}

// appendUnique 追加字符串并去重，保证同一阶段不会写入重复的理由/风险
func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func (r *Result) addReason(s string) {
	r.SignalReasons = appendUnique(r.SignalReasons, s)
}

func (r *Result) addRisk(s string) {
	r.RiskFactors = appendUnique(r.RiskFactors, s)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
