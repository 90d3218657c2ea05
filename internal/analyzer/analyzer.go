package analyzer

// Analyzer 趋势分析器，按固定顺序执行分析管线并在每个阶段后触发品种钩子
type Analyzer struct {
	profile *Profile
}

// New 按品种名称创建分析器
func New(profileName string) (*Analyzer, error) {
	p, err := LookupProfile(profileName)
	if err != nil {
		return nil, err
	}
	return &Analyzer{profile: p}, nil
}

// NewWithProfile 用现成配置创建分析器（用于已应用阈值覆盖的配置）
func NewWithProfile(p *Profile) *Analyzer {
	return &Analyzer{profile: p}
}

// Profile 返回当前品种配置
func (a *Analyzer) Profile() *Profile {
	return a.profile
}

// Analyze 对K线序列执行完整分析
//
// 顺序：指标计算 → 趋势 → 量能 → MACD → RSI → 信号，每个阶段后运行该阶段钩子。
// 输入K线不会被修改，数据不足的阶段保留中性默认值。
func (a *Analyzer) Analyze(bars []Bar, code string) *Result {
	r := NewResult(code)
	if len(bars) == 0 {
		return r
	}

	computeIndicators(bars, r)

	classifyTrend(bars, r)
	a.runHooks(StageTrend, r)

	classifyVolume(bars, r, a.profile)
	a.runHooks(StageVolume, r)

	classifyMACD(bars, r)
	a.runHooks(StageMACD, r)

	classifyRSI(bars, r)
	a.runHooks(StageRSI, r)

	generateSignal(r, a.profile)
	a.runHooks(StageSignal, r)

	return r
}

func (a *Analyzer) runHooks(stage Stage, r *Result) {
	for _, h := range a.profile.Hooks {
		if h.Stage == stage && h.Apply != nil {
			h.Apply(r)
		}
	}
}
