package analyzer

import "fmt"

// Stage 分析管线阶段，钩子按阶段挂载
type Stage int

const (
	StageTrend Stage = iota
	StageVolume
	StageMACD
	StageRSI
	StageSignal
)

// Hook 阶段后置钩子：基础分类先算，钩子只追加或改写描述文本与理由/风险，
// 不改动数值型状态（TrendStatus/VolumeStatus/MACDStatus/RSIStatus）
type Hook struct {
	Stage Stage
	Apply func(r *Result)
}

// Profile 品种配置：阈值 + 市场提示 + 后置钩子
type Profile struct {
	Name               string
	ReportTitle        string
	BiasThreshold      float64 // 乖离率阈值（%）
	VolumeHeavyRatio   float64 // 放量判断阈值（当日量/5日均量）
	VolumeShrinkRatio  float64 // 缩量判断阈值
	MASupportTolerance float64 // MA 支撑判断容忍度
	MarketNotes        []string
	Hooks              []Hook
}

// StockProfile 股票基础配置
func StockProfile() *Profile {
	return &Profile{
		Name:               "stock",
		ReportTitle:        "趋势分析",
		BiasThreshold:      5.0,
		VolumeHeavyRatio:   2.0,
		VolumeShrinkRatio:  0.7,
		MASupportTolerance: 0.015,
	}
}

// GoldProfile 黄金配置
//
// 黄金波动相对较小，乖离率阈值设为 3%，放量阈值设为 1.8，
// 并追加避险资产视角的趋势/量能/信号点评。
func GoldProfile() *Profile {
	return &Profile{
		Name:               "gold",
		ReportTitle:        "黄金趋势分析",
		BiasThreshold:      3.0,
		VolumeHeavyRatio:   1.8,
		VolumeShrinkRatio:  0.7,
		MASupportTolerance: 0.02,
		MarketNotes: []string{
			"黄金作为避险资产，在市场不确定性增加时往往表现强势",
			"黄金价格受全球宏观经济、地缘政治等因素影响较大",
			"黄金趋势一旦形成，往往持续时间较长",
		},
		Hooks: []Hook{
			{Stage: StageTrend, Apply: goldTrendCommentary},
			{Stage: StageVolume, Apply: goldVolumeTrend},
			{Stage: StageSignal, Apply: goldSignalNotes},
		},
	}
}

// goldTrendCommentary 追加黄金趋势点评
func goldTrendCommentary(r *Result) {
	switch r.TrendStatus {
	case TrendStrongBull, TrendBull:
		r.MAAlignment += "（黄金多头趋势可能更持久）"
	case TrendStrongBear, TrendBear:
		r.MAAlignment += "（黄金空头趋势可能相对短暂，关注反弹）"
	}
}

// goldVolumeTrend 用黄金视角改写量能趋势描述，量能形态本身沿用基础判断
func goldVolumeTrend(r *Result) {
	switch r.VolumeStatus {
	case VolumeHeavyUp:
		r.VolumeTrend = "放量上涨，多头力量强劲（黄金）"
	case VolumeHeavyDown:
		r.VolumeTrend = "放量下跌，注意风险（黄金）"
	case VolumeShrinkUp:
		r.VolumeTrend = "缩量上涨，上攻动能不足（黄金）"
	case VolumeShrinkDown:
		r.VolumeTrend = "缩量回调，洗盘特征明显（黄金，好）"
	case VolumeNormal:
		r.VolumeTrend = "量能正常（黄金）"
	}
}

// goldSignalNotes 按信号方向追加黄金特有的理由或风险提示
func goldSignalNotes(r *Result) {
	if r.BuySignal.IsBuyClass() {
		r.addReason("✅ 黄金买入信号，避险资产特性增强可靠性")
	} else if r.BuySignal.IsSellClass() {
		r.addRisk("⚠️ 黄金卖出信号，需考虑避险需求对价格的支撑")
	}
}

// LookupProfile 按名称查找内置品种配置，未知名称为硬错误
func LookupProfile(name string) (*Profile, error) {
	switch name {
	case "stock":
		return StockProfile(), nil
	case "gold":
		return GoldProfile(), nil
	default:
		return nil, fmt.Errorf("不支持的品种配置: %s", name)
	}
}

// ProfileOverride 品种阈值覆盖项，来自 YAML 配置文件
type ProfileOverride struct {
	BiasThreshold      *float64 `yaml:"bias_threshold"`
	VolumeHeavyRatio   *float64 `yaml:"volume_heavy_ratio"`
	VolumeShrinkRatio  *float64 `yaml:"volume_shrink_ratio"`
	MASupportTolerance *float64 `yaml:"ma_support_tolerance"`
}

// ApplyOverride 应用阈值覆盖，未设置的字段保持内置默认值
func (p *Profile) ApplyOverride(o *ProfileOverride) {
	if o == nil {
		return
	}
	if o.BiasThreshold != nil {
		p.BiasThreshold = *o.BiasThreshold
	}
	if o.VolumeHeavyRatio != nil {
		p.VolumeHeavyRatio = *o.VolumeHeavyRatio
	}
	if o.VolumeShrinkRatio != nil {
		p.VolumeShrinkRatio = *o.VolumeShrinkRatio
	}
	if o.MASupportTolerance != nil {
		p.MASupportTolerance = *o.MASupportTolerance
	}
}
