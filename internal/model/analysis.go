package model

import "gold-insight-backend/internal/analyzer"

// AnalyzeRequest 黄金分析请求
type AnalyzeRequest struct {
	Code          string `json:"code"`           // 品种代码，默认 Au9999
	Period        string `json:"period"`         // 周期 daily/weekly/monthly
	Profile       string `json:"profile"`        // 品种配置名，默认 gold
	WithMacro     bool   `json:"with_macro"`     // 是否执行宏观融合
	WithNarrative bool   `json:"with_narrative"` // 是否生成 AI 叙述
	SaveReport    bool   `json:"save_report"`    // 是否落盘报告
	ForceRefresh  bool   `json:"force_refresh"`  // 是否绕过K线缓存
}

// GoldAnalysis 黄金分析响应
type GoldAnalysis struct {
	Result     *analyzer.Result `json:"result"`
	Text       string           `json:"text"`
	Narrative  string           `json:"narrative,omitempty"`
	ReportPath string           `json:"report_path,omitempty"`
}
