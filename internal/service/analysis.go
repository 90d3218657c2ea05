package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gold-insight-backend/internal/analyzer"
	"gold-insight-backend/internal/config"
	"gold-insight-backend/internal/fusion"
	"gold-insight-backend/internal/golddata"
	"gold-insight-backend/internal/langchain"
	"gold-insight-backend/internal/macro"
	"gold-insight-backend/internal/model"
	"gold-insight-backend/internal/news"
	"gold-insight-backend/internal/report"
)

var (
	cfg           *config.Config
	macroAnalyzer *macro.Analyzer
	searcher      news.Searcher
	store         *report.Store
	overrides     map[string]*analyzer.ProfileOverride
)

// Setup 初始化服务层的协作方
func Setup(c *config.Config) error {
	cfg = c

	macroAnalyzer = macro.NewAnalyzer(macro.NewProvider())
	searcher = news.NewEastmoneySearcher()

	var err error
	overrides, err = config.LoadProfileOverrides(c.ProfileFile)
	if err != nil {
		return err
	}
	if len(overrides) > 0 {
		log.Printf("已加载 %d 个品种的阈值覆盖", len(overrides))
	}

	store, err = report.OpenStore(c.DBPath)
	if err != nil {
		return err
	}
	return nil
}

// Shutdown 释放服务层资源
func Shutdown() {
	if store != nil {
		store.Close()
	}
}

// buildAnalyzer 按品种配置和覆盖项创建分析器
func buildAnalyzer(profileName string) (*analyzer.Analyzer, error) {
	prof, err := analyzer.LookupProfile(profileName)
	if err != nil {
		return nil, err
	}
	if overrides != nil {
		prof.ApplyOverride(overrides[profileName])
	}
	return analyzer.NewWithProfile(prof), nil
}

// AnalyzeGold 执行一次完整的黄金分析
//
// 取K线 → 技术分析 → 可选宏观融合 → 格式化 → 可选 AI 叙述 → 可选报告落盘。
// 宏观/新闻/LLM 失败均降级，只有K线获取失败和未知品种配置是硬错误。
func AnalyzeGold(req *model.AnalyzeRequest) (*model.GoldAnalysis, error) {
	code := req.Code
	if code == "" {
		code = cfg.DefaultCode
	}
	period := req.Period
	if period == "" {
		period = "daily"
	}
	profileName := req.Profile
	if profileName == "" {
		profileName = "gold"
	}

	kline, err := golddata.GetGoldKlineWithRefresh(code, period, req.ForceRefresh)
	if err != nil {
		return nil, err
	}

	a, err := buildAnalyzer(profileName)
	if err != nil {
		return nil, err
	}

	result := a.Analyze(kline.Bars(), code)

	var macroNews map[string]news.SearchResponse
	var macroReport *macro.ScoreReport
	if req.WithMacro {
		engine := fusion.NewEngine(macroAnalyzer, searcher, cfg.NewsMaxResults)
		macroNews, macroReport = engine.Apply(result)
	}

	analysis := &model.GoldAnalysis{
		Result: result,
		Text:   a.FormatAnalysis(result),
	}

	if req.WithNarrative {
		analysis.Narrative = langchain.AnalyzeGoldMacro(result, macroReport, macroNews)
	}

	if req.SaveReport {
		path, err := saveReport(result, analysis)
		if err != nil {
			log.Printf("保存报告失败: %v", err)
		} else {
			analysis.ReportPath = path
		}
	}

	return analysis, nil
}

// saveReport 落盘报告文件并写入历史记录
func saveReport(result *analyzer.Result, analysis *model.GoldAnalysis) (string, error) {
	now := time.Now()
	rep := &report.Report{
		Date:      now,
		Code:      result.Code,
		Analysis:  analysis.Text,
		Narrative: analysis.Narrative,
	}
	path, err := rep.Write(cfg.ReportDir)
	if err != nil {
		return "", err
	}

	rec := &report.Record{
		Date:        now.Format("2006-01-02"),
		Code:        result.Code,
		BuySignal:   string(result.BuySignal),
		SignalScore: result.SignalScore,
		MacroScore:  0,
		ReportPath:  path,
	}
	rec.TechnicalScore = result.SignalScore
	if result.Macro != nil {
		rec.TechnicalScore = result.Macro.TechnicalScore
		rec.MacroScore = result.Macro.MacroScore
	}
	if err := store.Save(rec); err != nil {
		return path, err
	}
	return path, nil
}

// GetMacroScore 独立获取宏观评分报告
func GetMacroScore() *macro.ScoreReport {
	return macroAnalyzer.GetMacroScore()
}

// LatestReport 查询最新报告记录
func LatestReport(code string) (*report.Record, error) {
	return store.Latest(code)
}

// ReportHistory 查询报告历史记录
func ReportHistory(code string, limit int) ([]report.Record, error) {
	return store.History(code, limit)
}

// RunDailyReports 对配置的全部品种执行收盘后分析并落盘
//
// 单个品种失败不影响其余品种，返回生成的报告路径列表
func RunDailyReports() ([]string, error) {
	codes := strings.Split(cfg.ReportCodes, ",")
	var paths []string
	var failed []string

	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		analysis, err := AnalyzeGold(&model.AnalyzeRequest{
			Code:          code,
			WithMacro:     true,
			WithNarrative: true,
			SaveReport:    true,
			ForceRefresh:  true,
		})
		if err != nil {
			log.Printf("生成 %s 日报失败: %v", code, err)
			failed = append(failed, code)
			continue
		}
		log.Printf("生成 %s 日报完成: %s (评分 %d, 建议 %s)",
			code, analysis.ReportPath, analysis.Result.SignalScore, analysis.Result.BuySignal)
		if analysis.ReportPath != "" {
			paths = append(paths, analysis.ReportPath)
		}
	}

	if len(failed) > 0 {
		return paths, fmt.Errorf("部分品种日报生成失败: %s", strings.Join(failed, ","))
	}
	return paths, nil
}
