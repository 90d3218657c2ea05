package fusion

import (
	"testing"

	"gold-insight-backend/internal/analyzer"
	"gold-insight-backend/internal/news"
)

func TestFuseScores(t *testing.T) {
	tests := []struct {
		technical, news, data int
		wantMacro, wantFinal  int
	}{
		{80, 60, 75, 71, 76}, // round(60*0.3+75*0.7)=71, round(80*0.6+71*0.4)=76
		{50, 50, 50, 50, 50},
		{100, 100, 100, 100, 100},
		{0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		gotMacro, gotFinal := FuseScores(tt.technical, tt.news, tt.data)
		if gotMacro != tt.wantMacro || gotFinal != tt.wantFinal {
			t.Errorf("FuseScores(%d,%d,%d): 期望 (%d,%d), 得到 (%d,%d)",
				tt.technical, tt.news, tt.data, tt.wantMacro, tt.wantFinal, gotMacro, gotFinal)
		}
	}
}

func TestFuseScores_Clamped(t *testing.T) {
	for tech := 0; tech <= 100; tech += 25 {
		for n := 0; n <= 100; n += 25 {
			for d := 0; d <= 100; d += 25 {
				macroScore, final := FuseScores(tech, n, d)
				if macroScore < 0 || macroScore > 100 || final < 0 || final > 100 {
					t.Fatalf("FuseScores(%d,%d,%d) 越界: (%d,%d)", tech, n, d, macroScore, final)
				}
			}
		}
	}
}

// stubSearcher 固定返回的新闻搜索器
type stubSearcher struct {
	responses map[string]news.SearchResponse
}

func (s *stubSearcher) SearchMacroNews(maxResults int) map[string]news.SearchResponse {
	return s.responses
}

func TestApply_NilCollaborators(t *testing.T) {
	// 两个协作方都缺失时，宏观和新闻项均为中性 50，评分仍要完成融合
	engine := NewEngine(nil, nil, 5)
	r := analyzer.NewResult("Au9999")
	r.SignalScore = 80

	engine.Apply(r)

	if r.Macro == nil {
		t.Fatal("融合后扩展字段必须存在")
	}
	if r.Macro.TechnicalScore != 80 {
		t.Errorf("融合前技术评分应保留为 80, 得到 %d", r.Macro.TechnicalScore)
	}
	if r.Macro.NewsScore != 50 || r.Macro.DataScore != 50 {
		t.Errorf("协作方缺失时新闻/数据项应为 50, 得到 %d/%d", r.Macro.NewsScore, r.Macro.DataScore)
	}
	// round(50*0.3+50*0.7)=50, round(80*0.6+50*0.4)=68
	if r.Macro.TotalMacroScore != 50 || r.SignalScore != 68 {
		t.Errorf("期望综合宏观 50 最终 68, 得到 %d/%d", r.Macro.TotalMacroScore, r.SignalScore)
	}
}

func TestApply_WithNews(t *testing.T) {
	searcher := &stubSearcher{
		responses: map[string]news.SearchResponse{
			"美联储政策": {
				Success: true,
				Results: []news.SearchResult{{Title: "美联储暗示降息", Snippet: "宽松预期升温"}},
			},
		},
	}
	engine := NewEngine(nil, searcher, 5)
	r := analyzer.NewResult("Au9999")
	r.SignalScore = 80

	responses, _ := engine.Apply(r)

	if len(responses) != 1 {
		t.Fatalf("应返回新闻搜索结果, 得到 %d 类", len(responses))
	}
	// 类别评分 70 → 新闻情绪 52；宏观数据缺失为 50
	if r.Macro.NewsScore != 52 {
		t.Errorf("新闻情绪应为 52, 得到 %d", r.Macro.NewsScore)
	}
	// round(52*0.3+50*0.7)=51, round(80*0.6+51*0.4)=round(68.4)=68
	if r.Macro.TotalMacroScore != 51 || r.SignalScore != 68 {
		t.Errorf("期望综合宏观 51 最终 68, 得到 %d/%d", r.Macro.TotalMacroScore, r.SignalScore)
	}
}
