package golddata

import (
	"testing"
	"time"
)

func TestKlineResponse_Bars(t *testing.T) {
	resp := &KlineResponse{
		Code: "Au9999",
		Data: []KlineData{
			{Date: "2025-08-20", Open: 550, Close: 552, High: 553, Low: 549, Volume: 12000, Amount: 6600000},
			{Date: "2025-08-21", Open: 552, Close: 555, High: 556, Low: 551, Volume: 15000, Amount: 8300000},
		},
	}
	bars := resp.Bars()
	if len(bars) != 2 {
		t.Fatalf("期望 2 根K线, 得到 %d", len(bars))
	}
	if bars[0].Date != "2025-08-20" || bars[0].Close != 552 || bars[0].Volume != 12000 {
		t.Errorf("K线转换错误: %+v", bars[0])
	}
}

func TestGetGoldKline_UnknownCode(t *testing.T) {
	if _, err := GetGoldKline("XAGUSD", "daily"); err == nil {
		t.Error("未知品种代码应返回错误")
	}
}

func TestInMemoryCacheProvider(t *testing.T) {
	p := NewInMemoryCacheProvider()
	resp := &KlineResponse{Code: "Au9999", Data: []KlineData{{Date: "2025-08-20", Close: 552}}}

	if err := p.Set("gold_kline_Au9999_daily", resp, time.Hour); err != nil {
		t.Fatalf("写入缓存失败: %v", err)
	}

	var cached KlineResponse
	if err := p.Get("gold_kline_Au9999_daily", &cached); err != nil {
		t.Fatalf("读取缓存失败: %v", err)
	}
	if cached.Code != "Au9999" || len(cached.Data) != 1 {
		t.Errorf("缓存内容错误: %+v", cached)
	}

	if err := p.Get("missing", &cached); err == nil {
		t.Error("未命中时应返回错误")
	}
}

func TestSupportedCodes(t *testing.T) {
	codes := SupportedCodes()
	if len(codes) != 3 {
		t.Fatalf("期望 3 个品种, 得到 %d", len(codes))
	}
	for _, code := range codes {
		if _, ok := goldSymbols[code]; !ok {
			t.Errorf("品种 %s 缺少行情代码映射", code)
		}
	}
}
