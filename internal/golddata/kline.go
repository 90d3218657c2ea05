package golddata

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gold-insight-backend/internal/analyzer"
)

// HTTPClient HTTP客户端
var HTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}

// KlineData K线数据
type KlineData struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume float64 `json:"volume"`
	Amount float64 `json:"amount"`
}

// KlineResponse K线响应
type KlineResponse struct {
	Code   string      `json:"code"`
	Name   string      `json:"name"`
	Period string      `json:"period"`
	Data   []KlineData `json:"data"`
}

// Bars 转换为分析器输入的K线序列
func (r *KlineResponse) Bars() []analyzer.Bar {
	bars := make([]analyzer.Bar, 0, len(r.Data))
	for _, d := range r.Data {
		bars = append(bars, analyzer.Bar{
			Date:   d.Date,
			Open:   d.Open,
			Close:  d.Close,
			High:   d.High,
			Low:    d.Low,
			Volume: d.Volume,
		})
	}
	return bars
}

// goldSymbol 黄金品种的行情代码映射
type goldSymbol struct {
	name    string
	emSecid string
	sinaSym string // 新浪全球期货代码，仅 COMEX 品种有
}

var goldSymbols = map[string]goldSymbol{
	"Au9999": {name: "黄金9999", emSecid: "118.Au99.99"},
	"AuTD":   {name: "黄金T+D", emSecid: "118.AuTD"},
	"GC":     {name: "COMEX黄金", emSecid: "101.GC00Y", sinaSym: "GC"},
}

// SupportedCodes 支持的黄金品种代码
func SupportedCodes() []string {
	return []string{"Au9999", "AuTD", "GC"}
}

// GetGoldKline 获取黄金K线数据，优先命中缓存
func GetGoldKline(code, period string) (*KlineResponse, error) {
	return GetGoldKlineWithRefresh(code, period, false)
}

// GetGoldKlineWithRefresh 获取黄金K线数据，forceRefresh 时绕过缓存
func GetGoldKlineWithRefresh(code, period string, forceRefresh bool) (*KlineResponse, error) {
	symbol, ok := goldSymbols[code]
	if !ok {
		return nil, fmt.Errorf("不支持的黄金品种代码: %s", code)
	}
	if period == "" {
		period = "daily"
	}

	cacheKey := fmt.Sprintf("gold_kline_%s_%s", code, period)
	if !forceRefresh {
		var cached KlineResponse
		if err := getCacheProvider().Get(cacheKey, &cached); err == nil && len(cached.Data) > 0 {
			return &cached, nil
		}
	}

	// 先尝试东方财富
	data, err := getGoldKlineFromEM(symbol.emSecid, period)
	if err != nil || len(data) == 0 {
		log.Printf("东方财富获取 %s K线失败: %v，尝试新浪", code, err)
		// 东财失败，COMEX 品种可回退新浪全球期货接口
		if symbol.sinaSym != "" {
			data, err = getGoldKlineFromSina(symbol.sinaSym)
		}
	}
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("获取黄金K线数据失败: %s", code)
	}

	resp := &KlineResponse{
		Code:   code,
		Name:   symbol.name,
		Period: period,
		Data:   data,
	}
	if err := getCacheProvider().Set(cacheKey, resp, time.Hour); err != nil {
		log.Printf("缓存黄金K线失败: %v", err)
	}
	return resp, nil
}

// getGoldKlineFromEM 从东方财富获取黄金K线
func getGoldKlineFromEM(secid, period string) ([]KlineData, error) {
	kltMap := map[string]string{
		"daily":   "101",
		"weekly":  "102",
		"monthly": "103",
	}
	klt := kltMap[period]
	if klt == "" {
		klt = "101"
	}

	url := fmt.Sprintf("https://push2his.eastmoney.com/api/qt/stock/kline/get?secid=%s&fields1=f1,f2,f3,f4,f5,f6&fields2=f51,f52,f53,f54,f55,f56,f57&klt=%s&fqt=1&end=20500101&lmt=250",
		secid, klt)

	req, _ := http.NewRequest("GET", url, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Referer", "https://quote.eastmoney.com")

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var emResp struct {
		Data struct {
			Klines []string `json:"klines"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &emResp); err != nil {
		return nil, err
	}

	var result []KlineData
	for _, line := range emResp.Data.Klines {
		parts := strings.Split(line, ",")
		if len(parts) < 7 {
			continue
		}

		open, _ := strconv.ParseFloat(parts[1], 64)
		close, _ := strconv.ParseFloat(parts[2], 64)
		high, _ := strconv.ParseFloat(parts[3], 64)
		low, _ := strconv.ParseFloat(parts[4], 64)
		volume, _ := strconv.ParseFloat(parts[5], 64)
		amount, _ := strconv.ParseFloat(parts[6], 64)

		result = append(result, KlineData{
			Date:   parts[0],
			Open:   open,
			Close:  close,
			High:   high,
			Low:    low,
			Volume: volume,
			Amount: amount,
		})
	}
	return result, nil
}

// getGoldKlineFromSina 从新浪全球期货接口获取COMEX黄金日K线
func getGoldKlineFromSina(symbol string) ([]KlineData, error) {
	url := fmt.Sprintf("https://stock2.finance.sina.com.cn/futures/api/jsonp.php/var%%20_%s/GlobalFuturesService.getGlobalFuturesDailyKLine?symbol=%s",
		symbol, symbol)

	req, _ := http.NewRequest("GET", url, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Referer", "https://finance.sina.com.cn")

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// 解析JSONP响应
	text := string(body)
	start := strings.Index(text, "(")
	end := strings.LastIndex(text, ")")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("响应格式错误")
	}
	jsonStr := text[start+1 : end]

	var rawData []struct {
		Date   string `json:"date"`
		Open   string `json:"open"`
		High   string `json:"high"`
		Low    string `json:"low"`
		Close  string `json:"close"`
		Volume string `json:"volume"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &rawData); err != nil {
		return nil, err
	}

	var result []KlineData
	for _, item := range rawData {
		open, _ := strconv.ParseFloat(item.Open, 64)
		close, _ := strconv.ParseFloat(item.Close, 64)
		high, _ := strconv.ParseFloat(item.High, 64)
		low, _ := strconv.ParseFloat(item.Low, 64)
		volume, _ := strconv.ParseFloat(item.Volume, 64)

		result = append(result, KlineData{
			Date:   item.Date,
			Open:   open,
			Close:  close,
			High:   high,
			Low:    low,
			Volume: volume,
		})
	}
	return result, nil
}
