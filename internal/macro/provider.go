package macro

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// 缓存时长：行情类数据 1 小时，慢变量（通胀、央行购金）24 小时
const (
	ttlShort = time.Hour
	ttlSlow  = 24 * time.Hour
)

// FXPoint 美元指数单日数据点
type FXPoint struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Change float64 `json:"change"`
}

// CentralBankPurchases 央行购金摘要
type CentralBankPurchases struct {
	LatestQuarter  string  `json:"latest_quarter"`
	TotalPurchases float64 `json:"total_purchases"`
	YearToDate     float64 `json:"year_to_date"`
	YoYChange      float64 `json:"yoy_change"`
}

// DataSource 宏观数据源，各项取数相互独立，失败返回错误由上层降级处理
type DataSource interface {
	GetFXIndex(days int) ([]FXPoint, error)
	GetRealRate() (float64, error)
	GetInflationRate() (float64, error)
	GetCentralBankPurchases() (*CentralBankPurchases, error)
	GetGeopoliticalRiskIndex() (float64, error)
}

// Provider 宏观数据提供者
//
// 每项数据各自带独立的取数操作和缓存键，缓存为实例私有，
// 同一次分析内重复取数不会触发多次请求。
type Provider struct {
	httpClient *http.Client
	memo       *memoCache
}

// NewProvider 创建宏观数据提供者
func NewProvider() *Provider {
	return &Provider{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		memo:       newMemoCache(),
	}
}

// GetFXIndex 获取美元指数最近 days 天的日线数据
func (p *Provider) GetFXIndex(days int) ([]FXPoint, error) {
	if days <= 0 {
		days = 5
	}
	cacheKey := fmt.Sprintf("fx_index_%d", days)
	if cached, ok := p.memo.get(cacheKey, ttlShort); ok {
		return cached.([]FXPoint), nil
	}

	// 东方财富全球指数接口，100.UDI 为美元指数
	url := fmt.Sprintf("https://push2his.eastmoney.com/api/qt/stock/kline/get?secid=100.UDI&fields1=f1,f2,f3&fields2=f51,f52,f53,f54,f55,f56&klt=101&fqt=1&end=20500101&lmt=%d", days)
	klines, err := p.fetchEMKlines(url)
	if err != nil {
		return nil, fmt.Errorf("获取美元指数失败: %w", err)
	}
	if len(klines) == 0 {
		return nil, fmt.Errorf("美元指数无数据")
	}

	points := make([]FXPoint, 0, len(klines))
	var prevClose float64
	for i, k := range klines {
		point := FXPoint{Date: k.date, Close: k.close}
		if i > 0 && prevClose > 0 {
			point.Change = (k.close - prevClose) / prevClose * 100
		}
		prevClose = k.close
		points = append(points, point)
	}

	p.memo.set(cacheKey, points)
	log.Printf("成功获取美元指数数据，共 %d 条记录", len(points))
	return points, nil
}

// GetTreasuryYield 获取美国国债收益率，maturity 支持 2Y/5Y/10Y/30Y
func (p *Provider) GetTreasuryYield(maturity string) (float64, error) {
	cacheKey := "treasury_" + maturity
	if cached, ok := p.memo.get(cacheKey, ttlShort); ok {
		return cached.(float64), nil
	}

	secidMap := map[string]string{
		"2Y":  "171.US2Y",
		"5Y":  "171.US5Y",
		"10Y": "171.US10Y",
		"30Y": "171.US30Y",
	}
	secid, ok := secidMap[maturity]
	if !ok {
		return 0, fmt.Errorf("不支持的国债期限: %s", maturity)
	}

	url := fmt.Sprintf("https://push2his.eastmoney.com/api/qt/stock/kline/get?secid=%s&fields1=f1,f2,f3&fields2=f51,f52,f53,f54,f55,f56&klt=101&fqt=1&end=20500101&lmt=5", secid)
	klines, err := p.fetchEMKlines(url)
	if err != nil || len(klines) == 0 {
		return 0, fmt.Errorf("获取 %s 国债收益率失败: %v", maturity, err)
	}

	yield := math.Round(klines[len(klines)-1].close*100) / 100
	p.memo.set(cacheKey, yield)
	log.Printf("成功获取 %s 国债收益率: %.2f%%", maturity, yield)
	return yield, nil
}

// GetPolicyRate 获取美联储政策利率
func (p *Provider) GetPolicyRate() (float64, error) {
	cacheKey := "policy_rate"
	if cached, ok := p.memo.get(cacheKey, ttlSlow); ok {
		return cached.(float64), nil
	}

	// 无免费的实时联邦基金利率接口，用 2 年期国债收益率近似政策利率水平
	yield, err := p.GetTreasuryYield("2Y")
	if err != nil {
		return 0, fmt.Errorf("获取政策利率失败: %w", err)
	}
	p.memo.set(cacheKey, yield)
	return yield, nil
}

// GetInflationRate 获取美国通胀率（CPI 同比）
func (p *Provider) GetInflationRate() (float64, error) {
	cacheKey := "us_inflation"
	if cached, ok := p.memo.get(cacheKey, ttlSlow); ok {
		return cached.(float64), nil
	}

	url := "https://datacenter-web.eastmoney.com/api/data/v1/get?reportName=RPT_GLOBAL_AMERICA_CPI&columns=REPORT_DATE,PUBLISH_DATE,PRE_VALUE,VALUE&sortColumns=REPORT_DATE&sortTypes=-1&pageSize=1&pageNumber=1"
	req, _ := http.NewRequest("GET", url, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Referer", "https://data.eastmoney.com")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("获取美国通胀率失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("读取通胀数据失败: %w", err)
	}

	var result struct {
		Result struct {
			Data []struct {
				Value float64 `json:"VALUE"`
			} `json:"data"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("解析通胀数据失败: %w", err)
	}
	if len(result.Result.Data) == 0 {
		return 0, fmt.Errorf("通胀数据为空")
	}

	rate := math.Round(result.Result.Data[0].Value*100) / 100
	p.memo.set(cacheKey, rate)
	log.Printf("成功获取美国通胀率: %.2f%%", rate)
	return rate, nil
}

// GetRealRate 计算实际利率：10 年期国债收益率 - 通胀率
// 通胀不可得时使用默认值 2.5
func (p *Provider) GetRealRate() (float64, error) {
	cacheKey := "real_rate"
	if cached, ok := p.memo.get(cacheKey, ttlShort); ok {
		return cached.(float64), nil
	}

	nominal, err := p.GetTreasuryYield("10Y")
	if err != nil {
		return 0, fmt.Errorf("无法获取名义利率，无法计算实际利率: %w", err)
	}

	inflation, err := p.GetInflationRate()
	if err != nil {
		inflation = 2.5
		log.Printf("无法获取通胀率，使用默认值: %.1f%%", inflation)
	}

	realRate := math.Round((nominal-inflation)*100) / 100
	p.memo.set(cacheKey, realRate)
	log.Printf("计算实际利率: %.2f%% (名义利率: %.2f%%, 通胀率: %.2f%%)", realRate, nominal, inflation)
	return realRate, nil
}

// GetCentralBankPurchases 获取央行购金摘要
//
// 世界黄金协会无公开接口，此处使用季度静态数据，按慢变量缓存
func (p *Provider) GetCentralBankPurchases() (*CentralBankPurchases, error) {
	cacheKey := "central_bank_gold"
	if cached, ok := p.memo.get(cacheKey, ttlSlow); ok {
		return cached.(*CentralBankPurchases), nil
	}

	data := &CentralBankPurchases{
		LatestQuarter:  "2025 Q4",
		TotalPurchases: 228,
		YearToDate:     912,
		YoYChange:      15.3,
	}
	p.memo.set(cacheKey, data)
	log.Printf("成功获取央行购金数据，最新季度: %s, 总购买量: %.0f吨", data.LatestQuarter, data.TotalPurchases)
	return data, nil
}

// GetGeopoliticalRiskIndex 获取地缘政治风险指数 (0-100)
//
// 暂无可靠的公开数据源，按当前全球形势给出中等偏高的静态估计
func (p *Provider) GetGeopoliticalRiskIndex() (float64, error) {
	cacheKey := "geopolitical_risk"
	if cached, ok := p.memo.get(cacheKey, ttlShort); ok {
		return cached.(float64), nil
	}

	riskIndex := 65.0
	p.memo.set(cacheKey, riskIndex)
	return riskIndex, nil
}

type emKline struct {
	date  string
	close float64
}

// fetchEMKlines 请求东方财富K线接口并解析收盘价
func (p *Provider) fetchEMKlines(url string) ([]emKline, error) {
	req, _ := http.NewRequest("GET", url, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Referer", "https://quote.eastmoney.com")

	resp, err := p.httpClient.Do(req)
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

	var result []emKline
	for _, line := range emResp.Data.Klines {
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}
		close, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			continue
		}
		result = append(result, emKline{date: parts[0], close: close})
	}
	return result, nil
}
