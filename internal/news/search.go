package news

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// SearchResult 单条新闻
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchResponse 单个类别的搜索结果
type SearchResponse struct {
	Success bool           `json:"success"`
	Results []SearchResult `json:"results"`
}

// Searcher 宏观新闻搜索器，返回类别名到搜索结果的映射，失败类别 Success 为 false
type Searcher interface {
	SearchMacroNews(maxResults int) map[string]SearchResponse
}

// Categories 宏观新闻类别及对应搜索关键词
var Categories = map[string]string{
	"美联储政策": "美联储 利率 决议",
	"通胀数据":  "美国 CPI 通胀",
	"地缘政治":  "地缘政治 冲突 避险",
	"央行购金":  "央行 购金 黄金储备",
	"美元走势":  "美元指数 走势",
}

// EastmoneySearcher 基于东方财富搜索接口的新闻搜索器
type EastmoneySearcher struct {
	httpClient *http.Client
}

// NewEastmoneySearcher 创建新闻搜索器
func NewEastmoneySearcher() *EastmoneySearcher {
	return &EastmoneySearcher{
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// SearchMacroNews 按类别搜索宏观新闻
//
// 各类别独立请求，单个类别失败只影响该类别，不影响其他类别
func (s *EastmoneySearcher) SearchMacroNews(maxResults int) map[string]SearchResponse {
	if maxResults <= 0 {
		maxResults = 5
	}

	responses := make(map[string]SearchResponse, len(Categories))
	for category, keyword := range Categories {
		results, err := s.search(keyword, maxResults)
		if err != nil {
			log.Printf("搜索类别 %s 失败: %v", category, err)
			responses[category] = SearchResponse{Success: false}
			continue
		}
		responses[category] = SearchResponse{Success: true, Results: results}
	}
	return responses
}

// search 调用东方财富搜索接口
func (s *EastmoneySearcher) search(keyword string, limit int) ([]SearchResult, error) {
	cb := fmt.Sprintf("jQuery%d_%d", time.Now().UnixNano(), time.Now().UnixMilli())
	paramBody := map[string]any{
		"uid":           "",
		"keyword":       strings.TrimSpace(keyword),
		"type":          []string{"cmsArticleWebOld"},
		"client":        "web",
		"clientType":    "web",
		"clientVersion": "curr",
		"params": map[string]any{
			"cmsArticleWebOld": map[string]any{
				"searchScope": "default",
				"sort":        "default",
				"pageIndex":   1,
				"pageSize":    limit,
				"preTag":      "<em>",
				"postTag":     "</em>",
			},
		},
	}
	paramJSON, _ := json.Marshal(paramBody)

	u, _ := url.Parse("https://search-api-web.eastmoney.com/search/jsonp")
	q := u.Query()
	q.Set("cb", cb)
	q.Set("param", string(paramJSON))
	u.RawQuery = q.Encode()

	req, _ := http.NewRequest("GET", u.String(), nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	jsonBody := extractJSONPBody(body)
	var result struct {
		Result struct {
			CmsArticleWebOld []struct {
				Title   string `json:"title"`
				Content string `json:"content"`
			} `json:"cmsArticleWebOld"`
		} `json:"result"`
	}
	if err := json.Unmarshal(jsonBody, &result); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(result.Result.CmsArticleWebOld))
	for _, item := range result.Result.CmsArticleWebOld {
		title := strings.TrimSpace(stripHTMLTags(item.Title))
		if title == "" {
			continue
		}
		results = append(results, SearchResult{
			Title:   title,
			Snippet: strings.TrimSpace(stripHTMLTags(item.Content)),
		})
	}
	return results, nil
}

func extractJSONPBody(b []byte) []byte {
	s := string(b)
	start := strings.Index(s, "(")
	end := strings.LastIndex(s, ")")
	if start < 0 || end < 0 || end <= start {
		return b
	}
	return []byte(s[start+1 : end])
}

func stripHTMLTags(s string) string {
	if strings.IndexByte(s, '<') < 0 {
		return s
	}
	return htmlTagRe.ReplaceAllString(s, "")
}
