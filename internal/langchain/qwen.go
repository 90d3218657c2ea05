package langchain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"gold-insight-backend/internal/analyzer"
	"gold-insight-backend/internal/macro"
	"gold-insight-backend/internal/news"
)

var (
	dashscopeAPIKey string
	llmModel        string
)

func init() {
	dashscopeAPIKey = os.Getenv("DASHSCOPE_API_KEY")
	llmModel = os.Getenv("LLM_MODEL")
	if llmModel == "" {
		llmModel = "qwen-plus"
	}
}

// 任何失败都返回固定的道歉文案，不向上抛错
const fallbackResponse = "AI分析暂时不可用，请检查API配置"

const systemPrompt = "你是一位专业的黄金投资分析师，擅长分析宏观经济因素对黄金价格的影响。请基于提供的数据给出专业、客观的黄金投资分析。"

// QwenRequest 通义千问请求
type QwenRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []Message `json:"messages"`
	} `json:"input"`
}

// Message 消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QwenResponse 通义千问响应
type QwenResponse struct {
	Output struct {
		Text    string `json:"text"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// GenerateResponse 发送提示词并返回模型文本，失败时返回固定道歉文案
func GenerateResponse(prompt string) string {
	if dashscopeAPIKey == "" {
		fmt.Println("[LLM] DASHSCOPE_API_KEY 未配置，返回默认响应")
		return fallbackResponse
	}

	req := QwenRequest{Model: llmModel}
	req.Input.Messages = []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		fmt.Printf("[LLM] 序列化请求失败: %v\n", err)
		return fallbackResponse
	}

	httpReq, err := http.NewRequest("POST", "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation", bytes.NewBuffer(jsonData))
	if err != nil {
		return fallbackResponse
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+dashscopeAPIKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		fmt.Printf("[LLM] 请求失败: %v\n", err)
		return fallbackResponse
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fallbackResponse
	}

	var qwenResp QwenResponse
	if err := json.Unmarshal(body, &qwenResp); err != nil {
		fmt.Printf("[LLM] 解析响应失败: %v\n", err)
		return fallbackResponse
	}

	// 优先从 choices 获取结果（qwen3 格式），否则从 text 获取（旧格式）
	result := qwenResp.Output.Text
	if result == "" && len(qwenResp.Output.Choices) > 0 {
		result = qwenResp.Output.Choices[0].Message.Content
	}
	if result == "" {
		fmt.Println("[LLM] API返回空结果，返回默认响应")
		return fallbackResponse
	}
	return result
}

// AnalyzeGoldMacro 整合技术分析、宏观数据和新闻，生成黄金投资分析叙述
func AnalyzeGoldMacro(result *analyzer.Result, report *macro.ScoreReport, macroNews map[string]news.SearchResponse) string {
	return GenerateResponse(BuildMacroPrompt(result, report, macroNews))
}

// BuildMacroPrompt 构建黄金宏观分析提示词
func BuildMacroPrompt(result *analyzer.Result, report *macro.ScoreReport, macroNews map[string]news.SearchResponse) string {
	var b strings.Builder

	b.WriteString("你是一位专业的黄金投资分析师，擅长分析宏观经济因素对黄金价格的影响。\n")
	b.WriteString("请基于以下数据，提供专业、客观的黄金投资分析：\n\n")

	if result != nil {
		b.WriteString("【技术分析数据】\n")
		fmt.Fprintf(&b, "趋势判断: %s\n", result.TrendStatus)
		fmt.Fprintf(&b, "趋势强度: %d/100\n", result.TrendStrength)
		fmt.Fprintf(&b, "均线排列: %s\n", result.MAAlignment)
		fmt.Fprintf(&b, "当前价格: %.2f\n", result.CurrentPrice)
		score := result.SignalScore
		if result.Macro != nil {
			score = result.Macro.TechnicalScore
		}
		fmt.Fprintf(&b, "技术评分: %d/100\n", score)
		fmt.Fprintf(&b, "操作建议: %s\n\n", result.BuySignal)
	}

	if report != nil {
		b.WriteString("【宏观数据】\n")
		fmt.Fprintf(&b, "宏观评分: %d/100\n", report.TotalScore)
		fmt.Fprintf(&b, "宏观总结: %s\n", report.Summary)
		if len(report.Factors) > 0 {
			b.WriteString("关键宏观因素:\n")
			names := make([]string, 0, len(report.Factors))
			for name := range report.Factors {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				f := report.Factors[name]
				fmt.Fprintf(&b, "- %s: %.2f (%s) - %d/100\n", name, f.Value, f.Impact, f.Score)
			}
		}
		b.WriteString("\n")
	}

	if len(macroNews) > 0 {
		b.WriteString("【宏观新闻摘要】\n")
		categories := make([]string, 0, len(macroNews))
		for category := range macroNews {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		count := 0
		for _, category := range categories {
			resp := macroNews[category]
			if !resp.Success || len(resp.Results) == 0 {
				continue
			}
			// 每类别取一条，总计最多 5 条
			item := resp.Results[0]
			fmt.Fprintf(&b, "- %s: %s...\n", item.Title, truncateRunes(item.Snippet, 100))
			count++
			if count >= 5 {
				break
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(`请提供以下分析：
1. 当前宏观环境对黄金的整体影响（利好/利空/中性）
2. 关键驱动因素分析（重点分析对黄金价格影响最大的2-3个因素）
3. 短期（1-2周）价格走势预判
4. 投资建议（仓位、入场时机、止损策略等）
5. 风险提示

要求：
- 使用中文回答
- 保持专业、客观的分析风格
- 基于提供的数据进行分析，不要编造信息
- 分析要具体，有数据支持
- 建议要实用，可操作性强
- 回答简洁明了，不要冗长
`)

	return b.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
