package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"gold-insight-backend/internal/analyzer"
)

// Config 服务配置，从环境变量读取
type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	RedisAddr string `envconfig:"REDIS_ADDR" default:""`

	DefaultCode string `envconfig:"DEFAULT_CODE" default:"Au9999"`
	ProfileFile string `envconfig:"PROFILE_FILE" default:"profiles.yaml"`

	ReportDir string `envconfig:"REPORT_DIR" default:"reports"`
	DBPath    string `envconfig:"DB_PATH" default:"data/gold_reports.db"`

	NewsMaxResults int `envconfig:"NEWS_MAX_RESULTS" default:"5"`

	DailyReportEnabled bool   `envconfig:"DAILY_REPORT_ENABLED" default:"false"`
	DailyReportCron    string `envconfig:"DAILY_REPORT_CRON" default:"30 17 * * 1-5"`
	ReportCodes        string `envconfig:"REPORT_CODES" default:"Au9999"`
	NotifyEmails       string `envconfig:"NOTIFY_EMAILS" default:""`
	HolidayFile        string `envconfig:"HOLIDAY_FILE" default:""`

	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

// Load 读取 .env（存在时）并从环境变量映射配置
func Load() (*Config, error) {
	// 生产环境可能没有 .env 文件，加载失败直接忽略
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("解析环境变量配置失败: %w", err)
	}
	return &cfg, nil
}

// LoadProfileOverrides 读取品种阈值覆盖文件
//
// 文件格式：品种名 → 阈值覆盖项。文件不存在时返回 nil，不视为错误。
func LoadProfileOverrides(path string) (map[string]*analyzer.ProfileOverride, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("读取品种配置文件失败: %w", err)
	}

	overrides := map[string]*analyzer.ProfileOverride{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("解析品种配置文件失败: %w", err)
	}
	return overrides, nil
}
