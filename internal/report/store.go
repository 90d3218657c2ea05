package report

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record 报告历史记录
type Record struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	Code           string `json:"code"`
	BuySignal      string `json:"buy_signal"`
	SignalScore    int    `json:"signal_score"`
	TechnicalScore int    `json:"technical_score"`
	MacroScore     int    `json:"macro_score"`
	ReportPath     string `json:"report_path"`
	CreatedAt      string `json:"created_at"`
}

// Store 报告历史存储
type Store struct {
	db *sql.DB
}

// OpenStore 打开 sqlite 存储并初始化表结构
func OpenStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建数据目录失败: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("打开报告数据库失败: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("初始化报告表结构失败: %w", err)
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS gold_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			code TEXT NOT NULL,
			buy_signal TEXT NOT NULL,
			signal_score INTEGER NOT NULL,
			technical_score INTEGER NOT NULL,
			macro_score INTEGER NOT NULL,
			report_path TEXT,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_gold_reports_date ON gold_reports(date);`,
		`CREATE INDEX IF NOT EXISTS idx_gold_reports_code ON gold_reports(code);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Save 保存一条报告记录
func (s *Store) Save(rec *Record) error {
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().Format(time.RFC3339)
	}
	result, err := s.db.Exec(
		`INSERT INTO gold_reports (date, code, buy_signal, signal_score, technical_score, macro_score, report_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Date, rec.Code, rec.BuySignal, rec.SignalScore, rec.TechnicalScore, rec.MacroScore, rec.ReportPath, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("保存报告记录失败: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// Latest 查询指定品种的最新记录，code 为空时查询全部品种中最新的一条
func (s *Store) Latest(code string) (*Record, error) {
	query := `SELECT id, date, code, buy_signal, signal_score, technical_score, macro_score, report_path, created_at
		FROM gold_reports`
	args := []any{}
	if code != "" {
		query += " WHERE code = ?"
		args = append(args, code)
	}
	query += " ORDER BY date DESC, id DESC LIMIT 1"

	var rec Record
	err := s.db.QueryRow(query, args...).Scan(
		&rec.ID, &rec.Date, &rec.Code, &rec.BuySignal,
		&rec.SignalScore, &rec.TechnicalScore, &rec.MacroScore,
		&rec.ReportPath, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("暂无报告记录")
	}
	if err != nil {
		return nil, fmt.Errorf("查询报告记录失败: %w", err)
	}
	return &rec, nil
}

// History 查询指定品种最近 limit 条记录
func (s *Store) History(code string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 30
	}
	query := `SELECT id, date, code, buy_signal, signal_score, technical_score, macro_score, report_path, created_at
		FROM gold_reports`
	args := []any{}
	if code != "" {
		query += " WHERE code = ?"
		args = append(args, code)
	}
	query += " ORDER BY date DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("查询报告历史失败: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.Date, &rec.Code, &rec.BuySignal,
			&rec.SignalScore, &rec.TechnicalScore, &rec.MacroScore,
			&rec.ReportPath, &rec.CreatedAt,
		); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close 关闭存储
func (s *Store) Close() error {
	return s.db.Close()
}
