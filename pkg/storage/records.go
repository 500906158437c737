// Package storage 使用 SQLite 保存每局游戏的记录
// 采用纯 Go 的 modernc.org/sqlite 驱动，不依赖 CGO
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// 对局结果
const (
	OutcomeWin    = "win"
	OutcomeDefeat = "defeat"
	OutcomeQuit   = "quit"
)

// RunRecord 一次关卡尝试
type RunRecord struct {
	ID         int64
	RunID      string // 同一次启动内的所有记录共享
	Level      int
	Outcome    string
	DurationMs int64 // 游戏时钟时长
	HitsTaken  int
	CreatedAt  time.Time
}

// LevelStats 单个关卡的汇总
type LevelStats struct {
	Level      int
	Attempts   int
	Wins       int
	Defeats    int
	BestTimeMs int64 // 最快通关时长，未通关时为 0
}

// Store SQLite 连接
type Store struct {
	db *sql.DB
}

// Open 打开或创建数据库，必要时创建父目录并建表
// path 为 ":memory:" 时使用内存数据库
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if path != "" && path[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// 内存库每个连接各自独立
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			hits_taken INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_run_id ON runs(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close 关闭连接
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record 写入一条记录，返回其 ID
func (s *Store) Record(ctx context.Context, r RunRecord) (int64, error) {
	switch r.Outcome {
	case OutcomeWin, OutcomeDefeat, OutcomeQuit:
	default:
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (run_id, level, outcome, duration_ms, hits_taken) VALUES (?, ?, ?, ?, ?)",
		r.RunID, r.Level, r.Outcome, r.DurationMs, r.HitsTaken,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Runs 返回某次启动的全部记录，按写入顺序
func (s *Store) Runs(ctx context.Context, runID string) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, level, outcome, duration_ms, hits_taken, created_at
		 FROM runs WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.RunID, &r.Level, &r.Outcome, &r.DurationMs, &r.HitsTaken, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Stats 按关卡汇总全部记录，按关卡号升序
func (s *Store) Stats(ctx context.Context) ([]LevelStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT level,
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN outcome = 'defeat' THEN 1 ELSE 0 END), 0),
		       COALESCE(MIN(CASE WHEN outcome = 'win' THEN duration_ms END), 0)
		FROM runs
		GROUP BY level
		ORDER BY level`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		if err := rows.Scan(&st.Level, &st.Attempts, &st.Wins, &st.Defeats, &st.BestTimeMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
