package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/LCDatulya/costlibrary-to-sql/internal/logging"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store SQLite 数据库存储层
// 每次写入作为独立工作单元执行，执行过的 SQL 会复制一份到 SQL 日志通道
type Store struct {
	db     *sql.DB
	sqlLog logging.Sink
}

// New 创建新的 Store 实例并初始化表结构
func New(dbPath string, sqlLog logging.Sink) (*Store, error) {
	if sqlLog == nil {
		sqlLog = logging.NullSink{}
	}

	// 确保 data 目录存在
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite 建议单连接
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db, sqlLog: sqlLog}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema 初始化数据库结构
func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}

	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	s.sqlLog.Log(string(schemaSQL))
	return nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB 获取原始数据库连接（用于测试等高级操作）
func (s *Store) DB() *sql.DB {
	return s.db
}

// exec 执行写入语句并复制到 SQL 日志通道
func (s *Store) exec(query string, args ...interface{}) (sql.Result, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	s.sqlLog.Log(fmt.Sprintf("Executed SQL: %s\nParameters: %v", query, args))
	return res, nil
}
