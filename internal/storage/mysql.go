package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"ctest/internal/domain"
)

const (
	runsTable     = "ctest_runs"
	failuresTable = "ctest_failures"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ` + runsTable + ` (
		run_id CHAR(36) NOT NULL PRIMARY KEY,
		label VARCHAR(255) NOT NULL,
		executor VARCHAR(32) NOT NULL,
		ordering VARCHAR(32) NOT NULL DEFAULT '',
		total_tests INT NOT NULL,
		passed_tests INT NOT NULL,
		failed_tests INT NOT NULL,
		duration VARCHAR(64) NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		started_at VARCHAR(64) NOT NULL,
		saved_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
	)`,
	`CREATE TABLE IF NOT EXISTS ` + failuresTable + ` (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		run_id CHAR(36) NOT NULL,
		test_index INT NOT NULL,
		test_name VARCHAR(255) NOT NULL,
		kind VARCHAR(32) NOT NULL,
		file VARCHAR(255) NOT NULL,
		line INT NOT NULL,
		message TEXT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		resolved BOOLEAN NOT NULL DEFAULT FALSE,
		INDEX idx_failures_run (run_id)
	)`,
}

// MySQLStorage keeps every run in a MySQL database. Load returns the most recently saved run.
type MySQLStorage struct {
	dsn     string
	timeout time.Duration
}

// NewMySQLStorage creates a MySQL backed Storage for dsn, e.g. "root:@tcp(127.0.0.1:3306)/ctest"
func NewMySQLStorage(dsn string) *MySQLStorage {
	return &MySQLStorage{dsn: dsn, timeout: 30 * time.Second}
}

// Migrate creates the database named in the DSN if it does not exist, then the result tables.
func (s *MySQLStorage) Migrate(ctx context.Context) error {
	cfg, err := mysql.ParseDSN(s.dsn)
	if err != nil {
		return fmt.Errorf("parse mysql dsn: %w", err)
	}
	if cfg.DBName == "" {
		return errors.New("mysql dsn has no database name")
	}
	if !isValidDatabaseName(cfg.DBName) {
		return fmt.Errorf("invalid database name: %s", cfg.DBName)
	}

	// Connect to MySQL server (without specifying database)
	server := cfg.Clone()
	server.DBName = ""
	if err := s.withDB(ctx, server, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", cfg.DBName))
		return err
	}); err != nil {
		return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
	}

	return s.withDB(ctx, cfg, func(db *sql.DB) error {
		for _, stmt := range schema {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("create tables: %w", err)
			}
		}
		return nil
	})
}

// Save inserts or replaces the run and its failures
func (s *MySQLStorage) Save(record *domain.RunRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	cfg, err := mysql.ParseDSN(s.dsn)
	if err != nil {
		return fmt.Errorf("parse mysql dsn: %w", err)
	}
	return s.withDB(ctx, cfg, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck

		m := record.Meta
		_, err = tx.ExecContext(ctx, `INSERT INTO `+runsTable+`
			(run_id, label, executor, ordering, total_tests, passed_tests, failed_tests, duration, duration_seconds, started_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE label = VALUES(label)`,
			m.RunID, m.Label, m.Executor, m.Ordering, m.TotalTests, m.PassedTests, m.FailedTests,
			m.Duration, m.DurationSeconds, m.Timestamp)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM `+failuresTable+` WHERE run_id = ?`, m.RunID); err != nil {
			return fmt.Errorf("clear failures: %w", err)
		}
		for _, f := range record.Details {
			_, err := tx.ExecContext(ctx, `INSERT INTO `+failuresTable+`
				(run_id, test_index, test_name, kind, file, line, message, duration_seconds, resolved)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				m.RunID, f.Index, f.TestName, f.Kind, f.File, f.Line, f.Message, f.Seconds, f.Resolved)
			if err != nil {
				return fmt.Errorf("save failure %s: %w", f.TestName, err)
			}
		}
		return tx.Commit()
	})
}

// Load reads the most recently saved run
func (s *MySQLStorage) Load() (*domain.RunRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	cfg, err := mysql.ParseDSN(s.dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}

	var record domain.RunRecord
	err = s.withDB(ctx, cfg, func(db *sql.DB) error {
		m := &record.Meta
		row := db.QueryRowContext(ctx, `SELECT run_id, label, executor, ordering, total_tests, passed_tests,
			failed_tests, duration, duration_seconds, started_at
			FROM `+runsTable+` ORDER BY saved_at DESC LIMIT 1`)
		if err := row.Scan(&m.RunID, &m.Label, &m.Executor, &m.Ordering, &m.TotalTests, &m.PassedTests,
			&m.FailedTests, &m.Duration, &m.DurationSeconds, &m.Timestamp); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errors.New("no stored runs")
			}
			return fmt.Errorf("read run: %w", err)
		}

		rows, err := db.QueryContext(ctx, `SELECT test_index, test_name, kind, file, line, message, duration_seconds, resolved
			FROM `+failuresTable+` WHERE run_id = ? ORDER BY test_index`, m.RunID)
		if err != nil {
			return fmt.Errorf("read failures: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var f domain.TestFailure
			if err := rows.Scan(&f.Index, &f.TestName, &f.Kind, &f.File, &f.Line, &f.Message, &f.Seconds, &f.Resolved); err != nil {
				return fmt.Errorf("read failure: %w", err)
			}
			record.Details = append(record.Details, f)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MySQLStorage) withDB(ctx context.Context, cfg *mysql.Config, fn func(db *sql.DB) error) error {
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	db := sql.OpenDB(connector)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database server: %w", err)
	}
	return fn(db)
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalidChars := []string{"'", "\"", "`", ";", "--", "/*", "*/", "DROP", "DELETE", "TRUNCATE"}
	upperName := strings.ToUpper(name)
	for _, char := range invalidChars {
		if strings.Contains(upperName, char) {
			return false
		}
	}
	return true
}
