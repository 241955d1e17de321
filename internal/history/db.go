package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// dbFileName is the SQLite database file name inside the data directory.
const dbFileName = "photowatermark.db"

// RunDB provides SQLite-based storage for batch run history.
// It manages connection pooling and provides methods for saving and
// listing runs.
type RunDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RunDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a RunDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created; otherwise a missing database is an error.
func Open(dbDir string, opts Options) (*RunDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RunDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

// Path returns the path of the underlying database file.
func (rdb *RunDB) Path() string {
	return rdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (rdb *RunDB) createTables() error {
	schema := `
	-- One row per completed batch run
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		root_path TEXT NOT NULL,
		output_dir TEXT NOT NULL,
		total INTEGER NOT NULL,
		succeeded INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		duration_ms INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_runs_root_path ON runs(root_path);
	`

	_, err := rdb.db.Exec(schema)
	return err
}

// SaveRun records a completed batch run.
func (rdb *RunDB) SaveRun(ctx context.Context, report *model.BatchReport) error {
	record := model.NewRunRecord(report)

	_, err := rdb.db.ExecContext(ctx,
		`INSERT INTO runs (root_path, output_dir, total, succeeded, failed, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.RootPath,
		record.OutputDir,
		record.Total,
		record.Succeeded,
		record.Failed,
		record.StartedAt.UTC().Format(time.RFC3339Nano),
		record.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// Runs lists past runs, newest first. A non-positive limit returns all
// runs.
func (rdb *RunDB) Runs(ctx context.Context, limit int) ([]model.RunRecord, error) {
	query := `SELECT id, root_path, output_dir, total, succeeded, failed, started_at, duration_ms
		  FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	records := make([]model.RunRecord, 0)
	for rows.Next() {
		var (
			record     model.RunRecord
			startedAt  string
			durationMs int64
		)
		if err := rows.Scan(
			&record.ID,
			&record.RootPath,
			&record.OutputDir,
			&record.Total,
			&record.Succeeded,
			&record.Failed,
			&startedAt,
			&durationMs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		record.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp %q: %w", startedAt, err)
		}
		record.Duration = time.Duration(durationMs) * time.Millisecond

		records = append(records, record)
	}

	return records, rows.Err()
}
