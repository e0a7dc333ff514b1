package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteFile = "accordion.db"

// SQLiteRepository implements Repository on a ui_preferences table in sqlite.
type SQLiteRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// sqliteDBString constructs a connection string for SQLite with recommended PRAGMA settings.
// modernc.org/sqlite only honours pragmas passed as _pragma=name(value).
func sqliteDBString(file string) string {
	connectionParams := make(url.Values)
	connectionParams.Add("_pragma", "busy_timeout(5000)")
	connectionParams.Add("_pragma", "journal_mode(WAL)")
	connectionParams.Add("_pragma", "synchronous(NORMAL)")
	connectionParams.Add("_pragma", "foreign_keys(1)")
	connectionParams.Add("_txlock", "immediate")
	connectionParams.Add("mode", "rwc")

	return "file:" + file + "?" + connectionParams.Encode()
}

// OpenSQLiteRepository opens (creating if needed) basePath/accordion.db.
func OpenSQLiteRepository(basePath string, logger *slog.Logger) (*SQLiteRepository, error) {
	if err := os.MkdirAll(basePath, dirPermission); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	return openSQLite(filepath.Join(basePath, sqliteFile), logger)
}

// openSQLite opens the database at dsnFile; ":memory:" gives a private in-memory database.
func openSQLite(dsnFile string, logger *slog.Logger) (*SQLiteRepository, error) {
	dsn := dsnFile
	if dsnFile != ":memory:" {
		dsn = sqliteDBString(dsnFile)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection to serialize writes
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	r := &SQLiteRepository{db: db, logger: logger}
	if err := r.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Debug("opened sqlite repository", slog.String("path", dsnFile))
	return r, nil
}

func (r *SQLiteRepository) ensureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS ui_preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	return err
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Get returns the value stored under key
func (r *SQLiteRepository) Get(key string) ([]byte, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM ui_preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query preference %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set upserts the value stored under key
func (r *SQLiteRepository) Set(key string, blob []byte) error {
	ts := time.Now().Unix()
	_, err := r.db.Exec(
		`INSERT INTO ui_preferences(key, value, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(blob), ts)
	if err != nil {
		return fmt.Errorf("upsert preference %q: %w", key, err)
	}

	r.logger.Debug("saved blob", slog.String("key", key), slog.Int("bytes", len(blob)))
	return nil
}

// Delete removes key
func (r *SQLiteRepository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM ui_preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}
