package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/gymlog/internal/config"
	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateExercise = errors.New("an exercise with that name already exists")
)

// Timestamps are stored as UTC text with a fixed width so they sort correctly.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type Storage struct {
	DB *sql.DB
}

// queryer is what both *sql.DB and *sql.Tx offer.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewStorage opens the database named by the config.
func NewStorage(cfg *config.Config) (*Storage, error) {
	if cfg.DB.ConnectionString == "" {
		return nil, errors.New("no database connection string configured (set database.connection_string or TURSO_DATABASE_URL)")
	}
	return Open(cfg.DB.ConnectionString)
}

// Open connects to dsn and makes sure the schema exists. Remote Turso URLs go
// through libsql; local files go through the pure-Go SQLite driver.
func Open(dsn string) (*Storage, error) {
	driver := driverFor(dsn)
	if driver == "sqlite" {
		dsn = withForeignKeys(strings.TrimPrefix(dsn, "sqlite://"))
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db: %w", err)
	}
	if driver == "sqlite" {
		// One connection serializes writers and keeps read transactions consistent.
		db.SetMaxOpenConns(1)
	}

	if err := InitializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	logrus.WithField("driver", driver).Debug("database opened")
	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func driverFor(dsn string) string {
	for _, prefix := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "libsql"
		}
	}
	return "sqlite"
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS exercises (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            name_key TEXT NOT NULL UNIQUE,
            kind TEXT NOT NULL DEFAULT 'weighted',
            favorite INTEGER NOT NULL DEFAULT 0,
            created_at TEXT NOT NULL,
            last_used_at TEXT
        );

        CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            notes TEXT NOT NULL DEFAULT ''
        );

        CREATE TABLE IF NOT EXISTS entries (
            id TEXT PRIMARY KEY,
            exercise_id TEXT NOT NULL,
            session_id TEXT,
            position INTEGER NOT NULL DEFAULT 0,
            FOREIGN KEY (exercise_id) REFERENCES exercises(id),
            FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS sets (
            id TEXT PRIMARY KEY,
            entry_id TEXT NOT NULL,
            position INTEGER NOT NULL DEFAULT 0,
            reps INTEGER NOT NULL,
            load_kg REAL NOT NULL,
            note TEXT NOT NULL DEFAULT '',
            FOREIGN KEY (entry_id) REFERENCES entries(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS templates (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS template_items (
            template_id TEXT NOT NULL,
            exercise_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            PRIMARY KEY (template_id, position),
            FOREIGN KEY (template_id) REFERENCES templates(id) ON DELETE CASCADE,
            FOREIGN KEY (exercise_id) REFERENCES exercises(id)
        );

        CREATE INDEX IF NOT EXISTS idx_entries_session ON entries(session_id);
        CREATE INDEX IF NOT EXISTS idx_entries_exercise ON entries(exercise_id);
        CREATE INDEX IF NOT EXISTS idx_sets_entry ON sets(entry_id);
    `)
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// Rows restored from older dumps may carry plain RFC3339.
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t
}
