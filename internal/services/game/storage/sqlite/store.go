// Package sqlite implements the game store on SQLite (modernc.org/sqlite).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/tenpin/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/tenpin/internal/services/game/storage"
	"github.com/louisbranch/tenpin/internal/services/game/storage/sqlite/migrations"
)

const (
	defaultListLimit  = 50
	defaultSeedSource = "SERVER"
)

var _ storage.GameStore = (*Store)(nil)

// Store is a SQLite-backed storage.GameStore.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the SQLite database at path and applies the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.GamesFS, "games"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database. It is safe on a nil store.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutGame inserts or replaces a game record.
func (s *Store) PutGame(ctx context.Context, record storage.GameRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(record.ID) == "" {
		return errors.New("game id is required")
	}
	if record.SeedSource == "" {
		record.SeedSource = defaultSeedSource
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO games (id, seed, seed_source, notation, total, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    seed = excluded.seed,
    seed_source = excluded.seed_source,
    notation = excluded.notation,
    total = excluded.total,
    created_at = excluded.created_at`,
		record.ID,
		record.Seed,
		record.SeedSource,
		record.Notation,
		record.Total,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put game %s: %w", record.ID, err)
	}
	return nil
}

// GetGame fetches a game record by id, returning storage.ErrNotFound when
// it does not exist.
func (s *Store) GetGame(ctx context.Context, id string) (storage.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.GameRecord{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, seed, seed_source, notation, total, created_at FROM games WHERE id = ?",
		strings.TrimSpace(id),
	)
	record, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.GameRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.GameRecord{}, fmt.Errorf("get game %s: %w", id, err)
	}
	return record, nil
}

// ListGames returns the most recent games, newest first.
func (s *Store) ListGames(ctx context.Context, limit int) ([]storage.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id, seed, seed_source, notation, total, created_at FROM games ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var records []storage.GameRecord
	for rows.Next() {
		record, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (storage.GameRecord, error) {
	var (
		record    storage.GameRecord
		createdAt int64
	)
	if err := row.Scan(&record.ID, &record.Seed, &record.SeedSource, &record.Notation, &record.Total, &createdAt); err != nil {
		return storage.GameRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
