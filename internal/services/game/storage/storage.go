package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/tenpin/internal/platform/errors"
)

// ErrNotFound indicates a requested game record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "game not found")

// GameRecord is a generated game kept so it can be fetched again by id.
type GameRecord struct {
	ID   string
	Seed int64
	// SeedSource is "CLIENT" or "SERVER", as reported by random.SeedSource.
	SeedSource string
	Notation   string
	Total      int
	CreatedAt  time.Time
}

// GameStore persists generated games.
type GameStore interface {
	PutGame(ctx context.Context, record GameRecord) error
	GetGame(ctx context.Context, id string) (GameRecord, error)
	// ListGames returns up to limit games, newest first. A limit of zero
	// or less uses the store default.
	ListGames(ctx context.Context, limit int) ([]GameRecord, error)
}
