// Package bowling implements bowling.v1.BowlingService.
package bowling

import (
	"context"
	"strings"
	"time"

	bowlingv1 "github.com/louisbranch/tenpin/api/bowling/v1"
	"github.com/louisbranch/tenpin/internal/bowling"
	apperrors "github.com/louisbranch/tenpin/internal/platform/errors"
	"github.com/louisbranch/tenpin/internal/platform/id"
	"github.com/louisbranch/tenpin/internal/platform/otel"
	"github.com/louisbranch/tenpin/internal/random"
	grpcmeta "github.com/louisbranch/tenpin/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/tenpin/internal/services/game/storage"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// maxListLimit caps the number of games ListGames returns.
const maxListLimit = 200

// Service scores notation, generates games, and serves stored games.
type Service struct {
	bowlingv1.UnimplementedBowlingServiceServer

	store    storage.GameStore
	seedFunc random.SeedFunc
	idFunc   func() (string, error)
	clock    func() time.Time
}

// NewService creates a BowlingService backed by store.
func NewService(store storage.GameStore, seedFunc random.SeedFunc) *Service {
	return &Service{
		store:    store,
		seedFunc: seedFunc,
		idFunc:   id.NewID,
		clock:    time.Now,
	}
}

// ScoreGame scores a notation string and returns its scorecard.
func (s *Service) ScoreGame(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	ctx, span := otel.Tracer().Start(ctx, "bowling.ScoreGame")
	defer span.End()

	notation := in.GetValue()
	span.SetAttributes(attribute.String("bowling.notation", notation))

	card, err := bowling.CardNotation(notation)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	span.SetAttributes(attribute.Int("bowling.total", card.Total))
	return s.encode(ctx, span, bowlingv1.NewGame(notation, card))
}

// GenerateGame generates a game from the requested seed (zero asks the server
// to pick one), scores it, and stores it.
func (s *Service) GenerateGame(ctx context.Context, in *wrapperspb.Int64Value) (*structpb.Struct, error) {
	ctx, span := otel.Tracer().Start(ctx, "bowling.GenerateGame")
	defer span.End()

	seed, source, err := random.ResolveSeed(in.GetValue(), s.seedFunc)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	span.SetAttributes(
		attribute.Int64("bowling.seed", seed),
		attribute.String("bowling.seed_source", string(source)),
	)

	scored, err := bowling.GenerateScored(seed)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	gameID, err := s.idFunc()
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	record := storage.GameRecord{
		ID:         gameID,
		Seed:       seed,
		SeedSource: string(source),
		Notation:   scored.Notation,
		Total:      scored.Card.Total,
		CreatedAt:  s.clock().UTC(),
	}
	if s.store == nil {
		return nil, s.fail(ctx, span, status.Error(codes.Internal, "game store is not configured"))
	}
	if err := s.store.PutGame(ctx, record); err != nil {
		return nil, s.fail(ctx, span, err)
	}
	span.SetAttributes(attribute.String("bowling.game_id", gameID))

	view := bowlingv1.NewGame(scored.Notation, scored.Card)
	view.ID = record.ID
	view.Seed = seed
	view.Source = string(source)
	view.Created = record.CreatedAt
	return s.encode(ctx, span, view)
}

// GetGame returns a stored game, rescored from its notation.
func (s *Service) GetGame(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	ctx, span := otel.Tracer().Start(ctx, "bowling.GetGame")
	defer span.End()

	gameID := strings.TrimSpace(in.GetValue())
	if gameID == "" {
		return nil, s.fail(ctx, span, status.Error(codes.InvalidArgument, "game id is required"))
	}
	span.SetAttributes(attribute.String("bowling.game_id", gameID))
	if s.store == nil {
		return nil, s.fail(ctx, span, status.Error(codes.Internal, "game store is not configured"))
	}

	record, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	card, err := bowling.CardNotation(record.Notation)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}

	view := bowlingv1.NewGame(record.Notation, card)
	applyRecord(&view, record)
	return s.encode(ctx, span, view)
}

// ListGames returns the most recently generated games, newest first. Frames
// are omitted; fetch a game with GetGame for its scorecard.
func (s *Service) ListGames(ctx context.Context, in *wrapperspb.Int32Value) (*structpb.Struct, error) {
	ctx, span := otel.Tracer().Start(ctx, "bowling.ListGames")
	defer span.End()

	limit := int(in.GetValue())
	if limit < 0 {
		return nil, s.fail(ctx, span, status.Error(codes.InvalidArgument, "limit must not be negative"))
	}
	limit = min(limit, maxListLimit)
	span.SetAttributes(attribute.Int("bowling.limit", limit))
	if s.store == nil {
		return nil, s.fail(ctx, span, status.Error(codes.Internal, "game store is not configured"))
	}

	records, err := s.store.ListGames(ctx, limit)
	if err != nil {
		return nil, s.fail(ctx, span, err)
	}
	games := make([]bowlingv1.Game, 0, len(records))
	for _, record := range records {
		view := bowlingv1.Game{Notation: record.Notation, Total: record.Total}
		applyRecord(&view, record)
		games = append(games, view)
	}
	span.SetAttributes(attribute.Int("bowling.games", len(games)))

	out, err := bowlingv1.GamesToStruct(games)
	if err != nil {
		return nil, s.fail(ctx, span, status.Errorf(codes.Internal, "encode games: %v", err))
	}
	return out, nil
}

func applyRecord(view *bowlingv1.Game, record storage.GameRecord) {
	view.ID = record.ID
	view.Seed = record.Seed
	view.Source = record.SeedSource
	if view.Source == "" {
		view.Source = string(random.SeedSourceServer)
	}
	view.Created = record.CreatedAt
}

func (s *Service) encode(ctx context.Context, span trace.Span, view bowlingv1.Game) (*structpb.Struct, error) {
	out, err := view.ToStruct()
	if err != nil {
		return nil, s.fail(ctx, span, status.Errorf(codes.Internal, "encode game: %v", err))
	}
	return out, nil
}

// fail records err on the span and converts it to a gRPC status, localised
// for the caller's accept-language header. Errors that are already statuses
// pass through unchanged.
func (s *Service) fail(ctx context.Context, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
	if _, ok := status.FromError(err); ok {
		return err
	}
	return apperrors.HandleError(err, grpcmeta.LocaleFromContext(ctx))
}
