package tenpin

import (
	"context"
	"errors"
	"math"

	bowlingv1 "github.com/louisbranch/tenpin/api/bowling/v1"
	"github.com/louisbranch/tenpin/internal/bowling"
	apperrors "github.com/louisbranch/tenpin/internal/platform/errors"
	platformgrpc "github.com/louisbranch/tenpin/internal/platform/grpc"
	"github.com/louisbranch/tenpin/internal/platform/timeouts"
	"github.com/louisbranch/tenpin/internal/random"
	grpcmeta "github.com/louisbranch/tenpin/internal/services/game/api/grpc/metadata"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// errRemoteOnly reports a request that needs the game server.
var errRemoteOnly = errors.New("stored games are only available with -addr")

// scorer scores and generates games either in process or through the game
// server. Errors are returned ready to print via message.
type scorer interface {
	Score(ctx context.Context, notation string) (bowlingv1.Game, error)
	Generate(ctx context.Context, seed int64) (bowlingv1.Game, error)
	Get(ctx context.Context, id string) (bowlingv1.Game, error)
	List(ctx context.Context, limit int) ([]bowlingv1.Game, error)
	// Message renders err for the user in the configured locale.
	Message(err error) string
	Close() error
}

type localScorer struct {
	locale   string
	seedFunc random.SeedFunc
}

func newLocalScorer(locale string) *localScorer {
	return &localScorer{locale: locale, seedFunc: random.NewSeed}
}

func (s *localScorer) Score(_ context.Context, notation string) (bowlingv1.Game, error) {
	card, err := bowling.CardNotation(notation)
	if err != nil {
		return bowlingv1.Game{}, err
	}
	return bowlingv1.NewGame(notation, card), nil
}

func (s *localScorer) Generate(_ context.Context, seed int64) (bowlingv1.Game, error) {
	resolved, source, err := random.ResolveSeed(seed, s.seedFunc)
	if err != nil {
		return bowlingv1.Game{}, err
	}
	scored, err := bowling.GenerateScored(resolved)
	if err != nil {
		return bowlingv1.Game{}, err
	}
	game := bowlingv1.NewGame(scored.Notation, scored.Card)
	game.Seed = resolved
	game.Source = string(source)
	return game, nil
}

func (s *localScorer) Get(context.Context, string) (bowlingv1.Game, error) {
	return bowlingv1.Game{}, errRemoteOnly
}

func (s *localScorer) List(context.Context, int) ([]bowlingv1.Game, error) {
	return nil, errRemoteOnly
}

func (s *localScorer) Message(err error) string {
	return apperrors.LocalizedMessage(err, s.locale)
}

func (s *localScorer) Close() error { return nil }

type remoteScorer struct {
	conn   *grpc.ClientConn
	client bowlingv1.BowlingServiceClient
	locale string
}

func dialRemoteScorer(ctx context.Context, addr, locale string, connect platformgrpc.Connector) (*remoteScorer, error) {
	conn, err := platformgrpc.DialWithHealth(ctx, connect, addr, timeouts.GRPCDial, nil)
	if err != nil {
		return nil, err
	}
	return &remoteScorer{
		conn:   conn,
		client: bowlingv1.NewBowlingServiceClient(conn),
		locale: locale,
	}, nil
}

func (s *remoteScorer) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = grpcmeta.WithOutgoingLocale(ctx, s.locale)
	return context.WithTimeout(ctx, timeouts.GRPCRequest)
}

func (s *remoteScorer) Score(ctx context.Context, notation string) (bowlingv1.Game, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()
	resp, err := s.client.ScoreGame(ctx, wrapperspb.String(notation))
	if err != nil {
		return bowlingv1.Game{}, err
	}
	return bowlingv1.GameFromStruct(resp)
}

func (s *remoteScorer) Generate(ctx context.Context, seed int64) (bowlingv1.Game, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()
	resp, err := s.client.GenerateGame(ctx, wrapperspb.Int64(seed))
	if err != nil {
		return bowlingv1.Game{}, err
	}
	return bowlingv1.GameFromStruct(resp)
}

func (s *remoteScorer) Get(ctx context.Context, id string) (bowlingv1.Game, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()
	resp, err := s.client.GetGame(ctx, wrapperspb.String(id))
	if err != nil {
		return bowlingv1.Game{}, err
	}
	return bowlingv1.GameFromStruct(resp)
}

func (s *remoteScorer) List(ctx context.Context, limit int) ([]bowlingv1.Game, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()
	resp, err := s.client.ListGames(ctx, wrapperspb.Int32(int32(min(limit, math.MaxInt32))))
	if err != nil {
		return nil, err
	}
	return bowlingv1.GamesFromStruct(resp)
}

func (s *remoteScorer) Message(err error) string {
	message, _ := apperrors.StatusMessage(err)
	return message
}

func (s *remoteScorer) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
