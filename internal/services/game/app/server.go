package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	bowlingv1 "github.com/louisbranch/tenpin/api/bowling/v1"
	platformgrpc "github.com/louisbranch/tenpin/internal/platform/grpc"
	"github.com/louisbranch/tenpin/internal/random"
	bowlingservice "github.com/louisbranch/tenpin/internal/services/game/api/grpc/bowling"
	"github.com/louisbranch/tenpin/internal/services/game/api/grpc/interceptors"
	grpcmeta "github.com/louisbranch/tenpin/internal/services/game/api/grpc/metadata"
	storagesqlite "github.com/louisbranch/tenpin/internal/services/game/storage/sqlite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// DefaultDBPath is used when no database path is configured.
var DefaultDBPath = filepath.Join("data", "game.db")

// Options configures a game server.
type Options struct {
	// Addr is the listen address, e.g. ":8082" or "127.0.0.1:0".
	Addr string
	// DBPath is the SQLite database file for generated games.
	DBPath string
	// SeedFunc picks seeds for GenerateGame calls that omit one.
	SeedFunc random.SeedFunc
}

// Server hosts the tenpin game server.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *storagesqlite.Store
}

// New opens the store, listens on opts.Addr, and registers the services.
func New(ctx context.Context, opts Options) (*Server, error) {
	store, err := openGameStore(ctx, opts.DBPath)
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("listen on %s: %w", opts.Addr, err)
	}

	services := []string{bowlingv1.ServiceName}
	grpcServer, healthServer := platformgrpc.NewServer(services,
		grpc.ChainUnaryInterceptor(
			grpcmeta.UnaryServerInterceptor(nil),
			interceptors.LoggingInterceptor(log.Printf),
		),
	)
	bowlingv1.RegisterBowlingServiceServer(grpcServer, bowlingservice.NewService(store, opts.SeedFunc))
	platformgrpc.SetServing(healthServer, services)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the game server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a game server until the context ends.
func Run(ctx context.Context, opts Options) error {
	server, err := New(ctx, opts)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the game server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	log.Printf("game server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		log.Printf("game server shutting down")
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func openGameStore(ctx context.Context, path string) (*storagesqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultDBPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := storagesqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}

func (s *Server) closeStore() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close game store: %v", err)
	}
}
