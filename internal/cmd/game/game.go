// Package game parses game command flags and starts the gRPC server.
package game

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "github.com/louisbranch/tenpin/internal/platform/cmd"
	server "github.com/louisbranch/tenpin/internal/services/game/app"
)

// Config holds game command configuration.
type Config struct {
	Port   int    `env:"GAME_PORT" envDefault:"8082"`
	Addr   string `env:"GAME_ADDR"`
	DBPath string `env:"GAME_DB_PATH" envDefault:"data/game.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The game server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The game server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The SQLite database path for generated games")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr returns Addr when set, otherwise ":<Port>".
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Run starts the game gRPC server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		return server.Run(ctx, server.Options{
			Addr:   cfg.ListenAddr(),
			DBPath: cfg.DBPath,
		})
	})
}
