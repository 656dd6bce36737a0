// Package tenpin implements the tenpin command: an interactive scorer for
// bowling roll notation that can also generate random games.
package tenpin

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	bowlingv1 "github.com/louisbranch/tenpin/api/bowling/v1"
	"github.com/louisbranch/tenpin/internal/cmd/tenpin/i18n"
	entrypoint "github.com/louisbranch/tenpin/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/tenpin/internal/platform/grpc"
	"golang.org/x/text/message"
)

// Config holds tenpin command configuration.
type Config struct {
	// Addr is the game server address; empty scores in process.
	Addr   string `env:"ADDR"`
	Locale string `env:"LOCALE" envDefault:"en-US"`

	Generate bool
	Seed     int64
	GameID   string
	List     bool
	Limit    int
	Frames   bool
}

// maxLineBytes bounds one notation line; longer lines are reported and skipped.
const maxLineBytes = 64 * 1024

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "game server address (empty scores locally)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "language for messages, e.g. en-US or pt-BR")
	fs.BoolVar(&cfg.Generate, "generate", false, "print one generated game and its score")
	fs.Int64Var(&cfg.Seed, "seed", 0, "seed for -generate (0 = random)")
	fs.StringVar(&cfg.GameID, "game", "", "print a stored game by id (requires -addr)")
	fs.BoolVar(&cfg.List, "list", false, "list recently generated games (requires -addr)")
	fs.IntVar(&cfg.Limit, "limit", 10, "number of games for -list")
	fs.BoolVar(&cfg.Frames, "frames", false, "print the frame-by-frame scorecard")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Seed != 0 && !cfg.Generate {
		return Config{}, errors.New("-seed requires -generate")
	}
	modes := 0
	for _, set := range []bool{cfg.Generate, cfg.GameID != "", cfg.List} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return Config{}, errors.New("use only one of -generate, -game or -list")
	}
	remote := strings.TrimSpace(cfg.Addr) != ""
	if cfg.GameID != "" && !remote {
		return Config{}, errors.New("-game requires -addr")
	}
	if cfg.List && !remote {
		return Config{}, errors.New("-list requires -addr")
	}
	if cfg.Limit < 0 {
		return Config{}, errors.New("-limit must not be negative")
	}
	return cfg, nil
}

// Run executes the tenpin command. Without -generate, -game or -list it reads one
// notation per line from in until EOF, printing each score to out and each
// error to errOut. Remote calls are traced when telemetry is configured.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTenpin, func(ctx context.Context) error {
		return run(ctx, cfg, in, out, errOut, nil)
	})
}

func run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer, connect platformgrpc.Connector) error {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	s, err := newScorer(ctx, cfg, connect)
	if err != nil {
		return err
	}
	defer s.Close()

	p := i18n.NewPrinter(cfg.Locale)
	switch {
	case cfg.Generate:
		game, err := s.Generate(ctx, cfg.Seed)
		if err != nil {
			return errors.New(s.Message(err))
		}
		printGame(p, out, game, cfg.Frames)
		return nil
	case cfg.GameID != "":
		game, err := s.Get(ctx, cfg.GameID)
		if err != nil {
			return errors.New(s.Message(err))
		}
		printGame(p, out, game, cfg.Frames)
		return nil
	case cfg.List:
		games, err := s.List(ctx, cfg.Limit)
		if err != nil {
			return errors.New(s.Message(err))
		}
		printGames(p, out, games)
		return nil
	default:
		return prompt(ctx, s, p, cfg.Frames, in, out, errOut)
	}
}

func newScorer(ctx context.Context, cfg Config, connect platformgrpc.Connector) (scorer, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return newLocalScorer(cfg.Locale), nil
	}
	return dialRemoteScorer(ctx, addr, cfg.Locale, connect)
}

// prompt runs the read-score loop until EOF or ctx ends. Scoring errors and
// overlong lines are reported and the loop continues.
func prompt(ctx context.Context, s scorer, p *message.Printer, frames bool, in io.Reader, out, errOut io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		p.Fprintf(out, i18n.PromptKey)
		line, tooLong, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if tooLong {
			p.Fprintf(errOut, i18n.ErrorKey, p.Sprintf(i18n.LineTooLongKey, maxLineBytes))
			continue
		}

		game, err := s.Score(ctx, strings.TrimSpace(line))
		if err != nil {
			p.Fprintf(errOut, i18n.ErrorKey, s.Message(err))
			continue
		}
		if frames {
			printFrames(p, out, game)
		}
		p.Fprintf(out, i18n.ScoreKey, game.Total)
	}
}

// readLine reads one line without its terminator. Lines over maxLineBytes
// are consumed in full and reported with tooLong set.
func readLine(r *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if len(buf) > 0 || tooLong {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func printGame(p *message.Printer, out io.Writer, game bowlingv1.Game, frames bool) {
	if game.ID != "" {
		p.Fprintf(out, i18n.GameIDKey, game.ID)
	}
	p.Fprintf(out, i18n.SeedKey, strconv.FormatInt(game.Seed, 10))
	p.Fprintf(out, i18n.NotationKey, game.Notation)
	if frames {
		printFrames(p, out, game)
	}
	p.Fprintf(out, i18n.ScoreKey, game.Total)
}

func printFrames(p *message.Printer, out io.Writer, game bowlingv1.Game) {
	p.Fprintf(out, i18n.FrameHeaderKey)
	for _, f := range game.Frames {
		rolls := make([]string, len(f.Rolls))
		for i, r := range f.Rolls {
			rolls[i] = strconv.Itoa(r)
		}
		p.Fprintf(out, i18n.FrameRowFormat, f.Number, f.Kind, strings.Join(rolls, " "), f.Score, f.Running)
	}
}

func printGames(p *message.Printer, out io.Writer, games []bowlingv1.Game) {
	if len(games) == 0 {
		p.Fprintf(out, i18n.NoGamesKey)
		return
	}
	p.Fprintf(out, i18n.GameListHeaderKey)
	for _, g := range games {
		p.Fprintf(out, i18n.GameRowFormat, g.ID, g.Created.UTC().Format(time.RFC3339), g.Total, g.Notation)
	}
}
