// Package generator produces random but well-formed bowling games in roll
// notation.
package generator

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/louisbranch/tenpin/internal/core/notation"
)

// Request describes a game to generate.
type Request struct {
	Seed int64
}

// Game is a generated game.
type Game struct {
	Seed int64
	// Notation is the whole game, ready to score.
	Notation string
	// Frames holds the notation of each of the ten frames.
	Frames []string
}

type outcome int

const (
	outcomeStrike outcome = iota
	outcomeSpare
	outcomeOpen
	outcomeCount
)

const frames = 10

// Generate generates one game.
//
// # Determinism
//
// Generate is deterministic with respect to Request.Seed: the same seed
// always yields the same Game.
//
// # Shape
//
// Each of the first nine frames is equally likely to be a strike, a spare or
// an open frame. A strike is written as a single X; spares and open frames
// are two characters, and an open frame never knocks down more than nine
// pins. The tenth frame follows the same draw and appends two bonus rolls
// after a strike or one after a spare, so the output always scores without
// running out of rolls.
func Generate(request Request) Game {
	game := GenerateWithRng(rand.New(rand.NewSource(request.Seed)))
	game.Seed = request.Seed
	return game
}

// GenerateWithRng generates one game using a provided random source.
// The returned Game has a zero Seed.
func GenerateWithRng(rng *rand.Rand) Game {
	parts := make([]string, 0, frames)
	for i := 1; i < frames; i++ {
		parts = append(parts, openingFrame(rng))
	}
	parts = append(parts, finalFrame(rng))

	return Game{
		Notation: strings.Join(parts, ""),
		Frames:   parts,
	}
}

func openingFrame(rng *rand.Rand) string {
	switch outcome(rng.Intn(int(outcomeCount))) {
	case outcomeStrike:
		return string(notation.SymbolStrike)
	case outcomeSpare:
		return spare(rng)
	default:
		return open(rng)
	}
}

func finalFrame(rng *rand.Rand) string {
	switch outcome(rng.Intn(int(outcomeCount))) {
	case outcomeStrike:
		return string(notation.SymbolStrike) + bonusPair(rng)
	case outcomeSpare:
		return spare(rng) + symbol(rng.Intn(notation.MaxPins+1))
	default:
		return open(rng)
	}
}

func spare(rng *rand.Rand) string {
	return symbol(rng.Intn(notation.MaxPins)) + string(notation.SymbolSpare)
}

func open(rng *rand.Rand) string {
	first := rng.Intn(notation.MaxPins)
	second := rng.Intn(notation.MaxPins - first)
	return symbol(first) + symbol(second)
}

// bonusPair draws the two bonus rolls after a tenth frame strike. A second
// strike resets the rack; otherwise the second roll can at most clear it.
func bonusPair(rng *rand.Rand) string {
	first := rng.Intn(notation.MaxPins + 1)
	if first == notation.MaxPins {
		return symbol(first) + symbol(rng.Intn(notation.MaxPins+1))
	}
	second := rng.Intn(notation.MaxPins - first + 1)
	if first+second == notation.MaxPins {
		return symbol(first) + string(notation.SymbolSpare)
	}
	return symbol(first) + symbol(second)
}

func symbol(pins int) string {
	switch pins {
	case notation.MaxPins:
		return string(notation.SymbolStrike)
	case 0:
		return string(notation.SymbolMiss)
	default:
		return strconv.Itoa(pins)
	}
}
