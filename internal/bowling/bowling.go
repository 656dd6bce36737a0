package bowling

import (
	"github.com/louisbranch/tenpin/internal/core/frame"
	"github.com/louisbranch/tenpin/internal/core/generator"
	"github.com/louisbranch/tenpin/internal/core/notation"
)

// MaxScore is the score of a perfect game.
const MaxScore = 300

// ScoreNotation returns the total score of a game written in roll notation.
func ScoreNotation(roll string) (int, error) {
	card, err := CardNotation(roll)
	if err != nil {
		return 0, err
	}
	return card.Total, nil
}

// CardNotation returns the frame-by-frame scorecard of a game written in roll
// notation.
func CardNotation(roll string) (frame.Card, error) {
	tokens, err := notation.Tokenize(roll)
	if err != nil {
		return frame.Card{}, err
	}
	rolls, err := notation.Interpret(tokens)
	if err != nil {
		return frame.Card{}, err
	}
	return frame.Scorecard(rolls)
}

// ScoredGame is a generated game together with its scorecard.
type ScoredGame struct {
	generator.Game
	Card frame.Card
}

// GenerateScored generates a game from seed and scores it.
func GenerateScored(seed int64) (ScoredGame, error) {
	game := generator.Generate(generator.Request{Seed: seed})
	card, err := CardNotation(game.Notation)
	if err != nil {
		return ScoredGame{}, err
	}
	return ScoredGame{Game: game, Card: card}, nil
}
