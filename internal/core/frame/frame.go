// Package frame scores a sequence of interpreted rolls under American
// Ten-Pin rules.
//
// # Frames
//
// Frame boundaries are not stored in the roll sequence; they are inferred
// while walking it. A strike frame consumes one roll and a spare or open frame
// consumes two. The tenth frame consumes its bonus rolls as part of the same
// turn and never starts an eleventh frame. Rolls after the tenth frame are
// ignored.
//
// # Lookahead
//
// A strike scores 10 plus the next two rolls and a spare scores 10 plus the
// next roll. Every lookahead is bounds-checked before it is read, so a
// truncated sequence fails with an INCOMPLETE_SEQUENCE error naming the frame
// and the missing roll index.
//
// # Spare marks
//
// A spare mark resolves against the preceding roll of the same pair only. A
// mark that opens a frame, opens a bonus pair, or follows a strike fails with
// a MISPLACED_SPARE error.
package frame

import (
	"fmt"
	"strconv"

	"github.com/louisbranch/tenpin/internal/core/notation"
	apperrors "github.com/louisbranch/tenpin/internal/platform/errors"
)

// Frames is the number of frames in a game.
const Frames = 10

// noPrevious marks a roll that opens a pair and cannot complete a spare.
const noPrevious = -1

// Kind classifies how a frame was completed.
type Kind int

const (
	KindOpen Kind = iota
	KindSpare
	KindStrike
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindSpare:
		return "spare"
	case KindStrike:
		return "strike"
	default:
		return "unknown"
	}
}

// Frame is one scored turn.
type Frame struct {
	Number int
	Kind   Kind
	// Rolls holds the pins knocked down in this frame, including the bonus
	// rolls of the tenth frame.
	Rolls []int
	// Bonus holds the pins borrowed from later frames (frames 1-9 only).
	Bonus []int
	Score int
	// Total is the running game score through this frame.
	Total int
}

// Card is a scored game.
type Card struct {
	Frames []Frame
	Total  int
}

// Score returns the total score for rolls.
func Score(rolls []notation.Roll) (int, error) {
	card, err := Scorecard(rolls)
	if err != nil {
		return 0, err
	}
	return card.Total, nil
}

// Scorecard scores rolls frame by frame. An empty sequence scores 0 with no
// frames; any other sequence must supply all ten frames.
func Scorecard(rolls []notation.Roll) (Card, error) {
	if len(rolls) == 0 {
		return Card{}, nil
	}

	w := walker{rolls: rolls}
	card := Card{Frames: make([]Frame, 0, Frames)}
	index := 0
	for number := 1; number <= Frames; number++ {
		f, next, err := w.frame(number, index)
		if err != nil {
			return Card{}, err
		}
		card.Total += f.Score
		f.Total = card.Total
		card.Frames = append(card.Frames, f)
		index = next
	}
	return card, nil
}

type walker struct {
	rolls []notation.Roll
}

// frame scores the frame starting at index and returns the index of the next
// frame's first roll.
func (w walker) frame(number, index int) (Frame, int, error) {
	first, err := w.pins(number, index, noPrevious)
	if err != nil {
		return Frame{}, 0, err
	}

	if first == notation.MaxPins {
		next, after, err := w.pair(number, index+1)
		if err != nil {
			return Frame{}, 0, err
		}
		f := Frame{Number: number, Kind: KindStrike, Score: notation.MaxPins + next + after}
		if number == Frames {
			f.Rolls = []int{first, next, after}
			return f, index + 3, nil
		}
		f.Rolls = []int{first}
		f.Bonus = []int{next, after}
		return f, index + 1, nil
	}

	second, err := w.pins(number, index+1, first)
	if err != nil {
		return Frame{}, 0, err
	}

	if w.rolls[index+1].IsSpare() {
		bonus, err := w.pins(number, index+2, noPrevious)
		if err != nil {
			return Frame{}, 0, err
		}
		f := Frame{Number: number, Kind: KindSpare, Score: notation.MaxPins + bonus}
		if number == Frames {
			f.Rolls = []int{first, second, bonus}
			return f, index + 3, nil
		}
		f.Rolls = []int{first, second}
		f.Bonus = []int{bonus}
		return f, index + 2, nil
	}

	return Frame{
		Number: number,
		Kind:   KindOpen,
		Rolls:  []int{first, second},
		Score:  first + second,
	}, index + 2, nil
}

// pair reads two consecutive rolls where the second may complete a spare
// against the first. A strike resets the rack, so a spare mark after it is
// misplaced.
func (w walker) pair(number, index int) (int, int, error) {
	first, err := w.pins(number, index, noPrevious)
	if err != nil {
		return 0, 0, err
	}
	previous := first
	if first == notation.MaxPins {
		previous = noPrevious
	}
	second, err := w.pins(number, index+1, previous)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

// pins resolves the roll at index. previous is the preceding roll of the same
// pair, or noPrevious when index opens a pair.
func (w walker) pins(number, index, previous int) (int, error) {
	if index >= len(w.rolls) {
		return 0, incompleteSequence(number, index)
	}
	roll := w.rolls[index]
	if roll.IsSpare() {
		if previous < 0 || previous >= notation.MaxPins {
			return 0, misplacedSpare(number, index)
		}
		return roll.Resolve(previous), nil
	}
	pins, _ := roll.LiteralPins()
	return pins, nil
}

func incompleteSequence(number, index int) error {
	return apperrors.WithMetadata(
		apperrors.CodeIncompleteSequence,
		fmt.Sprintf("frame %d needs roll %d but the sequence has ended", number, index),
		map[string]string{
			"Frame": strconv.Itoa(number),
			"Index": strconv.Itoa(index),
		},
	)
}

func misplacedSpare(number, index int) error {
	return apperrors.WithMetadata(
		apperrors.CodeMisplacedSpare,
		fmt.Sprintf("spare mark at roll %d in frame %d has no preceding roll in its pair", index, number),
		map[string]string{
			"Frame": strconv.Itoa(number),
			"Index": strconv.Itoa(index),
		},
	)
}
