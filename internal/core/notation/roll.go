package notation

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/tenpin/internal/platform/errors"
)

const (
	SymbolStrike = 'X'
	SymbolSpare  = '/'
	SymbolMiss   = '-'

	// MaxPins is the number of pins in a full rack.
	MaxPins = 10
)

// Kind distinguishes literal pin counts from spare marks.
type Kind int

const (
	KindPins Kind = iota
	KindSpare
)

func (k Kind) String() string {
	switch k {
	case KindPins:
		return "Pins"
	case KindSpare:
		return "Spare"
	default:
		return "Unknown"
	}
}

// Roll is one interpreted throw. A spare roll has no literal pin count; its
// value is whatever completes the rack left by the preceding roll of the
// same frame.
type Roll struct {
	kind Kind
	pins int
}

// Pins returns a literal roll knocking down n pins.
func Pins(n int) Roll {
	return Roll{kind: KindPins, pins: n}
}

// Spare returns a spare mark.
func Spare() Roll {
	return Roll{kind: KindSpare}
}

// Kind reports whether the roll is a pin count or a spare mark.
func (r Roll) Kind() Kind {
	return r.kind
}

// IsSpare reports whether the roll is a spare mark.
func (r Roll) IsSpare() bool {
	return r.kind == KindSpare
}

// IsStrike reports whether the roll knocked down a full rack on its own.
func (r Roll) IsStrike() bool {
	return r.kind == KindPins && r.pins == MaxPins
}

// LiteralPins returns the pin count of a literal roll. ok is false for spare
// marks, which need the preceding roll to resolve.
func (r Roll) LiteralPins() (pins int, ok bool) {
	if r.kind != KindPins {
		return 0, false
	}
	return r.pins, true
}

// Resolve returns the pins knocked down by r given the preceding roll of the
// same frame. previous is ignored for literal rolls.
func (r Roll) Resolve(previous int) int {
	if r.kind == KindSpare {
		return MaxPins - previous
	}
	return r.pins
}

func (r Roll) String() string {
	switch {
	case r.kind == KindSpare:
		return string(SymbolSpare)
	case r.pins == MaxPins:
		return string(SymbolStrike)
	case r.pins == 0:
		return string(SymbolMiss)
	default:
		return strconv.Itoa(r.pins)
	}
}

// InterpretSymbol maps a single token to its roll.
func InterpretSymbol(token Token) (Roll, error) {
	switch symbol := token.Symbol; {
	case symbol == SymbolStrike:
		return Pins(MaxPins), nil
	case symbol == SymbolMiss:
		return Pins(0), nil
	case symbol == SymbolSpare:
		return Spare(), nil
	case symbol >= '0' && symbol <= '9':
		return Pins(int(symbol - '0')), nil
	default:
		return Roll{}, unknownSymbol(token)
	}
}

// Interpret maps every token to a roll. It stops at the first token outside
// the notation alphabet.
func Interpret(tokens []Token) ([]Roll, error) {
	rolls := make([]Roll, 0, len(tokens))
	for _, token := range tokens {
		roll, err := InterpretSymbol(token)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}

// Parse tokenizes and interprets notation in one step.
func Parse(notation string) ([]Roll, error) {
	tokens, err := Tokenize(notation)
	if err != nil {
		return nil, err
	}
	return Interpret(tokens)
}

// Format renders rolls back into notation.
func Format(rolls []Roll) string {
	buf := make([]byte, 0, len(rolls))
	for _, roll := range rolls {
		buf = append(buf, roll.String()...)
	}
	return string(buf)
}

func unknownSymbol(token Token) error {
	return apperrors.WithMetadata(
		apperrors.CodeUnknownSymbol,
		fmt.Sprintf("unknown symbol %q at position %d", token.Symbol, token.Position),
		map[string]string{
			"Symbol":   string(token.Symbol),
			"Position": strconv.Itoa(token.Position),
		},
	)
}
