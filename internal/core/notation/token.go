// Package notation turns bowling roll notation into interpreted rolls.
//
// The alphabet is one character per roll: X for a strike, / for a spare,
// - for a miss and the digits 0-9 for a pin count.
package notation

import (
	"unicode/utf8"

	apperrors "github.com/louisbranch/tenpin/internal/platform/errors"
)

// Token is a single notation character and its position in the input.
type Token struct {
	Symbol   rune
	Position int
}

// ErrInvalidInput indicates the notation was not valid UTF-8 text.
var ErrInvalidInput = apperrors.New(apperrors.CodeInvalidInput, "notation must be valid UTF-8 text")

// Tokenize splits notation into one token per character, preserving order.
// Positions count characters, not bytes. No legality checks are made; an
// empty string yields an empty slice.
func Tokenize(notation string) ([]Token, error) {
	if !utf8.ValidString(notation) {
		return nil, ErrInvalidInput
	}

	tokens := make([]Token, 0, utf8.RuneCountInString(notation))
	for _, symbol := range notation {
		tokens = append(tokens, Token{Symbol: symbol, Position: len(tokens)})
	}
	return tokens, nil
}
