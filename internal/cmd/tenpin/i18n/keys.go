// Package i18n registers the tenpin command's user-facing strings with
// golang.org/x/text/message. English text doubles as the message key.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	PromptKey      = "Roll notation (Ctrl-D to quit): "
	ScoreKey       = "Score: %d\n"
	ErrorKey       = "Error: %s\n"
	NotationKey    = "Notation: %s\n"
	SeedKey        = "Seed: %s\n"
	GameIDKey      = "Game: %s\n"
	FrameHeaderKey = " #  kind    rolls    pts  run\n"
	FrameRowFormat = "%2d  %-6s  %-8s  %3d  %3d\n"

	GameListHeaderKey = "game                        created               pts  notation\n"
	GameRowFormat     = "%-26s  %-20s  %3d  %s\n"
	NoGamesKey        = "No stored games.\n"
	LineTooLongKey    = "line is longer than %d bytes"
)

// Supported lists the languages with registered translations, default first.
var Supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(Supported)

// NewPrinter returns a printer for the best supported match of locale, which
// may be a single tag or an Accept-Language list.
func NewPrinter(locale string) *message.Printer {
	_, index := language.MatchStrings(matcher, locale)
	return message.NewPrinter(Supported[index])
}
