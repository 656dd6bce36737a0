package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, PromptKey, PromptKey)
	message.SetString(lang, ScoreKey, ScoreKey)
	message.SetString(lang, ErrorKey, ErrorKey)
	message.SetString(lang, NotationKey, NotationKey)
	message.SetString(lang, SeedKey, SeedKey)
	message.SetString(lang, GameIDKey, GameIDKey)
	message.SetString(lang, FrameHeaderKey, FrameHeaderKey)
	message.SetString(lang, GameListHeaderKey, GameListHeaderKey)
	message.SetString(lang, NoGamesKey, NoGamesKey)
	message.SetString(lang, LineTooLongKey, LineTooLongKey)
}
