package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, PromptKey, "Notação das jogadas (Ctrl-D para sair): ")
	message.SetString(lang, ScoreKey, "Pontuação: %d\n")
	message.SetString(lang, ErrorKey, "Erro: %s\n")
	message.SetString(lang, NotationKey, "Notação: %s\n")
	message.SetString(lang, SeedKey, "Semente: %s\n")
	message.SetString(lang, GameIDKey, "Jogo: %s\n")
	message.SetString(lang, FrameHeaderKey, " #  tipo    jogadas  pts  total\n")
	message.SetString(lang, GameListHeaderKey, "jogo                        criado em             pts  notação\n")
	message.SetString(lang, NoGamesKey, "Nenhum jogo armazenado.\n")
	message.SetString(lang, LineTooLongKey, "a linha tem mais de %d bytes")
}
