package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeInvalidInput:       "A notação das jogadas deve ser um texto válido",
		CodeUnknownSymbol:      "Símbolo desconhecido {{.Symbol}} na posição {{.Position}}",
		CodeIncompleteSequence: "O frame {{.Frame}} precisa de uma jogada na posição {{.Index}}, mas a sequência terminou",
		CodeMisplacedSpare:     "A marca de spare na posição {{.Index}} do frame {{.Frame}} não segue uma jogada do mesmo frame",
		CodeSeedOutOfRange:     "A semente {{.Seed}} está fora do intervalo",
		CodeNotFound:           "Jogo não encontrado",
	},
}
