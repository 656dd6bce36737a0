package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnknownSymbol      = "UNKNOWN_SYMBOL"
	CodeIncompleteSequence = "INCOMPLETE_SEQUENCE"
	CodeMisplacedSpare     = "MISPLACED_SPARE"
	CodeSeedOutOfRange     = "SEED_OUT_OF_RANGE"
	CodeNotFound           = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Notation errors
		CodeInvalidInput:  "Roll notation must be valid text",
		CodeUnknownSymbol: "Unknown symbol {{.Symbol}} at position {{.Position}}",

		// Scoring errors
		CodeIncompleteSequence: "Frame {{.Frame}} needs a roll at position {{.Index}} but the sequence ended",
		CodeMisplacedSpare:     "Spare mark at position {{.Index}} in frame {{.Frame}} does not follow a roll in the same frame",

		// Random/seed errors
		CodeSeedOutOfRange: "Seed {{.Seed}} is out of range",

		// Storage errors
		CodeNotFound: "Game not found",
	},
}
