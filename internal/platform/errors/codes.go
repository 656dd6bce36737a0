// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Notation errors
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeUnknownSymbol Code = "UNKNOWN_SYMBOL"

	// Scoring errors
	CodeIncompleteSequence Code = "INCOMPLETE_SEQUENCE"
	CodeMisplacedSpare     Code = "MISPLACED_SPARE"

	// Random/seed errors
	CodeSeedOutOfRange Code = "SEED_OUT_OF_RANGE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - the notation or request cannot be scored
	case CodeInvalidInput,
		CodeUnknownSymbol,
		CodeIncompleteSequence,
		CodeMisplacedSpare,
		CodeSeedOutOfRange:
		return codes.InvalidArgument

	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
