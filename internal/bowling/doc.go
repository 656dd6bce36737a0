// Package bowling is the entry point of the American Ten-Pin scoring engine.
//
// Scoring is a one-way pipeline over roll notation:
//   - notation.Tokenize splits the string into one token per character.
//   - notation.Interpret maps tokens to pin counts or spare marks.
//   - frame.Scorecard walks the rolls frame by frame and totals them.
//
// Every function here is pure: no shared state, no I/O, safe for concurrent
// use. Generated games come from the generator subpackage of internal/core.
package bowling
