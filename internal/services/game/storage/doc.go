// Package storage defines persistence contracts for generated games.
//
// Implementations live in subpackages (see sqlite). Missing records are
// reported with ErrNotFound.
package storage
