// Package random provides cryptographic seed generation helpers.
//
// It uses crypto/rand to generate high-entropy seeds suitable for
// initializing pseudo-random number generators in deterministic systems.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/louisbranch/tenpin/internal/platform/errors"
)

// SeedSource records where a seed came from.
type SeedSource string

const (
	SeedSourceClient SeedSource = "CLIENT"
	SeedSourceServer SeedSource = "SERVER"
)

// SeedFunc produces a fresh seed.
type SeedFunc func() (int64, error)

// NewSeed generates a non-negative random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:]) & math.MaxInt64), nil
}

// ResolveSeed returns requested when the caller supplied one and a fresh
// seed from fallback otherwise. Zero means "no seed requested"; negative
// seeds are rejected.
func ResolveSeed(requested int64, fallback SeedFunc) (int64, SeedSource, error) {
	if requested < 0 {
		return 0, "", apperrors.WithMetadata(
			apperrors.CodeSeedOutOfRange,
			fmt.Sprintf("seed %d is negative", requested),
			map[string]string{"Seed": strconv.FormatInt(requested, 10)},
		)
	}
	if requested > 0 {
		return requested, SeedSourceClient, nil
	}
	if fallback == nil {
		fallback = NewSeed
	}
	seed, err := fallback()
	if err != nil {
		return 0, "", err
	}
	return seed, SeedSourceServer, nil
}
