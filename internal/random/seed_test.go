package random

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/tenpin/internal/platform/errors"
)

func TestNewSeedIsNonNegative(t *testing.T) {
	for i := 0; i < 100; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed returned error: %v", err)
		}
		if seed < 0 {
			t.Fatalf("NewSeed = %d, want non-negative", seed)
		}
	}
}

func TestResolveSeedDefaultsToServerSeed(t *testing.T) {
	seed, source, err := ResolveSeed(0, func() (int64, error) {
		return 123, nil
	})
	if err != nil {
		t.Fatalf("ResolveSeed returned error: %v", err)
	}
	if seed != 123 {
		t.Fatalf("seed = %d, want 123", seed)
	}
	if source != SeedSourceServer {
		t.Fatalf("seed source = %q, want %q", source, SeedSourceServer)
	}
}

func TestResolveSeedUsesClientSeed(t *testing.T) {
	seed, source, err := ResolveSeed(77, func() (int64, error) {
		return 123, nil
	})
	if err != nil {
		t.Fatalf("ResolveSeed returned error: %v", err)
	}
	if seed != 77 {
		t.Fatalf("seed = %d, want 77", seed)
	}
	if source != SeedSourceClient {
		t.Fatalf("seed source = %q, want %q", source, SeedSourceClient)
	}
}

func TestResolveSeedRejectsNegativeSeed(t *testing.T) {
	_, _, err := ResolveSeed(-1, nil)
	if !apperrors.IsCode(err, apperrors.CodeSeedOutOfRange) {
		t.Fatalf("expected SEED_OUT_OF_RANGE, got %v", err)
	}
	if apperrors.GetMetadata(err)["Seed"] != "-1" {
		t.Fatalf("unexpected metadata %v", apperrors.GetMetadata(err))
	}
}

func TestResolveSeedPropagatesFallbackError(t *testing.T) {
	boom := errors.New("entropy exhausted")
	_, _, err := ResolveSeed(0, func() (int64, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected fallback error, got %v", err)
	}
}

func TestResolveSeedNilFallbackUsesNewSeed(t *testing.T) {
	seed, source, err := ResolveSeed(0, nil)
	if err != nil {
		t.Fatalf("ResolveSeed returned error: %v", err)
	}
	if seed < 0 || source != SeedSourceServer {
		t.Fatalf("seed=%d source=%q", seed, source)
	}
}
