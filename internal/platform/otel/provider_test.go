package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/tenpin/internal/platform/otel"
)

func TestSetupIsNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("TENPIN_OTEL_ENDPOINT", "")
	t.Setenv("TENPIN_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupIsNoopWhenDisabled(t *testing.T) {
	t.Setenv("TENPIN_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("TENPIN_OTEL_ENABLED", "FALSE")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address; nothing is exported before shutdown.
	t.Setenv("TENPIN_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("TENPIN_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestTracerStartsSpans(t *testing.T) {
	_, span := otel.Tracer().Start(context.Background(), "score")
	defer span.End()
	if span == nil {
		t.Fatal("expected span")
	}
}
