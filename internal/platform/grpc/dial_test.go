package grpc

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
)

func TestDialWithHealthSuccess(t *testing.T) {
	ts := startHealthServer(t, true)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, err := DialWithHealth(ctx, ts.connector(), "passthrough:///bufnet", time.Second, nil)
	if err != nil {
		t.Fatalf("dial with health: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close conn: %v", err)
	}
}

func TestDialWithHealthErrorStages(t *testing.T) {
	t.Run("connect", func(t *testing.T) {
		connect := Connector(func(string, ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
			return nil, errors.New("dial failure")
		})

		_, err := DialWithHealth(context.Background(), connect, "unused", time.Second, nil)
		var dialErr *DialError
		if !errors.As(err, &dialErr) {
			t.Fatalf("expected DialError, got %T", err)
		}
		if dialErr.Stage != DialStageConnect {
			t.Fatalf("expected stage %q, got %q", DialStageConnect, dialErr.Stage)
		}
	})

	t.Run("health", func(t *testing.T) {
		ts := startHealthServer(t, false)

		start := time.Now()
		conn, err := DialWithHealth(context.Background(), ts.connector(), "passthrough:///bufnet", 150*time.Millisecond, nil)
		if conn != nil {
			_ = conn.Close()
			t.Fatal("expected nil connection on error")
		}
		var dialErr *DialError
		if !errors.As(err, &dialErr) {
			t.Fatalf("expected DialError, got %T", err)
		}
		if dialErr.Stage != DialStageHealth {
			t.Fatalf("expected stage %q, got %q", DialStageHealth, dialErr.Stage)
		}
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Fatalf("expected timeout to bound health check, took %v", elapsed)
		}
	})
}

func TestDialErrorFormatting(t *testing.T) {
	wrapped := &DialError{Stage: DialStageConnect, Addr: "localhost:8082", Err: errors.New("boom")}
	if !strings.Contains(wrapped.Error(), "gRPC connect error for localhost:8082") {
		t.Fatalf("unexpected error: %s", wrapped.Error())
	}
	if wrapped.Unwrap() == nil {
		t.Fatal("expected wrapped error")
	}

	var nilErr *DialError
	if nilErr.Error() == "" {
		t.Fatal("expected fallback error message")
	}
	if nilErr.Unwrap() != nil {
		t.Fatal("expected nil unwrap for nil error")
	}
}

func TestDefaultClientDialOptions(t *testing.T) {
	if got := len(DefaultClientDialOptions()); got != 2 {
		t.Fatalf("expected 2 default dial options, got %d", got)
	}
}
