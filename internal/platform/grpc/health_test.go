package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

const testService = "bowling.v1.BowlingService"

func TestWaitForHealthServing(t *testing.T) {
	ts := startHealthServer(t, true)
	conn := ts.dial(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := WaitForHealth(ctx, conn, testService, nil); err != nil {
		t.Fatalf("wait for health: %v", err)
	}
}

func TestWaitForHealthTransitionsToServing(t *testing.T) {
	ts := startHealthServer(t, false)
	conn := ts.dial(t)

	go func() {
		time.Sleep(200 * time.Millisecond)
		ts.serve()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var logged int
	logf := func(string, ...any) { logged++ }
	if err := WaitForHealth(ctx, conn, "", logf); err != nil {
		t.Fatalf("wait for health after transition: %v", err)
	}
	if logged == 0 {
		t.Fatal("expected progress to be logged")
	}
}

func TestWaitForHealthRespectsContext(t *testing.T) {
	ts := startHealthServer(t, false)
	conn := ts.dial(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := WaitForHealth(ctx, conn, "", nil); err == nil {
		t.Fatal("expected context error, got nil")
	}
}

func TestWaitForHealthRejectsNilConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}

type testHealthServer struct {
	listener *bufconn.Listener
	serve    func()
}

func startHealthServer(t *testing.T, serving bool) *testHealthServer {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server, healthServer := NewServer([]string{testService})
	ts := &testHealthServer{
		listener: listener,
		serve:    func() { SetServing(healthServer, []string{testService}) },
	}
	if serving {
		ts.serve()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = server.Serve(listener)
	}()
	t.Cleanup(func() {
		server.Stop()
		<-done
	})
	return ts
}

func (ts *testHealthServer) connector() Connector {
	return func(target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		opts = append(opts, gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return ts.listener.DialContext(ctx)
		}))
		return gogrpc.NewClient(target, opts...)
	}
}

func (ts *testHealthServer) dial(t *testing.T) *gogrpc.ClientConn {
	t.Helper()
	conn, err := ts.connector()("passthrough:///bufnet", gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial health server: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHealthStatusCheck(t *testing.T) {
	ts := startHealthServer(t, false)
	conn := ts.dial(t)
	client := grpc_health_v1.NewHealthClient(conn)

	resp, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: testService})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("status = %s, want NOT_SERVING", resp.GetStatus())
	}
}
