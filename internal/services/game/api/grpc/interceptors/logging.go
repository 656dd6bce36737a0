// Package interceptors holds unary server interceptors for the game service.
package interceptors

import (
	"context"
	"log"
	"time"

	grpcmeta "github.com/louisbranch/tenpin/internal/services/game/api/grpc/metadata"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Logf matches log.Printf.
type Logf func(format string, args ...any)

// LoggingInterceptor logs one line per unary call with its method, status
// code, duration, request id, and trace id when a span is recording.
func LoggingInterceptor(logf Logf) grpc.UnaryServerInterceptor {
	if logf == nil {
		logf = log.Printf
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		traceID := "-"
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
		}
		requestID := grpcmeta.RequestIDFromContext(ctx)
		if requestID == "" {
			requestID = "-"
		}
		logf("%s code=%s duration=%s request_id=%s trace_id=%s",
			info.FullMethod,
			status.Code(err),
			time.Since(start).Round(time.Microsecond),
			requestID,
			traceID,
		)
		return resp, err
	}
}
