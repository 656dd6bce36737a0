package metadata

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestRequestIDContextHelpers(t *testing.T) {
	if RequestIDFromContext(nil) != "" {
		t.Fatal("expected empty request id for nil context")
	}
	ctx := WithRequestID(nil, "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected request id req-1, got %s", got)
	}
}

func TestIsPrintableASCII(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: false},
		{value: "pt-BR", want: true},
		{value: "line\n", want: false},
		{value: string([]byte{0x7f}), want: false},
	}
	for _, tt := range tests {
		if got := IsPrintableASCII(tt.value); got != tt.want {
			t.Fatalf("IsPrintableASCII(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFirstMetadataValueSkipsUnprintable(t *testing.T) {
	md := metadata.Pairs(LocaleHeader, "\n", LocaleHeader, "pt-BR")
	if got := FirstMetadataValue(md, LocaleHeader); got != "pt-BR" {
		t.Fatalf("expected pt-BR, got %q", got)
	}
	if FirstMetadataValue(metadata.MD{}, LocaleHeader) != "" {
		t.Fatal("expected empty value for empty metadata")
	}
}

func TestLocaleFromContext(t *testing.T) {
	if got := LocaleFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty locale, got %q", got)
	}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("Accept-Language", "pt-BR,pt;q=0.9"))
	if got := LocaleFromContext(ctx); got != "pt-BR,pt;q=0.9" {
		t.Fatalf("unexpected locale %q", got)
	}
}

func TestWithOutgoingLocale(t *testing.T) {
	ctx := WithOutgoingLocale(context.Background(), "pt-BR")
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		t.Fatal("expected outgoing metadata")
	}
	if got := md.Get(LocaleHeader); len(got) != 1 || got[0] != "pt-BR" {
		t.Fatalf("unexpected outgoing locale %v", got)
	}

	plain := context.Background()
	if WithOutgoingLocale(plain, " ") != plain {
		t.Fatal("expected blank locale to leave context untouched")
	}
}

// headerStream captures headers set through grpc.SetHeader.
type headerStream struct {
	grpc.ServerTransportStream
	header metadata.MD
}

func (s *headerStream) Method() string { return "/bowling.v1.BowlingService/ScoreGame" }

func (s *headerStream) SetHeader(md metadata.MD) error {
	s.header = metadata.Join(s.header, md)
	return nil
}

func (s *headerStream) SendHeader(md metadata.MD) error { return s.SetHeader(md) }

func (s *headerStream) SetTrailer(metadata.MD) error { return nil }

func TestUnaryServerInterceptorGeneratesRequestID(t *testing.T) {
	stream := &headerStream{}
	ctx := grpc.NewContextWithServerTransportStream(context.Background(), stream)
	interceptor := UnaryServerInterceptor(func() (string, error) { return "generated", nil })

	var seen string
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if seen != "generated" {
		t.Fatalf("expected generated request id in handler, got %q", seen)
	}
	if got := stream.header.Get(RequestIDHeader); len(got) != 1 || got[0] != "generated" {
		t.Fatalf("expected response header, got %v", got)
	}
}

func TestUnaryServerInterceptorKeepsIncomingRequestID(t *testing.T) {
	stream := &headerStream{}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-9"))
	ctx = grpc.NewContextWithServerTransportStream(ctx, stream)
	interceptor := UnaryServerInterceptor(func() (string, error) {
		t.Fatal("generator should not be called")
		return "", nil
	})

	var seen string
	if _, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	}); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if seen != "req-9" {
		t.Fatalf("expected incoming request id, got %q", seen)
	}
}

func TestUnaryServerInterceptorGeneratorFailure(t *testing.T) {
	interceptor := UnaryServerInterceptor(func() (string, error) { return "", errors.New("boom") })
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		t.Fatal("handler should not run")
		return nil, nil
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}
