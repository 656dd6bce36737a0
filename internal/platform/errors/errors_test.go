package errors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := WithMetadata(CodeUnknownSymbol, "unknown symbol", map[string]string{"Symbol": "Y"})
	if !errors.Is(err, New(CodeUnknownSymbol, "")) {
		t.Fatal("expected errors.Is to match on code")
	}
	if errors.Is(err, New(CodeIncompleteSequence, "")) {
		t.Fatal("expected different code not to match")
	}
}

func TestGetCodeThroughWrapping(t *testing.T) {
	base := New(CodeMisplacedSpare, "misplaced spare")
	wrapped := fmt.Errorf("score: %w", base)

	if got := GetCode(wrapped); got != CodeMisplacedSpare {
		t.Fatalf("GetCode = %q, want %q", got, CodeMisplacedSpare)
	}
	if !IsCode(wrapped, CodeMisplacedSpare) {
		t.Fatal("expected IsCode to see through wrapping")
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode(plain) = %q, want %q", got, CodeUnknown)
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeUnknown, "store game", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestGetMetadata(t *testing.T) {
	err := WithMetadata(CodeIncompleteSequence, "incomplete", map[string]string{"Frame": "9", "Index": "9"})
	md := GetMetadata(err)
	if md["Frame"] != "9" || md["Index"] != "9" {
		t.Fatalf("unexpected metadata %v", md)
	}
	if GetMetadata(errors.New("plain")) != nil {
		t.Fatal("expected nil metadata for plain error")
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeInvalidInput, codes.InvalidArgument},
		{CodeUnknownSymbol, codes.InvalidArgument},
		{CodeIncompleteSequence, codes.InvalidArgument},
		{CodeMisplacedSpare, codes.InvalidArgument},
		{CodeSeedOutOfRange, codes.InvalidArgument},
		{CodeNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Errorf("%s.GRPCCode() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestHandleErrorAttachesDetails(t *testing.T) {
	err := WithMetadata(CodeUnknownSymbol, "unknown symbol 'Y' at position 3", map[string]string{
		"Symbol":   "Y",
		"Position": "3",
	})

	st, ok := status.FromError(HandleError(err, ""))
	if !ok {
		t.Fatal("expected gRPC status")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", st.Code())
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.GetReason() != string(CodeUnknownSymbol) || info.GetDomain() != Domain {
		t.Fatalf("unexpected error info %v", info)
	}
	if localized == nil {
		t.Fatal("expected localized message")
	}
	if localized.GetLocale() != DefaultLocale {
		t.Fatalf("locale = %q, want %q", localized.GetLocale(), DefaultLocale)
	}
	if localized.GetMessage() != "Unknown symbol Y at position 3" {
		t.Fatalf("message = %q", localized.GetMessage())
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	if HandleError(nil, "") != nil {
		t.Fatal("expected nil for nil error")
	}
	st, _ := status.FromError(HandleError(errors.New("boom"), "en-US"))
	if st.Code() != codes.Internal {
		t.Fatalf("code = %v, want Internal", st.Code())
	}
}

func TestLocalizedMessage(t *testing.T) {
	err := WithMetadata(CodeIncompleteSequence, "incomplete", map[string]string{"Frame": "9", "Index": "9"})
	got := LocalizedMessage(err, "pt-BR")
	want := "O frame 9 precisa de uma jogada na posição 9, mas a sequência terminou"
	if got != want {
		t.Fatalf("LocalizedMessage = %q, want %q", got, want)
	}
	if got := LocalizedMessage(errors.New("plain"), "en-US"); got != "plain" {
		t.Fatalf("LocalizedMessage(plain) = %q", got)
	}
	if got := LocalizedMessage(nil, "en-US"); got != "" {
		t.Fatalf("LocalizedMessage(nil) = %q", got)
	}
}

func TestStatusMessage(t *testing.T) {
	err := WithMetadata(CodeUnknownSymbol, "unknown symbol", map[string]string{"Symbol": "Y", "Position": "4"})
	message, code := StatusMessage(HandleError(err, "pt-BR"))
	if code != CodeUnknownSymbol {
		t.Fatalf("code = %q, want %q", code, CodeUnknownSymbol)
	}
	if want := LocalizedMessage(err, "pt-BR"); message != want {
		t.Fatalf("message = %q, want %q", message, want)
	}

	message, code = StatusMessage(status.Error(codes.Unavailable, "connection refused"))
	if message != "connection refused" || code != CodeUnknown {
		t.Fatalf("plain status = (%q, %q)", message, code)
	}

	message, code = StatusMessage(errors.New("plain"))
	if message != "plain" || code != CodeUnknown {
		t.Fatalf("plain error = (%q, %q)", message, code)
	}
	if message, _ := StatusMessage(nil); message != "" {
		t.Fatalf("nil error = %q", message)
	}
}
