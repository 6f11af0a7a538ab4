package log

import (
	"context"
	"testing"

	litwebctx "github.com/wyvernzora/litweb/pkg/context"
)

func TestWithSource_PopulatesSourceInfo(t *testing.T) {
	ctx := WithSource(context.Background(), "main.w", 7)

	si, ok := litwebctx.SourceInfoFrom(ctx)
	if !ok {
		t.Fatal("expected SourceInfo in context")
	}
	if si.File != "main.w" || si.Line != 7 {
		t.Errorf("got %+v", si)
	}

	// Should not panic, and should be a usable logger.
	Logger(ctx).Info("test")
}

func TestLogger_DefaultFallback(t *testing.T) {
	if Logger(context.Background()) == nil {
		t.Fatal("expected non-nil default logger")
	}
	if Logger(nil) == nil { //nolint:staticcheck // nil context fallback is the documented contract
		t.Fatal("expected non-nil logger for nil context")
	}
}
