package context

import (
	"context"
	"testing"
)

func TestWithSourceInfo(t *testing.T) {
	ctx := context.Background()
	ctx = WithSourceInfo(ctx, SourceInfo{File: "main.w", Line: 12})

	got, ok := SourceInfoFrom(ctx)
	if !ok {
		t.Fatal("expected SourceInfo in context")
	}
	if got.File != "main.w" || got.Line != 12 {
		t.Errorf("got %+v", got)
	}
}

func TestSourceInfoFrom_Missing(t *testing.T) {
	ctx := context.Background()
	if _, ok := SourceInfoFrom(ctx); ok {
		t.Error("expected no SourceInfo in empty context")
	}
}

func TestSourceInfoFrom_WrongType(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, siKey, "wrong type")

	if _, ok := SourceInfoFrom(ctx); ok {
		t.Error("expected SourceInfoFrom to return false for wrong type")
	}
}

func TestMustSourceInfo_Present(t *testing.T) {
	ctx := context.Background()
	ctx = WithSourceInfo(ctx, SourceInfo{File: "a.w", Line: 3})

	got := MustSourceInfo(ctx)
	if got.File != "a.w" || got.Line != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestMustSourceInfo_Missing(t *testing.T) {
	ctx := context.Background()
	got := MustSourceInfo(ctx)
	if got.File != "" || got.Line != 0 {
		t.Errorf("expected zero value, got %+v", got)
	}
}

func TestWithSourceInfo_Overwrite(t *testing.T) {
	ctx := context.Background()
	ctx = WithSourceInfo(ctx, SourceInfo{File: "first.w", Line: 1})
	ctx = WithSourceInfo(ctx, SourceInfo{File: "second.w", Line: 2})

	got, ok := SourceInfoFrom(ctx)
	if !ok {
		t.Fatal("expected SourceInfo in context")
	}
	if got.File != "second.w" || got.Line != 2 {
		t.Errorf("got %+v, want second.w:2", got)
	}
}
