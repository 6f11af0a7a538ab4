package stats

import (
	"testing"

	"github.com/wyvernzora/litweb/pkg/model"
)

func TestNewCounter_Default(t *testing.T) {
	c, err := NewCounter(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.encodingName != "o200k_base" {
		t.Errorf("expected default encoding o200k_base, got %q", c.encodingName)
	}
}

func TestNewCounter_InvalidEncoding(t *testing.T) {
	_, err := NewCounter(Options{Encoding: "not_a_real_encoding"})
	if err == nil {
		t.Fatal("expected an error for an invalid encoding name")
	}
}

func TestCounter_Count_Empty(t *testing.T) {
	c, err := NewCounter(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Count(""); got != 0 {
		t.Errorf("expected 0 tokens for empty string, got %d", got)
	}
}

func TestCounter_Count_NonEmpty(t *testing.T) {
	c, err := NewCounter(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Count("hello world"); got == 0 {
		t.Error("expected a non-zero token count")
	}
}

func TestCounter_Collect(t *testing.T) {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{
		Kind: model.ChunkAnonymous, File: "book.w",
		Commands: []model.Command{{Kind: model.CmdText, Text: "Some introductory prose."}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "greeting", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdCode, Text: "fmt.Println(\"hello\")"}},
	})

	c, err := NewCounter(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := c.Collect(w)
	if len(got) != 2 {
		t.Fatalf("expected 2 chunk stats, got %d", len(got))
	}
	if got[0].Kind != "anonymous" || got[0].Tokens == 0 {
		t.Errorf("unexpected anonymous chunk stat: %+v", got[0])
	}
	if got[1].Name != "greeting" || got[1].Tokens == 0 {
		t.Errorf("unexpected named chunk stat: %+v", got[1])
	}
}

func TestTotal(t *testing.T) {
	stats := []ChunkStat{{Tokens: 3}, {Tokens: 5}, {Tokens: 0}}
	if got := Total(stats); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}
