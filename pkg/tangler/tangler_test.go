package tangler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/wyvernzora/litweb/pkg/model"
)

// buildWeb is a small helper assembling a Web by hand (bypassing the
// parser) so indentation/cycle scenarios can be constructed precisely.
func buildWeb(t *testing.T) *model.Web {
	t.Helper()
	return model.NewWeb()
}

func TestTangle_SimpleReference(t *testing.T) {
	w := buildWeb(t)
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed,
		Name: "greeting",
		File: "book.w",
		Commands: []model.Command{
			{Kind: model.CmdCode, Text: "hello"},
		},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput,
		Name: "out.txt",
		File: "book.w",
		Commands: []model.Command{
			{Kind: model.CmdReference, RefName: "greeting", RefCol: 0},
		},
	})

	dir := t.TempDir()
	res, err := Tangle(context.Background(), w, Options{OutDir: dir})
	if err != nil {
		t.Fatalf("Tangle: %v", err)
	}
	if len(res.Written) != 1 {
		t.Fatalf("expected one written file, got %v", res.Written)
	}

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("reading tangled output: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestTangle_IndentationIsAdditive(t *testing.T) {
	w := buildWeb(t)
	// inner: two lines
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "inner", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdCode, Text: "a\nb"}},
	})
	// outer references inner at column 2
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "outer", File: "book.w",
		Commands: []model.Command{
			{Kind: model.CmdCode, Text: "  "},
			{Kind: model.CmdReference, RefName: "inner", RefCol: 2},
		},
	})
	// output references outer at column 4
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{
			{Kind: model.CmdCode, Text: "    "},
			{Kind: model.CmdReference, RefName: "outer", RefCol: 4},
		},
	})

	dir := t.TempDir()
	if _, err := Tangle(context.Background(), w, Options{OutDir: dir}); err != nil {
		t.Fatalf("Tangle: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("reading tangled output: %v", err)
	}
	// "b" picks up outer's column (2) plus output's column (4) = 6 spaces.
	want := "    " + "  " + "a\n" + "      " + "b"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTangle_NoIndentResetsAccumulation(t *testing.T) {
	w := buildWeb(t)
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "flush", NoIndent: true, File: "book.w",
		Commands: []model.Command{{Kind: model.CmdCode, Text: "x\ny"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{
			{Kind: model.CmdCode, Text: "        "}, // 8-space reference site
			{Kind: model.CmdReference, RefName: "flush", RefCol: 8},
		},
	})

	dir := t.TempDir()
	if _, err := Tangle(context.Background(), w, Options{OutDir: dir}); err != nil {
		t.Fatalf("Tangle: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("reading tangled output: %v", err)
	}
	want := "        x\ny" // "y" gets no indentation despite the 8-column reference site
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTangle_MultipleDefinitionsConcatenateInOrder(t *testing.T) {
	w := buildWeb(t)
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "parts", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdCode, Text: "one;"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "parts", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdCode, Text: "two;"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "parts"}},
	})

	dir := t.TempDir()
	if _, err := Tangle(context.Background(), w, Options{OutDir: dir}); err != nil {
		t.Fatalf("Tangle: %v", err)
	}
	got, _ := os.ReadFile(filepath.Join(dir, "out.txt"))
	if string(got) != "one;two;" {
		t.Errorf("got %q, want %q", got, "one;two;")
	}
}

func TestTangle_CyclicReferenceIsError(t *testing.T) {
	w := buildWeb(t)
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "a", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "b"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "b", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "a"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "a"}},
	})

	dir := t.TempDir()
	_, err := Tangle(context.Background(), w, Options{OutDir: dir})
	if err == nil {
		t.Fatal("expected a cyclic-expansion error")
	}
	perr, ok := err.(*model.PositionedError)
	if !ok || perr.Kind != model.ErrCyclicExpansion {
		t.Fatalf("expected ErrCyclicExpansion, got %v (%T)", err, err)
	}
}

func TestTangle_UndefinedReferenceIsError(t *testing.T) {
	w := buildWeb(t)
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "missing", RefLine: 3}},
	})

	dir := t.TempDir()
	_, err := Tangle(context.Background(), w, Options{OutDir: dir})
	if err == nil {
		t.Fatal("expected an undefined-reference error")
	}
	perr, ok := err.(*model.PositionedError)
	if !ok || perr.Kind != model.ErrUndefinedReference {
		t.Fatalf("expected ErrUndefinedReference, got %v (%T)", err, err)
	}
}

func TestTangle_ZeroLengthOutputWritesEmptyFile(t *testing.T) {
	w := buildWeb(t)
	w.AddChunk(model.Chunk{Kind: model.ChunkOutput, Name: ".nojekyll", File: "book.w"})

	dir := t.TempDir()
	res, err := Tangle(context.Background(), w, Options{OutDir: dir})
	if err != nil {
		t.Fatalf("Tangle: %v", err)
	}
	if len(res.Written) != 1 {
		t.Fatalf("expected the empty output to be written once, got %v", res.Written)
	}
	info, err := os.Stat(filepath.Join(dir, ".nojekyll"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected an empty file, got %d bytes", info.Size())
	}
}

func TestTangle_SkipsRewriteWhenUnchanged(t *testing.T) {
	w := buildWeb(t)
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdCode, Text: "stable"}},
	})

	dir := t.TempDir()
	ctx := context.Background()
	if _, err := Tangle(ctx, w, Options{OutDir: dir}); err != nil {
		t.Fatalf("first Tangle: %v", err)
	}
	res, err := Tangle(ctx, w, Options{OutDir: dir})
	if err != nil {
		t.Fatalf("second Tangle: %v", err)
	}
	if len(res.Skipped) != 1 || len(res.Written) != 0 {
		t.Fatalf("expected the second tangle to skip an unchanged file, got %+v", res)
	}
}
