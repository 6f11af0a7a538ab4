package weaver

import (
	"context"
	"strings"
	"testing"

	"github.com/wyvernzora/litweb/pkg/model"
)

func TestRenderTemplate_Substitution(t *testing.T) {
	got, err := renderTemplate("<${name} ${seq}>", map[string]string{"name": "foo", "seq": "1"})
	if err != nil {
		t.Fatalf("renderTemplate: %v", err)
	}
	if got != "<foo 1>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderTemplate_UndefinedPlaceholderIsError(t *testing.T) {
	_, err := renderTemplate("${missing}", map[string]string{})
	perr, ok := err.(*model.PositionedError)
	if !ok || perr.Kind != model.ErrUndefinedPlaceholder {
		t.Fatalf("expected ErrUndefinedPlaceholder, got %v (%T)", err, err)
	}
}

func TestRenderTemplate_UnusedVarsAreFine(t *testing.T) {
	got, err := renderTemplate("plain text", map[string]string{"unused": "x"})
	if err != nil {
		t.Fatalf("renderTemplate: %v", err)
	}
	if got != "plain text" {
		t.Errorf("got %q", got)
	}
}

func buildSimpleWeb() *model.Web {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{
		Kind: model.ChunkAnonymous, File: "book.w",
		Commands: []model.Command{{Kind: model.CmdText, Text: "intro prose\n"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "greeting", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdCode, Text: "hello"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "greeting"}},
	})
	if err := w.ResolveReferences(); err != nil {
		panic(err)
	}
	return w
}

func TestWeave_Plain(t *testing.T) {
	w := buildSimpleWeb()
	var sb strings.Builder
	if err := Weave(context.Background(), w, &sb, Options{Templates: PlainTemplateSet()}); err != nil {
		t.Fatalf("Weave: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "intro prose") {
		t.Errorf("expected prose in output, got %q", out)
	}
	if !strings.Contains(out, "<greeting 2>=") {
		t.Errorf("expected named chunk header, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected code body, got %q", out)
	}
	if !strings.Contains(out, "<out.txt>=") {
		t.Errorf("expected output chunk header, got %q", out)
	}
	if !strings.Contains(out, "<greeting 2>") {
		t.Errorf("expected rendered reference, got %q", out)
	}
	if !strings.Contains(out, "used in 3") {
		t.Errorf("expected used-by list naming the output chunk's seq, got %q", out)
	}
}

func TestWeave_MarkdownRendersProse(t *testing.T) {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{
		Kind: model.ChunkAnonymous, File: "book.w",
		Commands: []model.Command{{Kind: model.CmdText, Text: "# Title\n\nsome *prose*\n"}},
	})

	var sb strings.Builder
	if err := Weave(context.Background(), w, &sb, Options{Templates: MarkdownTemplateSet()}); err != nil {
		t.Fatalf("Weave: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "<h1>Title</h1>") {
		t.Errorf("expected goldmark-rendered heading, got %q", out)
	}
	if !strings.Contains(out, "<em>prose</em>") {
		t.Errorf("expected goldmark-rendered emphasis, got %q", out)
	}
}

func TestWeave_HTMLEscapesCode(t *testing.T) {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "snippet", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdCode, Text: "a < b && c > d"}},
	})
	if err := w.ResolveReferences(); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}

	var sb strings.Builder
	if err := Weave(context.Background(), w, &sb, Options{Templates: HTMLTemplateSet()}); err != nil {
		t.Fatalf("Weave: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "a &lt; b &amp;&amp; c &gt; d") {
		t.Errorf("expected escaped code, got %q", out)
	}
}

func TestUsedBy_SimpleListsDirectReferrerOnce(t *testing.T) {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{Kind: model.ChunkNamed, Name: "leaf", File: "book.w"})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "mid", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "leaf"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "mid"}},
	})
	if err := w.ResolveReferences(); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}

	refs := usedBy(w, 0, StyleSimple)
	if len(refs) != 1 || refs[0].Name != "mid" {
		t.Fatalf("expected exactly [mid], got %v", refs)
	}
}

func TestUsedBy_TransitiveWalksUpToOutput(t *testing.T) {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{Kind: model.ChunkNamed, Name: "leaf", File: "book.w"})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "mid", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "leaf"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "mid"}},
	})
	if err := w.ResolveReferences(); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}

	refs := usedBy(w, 0, StyleTransitive)
	if len(refs) != 2 {
		t.Fatalf("expected [mid, out.txt], got %v", refs)
	}
	if refs[0].Name != "mid" || refs[1].Name != "out.txt" {
		t.Errorf("expected mid then out.txt, got %q then %q", refs[0].Name, refs[1].Name)
	}
}

func TestRenderXref_FileListsOutputs(t *testing.T) {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{Kind: model.ChunkOutput, Name: "a.txt", File: "book.w"})
	w.AddChunk(model.Chunk{Kind: model.ChunkOutput, Name: "b.txt", File: "book.w"})

	out, err := renderXref(w, PlainTemplateSet(), model.CmdFileXref)
	if err != nil {
		t.Fatalf("renderXref: %v", err)
	}
	if !strings.Contains(out, "a.txt") || !strings.Contains(out, "b.txt") {
		t.Errorf("expected both outputs listed, got %q", out)
	}
}

func TestRenderXref_UserIDIsEmptyButWellFormed(t *testing.T) {
	w := model.NewWeb()
	out, err := renderXref(w, PlainTemplateSet(), model.CmdUserIDXref)
	if err != nil {
		t.Fatalf("renderXref: %v", err)
	}
	if out != "Files:\n" {
		t.Errorf("expected just head+foot with no items, got %q", out)
	}
}

func TestBuildNameIndex_ListsDefinitionAndUsage(t *testing.T) {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{Kind: model.ChunkNamed, Name: "helper", File: "book.w"})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkOutput, Name: "out.txt", File: "book.w",
		Commands: []model.Command{{Kind: model.CmdReference, RefName: "helper"}},
	})
	if err := w.ResolveReferences(); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}

	out, err := BuildNameIndex(w, PlainTemplateSet())
	if err != nil {
		t.Fatalf("BuildNameIndex: %v", err)
	}
	if !strings.Contains(out, "helper:") || !strings.Contains(out, "used at 2") {
		t.Errorf("expected definition and usage entries, got %q", out)
	}
}

func TestWeaveChunk_ConcatAndLineNumberVars(t *testing.T) {
	w := model.NewWeb()
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "parts", File: "book.w", Line: 3,
		Commands: []model.Command{{Kind: model.CmdCode, Text: "A"}},
	})
	w.AddChunk(model.Chunk{
		Kind: model.ChunkNamed, Name: "parts", File: "book.w", Line: 7,
		Commands: []model.Command{{Kind: model.CmdCode, Text: "B"}},
	})
	if err := w.ResolveReferences(); err != nil {
		t.Fatalf("ResolveReferences: %v", err)
	}

	ts := PlainTemplateSet()
	ts.ChunkBegin = "<${name} concat=${concat} line=${lineNumber}>\n"
	ts.ChunkEnd = ""

	var sb strings.Builder
	if err := Weave(context.Background(), w, &sb, Options{Templates: ts}); err != nil {
		t.Fatalf("Weave: %v", err)
	}

	got := sb.String()
	if !strings.Contains(got, "<parts concat=1 line=3>") {
		t.Errorf("expected first definition to report concat=1 line=3, got %q", got)
	}
	if !strings.Contains(got, "<parts concat=2 line=7>") {
		t.Errorf("expected second definition to report concat=2 line=7, got %q", got)
	}
}
