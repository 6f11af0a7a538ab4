package weaver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/wyvernzora/litweb/pkg/log"
	"github.com/wyvernzora/litweb/pkg/model"
)

// Options configures a Weave call.
type Options struct {
	Templates *TemplateSet   // defaults to PlainTemplateSet
	Style     ReferenceStyle // defaults to StyleSimple
}

// Weave walks web in source order, rendering every chunk through opts'
// template set, and writes the result to out.
func Weave(ctx context.Context, web *model.Web, out io.Writer, opts Options) error {
	ts := opts.Templates
	if ts == nil {
		ts = PlainTemplateSet()
	}
	logger := log.Logger(ctx)

	for i, chunk := range web.Chunks() {
		switch chunk.Kind {
		case model.ChunkAnonymous:
			if err := weaveProse(out, ts, chunk); err != nil {
				return err
			}
		case model.ChunkNamed, model.ChunkOutput:
			if err := weaveChunk(web, out, ts, opts.Style, i, chunk); err != nil {
				return err
			}
		}
	}

	logger.Debug("weave complete", slog.Int("chunks", web.Len()))
	return nil
}

func docVars(web *model.Web) map[string]string {
	vars := make(map[string]string, 4)
	if v, ok := web.Metadata["title"]; ok {
		vars["docTitle"] = fmt.Sprint(v)
	}
	if v, ok := web.Metadata["author"]; ok {
		vars["docAuthor"] = fmt.Sprint(v)
	}
	if v, ok := web.Metadata["date"]; ok {
		vars["docDate"] = fmt.Sprint(v)
	}
	return vars
}

func weaveProse(out io.Writer, ts *TemplateSet, chunk model.Chunk) error {
	for _, cmd := range chunk.Commands {
		if cmd.Kind != model.CmdText {
			continue
		}
		rendered, err := ts.RenderProse(cmd.Text)
		if err != nil {
			return fmt.Errorf("weaver: rendering prose at %s:%d: %w", chunk.File, chunk.Line, err)
		}
		if _, err := io.WriteString(out, rendered); err != nil {
			return err
		}
	}
	return nil
}

func weaveChunk(web *model.Web, out io.Writer, ts *TemplateSet, style ReferenceStyle, idx int, chunk model.Chunk) error {
	vars := docVars(web)
	vars["seq"] = strconv.Itoa(chunk.Seq)
	vars["name"] = chunk.Name
	vars["kind"] = chunk.Kind.String()
	vars["concat"] = strconv.Itoa(definitionOrdinal(web, chunk.Kind, chunk.Name, idx))
	vars["lineNumber"] = strconv.Itoa(chunk.Line)

	beginTmpl, endTmpl := ts.ChunkBegin, ts.ChunkEnd
	if chunk.Kind == model.ChunkOutput {
		beginTmpl, endTmpl = ts.FileBegin, ts.FileEnd
	}

	begin, err := renderTemplate(beginTmpl, vars)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, begin); err != nil {
		return err
	}

	for _, cmd := range chunk.Commands {
		switch cmd.Kind {
		case model.CmdCode:
			rendered, err := ts.RenderCode(cmd.Text)
			if err != nil {
				return fmt.Errorf("weaver: rendering code at %s:%d: %w", chunk.File, chunk.Line, err)
			}
			if _, err := io.WriteString(out, rendered); err != nil {
				return err
			}

		case model.CmdReference:
			if err := weaveReference(web, out, ts, cmd); err != nil {
				return err
			}

		case model.CmdFileXref, model.CmdMacroXref, model.CmdUserIDXref:
			rendered, err := renderXref(web, ts, cmd.Kind)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(out, rendered); err != nil {
				return err
			}
		}
	}

	refList, err := renderRefList(ts, usedBy(web, idx, style))
	if err != nil {
		return err
	}
	vars["refs"] = refList

	end, err := renderTemplate(endTmpl, vars)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, end)
	return err
}

// definitionOrdinal returns the 1-based position of the chunk at idx among
// every chunk sharing its name and kind, in source order, for the
// `${concat}` template variable that distinguishes between the k pieces of
// a chunk named (or output to) more than once.
func definitionOrdinal(web *model.Web, kind model.ChunkKind, name string, idx int) int {
	var defs []int
	if kind == model.ChunkOutput {
		defs = web.OutputIndex()[name]
	} else {
		defs = web.NamedDefinitions(name)
	}
	for i, d := range defs {
		if d == idx {
			return i + 1
		}
	}
	return 1
}

func weaveReference(web *model.Web, out io.Writer, ts *TemplateSet, cmd model.Command) error {
	tmpl := ts.ReftoName
	vars := map[string]string{"name": cmd.RefName}

	if defs := web.NamedDefinitions(cmd.RefName); len(defs) > 0 && ts.ReftoSeq != "" {
		vars["seq"] = strconv.Itoa(web.ChunkAt(defs[0]).Seq)
		tmpl = ts.ReftoSeq
	}

	rendered, err := renderTemplate(tmpl, vars)
	if err != nil {
		return fmt.Errorf("weaver: rendering reference to %q: %w", cmd.RefName, err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}

func renderRefList(ts *TemplateSet, refs []*model.Chunk) (string, error) {
	var items strings.Builder
	for _, r := range refs {
		item, err := renderTemplate(ts.RefItem, map[string]string{"seq": strconv.Itoa(r.Seq), "name": r.Name})
		if err != nil {
			return "", err
		}
		items.WriteString(item)
	}
	if items.Len() == 0 {
		return "", nil
	}
	return renderTemplate(ts.Ref, map[string]string{"items": items.String()})
}

// renderXref renders the global list matching a cross-reference marker: @f
// lists every output chunk, @m lists every named chunk. @u has no backing
// identifier-extraction subsystem in this implementation, so it renders an
// empty (but well-formed) list.
func renderXref(web *model.Web, ts *TemplateSet, kind model.CommandKind) (string, error) {
	type entry struct {
		seq  int
		name string
	}
	var entries []entry

	switch kind {
	case model.CmdFileXref:
		for _, name := range web.OutputNames() {
			idx := web.OutputIndex()[name][0]
			entries = append(entries, entry{web.ChunkAt(idx).Seq, name})
		}
	case model.CmdMacroXref:
		for name, idxs := range web.NamedIndex() {
			if len(idxs) == 0 {
				continue
			}
			entries = append(entries, entry{web.ChunkAt(idxs[0]).Seq, name})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	case model.CmdUserIDXref:
		// intentionally empty; see doc comment.
	}

	var body strings.Builder
	for _, e := range entries {
		rendered, err := renderTemplate(ts.XrefItem, map[string]string{"seq": strconv.Itoa(e.seq), "name": e.name})
		if err != nil {
			return "", err
		}
		body.WriteString(rendered)
	}

	head, err := renderTemplate(ts.XrefHead, map[string]string{})
	if err != nil {
		return "", err
	}
	foot, err := renderTemplate(ts.XrefFoot, map[string]string{})
	if err != nil {
		return "", err
	}
	return head + body.String() + foot, nil
}

// BuildNameIndex renders one definition/reference entry per named chunk,
// sorted by canonical name. It is a supplementary pass, meant to be
// appended once at the end of a woven document rather than interleaved
// into the per-chunk traversal Weave performs.
func BuildNameIndex(web *model.Web, ts *TemplateSet) (string, error) {
	names := make([]string, 0, len(web.NamedIndex()))
	for name := range web.NamedIndex() {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		for _, idx := range web.NamedDefinitions(name) {
			chunk := web.ChunkAt(idx)
			entry, err := renderTemplate(ts.NameDef, map[string]string{"name": name, "seq": strconv.Itoa(chunk.Seq)})
			if err != nil {
				return "", err
			}
			sb.WriteString(entry)

			for _, ref := range chunk.ReferencedBy {
				refChunk := web.ChunkAt(ref.FromChunk)
				item, err := renderTemplate(ts.NameRef, map[string]string{"name": name, "seq": strconv.Itoa(refChunk.Seq)})
				if err != nil {
					return "", err
				}
				sb.WriteString(item)
			}
		}
	}
	return sb.String(), nil
}
