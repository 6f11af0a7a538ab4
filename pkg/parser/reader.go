package parser

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wyvernzora/litweb/pkg/lexer"
	"github.com/wyvernzora/litweb/pkg/log"
	"github.com/wyvernzora/litweb/pkg/model"
	"github.com/wyvernzora/litweb/pkg/options"
)

// workerState is one of the two top-level parser states from SPEC_FULL.md
// §4.3.
type workerState int

const (
	stateProse workerState = iota
	stateInBody
)

// worker holds the mutable state threaded through one Load call: the Web
// under construction, the chunk currently accumulating content, and the
// include stack. A worker is not safe for concurrent use; Load creates one
// per call.
type worker struct {
	ctx  context.Context
	web  *model.Web
	opts LoadOptions

	state workerState
	prose *model.Chunk // lazily-materialized current anonymous chunk, or nil
	body  *model.Chunk // current Named/Output chunk body, or nil outside InBody

	curFile      string
	includeStack []string
}

// run drives sp to EOF, dispatching each token to the state-specific
// handler. A nested @i recursively calls run again with a new Splitter over
// the included file's content; when that call returns, this loop resumes
// consuming its own sp exactly where it left off.
func (w *worker) run(sp *lexer.Splitter) error {
	for {
		tok, ok := sp.Next()
		if !ok {
			return nil
		}
		var err error
		switch w.state {
		case stateProse:
			err = w.handleProse(sp, tok)
		case stateInBody:
			err = w.handleBody(sp, tok)
		}
		if err != nil {
			return err
		}
	}
}

// ensureProse lazily materializes the current anonymous chunk on first
// content, recording the position of whatever token triggered it.
func (w *worker) ensureProse(tok lexer.Token) {
	if w.prose == nil {
		w.prose = &model.Chunk{Kind: model.ChunkAnonymous, Line: tok.Line, File: w.curFile}
	}
}

// flushProse commits the accumulated anonymous chunk to the Web, if it ever
// received any content, and clears it.
func (w *worker) flushProse() {
	if w.prose != nil && len(w.prose.Commands) > 0 {
		w.web.AddChunk(*w.prose)
	}
	w.prose = nil
}

func (w *worker) handleProse(sp *lexer.Splitter, tok lexer.Token) error {
	if tok.Kind == lexer.TokenText {
		w.ensureProse(tok)
		w.prose.AppendText(tok.Text)
		return nil
	}

	if !tok.IsCommand() {
		// Bare newline marker: literal newline in prose.
		w.ensureProse(tok)
		w.prose.AppendText("\n")
		return nil
	}

	switch tok.Marker {
	case '@':
		w.ensureProse(tok)
		w.prose.AppendText("@")
		return nil

	case 'd', 'o':
		return w.openChunk(sp, tok)

	case 'i':
		return w.handleIncludeDirective(sp, tok)

	default:
		if w.opts.Strict {
			return model.NewColumnError(model.ErrUnknownCommand, w.curFile, tok.Line, tok.Col,
				"unrecognized command %q", tok.Text)
		}
		w.ensureProse(tok)
		w.prose.AppendText(tok.Text)
		return nil
	}
}

// openChunk parses a @d/@o header up to its "@{" sentinel, finalizes the
// pending anonymous chunk, and transitions to InBody.
func (w *worker) openChunk(sp *lexer.Splitter, tok lexer.Token) error {
	kind := options.HeaderNamed
	chunkKind := model.ChunkNamed
	if tok.Marker == 'o' {
		kind = options.HeaderOutput
		chunkKind = model.ChunkOutput
	}

	raw, err := w.readUntilMarker(sp, '{')
	if err != nil {
		return err
	}
	name, hopts, err := options.ParseHeader(kind, raw)
	if err != nil {
		errKind := model.ErrMalformedOption
		if strings.HasPrefix(err.Error(), "duplicate ") {
			errKind = model.ErrDuplicateOption
		}
		return model.NewError(errKind, w.curFile, tok.Line, "%v", err)
	}
	if chunkKind == model.ChunkNamed {
		name = model.CanonicalName(name)
	}

	w.flushProse()
	w.body = &model.Chunk{
		Kind:     chunkKind,
		Name:     name,
		NoIndent: hopts.NoIndent,
		Line:     tok.Line,
		File:     w.curFile,
	}
	w.state = stateInBody
	log.Logger(w.ctx).Debug("chunk opened",
		slog.String("kind", chunkKind.String()),
		slog.String("name", name),
		slog.Int("line", tok.Line))
	return nil
}

func (w *worker) handleBody(sp *lexer.Splitter, tok lexer.Token) error {
	if tok.Kind == lexer.TokenText {
		w.body.AppendCode(tok.Text)
		return nil
	}

	if !tok.IsCommand() {
		w.body.AppendCode("\n")
		return nil
	}

	switch tok.Marker {
	case '}':
		w.web.AddChunk(*w.body)
		w.body = nil
		w.state = stateProse
		return nil

	case '@':
		w.body.AppendCode("@")
		return nil

	case '<':
		name, err := w.readReferenceName(sp)
		if err != nil {
			return err
		}
		w.body.Commands = append(w.body.Commands, model.Command{
			Kind:    model.CmdReference,
			RefName: model.CanonicalName(name),
			RefLine: tok.Line,
			RefCol:  tok.Col - 1,
		})
		return nil

	case 'f':
		w.body.Commands = append(w.body.Commands, model.Command{Kind: model.CmdFileXref, RefLine: tok.Line})
		return nil
	case 'm':
		w.body.Commands = append(w.body.Commands, model.Command{Kind: model.CmdMacroXref, RefLine: tok.Line})
		return nil
	case 'u':
		w.body.Commands = append(w.body.Commands, model.Command{Kind: model.CmdUserIDXref, RefLine: tok.Line})
		return nil

	case 'o', 'd', 'i':
		return model.NewColumnError(model.ErrUnclosedChunk, w.curFile, tok.Line, tok.Col,
			"unexpected @%c inside chunk %q: missing @}", tok.Marker, w.body.Name)

	default:
		return model.NewColumnError(model.ErrUnknownCommand, w.curFile, tok.Line, tok.Col,
			"unrecognized command %q inside chunk %q", tok.Text, w.body.Name)
	}
}
