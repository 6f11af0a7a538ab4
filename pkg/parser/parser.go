package parser

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/adrg/frontmatter"
	"github.com/wyvernzora/litweb/pkg/lexer"
	"github.com/wyvernzora/litweb/pkg/log"
	"github.com/wyvernzora/litweb/pkg/model"
)

// Load reads path, extracts optional leading YAML front matter, and parses
// the body into a Web. Any @i targets encountered are resolved relative to
// the including file's directory and spliced into the same parse in place.
//
// Each call creates a fresh internal worker, making Load safe for
// concurrent use across different files.
func Load(ctx context.Context, path string, opts LoadOptions) (*model.Web, error) {
	if opts.Lead == 0 {
		opts.Lead = '@'
	}
	ctx = log.WithSource(ctx, path, 0)
	logger := log.Logger(ctx)
	logger.Debug("loading web", slog.String("file", path))

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: reading %s: %w", path, err)
	}

	meta := make(map[string]any)
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return nil, fmt.Errorf("parser: extracting front matter from %s: %w", path, err)
	}
	logger.Debug("front matter extracted", slog.Int("keys", len(meta)))

	w := &worker{
		ctx:     ctx,
		web:     model.NewWeb(),
		opts:    opts,
		state:   stateProse,
		curFile: path,
	}
	w.web.Metadata = meta

	if err := w.pushInclude(path); err != nil {
		return nil, err
	}

	sp, err := lexer.NewSplitter(path, string(body), opts.Lead)
	if err != nil {
		return nil, err
	}
	if err := w.run(sp); err != nil {
		return nil, err
	}
	w.popInclude()

	w.flushProse()
	if w.body != nil {
		return nil, model.NewError(model.ErrUnclosedChunk, w.body.File, w.body.Line,
			"unterminated chunk %q: missing @}", w.body.Name)
	}

	if err := w.web.ResolveReferences(); err != nil {
		return nil, err
	}

	logger.Debug("web loaded",
		slog.Int("chunks", w.web.Len()),
		slog.Int("outputs", len(w.web.OutputNames())))

	return w.web, nil
}
