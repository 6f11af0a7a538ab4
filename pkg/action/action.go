package action

import (
	"context"
	"fmt"
	"io"

	"github.com/wyvernzora/litweb/pkg/model"
	"github.com/wyvernzora/litweb/pkg/parser"
	"github.com/wyvernzora/litweb/pkg/stats"
	"github.com/wyvernzora/litweb/pkg/tangler"
	"github.com/wyvernzora/litweb/pkg/weaver"
)

// Options is the shared configuration record every action reads from.
type Options struct {
	Lead   rune     // command lead character; 0 means '@'
	Permit []string // glob patterns permitting missing @i targets
	Strict bool     // reject unknown commands in Prose instead of passing them through

	OutDir string // Tangle: directory output files are written relative to

	Templates *weaver.TemplateSet   // Weave: nil means PlainTemplateSet
	Style     weaver.ReferenceStyle // Weave: reference list style

	Encoding string // Stats: tiktoken encoding name
}

// Load parses path into a Web.
func Load(ctx context.Context, path string, opts Options) (*model.Web, error) {
	return parser.Load(ctx, path, parser.LoadOptions{
		Lead:       opts.Lead,
		PermitList: opts.Permit,
		Strict:     opts.Strict,
	})
}

// Tangle writes web's output chunks to disk and returns a one-line summary.
func Tangle(ctx context.Context, web *model.Web, opts Options) (string, error) {
	res, err := tangler.Tangle(ctx, web, tangler.Options{OutDir: opts.OutDir})
	if err != nil {
		return "", err
	}
	return res.Summary(), nil
}

// Weave renders web through opts' template set to out and returns a
// one-line summary.
func Weave(ctx context.Context, web *model.Web, out io.Writer, opts Options) (string, error) {
	if err := weaver.Weave(ctx, web, out, weaver.Options{Templates: opts.Templates, Style: opts.Style}); err != nil {
		return "", err
	}
	return fmt.Sprintf("wove %d chunk(s)", web.Len()), nil
}

// Stats counts tokens against web's chunks under opts.Encoding and returns
// the rows alongside a one-line summary.
func Stats(web *model.Web, opts Options) ([]stats.ChunkStat, string, error) {
	counter, err := stats.NewCounter(stats.Options{Encoding: opts.Encoding})
	if err != nil {
		return nil, "", err
	}
	rows := counter.Collect(web)
	return rows, fmt.Sprintf("%d chunk(s), %d token(s) total", len(rows), stats.Total(rows)), nil
}
