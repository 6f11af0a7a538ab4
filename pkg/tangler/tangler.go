package tangler

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/wyvernzora/litweb/pkg/log"
	"github.com/wyvernzora/litweb/pkg/model"
)

// Options configures a Tangle call.
type Options struct {
	// OutDir prefixes every @o chunk's file name. Empty writes relative to
	// the current working directory.
	OutDir string
}

// Result summarizes one Tangle call for the action driver and CLI to
// report to the user.
type Result struct {
	Written []string // output paths whose content changed and were (re)written
	Skipped []string // output paths already up to date
}

// Tangle writes one file per distinct @o chunk name in web.
func Tangle(ctx context.Context, web *model.Web, opts Options) (*Result, error) {
	logger := log.Logger(ctx)
	res := &Result{}

	for _, name := range web.OutputNames() {
		content, err := expandOutput(web, name)
		if err != nil {
			return nil, err
		}

		outPath := name
		if opts.OutDir != "" {
			outPath = filepath.Join(opts.OutDir, name)
		}

		changed, err := writeIfChanged(outPath, []byte(content))
		if err != nil {
			return nil, fmt.Errorf("tangler: %s: %w", outPath, err)
		}
		if changed {
			res.Written = append(res.Written, outPath)
			logger.Info("tangled output", slog.String("file", outPath), slog.Int("bytes", len(content)))
		} else {
			res.Skipped = append(res.Skipped, outPath)
			logger.Debug("output unchanged", slog.String("file", outPath))
		}
	}

	return res, nil
}

// Summary renders a short human-readable line for the action driver.
func (r *Result) Summary() string {
	return fmt.Sprintf("tangled %d file(s), %d unchanged", len(r.Written), len(r.Skipped))
}
