package parser

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/wyvernzora/litweb/pkg/lexer"
	"github.com/wyvernzora/litweb/pkg/log"
	"github.com/wyvernzora/litweb/pkg/model"
)

// handleIncludeDirective implements "@i filename\n": it resolves filename
// relative to the directory of the file currently being read, and if found,
// recursively parses its content in place as though it had been written at
// this position in the including file. A missing target is a soft warning
// when it matches the configured permit list, otherwise fatal.
func (w *worker) handleIncludeDirective(sp *lexer.Splitter, tok lexer.Token) error {
	raw := w.readLine(sp)
	target := strings.TrimSpace(raw)
	line := tok.Line
	if target == "" {
		return model.NewError(model.ErrMalformedOption, w.curFile, line, "@i with no file name")
	}

	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(w.curFile), target)
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		if w.isPermitted(target) {
			log.Logger(w.ctx).Warn("skipping missing optional include",
				slog.String("target", resolved), slog.Any("error", err))
			return nil
		}
		return model.NewError(model.ErrMissingInclude, w.curFile, line, "cannot include %q: %v", target, err)
	}

	if err := w.pushInclude(resolved); err != nil {
		return model.NewError(model.ErrMissingInclude, w.curFile, line, "%v", err)
	}
	defer w.popInclude()

	prevFile := w.curFile
	w.curFile = resolved
	defer func() { w.curFile = prevFile }()

	log.Logger(w.ctx).Debug("including file", slog.String("target", resolved))

	childSp, err := lexer.NewSplitter(resolved, string(content), w.opts.Lead)
	if err != nil {
		return err
	}
	return w.run(childSp)
}

// pushInclude records resolved as active and errors if it is already on the
// include stack, preventing a self-referential @i cycle from looping
// forever.
func (w *worker) pushInclude(resolved string) error {
	abs, err := filepath.Abs(resolved)
	if err != nil {
		abs = resolved
	}
	for _, p := range w.includeStack {
		if p == abs {
			return fmt.Errorf("parser: include cycle detected at %s", resolved)
		}
	}
	w.includeStack = append(w.includeStack, abs)
	return nil
}

func (w *worker) popInclude() {
	w.includeStack = w.includeStack[:len(w.includeStack)-1]
}

// isPermitted reports whether target matches one of the configured
// permit-list glob patterns (doublestar semantics, so "vendor/**" blankets a
// whole directory of optional includes). An entry naming the include
// command itself (e.g. "@i" for the default lead) permits every target.
func (w *worker) isPermitted(target string) bool {
	includeCmd := string(w.opts.Lead) + "i"
	for _, pattern := range w.opts.PermitList {
		if pattern == includeCmd {
			return true
		}
		if ok, _ := doublestar.Match(pattern, target); ok {
			return true
		}
	}
	return false
}
