package parser

import (
	"fmt"
	"strings"

	"github.com/wyvernzora/litweb/pkg/lexer"
	"github.com/wyvernzora/litweb/pkg/model"
)

// readUntilMarker accumulates token text, treating a bare newline marker as
// a literal "\n", until it sees the two-character marker "@<want>", which it
// consumes without including in the result. Any other two-character marker
// encountered first is a malformed header.
func (w *worker) readUntilMarker(sp *lexer.Splitter, want rune) (string, error) {
	var sb strings.Builder
	for {
		tok, ok := sp.Next()
		if !ok {
			return "", fmt.Errorf("parser: %s: unexpected end of input scanning for @%c", w.curFile, want)
		}
		if tok.Kind == lexer.TokenMarker {
			if !tok.IsCommand() {
				sb.WriteByte('\n')
				continue
			}
			if tok.Marker == want {
				return sb.String(), nil
			}
			return "", model.NewColumnError(model.ErrMalformedOption, w.curFile, tok.Line, tok.Col,
				"unexpected %q while scanning header (expected @%c)", tok.Text, want)
		}
		sb.WriteString(tok.Text)
	}
}

// readReferenceName accumulates a @<name@> reference's name. Per the
// resolved restriction on reference names, any "@" inside the name
// (including "@@") is a parse error rather than an escape.
func (w *worker) readReferenceName(sp *lexer.Splitter) (string, error) {
	var sb strings.Builder
	for {
		tok, ok := sp.Next()
		if !ok {
			return "", fmt.Errorf("parser: %s: unterminated reference (missing @>)", w.curFile)
		}
		if tok.Kind == lexer.TokenMarker {
			if tok.IsCommand() && tok.Marker == '>' {
				return sb.String(), nil
			}
			return "", model.NewColumnError(model.ErrUnexpectedAtInRef, w.curFile, tok.Line, tok.Col,
				"unexpected %q inside reference name", tok.Text)
		}
		sb.WriteString(tok.Text)
	}
}

// readLine accumulates raw token text up to (but not including) the next
// bare-newline marker, or EOF. Used for the line-terminated "@i path" form.
func (w *worker) readLine(sp *lexer.Splitter) string {
	var sb strings.Builder
	for {
		tok, ok := sp.Next()
		if !ok {
			break
		}
		if tok.Kind == lexer.TokenMarker && !tok.IsCommand() {
			break
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
