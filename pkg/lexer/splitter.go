package lexer

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// markerPattern implements the `@.|\n` scan for the default lead character:
// any "@" followed by exactly one more character (regexp2.Singleline so "."
// also matches a literal newline, covering the "@\n" edge case), or a bare
// newline.
var markerPattern = regexp2.MustCompile(`@.|\n`, regexp2.Singleline)

// markerPatternFor builds the scan pattern for a non-default lead character
// (the command lead is configurable; see parser.LoadOptions.Lead).
func markerPatternFor(lead rune) (*regexp2.Regexp, error) {
	if lead == '@' {
		return markerPattern, nil
	}
	pat := regexp.QuoteMeta(string(lead)) + `.|\n`
	re, err := regexp2.Compile(pat, regexp2.Singleline)
	if err != nil {
		return nil, fmt.Errorf("lexer: lead character %q: %w", lead, err)
	}
	return re, nil
}

// span locates one regexp2 match in rune offsets.
type span struct {
	start, length int
}

// Splitter produces the lazy, finite, non-restartable token sequence
// described in SPEC_FULL.md §4.1. It is not safe for concurrent use by
// multiple goroutines.
type Splitter struct {
	file  string
	runes []rune
	spans []span

	emitIdx int // index into spans of the next marker to emit
	pos     int // rune offset of the next unconsumed rune in runes
	line    int
	col     int
}

// NewSplitter scans src once up front (regexp2 has no incremental-match
// API usable at an arbitrary offset) and returns a Splitter ready to pull
// tokens from in source order via Next. lead optionally overrides the
// command lead character (default '@'); at most one value is honored.
func NewSplitter(file, src string, lead ...rune) (*Splitter, error) {
	lc := '@'
	if len(lead) > 0 {
		lc = lead[0]
	}
	pattern, err := markerPatternFor(lc)
	if err != nil {
		return nil, err
	}

	runes := []rune(src)

	var spans []span
	m, err := pattern.FindStringMatch(src)
	if err != nil {
		return nil, fmt.Errorf("lexer: scanning %s: %w", file, err)
	}
	for m != nil {
		spans = append(spans, span{start: m.Index, length: m.Length})
		m, err = pattern.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("lexer: scanning %s: %w", file, err)
		}
	}

	return &Splitter{
		file:  file,
		runes: runes,
		spans: spans,
		line:  1,
		col:   1,
	}, nil
}

// advance moves the line/col cursor across the given rune slice.
func (s *Splitter) advance(consumed []rune) {
	for _, r := range consumed {
		if r == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
}

// Next returns the next token and true, or a zero Token and false at EOF.
func (s *Splitter) Next() (Token, bool) {
	// A text run precedes the next marker (or EOF) whenever there's a gap
	// between the cursor and the next match.
	nextMatchStart := len(s.runes)
	if s.emitIdx < len(s.spans) {
		nextMatchStart = s.spans[s.emitIdx].start
	}

	if s.pos < nextMatchStart {
		startLine, startCol := s.line, s.col
		run := s.runes[s.pos:nextMatchStart]
		s.advance(run)
		s.pos = nextMatchStart
		return Token{Kind: TokenText, Text: string(run), Line: startLine, Col: startCol}, true
	}

	if s.emitIdx >= len(s.spans) {
		return Token{}, false
	}

	sp := s.spans[s.emitIdx]
	s.emitIdx++
	startLine, startCol := s.line, s.col
	matched := s.runes[sp.start : sp.start+sp.length]
	s.advance(matched)
	s.pos = sp.start + sp.length

	text := string(matched)
	tok := Token{Kind: TokenMarker, Text: text, Line: startLine, Col: startCol}
	if len(matched) == 1 {
		tok.Marker = '\n'
	} else {
		tok.Marker = matched[1]
	}
	return tok, true
}

// File returns the source file name this Splitter was constructed for, for
// error reporting by callers that don't otherwise track it.
func (s *Splitter) File() string { return s.file }
