// Package lexer implements the Splitter: a lazy, finite, non-restartable
// token scanner over WEB source text.
//
// A token is either a marker — exactly the two characters "@x" for any
// single character x, including a literal newline so callers can recognize the
// line-terminated @i form — or a text run, the (possibly empty) span of
// characters between two markers. The Splitter performs no interpretation
// of markers; it is the Parser's job (pkg/parser) to classify them and to
// turn "@@" into a literal "@".
package lexer
