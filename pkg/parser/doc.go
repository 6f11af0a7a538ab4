// Package parser drives pkg/lexer's Splitter through the Prose/InBody state
// machine described in SPEC_FULL.md §4.3, maintains the @i include stack,
// extracts optional document front matter, and assembles the result into a
// pkg/model.Web.
//
// # Entry point
//
// Load reads a root WEB file, strips any leading YAML front matter, and
// parses the remainder into a Web:
//
//	web, err := parser.Load(ctx, "book.w", parser.LoadOptions{})
//
// # States
//
// Prose accumulates text into a lazily-materialized anonymous chunk. @d and
// @o headers finalize it, open a Named or Output chunk, and transition to
// InBody. @i pushes an included file's content into the same token stream,
// recursively, so included prose/chunks splice in exactly where the @i line
// appeared. InBody accumulates Code commands and Reference/Xref placeholders
// until @} returns to Prose.
package parser
