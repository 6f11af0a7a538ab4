// Package stats estimates token counts against a chunk's own text, for the
// `litweb stats` subcommand and the weaver's optional stats appendix. It
// reports against chunks that already exist rather than deciding how to
// split them, the reverse of the reference toolchain's token-budget
// chunking — see Counter.
package stats
