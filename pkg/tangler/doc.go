// Package tangler writes one output file per @o chunk in a Web by
// recursively expanding Reference commands, reproducing the contextual
// indentation rules described in SPEC_FULL.md §4.5: a reference's source
// column indents every line of its expansion after the first, and nested
// references compose additively unless a chunk was declared -noindent.
//
// Writes are idempotent: computed content is compared against whatever is
// already on disk and the write is skipped if they match, and otherwise
// performed atomically via a sibling temp file and rename.
package tangler
