package weaver

import "github.com/wyvernzora/litweb/pkg/model"

// ReferenceStyle selects how a chunk's "used in" list is built.
type ReferenceStyle int

const (
	// StyleSimple lists each direct referrer chunk once.
	StyleSimple ReferenceStyle = iota
	// StyleTransitive lists every chunk reachable by walking the
	// referrer-of-referrer chain upward, so a deeply nested macro shows
	// the full path up to (and including) the output chunks it eventually
	// feeds, not just its immediate parent.
	StyleTransitive
)

// usedBy returns the chunks that (directly, or transitively per style)
// reference the chunk at idx, deduplicated and in first-reached order.
func usedBy(web *model.Web, idx int, style ReferenceStyle) []*model.Chunk {
	seen := map[int]bool{}
	var out []*model.Chunk

	var visit func(int)
	visit = func(i int) {
		for _, ref := range web.ChunkAt(i).ReferencedBy {
			if seen[ref.FromChunk] {
				continue
			}
			seen[ref.FromChunk] = true
			out = append(out, web.ChunkAt(ref.FromChunk))
			if style == StyleTransitive {
				visit(ref.FromChunk)
			}
		}
	}
	visit(idx)
	return out
}
