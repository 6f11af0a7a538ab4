package model

import "fmt"

// Web is the top-level container: an ordered list of Chunks plus the name
// and output indexes used to resolve references and locate tangle targets.
type Web struct {
	chunks []Chunk

	// namedIndex maps a canonical chunk name to the ordered list of
	// indices into chunks that define it (multiple @d chunks may share a
	// name; they concatenate in source order at tangle time).
	namedIndex map[string][]int

	// outputIndex maps an output file name to the ordered list of indices
	// into chunks that contribute to it.
	outputIndex map[string][]int

	// Metadata carries the optional document-level front matter described
	// in SPEC_FULL.md §3 ("Supplemented: document metadata"). Never nil.
	Metadata map[string]any
}

// NewWeb creates an empty Web ready to accept chunks via AddChunk.
func NewWeb() *Web {
	return &Web{
		namedIndex:  make(map[string][]int),
		outputIndex: make(map[string][]int),
		Metadata:    make(map[string]any),
	}
}

// Chunks returns the Web's chunks in source order. The returned slice
// aliases internal storage and must not be mutated by the caller; use
// ChunkAt to get a pointer into Web-owned storage for in-place edits (e.g.
// the post-parse back-link pass).
func (w *Web) Chunks() []Chunk { return w.chunks }

// Len returns the total chunk count.
func (w *Web) Len() int { return len(w.chunks) }

// ChunkAt returns a pointer to the chunk at the given index, for callers
// (the parser, the post-parse pass) that need to mutate it in place.
func (w *Web) ChunkAt(i int) *Chunk { return &w.chunks[i] }

// AddChunk appends a chunk, assigns its sequence number, and indexes it by
// name (Named) or output path (Output). Returns the assigned index.
func (w *Web) AddChunk(c Chunk) int {
	c.Seq = len(w.chunks) + 1
	idx := len(w.chunks)
	w.chunks = append(w.chunks, c)

	switch c.Kind {
	case ChunkNamed:
		w.namedIndex[c.Name] = append(w.namedIndex[c.Name], idx)
	case ChunkOutput:
		w.outputIndex[c.Name] = append(w.outputIndex[c.Name], idx)
	}
	return idx
}

// NamedIndex exposes the canonical-name -> chunk-index map for read-only
// use by the tangler/weaver (e.g. the weaver's xref listings).
func (w *Web) NamedIndex() map[string][]int { return w.namedIndex }

// OutputIndex exposes the output-path -> chunk-index map.
func (w *Web) OutputIndex() map[string][]int { return w.outputIndex }

// OutputNames returns the set of distinct output file names in first-seen
// order.
func (w *Web) OutputNames() []string {
	names := make([]string, 0, len(w.outputIndex))
	seen := make(map[string]bool, len(w.outputIndex))
	for _, c := range w.chunks {
		if c.Kind == ChunkOutput && !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	return names
}

// NamedDefinitions returns the indices of every @d chunk sharing the given
// canonical name, in source order, or nil if none.
func (w *Web) NamedDefinitions(name string) []int {
	return w.namedIndex[name]
}

// Resolve looks up a (possibly abbreviated) reference name against the
// named index, per SPEC_FULL.md §3: an exact match wins; otherwise, if the
// name ends in "...", it must match the unique full name sharing its
// prefix. Returns the canonical full name.
func (w *Web) Resolve(name string) (string, error) {
	if _, ok := w.namedIndex[name]; ok {
		return name, nil
	}

	if !IsAbbreviation(name) {
		return "", fmt.Errorf("undefined reference %q", name)
	}

	prefix := abbreviationPrefix(name)
	var matches []string
	for full := range w.namedIndex {
		if len(full) >= len(prefix) && full[:len(prefix)] == prefix {
			matches = append(matches, full)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("undefined reference %q (abbreviation matches nothing)", name)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous abbreviation %q matches %d names: %v", name, len(matches), matches)
	}
}

// ResolveReferences is the post-parse pass: it resolves every Reference
// command's target name (exact or abbreviated) and records a back-link on
// the target chunk(s). It also verifies every output chunk has at least one
// chunk contributing to it (trivially true here since output chunks always
// carry their own body, but multi-@o-with-same-name concatenation is
// allowed and checked for emptiness).
func (w *Web) ResolveReferences() error {
	for ci := range w.chunks {
		chunk := &w.chunks[ci]
		for cmdi := range chunk.Commands {
			cmd := &chunk.Commands[cmdi]
			if cmd.Kind != CmdReference {
				continue
			}
			full, err := w.Resolve(cmd.RefName)
			if err != nil {
				return &PositionedError{
					Kind: classifyResolveError(err),
					File: chunk.File,
					Line: cmd.RefLine,
					Col:  cmd.RefCol,
					Msg:  err.Error(),
				}
			}
			cmd.RefName = full
			for _, targetIdx := range w.namedIndex[full] {
				target := &w.chunks[targetIdx]
				target.ReferencedBy = append(target.ReferencedBy, Reference{FromChunk: ci, FromCmd: cmdi})
			}
		}
	}

	for outName, indices := range w.outputIndex {
		if len(indices) == 0 {
			return fmt.Errorf("output %q: %s", outName, ErrNoChunksForOutput)
		}
	}

	return nil
}

func classifyResolveError(err error) ErrorKind {
	msg := err.Error()
	if len(msg) >= len("ambiguous") && msg[:9] == "ambiguous" {
		return ErrAmbiguousAbbreviation
	}
	return ErrUndefinedReference
}
