package model

// ChunkKind identifies which of the three Chunk variants a Chunk is.
type ChunkKind int

const (
	// ChunkAnonymous is a prose chunk: content is purely for weaving.
	ChunkAnonymous ChunkKind = iota
	// ChunkNamed is a @d chunk: content contributes to a named macro.
	ChunkNamed
	// ChunkOutput is an @o chunk: content contributes to a tangled file.
	ChunkOutput
)

func (k ChunkKind) String() string {
	switch k {
	case ChunkAnonymous:
		return "anonymous"
	case ChunkNamed:
		return "named"
	case ChunkOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Reference records a (referrer chunk, command) pair where a named/output
// Chunk is expanded by a @<...@> reference elsewhere in the Web. Populated
// by the post-parse back-link pass; see Web.ResolveReferences.
type Reference struct {
	FromChunk int // index into Web.chunks
	FromCmd   int // index into the referrer's Commands
}

// Chunk is a contiguous slice of the source document: anonymous (prose),
// named (@d), or output (@o).
type Chunk struct {
	Kind ChunkKind

	// Name is the canonical name for Named/Output chunks. For ChunkOutput
	// it is the output file path, taken verbatim (not whitespace-squeezed
	// beyond the normal option-parser tokenization already applied to it).
	Name string

	// NoIndent is true if this chunk was declared with -noindent. Only
	// meaningful for ChunkNamed; ChunkOutput chunks are never referenced
	// and ignore it.
	NoIndent bool

	// Seq is the Web-assigned 1-based sequence number.
	Seq int

	// Line is the source line of the chunk's opening command (or, for the
	// lazily-materialized leading anonymous chunk, of its first content).
	Line int
	File string

	Commands []Command

	// ReferencedBy is populated by the post-parse pass for Named/Output
	// chunks: every (chunk, command) pair that references this chunk by
	// name.
	ReferencedBy []Reference
}

// AppendText appends a CmdText command to the chunk, merging into the
// previous command if it is also CmdText so that adjacent text runs (e.g.
// separated only by an unescaped "@@") read as one command.
func (c *Chunk) AppendText(s string) {
	if s == "" {
		return
	}
	if n := len(c.Commands); n > 0 && c.Commands[n-1].Kind == CmdText {
		c.Commands[n-1].Text += s
		return
	}
	c.Commands = append(c.Commands, Command{Kind: CmdText, Text: s})
}

// AppendCode appends a CmdCode command, merging with a trailing CmdCode
// command the same way AppendText does.
func (c *Chunk) AppendCode(s string) {
	if s == "" {
		return
	}
	if n := len(c.Commands); n > 0 && c.Commands[n-1].Kind == CmdCode {
		c.Commands[n-1].Text += s
		return
	}
	c.Commands = append(c.Commands, Command{Kind: CmdCode, Text: s})
}
