package stats

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"github.com/wyvernzora/litweb/pkg/model"
)

// Options configures a Counter.
type Options struct {
	// Encoding is a tiktoken encoding name, e.g. "o200k_base" or
	// "cl100k_base". Empty defaults to "o200k_base".
	Encoding string
}

// ChunkStat is one row of a per-chunk token report.
type ChunkStat struct {
	Seq    int
	Name   string
	Kind   string
	Tokens int
}

// Counter counts tokens against a configured tiktoken encoding.
type Counter struct {
	encodingName string
	enc          *tiktoken.Tiktoken
}

// NewCounter loads the tiktoken encoding named by opts.Encoding.
func NewCounter(opts Options) (*Counter, error) {
	name := opts.Encoding
	if name == "" {
		name = "o200k_base"
	}
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("stats: loading tiktoken encoding %q: %w", name, err)
	}
	return &Counter{encodingName: name, enc: enc}, nil
}

// Count returns the token count for s under the counter's encoding.
func (c *Counter) Count(s string) int {
	return len(c.enc.Encode(s, nil, nil))
}

// Collect returns one ChunkStat per chunk in web, in source order, counting
// tokens over the chunk's own Text/Code command text (prose or code, not
// expanded references — a named chunk's count reflects its own body, the
// way the source document reads, not what it tangles to).
func (c *Counter) Collect(web *model.Web) []ChunkStat {
	chunks := web.Chunks()
	out := make([]ChunkStat, 0, len(chunks))
	for _, chunk := range chunks {
		var text strings.Builder
		for _, cmd := range chunk.Commands {
			switch cmd.Kind {
			case model.CmdText, model.CmdCode:
				text.WriteString(cmd.Text)
			}
		}
		out = append(out, ChunkStat{
			Seq:    chunk.Seq,
			Name:   chunk.Name,
			Kind:   chunk.Kind.String(),
			Tokens: c.Count(text.String()),
		})
	}
	return out
}

// Total sums the Tokens field across stats.
func Total(stats []ChunkStat) int {
	sum := 0
	for _, s := range stats {
		sum += s.Tokens
	}
	return sum
}
