package weaver

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// MarkdownTemplateSet renders chunk bodies as fenced code blocks and prose
// through a CommonMark pass, with references and cross-references as
// Markdown anchor links keyed by chunk sequence number.
func MarkdownTemplateSet() *TemplateSet {
	md := goldmark.New()
	renderProse := func(text string) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(text), &buf); err != nil {
			return "", fmt.Errorf("weaver: converting markdown prose to html: %w", err)
		}
		return buf.String(), nil
	}

	return &TemplateSet{
		Name: "markdown",

		ChunkBegin: "\n#### ⟨${name}⟩ ${seq}\n\n```\n",
		ChunkEnd:   "```\n${refs}\n",
		FileBegin:  "\n#### File `${name}`\n\n```\n",
		FileEnd:    "```\n",

		Ref:     "*Used in:* ${items}\n",
		RefItem: "[${seq}](#chunk-${seq}) ",

		ReftoName: "⟨${name}⟩",
		ReftoSeq:  "[⟨${name}⟩](#chunk-${seq})",

		XrefHead: "## Files\n\n",
		XrefFoot: "\n",
		XrefItem: "- [${name}](#chunk-${seq})\n",

		NameDef: "- **${name}** — defined at [${seq}](#chunk-${seq})\n",
		NameRef: "  - used at [${seq}](#chunk-${seq})\n",

		RenderProse: renderProse,
		RenderCode:  passthroughRender,
	}
}
