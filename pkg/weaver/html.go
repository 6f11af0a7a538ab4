package weaver

import (
	"bytes"
	"fmt"
	gohtml "html"

	"github.com/yuin/goldmark"
)

// HTMLTemplateSet renders chunk bodies as escaped <pre><code> blocks and
// prose through a CommonMark pass to HTML, with references and
// cross-references as <a> anchors keyed by chunk sequence number.
func HTMLTemplateSet() *TemplateSet {
	md := goldmark.New()
	renderProse := func(text string) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(text), &buf); err != nil {
			return "", fmt.Errorf("weaver: converting prose to html: %w", err)
		}
		return buf.String(), nil
	}
	renderCode := func(text string) (string, error) {
		return gohtml.EscapeString(text), nil
	}

	return &TemplateSet{
		Name: "html",

		ChunkBegin: "<section id=\"chunk-${seq}\"><h4>⟨${name}⟩ ${seq}</h4><pre><code>",
		ChunkEnd:   "</code></pre>${refs}</section>\n",
		FileBegin:  "<section id=\"chunk-${seq}\"><h4>File ${name}</h4><pre><code>",
		FileEnd:    "</code></pre></section>\n",

		Ref:     "<p>Used in: ${items}</p>\n",
		RefItem: "<a href=\"#chunk-${seq}\">${seq}</a> ",

		ReftoName: "⟨${name}⟩",
		ReftoSeq:  "<a href=\"#chunk-${seq}\">⟨${name}⟩</a>",

		XrefHead: "<h3>Files</h3>\n<ul>\n",
		XrefFoot: "</ul>\n",
		XrefItem: "<li><a href=\"#chunk-${seq}\">${name}</a></li>\n",

		NameDef: "<li><strong>${name}</strong> defined at <a href=\"#chunk-${seq}\">${seq}</a>\n",
		NameRef: "<br>used at <a href=\"#chunk-${seq}\">${seq}</a>\n",

		RenderProse: renderProse,
		RenderCode:  renderCode,
	}
}
