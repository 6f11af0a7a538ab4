package weaver

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TemplateSet is the full template contract a weave pass renders through:
// one ${name}-substitution template per structural position in the woven
// output, plus two rendering hooks for a chunk's own prose/code text (the
// builtin markdown/html sets run these through goldmark; plain passes the
// text through unchanged).
type TemplateSet struct {
	Name string

	ChunkBegin string // cb_template: opens a named chunk. Vars: seq, name, kind, concat, lineNumber.
	ChunkEnd   string // ce_template: closes a named chunk. Vars: seq, name, kind, concat, lineNumber, refs.

	FileBegin string // fb_template: opens an output chunk. Vars: seq, name, kind, concat, lineNumber.
	FileEnd   string // fe_template: closes an output chunk. Vars: seq, name, kind, concat, lineNumber, refs.

	// The four begin/end templates above also receive docTitle, docAuthor
	// and docDate when the Web's front matter carries title/author/date.

	Ref     string // ref_template: wraps a chunk's rendered "used in" list. Vars: items.
	RefItem string // ref_item_template: one entry in that list. Vars: seq, name.

	ReftoName string // refto_name_template: an inline reference whose target seq is unknown. Vars: name.
	ReftoSeq  string // refto_seq_template: an inline reference to a known target. Vars: name, seq.

	XrefHead string // xref_head_template: opens a global cross-reference list.
	XrefFoot string // xref_foot_template: closes it.
	XrefItem string // xref_item_template: one list entry. Vars: seq, name.

	NameDef string // name_def_template: a name-index definition entry. Vars: name, seq.
	NameRef string // name_ref_template: a name-index "used at" entry. Vars: name, seq.

	// RenderProse adapts an anonymous chunk's literal text into this set's
	// markup dialect. RenderCode does the same for a named/output chunk's
	// code text.
	RenderProse func(text string) (string, error)
	RenderCode  func(text string) (string, error)
}

// tomlTemplateSet is the on-disk shape for LoadTemplateSet: just the
// string templates, keyed by the same names SPEC_FULL.md §4.4 enumerates.
type tomlTemplateSet struct {
	Name string `toml:"name"`

	ChunkBegin string `toml:"cb_template"`
	ChunkEnd   string `toml:"ce_template"`
	FileBegin  string `toml:"fb_template"`
	FileEnd    string `toml:"fe_template"`

	Ref     string `toml:"ref_template"`
	RefItem string `toml:"ref_item_template"`

	ReftoName string `toml:"refto_name_template"`
	ReftoSeq  string `toml:"refto_seq_template"`

	XrefHead string `toml:"xref_head_template"`
	XrefFoot string `toml:"xref_foot_template"`
	XrefItem string `toml:"xref_item_template"`

	NameDef string `toml:"name_def_template"`
	NameRef string `toml:"name_ref_template"`
}

// LoadTemplateSet reads a custom template set from a TOML file. The loaded
// set's prose/code rendering hooks are plain passthroughs: a custom dialect
// is expected to express any markup it wants directly in its templates,
// the same way the plain builtin set does.
func LoadTemplateSet(path string) (*TemplateSet, error) {
	var raw tomlTemplateSet
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("weaver: loading template set %s: %w", path, err)
	}

	return &TemplateSet{
		Name:        raw.Name,
		ChunkBegin:  raw.ChunkBegin,
		ChunkEnd:    raw.ChunkEnd,
		FileBegin:   raw.FileBegin,
		FileEnd:     raw.FileEnd,
		Ref:         raw.Ref,
		RefItem:     raw.RefItem,
		ReftoName:   raw.ReftoName,
		ReftoSeq:    raw.ReftoSeq,
		XrefHead:    raw.XrefHead,
		XrefFoot:    raw.XrefFoot,
		XrefItem:    raw.XrefItem,
		NameDef:     raw.NameDef,
		NameRef:     raw.NameRef,
		RenderProse: passthroughRender,
		RenderCode:  passthroughRender,
	}, nil
}
