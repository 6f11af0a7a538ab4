package weaver

// PlainTemplateSet renders a woven document as unadorned text: chunk
// boundaries and references are marked with angle brackets, the way a
// terminal-friendly listing would, with no markup dialect assumed.
func PlainTemplateSet() *TemplateSet {
	return &TemplateSet{
		Name: "plain",

		ChunkBegin: "\n<${name} ${seq}>=\n",
		ChunkEnd:   "${refs}\n",
		FileBegin:  "\n<${name}>=\n",
		FileEnd:    "\n",

		Ref:     "used in ${items}\n",
		RefItem: "${seq} ",

		ReftoName: "<${name}>",
		ReftoSeq:  "<${name} ${seq}>",

		XrefHead: "Files:\n",
		XrefFoot: "",
		XrefItem: "  ${seq}  ${name}\n",

		NameDef: "${name}:\n  defined at ${seq}\n",
		NameRef: "  used at ${seq}\n",

		RenderProse: passthroughRender,
		RenderCode:  passthroughRender,
	}
}
