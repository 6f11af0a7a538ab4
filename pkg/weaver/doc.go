// Package weaver walks a Web in source order and renders it through a
// pluggable TemplateSet, as described in SPEC_FULL.md §4.4: anonymous
// chunks emit prose verbatim (through the template set's own markup hook),
// named/output chunks are wrapped in begin/end templates, references render
// via a refto template, and the three cross-reference markers render the
// matching global list.
//
// Templates are `${identifier}` substitution strings, deliberately not
// text/template — see TemplateSet and renderTemplate. Three ready-made sets
// ship in this package (PlainTemplateSet, MarkdownTemplateSet,
// HTMLTemplateSet); LoadTemplateSet reads a custom set from a TOML file.
package weaver
