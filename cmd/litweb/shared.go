package main

import (
	"fmt"

	"github.com/wyvernzora/litweb/pkg/action"
	"github.com/wyvernzora/litweb/pkg/weaver"
)

// resolveTemplateSet maps the --templates flag to a TemplateSet: one of the
// three builtin names, or a path to a .toml file loaded via
// weaver.LoadTemplateSet.
func resolveTemplateSet(name string) (*weaver.TemplateSet, error) {
	switch name {
	case "", "plain":
		return weaver.PlainTemplateSet(), nil
	case "markdown":
		return weaver.MarkdownTemplateSet(), nil
	case "html":
		return weaver.HTMLTemplateSet(), nil
	default:
		return weaver.LoadTemplateSet(name)
	}
}

// resolveRefStyle maps the --ref-style flag to a weaver.ReferenceStyle.
func resolveRefStyle(name string) (weaver.ReferenceStyle, error) {
	switch name {
	case "", "simple":
		return weaver.StyleSimple, nil
	case "transitive":
		return weaver.StyleTransitive, nil
	default:
		return 0, fmt.Errorf("refStyle must be %q or %q, got %q", "simple", "transitive", name)
	}
}

// actionOptions builds the shared action.Options record from the CLI's
// merged Options.
func actionOptions(o *Options) (action.Options, error) {
	lead, err := o.LeadRune()
	if err != nil {
		return action.Options{}, err
	}
	templates, err := resolveTemplateSet(o.Templates)
	if err != nil {
		return action.Options{}, err
	}
	style, err := resolveRefStyle(o.RefStyle)
	if err != nil {
		return action.Options{}, err
	}

	return action.Options{
		Lead:      lead,
		Permit:    o.Permit,
		Strict:    o.Strict,
		OutDir:    o.OutDir,
		Templates: templates,
		Style:     style,
		Encoding:  o.Encoding,
	}, nil
}

// resolveFiles expands each web-file argument (which may be a glob
// pattern) into a flat, deduplicated file list.
func resolveFiles(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no web files given")
	}
	files, err := ExpandGlobs(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched %v", patterns)
	}
	return files, nil
}
