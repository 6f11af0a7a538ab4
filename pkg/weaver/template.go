package weaver

import (
	"fmt"
	"strings"

	"github.com/wyvernzora/litweb/pkg/model"
)

// renderTemplate substitutes every ${name} placeholder in tmpl from vars.
// A placeholder with no entry in vars is an error; a vars entry unused by
// tmpl is not. This is intentionally the entire engine: no conditionals, no
// loops, no escaping rules beyond the literal "${" / "}" delimiters.
func renderTemplate(tmpl string, vars map[string]string) (string, error) {
	var sb strings.Builder
	i := 0
	for i < len(tmpl) {
		start := strings.Index(tmpl[i:], "${")
		if start < 0 {
			sb.WriteString(tmpl[i:])
			break
		}
		sb.WriteString(tmpl[i : i+start])
		rest := tmpl[i+start+2:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return "", fmt.Errorf("weaver: unterminated %q placeholder in template %q", "${", tmpl)
		}
		name := rest[:end]
		val, ok := vars[name]
		if !ok {
			return "", model.NewError(model.ErrUndefinedPlaceholder, "", 0,
				"undefined placeholder %q in template %q", name, tmpl)
		}
		sb.WriteString(val)
		i = i + start + 2 + end + 1
	}
	return sb.String(), nil
}

func passthroughRender(s string) (string, error) { return s, nil }
