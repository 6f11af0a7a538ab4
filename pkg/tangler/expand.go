package tangler

import (
	"strings"

	"github.com/wyvernzora/litweb/pkg/model"
)

// expandOutput concatenates the expansion of every @o chunk sharing name,
// in source order, sharing one cycle-detection scope across all of them.
func expandOutput(web *model.Web, name string) (string, error) {
	var sb strings.Builder
	visiting := make(map[int]bool)
	for _, idx := range web.OutputIndex()[name] {
		text, err := expandChunk(web, idx, nil, visiting)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// expandChunk recursively expands a chunk's command list into its tangled
// text. stack is the chain of chunk names currently being expanded, used
// only to render a cycle error; visiting is the actual cycle guard, keyed
// by chunk index and live only for the duration of that chunk's own
// expansion (a chunk referenced twice from independent branches is fine;
// only a chunk that (transitively) references itself is an error).
func expandChunk(web *model.Web, idx int, stack []string, visiting map[int]bool) (string, error) {
	chunk := web.ChunkAt(idx)

	if visiting[idx] {
		return "", model.NewError(model.ErrCyclicExpansion, chunk.File, chunk.Line,
			"cyclic reference: %s", strings.Join(append(stack, chunk.Name), " -> "))
	}
	visiting[idx] = true
	defer delete(visiting, idx)
	stack = append(stack, chunk.Name)

	var sb strings.Builder
	for _, cmd := range chunk.Commands {
		switch cmd.Kind {
		case model.CmdText, model.CmdCode:
			sb.WriteString(cmd.Text)

		case model.CmdReference:
			defs := web.NamedDefinitions(cmd.RefName)
			if len(defs) == 0 {
				return "", model.NewError(model.ErrUndefinedReference, chunk.File, cmd.RefLine,
					"undefined reference %q", cmd.RefName)
			}

			indent := cmd.RefCol
			if web.ChunkAt(defs[0]).NoIndent {
				indent = 0
			}

			var child strings.Builder
			for _, di := range defs {
				text, err := expandChunk(web, di, stack, visiting)
				if err != nil {
					return "", err
				}
				child.WriteString(text)
			}
			sb.WriteString(indentContinuationLines(child.String(), indent))

		case model.CmdFileXref, model.CmdMacroXref, model.CmdUserIDXref:
			// Cross-reference placeholders are woven-only; tangling ignores
			// them entirely.
		}
	}

	return sb.String(), nil
}

// indentContinuationLines prefixes every line after the first with n
// spaces, leaving the first line untouched so it continues whatever partial
// line the reference appeared on. Applying this once per reference site and
// letting outer expansions re-apply it to their own already-indented text
// is what makes nested indentation additive.
func indentContinuationLines(s string, n int) string {
	if n <= 0 || !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	prefix := strings.Repeat(" ", n)
	for i := 1; i < len(lines); i++ {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
