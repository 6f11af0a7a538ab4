package context

import "context"

type siKeyType struct{}

var siKey siKeyType

// SourceInfo carries the current source position through the processing
// pipeline. It's safe to store in context and lets any log call or error
// constructed downstream self-locate without an extra parameter.
type SourceInfo struct {
	File string // File path (root web file, or the currently open @i include)
	Line int    // 1-based source line, 0 if not yet known
}

// WithSourceInfo returns a child context carrying source position.
func WithSourceInfo(ctx context.Context, si SourceInfo) context.Context {
	return context.WithValue(ctx, siKey, si)
}

// SourceInfoFrom returns the source position if present.
func SourceInfoFrom(ctx context.Context) (SourceInfo, bool) {
	if v := ctx.Value(siKey); v != nil {
		if si, ok := v.(SourceInfo); ok {
			return si, true
		}
	}
	return SourceInfo{}, false
}

// MustSourceInfo returns the source position or a zero value if missing.
func MustSourceInfo(ctx context.Context) SourceInfo {
	si, _ := SourceInfoFrom(ctx)
	return si
}
