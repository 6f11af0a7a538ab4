// Package context extends the standard context package with a typed value
// for passing the current source position through the parsing, tangling,
// and weaving pipeline.
//
// # SourceInfo
//
// SourceInfo holds the file and line a log message or error pertains to:
//
//	type SourceInfo struct {
//	    File string
//	    Line int
//	}
//
// Store and retrieve it from context:
//
//	ctx = context.WithSourceInfo(ctx, context.SourceInfo{File: "main.w", Line: 12})
//	info, ok := context.SourceInfoFrom(ctx)
//
// Combined with pkg/log's WithSource, every log line emitted while
// processing a given file/line can self-locate without threading file/line
// parameters through every function signature.
package context
