// Package action composes the three top-level actions a caller drives a
// Web through: Load, Tangle, and Weave. Each reads a shared Options record
// and returns a short human-readable summary, the way the reference
// toolchain's Chunker exposes Push/Chunks as composable pipeline stages
// over one accumulating result.
package action
