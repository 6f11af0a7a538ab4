// Package model holds the in-memory document representation produced by
// pkg/parser and consumed by pkg/tangler and pkg/weaver: Web, Chunk and
// Command.
//
// A Web owns an ordered slice of Chunks; each Chunk owns an ordered, flat
// slice of Commands. References between chunks are resolved by canonical
// name through the Web's name index rather than by direct pointer, which
// keeps the object graph a tree even when the macro graph they describe is
// cyclic.
package model
