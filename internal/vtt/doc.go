// Package vtt turns WebVTT caption lines into deduplicated plain text.
//
// Auto-generated captions scroll progressively, so the same sentence is
// repeated across overlapping cues. The package classifies each raw line
// (header, metadata, timestamp, cue number, blank, caption), strips inline
// markup and entities from caption lines, and emits every distinct caption
// exactly once at the position of its first occurrence.
//
// The Seen set is owned by the caller and scoped to one conversion; nothing in
// this package keeps state between runs.
package vtt
