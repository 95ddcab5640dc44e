// Package transcript converts caption files into deduplicated plain text.
//
// The Service decodes the source file, streams its lines through a
// vtt.Sequencer with a fresh Seen set, and either returns the transcript or
// writes it to an output file. Failures surface as ErrInputNotFound or a
// *ProcessingError so the CLI can map them to user-facing messages.
package transcript
