package vtt

import "strings"

// Stats reports what a Sequencer did with its input.
type Stats struct {
	Lines      int
	ByKind     map[Kind]int
	Emptied    int
	Duplicates int
	Emitted    int
}

func newStats() Stats {
	return Stats{ByKind: make(map[Kind]int, len(Kinds))}
}

// Sequencer filters raw lines down to first-occurrence captions in a single
// forward pass.
type Sequencer struct {
	seen  *Seen
	stats Stats
}

// NewSequencer builds a sequencer around a caller-owned Seen set. A nil set is
// replaced by a fresh one.
func NewSequencer(seen *Seen) *Sequencer {
	if seen == nil {
		seen = NewSeen()
	}
	return &Sequencer{seen: seen, stats: newStats()}
}

// Accept processes one raw line. It returns the cleaned caption and true when
// the line should be emitted.
func (s *Sequencer) Accept(raw string) (string, bool) {
	s.stats.Lines++
	line := strings.TrimSpace(raw)
	kind := Classify(line)
	s.stats.ByKind[kind]++
	if kind != KindCaption {
		return "", false
	}
	caption := Clean(line)
	if caption == "" {
		s.stats.Emptied++
		return "", false
	}
	if !s.seen.Add(caption) {
		s.stats.Duplicates++
		return "", false
	}
	s.stats.Emitted++
	return caption, true
}

// Stats returns a snapshot of the counters collected so far.
func (s *Sequencer) Stats() Stats {
	out := s.stats
	out.ByKind = make(map[Kind]int, len(s.stats.ByKind))
	for k, v := range s.stats.ByKind {
		out.ByKind[k] = v
	}
	return out
}

// Dedupe runs lines through a fresh sequencer and returns the emitted captions.
func Dedupe(lines []string) []string {
	seq := NewSequencer(NewSeen())
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if caption, ok := seq.Accept(line); ok {
			out = append(out, caption)
		}
	}
	return out
}
