package vtt

import (
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
)

func TestDedupeScrollingCaptions(t *testing.T) {
	lines := []string{
		"WEBVTT",
		"",
		"1",
		"00:00:00.000 --> 00:00:02.000",
		"Hello world",
		"00:00:02.000 --> 00:00:04.000",
		"Hello world",
		"Hello world again",
	}
	got := strings.Join(Dedupe(lines), "\n")
	if got != "Hello world\nHello world again" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestDedupeYouTubeAutoCaptions(t *testing.T) {
	lines := strings.Split(`WEBVTT
Kind: captions
Language: en

00:00:00.160 --> 00:00:02.470 align:start position:0%
 
so<00:00:00.480><c> today</c><00:00:00.800><c> we're</c>

00:00:02.470 --> 00:00:02.480 align:start position:0%
so today we're
 

00:00:02.480 --> 00:00:05.030 align:start position:0%
so today we're
going<00:00:02.800><c> to</c><00:00:03.040><c> talk</c>

00:00:05.030 --> 00:00:05.040 align:start position:0%
going to talk
 
`, "\n")
	want := []string{"so today we're", "going to talk"}
	if got := Dedupe(lines); !reflect.DeepEqual(got, want) {
		t.Fatalf("Dedupe = %q, want %q", got, want)
	}
}

func TestSequencerDropsPureMarkupAndDigits(t *testing.T) {
	seq := NewSequencer(nil)
	if _, ok := seq.Accept("<00:00:01.000>"); ok {
		t.Fatal("expected pure tag line to be dropped")
	}
	if _, ok := seq.Accept("42"); ok {
		t.Fatal("expected digits-only line to be dropped")
	}
	if caption, ok := seq.Accept("  <i>Hi</i>  "); !ok || caption != "Hi" {
		t.Fatalf("Accept = (%q, %v), want (Hi, true)", caption, ok)
	}
	stats := seq.Stats()
	if stats.Emptied != 1 || stats.ByKind[KindCueNumber] != 1 || stats.Emitted != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestSequencerStats(t *testing.T) {
	seq := NewSequencer(NewSeen())
	for _, line := range []string{"WEBVTT", "", "1", "00:00:00.000 --> 00:00:02.000", "Hello", "Hello", "Bye"} {
		seq.Accept(line)
	}
	stats := seq.Stats()
	if stats.Lines != 7 {
		t.Fatalf("expected 7 lines, got %d", stats.Lines)
	}
	want := map[Kind]int{KindHeader: 1, KindBlank: 1, KindCueNumber: 1, KindTimestamp: 1, KindCaption: 3}
	if !reflect.DeepEqual(stats.ByKind, want) {
		t.Fatalf("ByKind = %v, want %v", stats.ByKind, want)
	}
	if stats.Duplicates != 1 || stats.Emitted != 2 {
		t.Fatalf("unexpected counters %+v", stats)
	}

	stats.ByKind[KindCaption] = 100
	if seq.Stats().ByKind[KindCaption] != 3 {
		t.Fatal("Stats snapshot shares its map with the sequencer")
	}
}

func TestSeenIsCallerOwned(t *testing.T) {
	shared := NewSeen()
	first := NewSequencer(shared)
	if _, ok := first.Accept("Hello"); !ok {
		t.Fatal("expected first caption to be emitted")
	}
	second := NewSequencer(shared)
	if _, ok := second.Accept("Hello"); ok {
		t.Fatal("expected shared set to suppress a repeat")
	}
	fresh := NewSequencer(NewSeen())
	if _, ok := fresh.Accept("Hello"); !ok {
		t.Fatal("expected a fresh set to start empty")
	}
	if shared.Len() != 1 {
		t.Fatalf("expected one entry in shared set, got %d", shared.Len())
	}
}

func TestDedupeOrderAndUniqueness(t *testing.T) {
	pool := []string{
		"alpha", "beta", "<c>alpha</c>", "gamma  delta", "gamma delta", "", "12",
		"00:00:01.000 --> 00:00:02.000", "WEBVTT", "&amp; co", "& co", "<b></b>",
	}
	rng := rand.New(rand.NewPCG(7, 11))
	for round := 0; round < 200; round++ {
		lines := make([]string, rng.IntN(40))
		for i := range lines {
			lines[i] = pool[rng.IntN(len(pool))]
		}

		var want []string
		seen := map[string]bool{}
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if Classify(trimmed) != KindCaption {
				continue
			}
			caption := Clean(trimmed)
			if caption == "" || seen[caption] {
				continue
			}
			seen[caption] = true
			want = append(want, caption)
		}

		got := Dedupe(lines)
		if len(got) != len(want) {
			t.Fatalf("round %d: got %q want %q", round, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("round %d: got %q want %q", round, got, want)
			}
		}
		unique := map[string]bool{}
		for _, caption := range got {
			if unique[caption] {
				t.Fatalf("round %d: %q emitted twice", round, caption)
			}
			unique[caption] = true
		}
	}
}
