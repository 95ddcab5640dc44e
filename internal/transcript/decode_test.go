package transcript

import (
	"errors"
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		label string
		want  string
	}{
		{"plain utf-8", []byte("héllo"), "utf-8", "héllo"},
		{"default label", []byte("hi"), "", "hi"},
		{"utf-8 bom stripped", []byte("\xEF\xBB\xBFWEBVTT"), "utf-8", "WEBVTT"},
		{"utf-16le bom overrides label", []byte{0xFF, 0xFE, 'H', 0, 'i', 0}, "utf-8", "Hi"},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, 'H', 0, 'i'}, "windows-1252", "Hi"},
		{"windows-1252", []byte("caf\xe9"), "windows-1252", "café"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeText(tc.raw, tc.label)
			if err != nil {
				t.Fatalf("decodeText: %v", err)
			}
			if got != tc.want {
				t.Fatalf("decodeText = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeTextRejectsInvalidUTF8(t *testing.T) {
	if _, err := decodeText([]byte("bad \xff byte"), "utf-8"); !errors.Is(err, ErrInvalidText) {
		t.Fatalf("expected ErrInvalidText, got %v", err)
	}
}

func TestDecodeTextUnknownLabel(t *testing.T) {
	if _, err := decodeText([]byte("x"), "klingon"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}
