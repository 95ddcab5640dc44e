package vtt

import (
	"strings"
	"unicode"
)

// Kind identifies what a single VTT line represents.
type Kind int

const (
	KindBlank Kind = iota
	KindHeader
	KindMetadata
	KindTimestamp
	KindCueNumber
	KindCaption
)

// Kinds lists every line kind in declaration order.
var Kinds = []Kind{KindBlank, KindHeader, KindMetadata, KindTimestamp, KindCueNumber, KindCaption}

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeader:
		return "header"
	case KindMetadata:
		return "metadata"
	case KindTimestamp:
		return "timestamp"
	case KindCueNumber:
		return "cue_number"
	case KindCaption:
		return "caption"
	default:
		return "unknown"
	}
}

var metadataPrefixes = []string{"Kind:", "Language:", "NOTE"}

// Classify reports the kind of an already trimmed line. The first matching
// rule wins.
func Classify(line string) Kind {
	switch {
	case line == "":
		return KindBlank
	case strings.HasPrefix(line, "WEBVTT"):
		return KindHeader
	case hasAnyPrefix(line, metadataPrefixes):
		return KindMetadata
	case strings.Contains(line, "-->"):
		return KindTimestamp
	case isDigits(line):
		return KindCueNumber
	default:
		return KindCaption
	}
}

func hasAnyPrefix(value string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// isDigits reports whether value is non-empty and made only of decimal digits.
// Caption text that is purely numeric is indistinguishable from a cue
// identifier and is dropped along with it.
func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
