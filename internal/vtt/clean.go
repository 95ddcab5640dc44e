package vtt

import (
	"regexp"
	"strings"
)

// tagPattern matches styling tags (<c>, </i>, <v Speaker>) and inline word
// timestamps (<00:00:01.000>). An unterminated "<" has no match and is kept.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// entity is one literal substitution applied to caption text.
type entity struct {
	pattern     string
	replacement string
}

// entities is applied in order, left to right, in a single pass. No
// replacement may contain '&', otherwise decoded text could form a new entity.
var entities = []entity{
	{"&amp;", "&"},
	{"&gt;", ">"},
	{"&lt;", "<"},
	{"&quot;", `"`},
	{"&apos;", "'"},
	{"&nbsp;", " "},
}

var entityReplacer = newEntityReplacer(entities)

func newEntityReplacer(table []entity) *strings.Replacer {
	pairs := make([]string, 0, len(table)*2)
	for _, e := range table {
		pairs = append(pairs, e.pattern, e.replacement)
	}
	return strings.NewReplacer(pairs...)
}

// Clean strips markup tags, decodes entities, and collapses whitespace in a
// caption line. The result may be empty when the line held only markup.
func Clean(line string) string {
	text := tagPattern.ReplaceAllString(line, "")
	text = entityReplacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
