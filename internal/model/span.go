package model

import (
	"fmt"
	"strings"
)

// LineColumn is a position in a source file. Both fields are 1-based and the
// column counts characters, not bytes.
type LineColumn struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Span is a half-open range of source text: End is the position just past
// the last character.
type Span struct {
	Start LineColumn `json:"start" yaml:"start"`
	End   LineColumn `json:"end" yaml:"end"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// ReplaceRegion returns code with the text covered by span replaced.
func ReplaceRegion(code string, span Span, replacement string) string {
	var b strings.Builder

	b.Grow(len(code) + len(replacement))

	line, column := 1, 1
	replaced := false

	for _, r := range code {
		pos := LineColumn{Line: line, Column: column}
		if !before(pos, span.Start) && before(pos, span.End) {
			if !replaced {
				b.WriteString(replacement)
				replaced = true
			}
		} else {
			b.WriteRune(r)
		}

		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	if !replaced {
		b.WriteString(replacement)
	}

	return b.String()
}

func before(a, b LineColumn) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}
