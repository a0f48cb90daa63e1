package text

import (
	"strings"
)

// Line is one line of a text, numbered from 1.
type Line struct {
	Text   string
	Number int
}

func (l Line) IsBlank() bool {
	return IsBlank(l.Text)
}

// LineIterator implements the Iterator pattern to iterate over text lines.
type LineIterator struct {
	index int
	lines []Line
}

func (l *LineIterator) HasNext() bool {
	return l.index < len(l.lines)
}

func (l *LineIterator) Next() Line {
	line := l.lines[l.index]
	l.index++
	return line
}

// SkipBlankLines moves the iterator to the next non-blank line.
func (l *LineIterator) SkipBlankLines() {
	for l.HasNext() && l.lines[l.index].IsBlank() {
		l.index++
	}
}

func NewLineIteratorFromText(text string) *LineIterator {
	var lines []Line
	for i, raw := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		lines = append(lines, Line{Number: i + 1, Text: raw})
	}
	return &LineIterator{lines: lines}
}
