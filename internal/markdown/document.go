package markdown

import (
	"strings"

	"github.com/ednadion/lamark/pkg/text"
)

// Document represents a Markdown document (a whole file body, or a snippet).
type Document string

// Null object
var EmptyDocument = Document("")

// Lines returns the lines present in the Markdown document.
func (m Document) Lines() []string {
	return strings.Split(string(m), "\n")
}

func (m Document) IsBlank() bool {
	return text.IsBlank(string(m))
}

func (m Document) Iterator() *text.LineIterator {
	return text.NewLineIteratorFromText(string(m))
}

func (m Document) String() string {
	return string(m)
}

// TrimSpace removes spaces at the start and end of a markdown document.
func (m Document) TrimSpace() Document {
	return Document(strings.TrimSpace(string(m)))
}

// isHorizontalRule reports if a line is a Markdown horizontal rule.
// At least 3 identical characters (-, _, *) and nothing else.
func isHorizontalRule(line string) bool {
	line = strings.TrimSpace(line)
	return (strings.HasPrefix(line, "---") && strings.Trim(line, "-") == "") ||
		(strings.HasPrefix(line, "___") && strings.Trim(line, "_") == "") ||
		(strings.HasPrefix(line, "***") && strings.Trim(line, "*") == "")
}

// SplitTrailingDefinitions splits a document body on its last horizontal
// rule: everything before is the entity content, everything after is the
// definition-list section. defsLine is the 1-based line number (inside the
// body) of the first line following the separator, or 0 when the document
// has no separator.
func (m Document) SplitTrailingDefinitions() (content Document, defs Document, defsLine int) {
	lines := m.Lines()

	last := -1
	for i, line := range lines {
		// Blank lines around the rule distinguish it from list markers.
		prevBlank := i == 0 || text.IsBlank(lines[i-1])
		nextBlank := i == len(lines)-1 || text.IsBlank(lines[i+1])
		if prevBlank && nextBlank && isHorizontalRule(line) {
			last = i
		}
	}
	if last == -1 {
		return m, EmptyDocument, 0
	}

	content = Document(strings.Join(lines[:last], "\n")).TrimSpace()
	defs = Document(strings.Join(lines[last+1:], "\n"))
	return content, defs, last + 2
}
