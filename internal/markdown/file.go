package markdown

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ednadion/lamark/pkg/text"
)

// File represents one input document: an optional YAML front matter
// followed by the markdown body.
type File struct {
	Path        string
	FrontMatter FrontMatter
	Body        Document
	BodyLine    int // 1-based line of the first body line in the file
}

func (m File) String() string {
	return fmt.Sprintf("Markdown file %q", m.Path)
}

// ParseFile parses a Markdown file.
func ParseFile(path string) (*File, error) {
	contentAsBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file := ParseText(string(contentAsBytes))
	file.Path = path
	return file, nil
}

// ParseText splits raw text into front matter and body. The front matter
// must start on the very first line; a `---` separator further down the
// document belongs to the body (it delimits the definition-list section).
func ParseText(content string) *File {
	var rawFrontMatter bytes.Buffer
	var rawBody bytes.Buffer

	frontMatterStarted := false
	frontMatterEnded := false
	bodyStarted := false
	bodyLine := 0

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "---") {
			if bodyStarted {
				rawBody.WriteString(line)
				rawBody.WriteString("\n")
			} else if i == 0 && !frontMatterStarted {
				frontMatterStarted = true
			} else if frontMatterStarted && !frontMatterEnded {
				frontMatterEnded = true
			} else {
				// No front matter; the line is part of the body.
				bodyStarted = true
				bodyLine = i + 1
				rawBody.WriteString(line)
				rawBody.WriteString("\n")
			}
			continue
		}

		if frontMatterStarted && !frontMatterEnded {
			rawFrontMatter.WriteString(line)
			rawFrontMatter.WriteString("\n")
		} else {
			if !text.IsBlank(line) && !bodyStarted {
				bodyStarted = true
				bodyLine = i + 1
			}
			if bodyStarted {
				rawBody.WriteString(line)
				rawBody.WriteString("\n")
			}
		}
	}

	return &File{
		FrontMatter: FrontMatter(rawFrontMatter.String()),
		Body:        Document(rawBody.String()),
		BodyLine:    bodyLine,
	}
}
