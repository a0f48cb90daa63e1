package markdown

import (
	"gopkg.in/yaml.v3"
)

// FrontMatter represents the raw YAML front matter of a document.
type FrontMatter string

func (f FrontMatter) IsBlank() bool {
	return Document(f).IsBlank()
}

func (f FrontMatter) AsMap() (map[string]any, error) {
	var attributes = make(map[string]any)
	if err := yaml.Unmarshal([]byte(f), &attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}
