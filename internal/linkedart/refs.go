package linkedart

import (
	"strings"

	"github.com/ednadion/lamark/internal/markdown"
)

// Reference is an anchor found in quoted body text or in a table cell,
// destined to become a top-level graph stub unless the same identifier is
// already described by the primary dispatch.
type Reference struct {
	Target    string
	Label     string // kept for body-text anchors only
	FromTable bool
}

// CollectReferences runs the secondary traversal: a side-effect-free pass
// over blockquotes and table cells. Deduplication against the primary
// dispatch happens at graph assembly, not here.
func CollectReferences(list *markdown.List) []*Reference {
	var references []*Reference
	seen := make(map[string]bool)

	add := func(target string, label string, fromTable bool) {
		if target == "" || seen[target] {
			return
		}
		seen[target] = true
		references = append(references, &Reference{
			Target:    target,
			Label:     label,
			FromTable: fromTable,
		})
	}

	var walk func(list *markdown.List)
	walk = func(list *markdown.List) {
		for _, item := range list.Items {
			for _, content := range item.Content {
				switch n := content.(type) {
				case *markdown.Table:
					for _, anchor := range n.Anchors {
						add(anchor.Target, "", true)
					}
				case *markdown.BlockQuote:
					for _, inline := range n.Inlines {
						if link, ok := inline.(*markdown.Link); ok {
							add(link.Target, strings.TrimSpace(link.Text), false)
						}
					}
				}
			}
			if item.Children != nil {
				walk(item.Children)
			}
		}
	}
	walk(list)

	return references
}
