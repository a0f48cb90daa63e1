// Package linkedart transforms the constrained nested-list markdown grammar
// into a Linked-Art-conformant JSON-LD graph.
package linkedart

import (
	"fmt"

	"github.com/ednadion/lamark/internal/markdown"
	"github.com/ednadion/lamark/pkg/jsontree"
)

// Document is the result of one transformation.
type Document struct {
	root     *jsontree.Map
	warnings []error
}

// Transform converts one parsed markdown file into a JSON-LD document.
// The transformation is a pure tree-to-tree rewrite: no state survives it
// and no partial output exists on error.
func Transform(file *markdown.File, opts Options) (*Document, error) {
	opts, err := applyFrontMatter(file.FrontMatter, opts)
	if err != nil {
		return nil, err
	}

	content, defs, defsLine := file.Body.SplitTrailingDefinitions()

	offset := defsLine
	if file.BodyLine > 0 && defsLine > 0 {
		// Locations are reported against the file, front matter included.
		offset = file.BodyLine - 1 + defsLine
	}
	terms, err := ParseDefinitions(defs, offset)
	if err != nil {
		return nil, err
	}

	tree := markdown.Parse(content)

	d := &dispatcher{terms: terms, opts: opts}
	graph, err := d.graph(tree)
	if err != nil {
		return nil, err
	}
	mergeReferences(graph, CollectReferences(tree))

	root := jsontree.NewMap()
	if context := BuildContext(opts); context != nil {
		root.Set("@context", context)
	}
	if opts.GraphName != "" {
		root.Set("@id", jsontree.String(opts.GraphName))
	}
	if opts.FrontmatterMetadata {
		root.Set("dc:format", jsontree.String("text/markdown"))
		root.Set("dc:type", jsontree.String("Dataset"))
	}
	root.Set("@graph", graph)

	return &Document{root: root, warnings: d.warnings}, nil
}

// String renders the canonical JSON-LD text, without a trailing newline.
func (d *Document) String() string {
	return jsontree.Render(d.root)
}

// Context renders only the @context of the document, or "null" when the
// document declares none.
func (d *Document) Context() string {
	if context, ok := d.root.Get("@context"); ok {
		return jsontree.Render(context)
	}
	return "null"
}

// Warnings returns the non-fatal anomalies encountered, in document order.
func (d *Document) Warnings() []error {
	return d.warnings
}

// mergeReferences appends the collected reference stubs to the graph,
// skipping every identifier already present: this is where the two passes
// are reconciled and the uniqueness invariant enforced.
func mergeReferences(graph *jsontree.Array, references []*Reference) {
	seen := make(map[string]bool)
	for _, value := range graph.Values() {
		collectIdentifiers(value, seen)
	}

	for _, reference := range references {
		if seen[reference.Target] {
			continue
		}
		seen[reference.Target] = true

		stub := jsontree.NewMap().Set("@id", jsontree.String(reference.Target))
		if !reference.FromTable && reference.Label != "" {
			stub.Set("_label", jsontree.String(reference.Label))
		}
		graph.Append(stub)
	}
}

// collectIdentifiers walks a value tree and records every @id.
func collectIdentifiers(value jsontree.Value, seen map[string]bool) {
	switch v := value.(type) {
	case *jsontree.Map:
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			if key == "@id" {
				if identifier, ok := child.(*jsontree.Str); ok {
					seen[identifier.Value] = true
				}
				continue
			}
			collectIdentifiers(child, seen)
		}
	case *jsontree.Array:
		for _, element := range v.Values() {
			collectIdentifiers(element, seen)
		}
	}
}

// applyFrontMatter overrides per-document options from the YAML front
// matter. Unknown keys are ignored.
func applyFrontMatter(frontMatter markdown.FrontMatter, opts Options) (Options, error) {
	if frontMatter.IsBlank() {
		return opts, nil
	}
	attributes, err := frontMatter.AsMap()
	if err != nil {
		return opts, fmt.Errorf("invalid front matter: %w", err)
	}

	setString := func(key string, target *string) {
		if value, ok := attributes[key].(string); ok {
			*target = value
		}
	}
	setBool := func(key string, target *bool) {
		if value, ok := attributes[key].(bool); ok {
			*target = value
		}
	}

	setString("language", &opts.Language)
	setString("base", &opts.Base)
	setString("vocab", &opts.Vocab)
	setString("context", &opts.Context)
	setString("graph-name", &opts.GraphName)
	setString("image-type", &opts.ImageType)
	setString("quote-type", &opts.QuoteType)
	setBool("autotype", &opts.Autotype)
	setBool("frontmatter-metadata", &opts.FrontmatterMetadata)

	return opts, nil
}
