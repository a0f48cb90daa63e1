package linkedart

import (
	"strings"

	"github.com/ednadion/lamark/internal/markdown"
	"github.com/ednadion/lamark/pkg/jsontree"
)

// dispatcher walks the document tree and produces the JSON-LD fragments.
// The structural role of an item (entity, property slot, value) is decided
// by its parent call, never re-inferred: top-level items are entities,
// their children are property slots, slot children are values, and a value
// carrying its own nested list recurses as an entity.
// Non-fatal anomalies accumulate in warnings; fatal ones abort the
// transformation.
type dispatcher struct {
	terms    *TermTable
	opts     Options
	warnings []error
}

func (d *dispatcher) warn(err error) {
	d.warnings = append(d.warnings, err)
}

// graph transforms every top-level item into a graph entity.
func (d *dispatcher) graph(list *markdown.List) (*jsontree.Array, error) {
	graph := jsontree.NewArray()
	for _, item := range list.Items {
		entity, err := d.entity(item, "")
		if err != nil {
			return nil, err
		}
		graph.Append(entity)
	}
	return graph, nil
}

// entity transforms one item at RoleEntity: its first inline content names
// the entity, its nested list holds the property slots.
func (d *dispatcher) entity(item *markdown.ListItem, path string) (*jsontree.Map, error) {
	entity := jsontree.NewMap()
	name := ""

	if len(item.Content) > 0 {
		switch n := item.Content[0].(type) {
		case *markdown.Link:
			// An explicit identifier wins over the term table.
			entity.Set("@id", jsontree.String(n.Target))
			name = strings.TrimSpace(n.Text)
			if name != "" {
				entity.Set("_label", jsontree.String(name))
			}
		case *markdown.Quote:
			// A quoted literal cannot carry properties: recovered as a
			// described value with itemized sub-values.
			name = strings.TrimSpace(n.Text)
			d.warn(&AmbiguousNestingError{Path: joinPath(path, name)})
			if err := d.name(entity, name, path); err != nil {
				return nil, err
			}
		default:
			name = strings.TrimSpace(markdown.InlineText([]markdown.Node{n}))
			if err := d.name(entity, name, path); err != nil {
				return nil, err
			}
		}
	}

	if item.Children != nil {
		for _, slot := range item.Children.Items {
			if err := d.property(entity, slot, joinPath(path, name)); err != nil {
				return nil, err
			}
		}
	}

	return entity, nil
}

// name resolves an entity name against the term table: the canonical
// identifier becomes @id, additional identifiers become equivalent stubs.
// An unresolved name stays a bare label.
func (d *dispatcher) name(entity *jsontree.Map, name string, path string) error {
	if name == "" {
		return nil
	}
	term, ok := d.terms.Resolve(name)
	if !ok {
		if d.opts.Strict {
			return &UnresolvedTermError{Label: name, Path: joinPath(path, name)}
		}
		d.warn(&UnresolvedTermError{Label: name, Path: joinPath(path, name)})
		entity.Set("_label", jsontree.String(name))
		return nil
	}

	entity.Set("@id", jsontree.String(term.Identifiers[0]))
	entity.Set("_label", jsontree.String(name))
	if len(term.Identifiers) > 1 {
		equivalents := jsontree.NewArray()
		for _, identifier := range term.Identifiers[1:] {
			equivalents.Append(jsontree.NewMap().Set("@id", jsontree.String(identifier)))
		}
		entity.Set("equivalent", equivalents)
	}
	return nil
}

// property transforms one item at RolePropertySlot and merges the result
// into the entity. A slot with zero values is dropped.
func (d *dispatcher) property(entity *jsontree.Map, item *markdown.ListItem, path string) error {
	label := strings.TrimSpace(markdown.InlineText(contentBeforeAnnotation(item.Content)))

	if item.Children == nil || len(item.Children.Items) == 0 {
		// No nested values: nothing to emit.
		return nil
	}
	if label == "" {
		return nil
	}

	key := label
	if term, ok := d.terms.Resolve(label); ok {
		key = term.Identifiers[0]
	} else if d.opts.Strict {
		return &UnresolvedTermError{Label: label, Path: path}
	} else {
		d.warn(&UnresolvedTermError{Label: label, Path: path})
	}

	values := jsontree.NewArray()
	for _, valueItem := range item.Children.Items {
		value, err := d.value(valueItem, joinPath(path, label))
		if err != nil {
			return err
		}
		values.Append(value)
	}

	if values.Len() == 1 {
		entity.Add(key, values.Values()[0])
	} else {
		entity.Add(key, values)
	}
	return nil
}

// value transforms one item at RoleValue. An item carrying its own nested
// list recurses as a nested entity.
func (d *dispatcher) value(item *markdown.ListItem, path string) (jsontree.Value, error) {
	if item.Children != nil && len(item.Children.Items) > 0 {
		return d.entity(item, path)
	}
	if len(item.Content) == 0 {
		return jsontree.Null{}, nil
	}

	annotation := trailingAnnotation(item.Content)

	switch n := item.Content[0].(type) {
	case *markdown.Quote:
		return TypeLiteral(n.Text, n.Annotation, d.opts), nil
	case *markdown.PlainText:
		token := strings.TrimSpace(n.Text)
		if term, ok := d.terms.Resolve(token); ok {
			return jsontree.NewMap().
				Set("@id", jsontree.String(term.Identifiers[0])).
				Set("_label", jsontree.String(token)), nil
		}
		return TypeLiteral(token, annotation, d.opts), nil
	case *markdown.CodeSpan:
		return TypeLiteral(n.Text, "", d.opts), nil
	case *markdown.Link:
		reference := jsontree.NewMap().Set("@id", jsontree.String(n.Target))
		if label := strings.TrimSpace(n.Text); label != "" {
			reference.Set("_label", jsontree.String(label))
		}
		return reference, nil
	case *markdown.Image:
		return d.image(n), nil
	case *markdown.Table:
		return d.table(n), nil
	case *markdown.BlockQuote:
		return d.blockQuote(n), nil
	case *markdown.Paragraph:
		token := strings.TrimSpace(markdown.InlineText(contentBeforeAnnotation(n.Inlines)))
		return TypeLiteral(token, trailingAnnotation(n.Inlines), d.opts), nil
	default:
		return jsontree.Null{}, nil
	}
}

// image emits a node carrying the image class tag, the caption, and the
// image URI as an access point.
func (d *dispatcher) image(image *markdown.Image) jsontree.Value {
	node := jsontree.NewMap()
	if d.opts.ImageType != "" {
		node.Set("@type", jsontree.String(d.opts.ImageType))
	}
	if caption := strings.TrimSpace(image.Alt); caption != "" {
		node.Set("_label", jsontree.String(caption))
	}
	node.Set("access_point", jsontree.NewMap().Set("@id", jsontree.String(image.Target)))
	return node
}

// table emits the whole table as one HTML-typed literal. Anchors inside the
// cells surface as graph references through the reference collector.
func (d *dispatcher) table(table *markdown.Table) jsontree.Value {
	return jsontree.Typed(table.HTML, RDFHTML)
}

// blockQuote emits a node carrying the blockquote class tag and the quoted
// text as content. Anchors inside surface through the reference collector.
func (d *dispatcher) blockQuote(quote *markdown.BlockQuote) jsontree.Value {
	node := jsontree.NewMap()
	if d.opts.QuoteType != "" {
		node.Set("@type", jsontree.String(d.opts.QuoteType))
	}
	node.Set("content", TypeLiteral(quote.Text, "", d.opts))
	return node
}

// trailingAnnotation returns the text of a trailing code span, used as the
// annotation of an unquoted token (ex: `- 1452-04-15 ` + "`date`").
func trailingAnnotation(content []markdown.Node) string {
	if len(content) < 2 {
		return ""
	}
	if code, ok := content[len(content)-1].(*markdown.CodeSpan); ok {
		return code.Text
	}
	return ""
}

// contentBeforeAnnotation strips the trailing annotation code span.
func contentBeforeAnnotation(content []markdown.Node) []markdown.Node {
	if len(content) >= 2 {
		if _, ok := content[len(content)-1].(*markdown.CodeSpan); ok {
			return content[:len(content)-1]
		}
	}
	return content
}

func joinPath(path string, component string) string {
	if component == "" {
		return path
	}
	if path == "" {
		return component
	}
	return path + " > " + component
}
