package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/ednadion/lamark/pkg/text"
)

const extensions = parser.NoIntraEmphasis |
	parser.Tables |
	parser.FencedCode |
	parser.Autolink |
	parser.Strikethrough |
	parser.SpaceHeadings

// newParser returns a fresh parser; a parser instance cannot be reused.
func newParser() *parser.Parser {
	return parser.NewWithExtensions(extensions)
}

// Parse builds the document tree from a markdown body. Only top-level
// bullet lists carry meaning in the grammar; other top-level blocks are
// ignored. Several top-level lists are merged into a single one.
func Parse(body Document) *List {
	doc := newParser().Parse([]byte(normalizeIndentation(string(body))))

	root := &List{}
	for _, child := range doc.GetChildren() {
		list, ok := child.(*ast.List)
		if !ok {
			continue
		}
		if list.ListFlags&ast.ListTypeOrdered != 0 || list.ListFlags&ast.ListTypeDefinition != 0 {
			continue
		}
		root.Items = append(root.Items, convertList(list).Items...)
	}
	return root
}

// normalizeIndentation doubles the leading spaces of every line. The
// grammar nests with 2-space steps, but the block parser stops nesting
// reliably past two levels at that width; 4-space steps nest at every depth.
func normalizeIndentation(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if indent := len(line) - len(trimmed); indent > 0 {
			lines[i] = strings.Repeat(" ", indent*2) + trimmed
		}
	}
	return strings.Join(lines, "\n")
}

func convertList(list *ast.List) *List {
	result := &List{}
	for _, child := range list.GetChildren() {
		if item, ok := child.(*ast.ListItem); ok {
			result.Items = append(result.Items, convertItem(item))
		}
	}
	return result
}

func convertItem(item *ast.ListItem) *ListItem {
	result := &ListItem{}
	for _, block := range item.GetChildren() {
		switch b := block.(type) {
		case *ast.Paragraph:
			if disguised := convertDisguisedBlock(b); disguised != nil {
				result.Content = append(result.Content, disguised)
			} else if node := convertParagraph(b); node != nil {
				result.Content = append(result.Content, node)
			}
		case *ast.List:
			if result.Children == nil {
				result.Children = convertList(b)
			} else {
				result.Children.Items = append(result.Children.Items, convertList(b).Items...)
			}
		case *ast.BlockQuote:
			result.Content = append(result.Content, convertBlockQuote(b))
		case *ast.Table:
			result.Content = append(result.Content, convertTable(b))
		}
	}
	return result
}

// convertDisguisedBlock recognizes blockquotes and pipe tables used as list
// item values. The block parser leaves them inside the item as paragraph
// text (`> …` or `| …` lines); their markdown source is reconstructed from
// the inlines and re-parsed as a top-level block.
func convertDisguisedBlock(p *ast.Paragraph) Node {
	raw := strings.TrimSpace(rawText(p))
	if !strings.HasPrefix(raw, ">") && !strings.HasPrefix(raw, "|") {
		return nil
	}
	for _, child := range newParser().Parse([]byte(raw)).GetChildren() {
		switch b := child.(type) {
		case *ast.BlockQuote:
			return convertBlockQuote(b)
		case *ast.Table:
			return convertTable(b)
		}
	}
	return nil
}

// rawText reconstructs the markdown source of a paragraph from its inlines.
func rawText(node ast.Node) string {
	var buffer strings.Builder
	for _, child := range node.GetChildren() {
		switch n := child.(type) {
		case *ast.Text:
			buffer.Write(n.Literal)
		case *ast.Softbreak, *ast.Hardbreak:
			buffer.WriteString("\n")
		case *ast.Code:
			buffer.WriteString("`" + string(n.Literal) + "`")
		case *ast.Link:
			buffer.WriteString("[" + childText(n) + "](" + string(n.Destination) + ")")
		case *ast.Image:
			buffer.WriteString("![" + childText(n) + "](" + string(n.Destination) + ")")
		default:
			buffer.WriteString(childText(child))
		}
	}
	return buffer.String()
}

// convertParagraph normalizes one paragraph into a single tree node:
// a quoted literal (with its optional annotation), a single inline, or a
// Paragraph wrapping the mixed run.
func convertParagraph(p *ast.Paragraph) Node {
	inlines := convertInlines(p.GetChildren())
	if len(inlines) == 0 {
		return nil
	}

	if quote, ok := asQuote(inlines); ok {
		return quote
	}
	if len(inlines) == 1 {
		return inlines[0]
	}
	return &Paragraph{Inlines: inlines}
}

// asQuote recognizes the `"literal"` and `"literal" `+"`annotation`"+`
// paragraph shapes.
func asQuote(inlines []Node) (*Quote, bool) {
	var annotation string
	switch len(inlines) {
	case 1:
		// fallthrough below
	case 2:
		code, ok := inlines[1].(*CodeSpan)
		if !ok {
			return nil, false
		}
		annotation = code.Text
	default:
		return nil, false
	}

	plain, ok := inlines[0].(*PlainText)
	if !ok {
		return nil, false
	}
	trimmed := strings.TrimSpace(plain.Text)
	if len(trimmed) < 2 || !strings.HasPrefix(trimmed, `"`) || !strings.HasSuffix(trimmed, `"`) {
		return nil, false
	}
	return &Quote{Text: trimmed[1 : len(trimmed)-1], Annotation: annotation}, true
}

func convertInlines(nodes []ast.Node) []Node {
	var result []Node
	var buffer strings.Builder

	// Inner spacing is preserved so that mixed runs (prose around anchors)
	// reconstruct faithfully; consumers trim when extracting labels.
	flush := func() {
		if !text.IsBlank(buffer.String()) {
			result = append(result, &PlainText{Text: buffer.String()})
		}
		buffer.Reset()
	}

	for _, node := range nodes {
		switch n := node.(type) {
		case *ast.Text:
			buffer.Write(n.Literal)
		case *ast.Softbreak, *ast.Hardbreak:
			buffer.WriteString(" ")
		case *ast.Code:
			flush()
			result = append(result, &CodeSpan{Text: string(n.Literal)})
		case *ast.Link:
			flush()
			result = append(result, &Link{Text: childText(n), Target: string(n.Destination)})
		case *ast.Image:
			flush()
			result = append(result, &Image{Alt: childText(n), Target: string(n.Destination)})
		default:
			// Emphasis and other decorations degrade to their text.
			buffer.WriteString(childText(node))
		}
	}
	flush()

	return result
}

func convertBlockQuote(quote *ast.BlockQuote) *BlockQuote {
	var inlines []Node
	var parts []string
	for _, child := range quote.GetChildren() {
		if p, ok := child.(*ast.Paragraph); ok {
			converted := convertInlines(p.GetChildren())
			inlines = append(inlines, converted...)
			parts = append(parts, InlineText(converted))
		}
	}
	return &BlockQuote{Inlines: inlines, Text: strings.Join(parts, "\n")}
}

func convertTable(table *ast.Table) *Table {
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{})
	rendered := strings.TrimSpace(string(markdown.Render(table, renderer)))

	var anchors []*Link
	ast.WalkFunc(table, func(node ast.Node, entering bool) ast.WalkStatus {
		if link, ok := node.(*ast.Link); ok && entering {
			anchors = append(anchors, &Link{Text: childText(link), Target: string(link.Destination)})
			return ast.SkipChildren
		}
		return ast.GoToNext
	})

	return &Table{HTML: rendered, Anchors: anchors}
}

// childText flattens the literal text found below an AST node.
func childText(node ast.Node) string {
	if leaf := node.AsLeaf(); leaf != nil {
		return string(leaf.Literal)
	}
	var buffer strings.Builder
	for _, child := range node.GetChildren() {
		buffer.WriteString(childText(child))
	}
	return buffer.String()
}

// InlineText flattens tree inline nodes into their plain text.
func InlineText(nodes []Node) string {
	var buffer strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case *PlainText:
			buffer.WriteString(n.Text)
		case *Link:
			buffer.WriteString(n.Text)
		case *CodeSpan:
			buffer.WriteString(n.Text)
		case *Quote:
			buffer.WriteString(`"` + n.Text + `"`)
		case *Image:
			buffer.WriteString(n.Alt)
		case *Paragraph:
			buffer.WriteString(InlineText(n.Inlines))
		}
	}
	return buffer.String()
}
