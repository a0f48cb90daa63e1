package markdown

// Node is one node of the constrained document tree. The set of variants is
// closed: the transformation dispatches over exactly these types.
type Node interface {
	node()
}

// List is a bullet list. At the top level of a document its items are
// entities; nested under an entity they are property slots; nested under a
// property slot they are values.
type List struct {
	Items []*ListItem
}

// ListItem carries the content found before any nested list (usually a
// single paragraph, normalized into one of the inline variants) and the
// nested list when present.
type ListItem struct {
	Content  []Node
	Children *List
}

// Paragraph is a mixed inline run that could not be normalized into a more
// specific variant.
type Paragraph struct {
	Inlines []Node
}

// Quote is an inline double-quoted literal value, with its optional
// backticked annotation (a datatype keyword or a language code).
type Quote struct {
	Text       string
	Annotation string
}

// BlockQuote is a `>`-prefixed body text. Links inside it are surfaced as
// graph references by the reference collector.
type BlockQuote struct {
	Inlines []Node
	Text    string // the flattened plain text of the quote
}

// Link is an inline anchor.
type Link struct {
	Text   string
	Target string
}

// Image is an inline image.
type Image struct {
	Alt    string
	Target string
}

// Table carries the table rendered as HTML plus the anchors found in its
// header and body cells.
type Table struct {
	HTML    string
	Anchors []*Link
}

// CodeSpan is an inline code span, used as a type or language annotation.
type CodeSpan struct {
	Text string
}

// PlainText is unadorned inline text.
type PlainText struct {
	Text string
}

func (*List) node()       {}
func (*ListItem) node()   {}
func (*Paragraph) node()  {}
func (*Quote) node()      {}
func (*BlockQuote) node() {}
func (*Link) node()       {}
func (*Image) node()      {}
func (*Table) node()      {}
func (*CodeSpan) node()   {}
func (*PlainText) node()  {}
