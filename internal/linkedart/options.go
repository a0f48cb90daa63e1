package linkedart

// Options controls one document transformation. The zero value disables
// every optional behavior; the CLI populates it from the configuration file,
// flags, and the document front matter.
type Options struct {
	// Autotype enables boolean inference on unannotated literals.
	Autotype bool
	// Language is the document default language code (empty: none).
	Language string
	// Base and Vocab populate @base and @vocab in the local context.
	Base  string
	Vocab string
	// Context is the external context document IRI (empty: none).
	Context string
	// GraphName assigns an @id to the graph root (empty: none).
	GraphName string
	// FrontmatterMetadata emits the fixed dc:format/dc:type block.
	FrontmatterMetadata bool
	// ImageType and QuoteType are the class tags for images and blockquotes.
	ImageType string
	QuoteType string
	// Strict turns unresolved vocabulary terms into fatal errors.
	Strict bool
}
