package linkedart

import (
	"regexp"
	"strings"

	"github.com/ednadion/lamark/internal/markdown"
	"github.com/ednadion/lamark/pkg/jsontree"
)

// Term is one entry of the definition-list section: a vocabulary label and
// its identifiers. The first identifier is canonical; additional ones are
// alternate forms (ex: a collection-specific permalink).
type Term struct {
	Label       string
	Identifiers []string
	Line        int // 1-based line in the input file
}

// TermTable resolves vocabulary labels used as property keys and entity
// names. It is built once per document and read-only afterwards.
type TermTable struct {
	terms map[string]*Term
}

// markdownAnchor matches a `[text](target)` identifier form.
var markdownAnchor = regexp.MustCompile(`^\[[^\]]*\]\(([^)]+)\)$`)

// ParseDefinitions builds the term table from the definition-list section.
// Lines look like:
//
//	Mona Lisa
//	: <http://www.wikidata.org/entity/Q12418>
//	: <https://collections.louvre.fr/ark:/53355/cl010062370>
//
// offset is the 1-based line number of the section's first line in the input
// file, used to report precise error locations.
func ParseDefinitions(defs markdown.Document, offset int) (*TermTable, error) {
	table := &TermTable{terms: make(map[string]*Term)}
	if defs.IsBlank() {
		return table, nil
	}

	location := func(relative int) int {
		if offset > 0 {
			return offset + relative - 1
		}
		return relative
	}

	var current *Term
	iterator := defs.Iterator()
	for iterator.SkipBlankLines(); iterator.HasNext(); iterator.SkipBlankLines() {
		line := iterator.Next()
		trimmed := strings.TrimSpace(line.Text)

		if strings.HasPrefix(trimmed, ":") {
			if current == nil {
				return nil, &MalformedDefinitionError{
					Line:   location(line.Number),
					Reason: "identifier without a preceding term",
				}
			}
			identifier := parseIdentifier(strings.TrimSpace(strings.TrimPrefix(trimmed, ":")))
			if identifier == "" {
				return nil, &MalformedDefinitionError{
					Label:  current.Label,
					Line:   location(line.Number),
					Reason: "empty identifier",
				}
			}
			current.Identifiers = append(current.Identifiers, identifier)
			continue
		}

		// A new term starts; the previous one must have been usable.
		if current != nil && len(current.Identifiers) == 0 {
			return nil, &MalformedDefinitionError{
				Label:  current.Label,
				Line:   current.Line,
				Reason: "no identifier",
			}
		}
		if _, duplicate := table.terms[trimmed]; duplicate {
			return nil, &MalformedDefinitionError{
				Label:  trimmed,
				Line:   location(line.Number),
				Reason: "duplicate term",
			}
		}
		current = &Term{Label: trimmed, Line: location(line.Number)}
		table.terms[trimmed] = current
	}

	if current != nil && len(current.Identifiers) == 0 {
		return nil, &MalformedDefinitionError{
			Label:  current.Label,
			Line:   current.Line,
			Reason: "no identifier",
		}
	}

	return table, nil
}

// parseIdentifier accepts the `<iri>` and `[text](iri)` forms, or a bare
// token.
func parseIdentifier(raw string) string {
	if strings.HasPrefix(raw, "<") && strings.HasSuffix(raw, ">") {
		return strings.TrimSpace(raw[1 : len(raw)-1])
	}
	if match := markdownAnchor.FindStringSubmatch(raw); match != nil {
		return strings.TrimSpace(match[1])
	}
	return raw
}

// Resolve returns the term registered for a label. Labels are
// case-sensitive.
func (t *TermTable) Resolve(label string) (*Term, bool) {
	term, ok := t.terms[label]
	return term, ok
}

// Len returns the number of defined terms.
func (t *TermTable) Len() int {
	return len(t.terms)
}

// DCElements is the namespace bound to the `dc` prefix of the metadata
// block.
const DCElements = "http://purl.org/dc/elements/1.1/"

// BuildContext emits the @context value: the external context document
// reference, then a local object combining the base IRI, the vocabulary IRI
// and the default language. Returns nil when there is nothing to declare.
func BuildContext(opts Options) jsontree.Value {
	local := jsontree.NewMap()
	if opts.Base != "" {
		local.Set("@base", jsontree.String(opts.Base))
	}
	if opts.Vocab != "" {
		local.Set("@vocab", jsontree.String(opts.Vocab))
	}
	if opts.Language != "" {
		local.Set("@language", jsontree.String(opts.Language))
	}
	if opts.FrontmatterMetadata {
		local.Set("dc", jsontree.String(DCElements))
	}

	switch {
	case opts.Context != "" && local.Len() > 0:
		return jsontree.NewArray(jsontree.String(opts.Context), local)
	case opts.Context != "":
		return jsontree.String(opts.Context)
	case local.Len() > 0:
		return local
	default:
		return nil
	}
}
