// Package rdf reserializes the generated JSON-LD into alternate RDF
// representations. The well-known context documents are bundled so that
// serialization works without network access.
package rdf

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/piprate/json-gold/ld"
)

// Format selects the output serialization.
type Format string

const (
	// FormatJSON is the compacted JSON-LD produced by the transformation,
	// emitted as-is.
	FormatJSON Format = "json"
	// FormatNQuads is the N-Quads serialization of the graph.
	FormatNQuads Format = "nquads"
	// FormatExpanded is the expanded JSON-LD form, with every term
	// resolved to its full IRI.
	FormatExpanded Format = "expanded"
)

// ParseFormat validates a format name passed on the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatNQuads, FormatExpanded:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown output format %q (supported: json, nquads, expanded)", name)
	}
}

//go:embed contexts/*.json
var contextFS embed.FS

// bundledContexts maps context IRIs to their embedded copies.
var bundledContexts = map[string]string{
	"https://linked.art/ns/v1/linked-art.json": "contexts/linked-art.json",
}

// offlineFirstLoader serves the bundled context documents and delegates
// everything else to the wrapped loader.
type offlineFirstLoader struct {
	next ld.DocumentLoader
}

func (l *offlineFirstLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	path, bundled := bundledContexts[u]
	if !bundled {
		return l.next.LoadDocument(u)
	}
	raw, err := contextFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bundled context %s: %w", u, err)
	}
	document, err := ld.DocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("bundled context %s: %w", u, err)
	}
	return &ld.RemoteDocument{DocumentURL: u, Document: document}, nil
}

func newOptions() *ld.JsonLdOptions {
	options := ld.NewJsonLdOptions("")
	options.ProcessingMode = ld.JsonLd_1_1
	options.DocumentLoader = &offlineFirstLoader{next: ld.NewDefaultDocumentLoader(nil)}
	return options
}

// Serialize reserializes a JSON-LD document into the requested format.
// FormatJSON returns the input untouched.
func Serialize(document string, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return document, nil
	case FormatNQuads:
		return NQuads(document)
	case FormatExpanded:
		return Expand(document)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// NQuads serializes a JSON-LD document to N-Quads.
func NQuads(document string) (string, error) {
	parsed, err := parse(document)
	if err != nil {
		return "", err
	}

	options := newOptions()
	options.Format = "application/n-quads"

	result, err := ld.NewJsonLdProcessor().ToRDF(parsed, options)
	if err != nil {
		return "", fmt.Errorf("n-quads serialization: %w", err)
	}
	serialized, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("n-quads serialization: unexpected result type %T", result)
	}
	return serialized, nil
}

// Expand rewrites a JSON-LD document into its expanded form.
func Expand(document string) (string, error) {
	parsed, err := parse(document)
	if err != nil {
		return "", err
	}

	expanded, err := ld.NewJsonLdProcessor().Expand(parsed, newOptions())
	if err != nil {
		return "", fmt.Errorf("expansion: %w", err)
	}

	serialized, err := json.MarshalIndent(expanded, "", "  ")
	if err != nil {
		return "", fmt.Errorf("expansion: %w", err)
	}
	return string(serialized), nil
}

// BundledContext returns the embedded copy of a context document, verbatim.
func BundledContext(iri string) (string, bool) {
	path, bundled := bundledContexts[iri]
	if !bundled {
		return "", false
	}
	raw, err := contextFS.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func parse(document string) (any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(document), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON-LD input: %w", err)
	}
	return parsed, nil
}
