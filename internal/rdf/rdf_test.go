package rdf_test

import (
	"testing"

	"github.com/ednadion/lamark/internal/rdf"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	var tests = []struct {
		name     string
		raw      string     // input
		expected rdf.Format // output
		invalid  bool       // output
	}{
		{name: "JSON", raw: "json", expected: rdf.FormatJSON},
		{name: "NQuads", raw: "nquads", expected: rdf.FormatNQuads},
		{name: "Expanded", raw: "expanded", expected: rdf.FormatExpanded},
		{name: "Unknown", raw: "turtle", invalid: true},
		{name: "Empty", raw: "", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := rdf.ParseFormat(tt.raw)
			if tt.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestSerialize(t *testing.T) {

	t.Run("JSONIsPassedThrough", func(t *testing.T) {
		document := `{"@graph": []}`
		actual, err := rdf.Serialize(document, rdf.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, document, actual)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		_, err := rdf.Serialize("not json", rdf.FormatNQuads)
		assert.Error(t, err)
	})
}

func TestNQuads(t *testing.T) {
	// The linked.art context resolves from the bundled copy, no network.
	document := `{
		"@context": "https://linked.art/ns/v1/linked-art.json",
		"@graph": [
			{
				"@id": "http://www.wikidata.org/entity/Q12418",
				"_label": "Mona Lisa",
				"equivalent": [
					{"@id": "https://collections.louvre.fr/ark:/53355/cl010062370"}
				]
			}
		]
	}`
	quads, err := rdf.NQuads(document)
	require.NoError(t, err)
	assert.Contains(t, quads,
		`<http://www.wikidata.org/entity/Q12418> <http://www.w3.org/2000/01/rdf-schema#label> "Mona Lisa" .`)
	assert.Contains(t, quads,
		`<http://www.wikidata.org/entity/Q12418> <https://linked.art/ns/terms/equivalent> <https://collections.louvre.fr/ark:/53355/cl010062370> .`)
}

func TestExpand(t *testing.T) {
	document := `{
		"@context": {"name": "http://schema.org/name"},
		"@id": "http://example.org/1",
		"name": "Jane Doe"
	}`
	expanded, err := rdf.Expand(document)
	require.NoError(t, err)

	ja := jsonassert.New(t)
	ja.Assertf(expanded, `[
		{
			"@id": "http://example.org/1",
			"http://schema.org/name": [{"@value": "Jane Doe"}]
		}
	]`)
}

func TestBundledContext(t *testing.T) {
	raw, ok := rdf.BundledContext("https://linked.art/ns/v1/linked-art.json")
	require.True(t, ok)
	assert.Contains(t, raw, `"@context"`)
	assert.Contains(t, raw, `"_label": "rdfs:label"`)

	_, ok = rdf.BundledContext("https://example.org/unknown.json")
	assert.False(t, ok)
}
