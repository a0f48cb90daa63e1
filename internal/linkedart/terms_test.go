package linkedart_test

import (
	"testing"

	"github.com/ednadion/lamark/internal/linkedart"
	"github.com/ednadion/lamark/internal/markdown"
	"github.com/ednadion/lamark/pkg/jsontree"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinitions(t *testing.T) {

	t.Run("Basic", func(t *testing.T) {
		defs := markdown.Document(`
Mona Lisa
: <http://www.wikidata.org/entity/Q12418>
: <https://collections.louvre.fr/ark:/53355/cl010062370>

title
: [title](http://vocab.getty.edu/aat/300417193)

creator
: http://vocab.getty.edu/aat/300435446
`)
		table, err := linkedart.ParseDefinitions(defs, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())

		term, ok := table.Resolve("Mona Lisa")
		require.True(t, ok)
		assert.Equal(t, []string{
			"http://www.wikidata.org/entity/Q12418",
			"https://collections.louvre.fr/ark:/53355/cl010062370",
		}, term.Identifiers)

		// All three identifier forms normalize to the bare IRI.
		term, ok = table.Resolve("title")
		require.True(t, ok)
		assert.Equal(t, []string{"http://vocab.getty.edu/aat/300417193"}, term.Identifiers)
		term, ok = table.Resolve("creator")
		require.True(t, ok)
		assert.Equal(t, []string{"http://vocab.getty.edu/aat/300435446"}, term.Identifiers)

		_, ok = table.Resolve("mona lisa") // labels are case-sensitive
		assert.False(t, ok)
	})

	t.Run("Empty", func(t *testing.T) {
		table, err := linkedart.ParseDefinitions("", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("OffsetShiftsReportedLines", func(t *testing.T) {
		defs := markdown.Document("Mona Lisa\nno identifier here\n: <http://example.org/1>")
		_, err := linkedart.ParseDefinitions(defs, 10)
		var malformed *linkedart.MalformedDefinitionError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "Mona Lisa", malformed.Label)
		assert.Equal(t, 10, malformed.Line)
		assert.Equal(t, "no identifier", malformed.Reason)
	})

	t.Run("IdentifierWithoutTerm", func(t *testing.T) {
		_, err := linkedart.ParseDefinitions(": <http://example.org/1>", 0)
		var malformed *linkedart.MalformedDefinitionError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "identifier without a preceding term", malformed.Reason)
	})

	t.Run("EmptyIdentifier", func(t *testing.T) {
		_, err := linkedart.ParseDefinitions("Mona Lisa\n:   ", 0)
		var malformed *linkedart.MalformedDefinitionError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "empty identifier", malformed.Reason)
	})

	t.Run("TrailingTermWithoutIdentifier", func(t *testing.T) {
		_, err := linkedart.ParseDefinitions("title\n: <http://example.org/1>\n\ncreator", 0)
		var malformed *linkedart.MalformedDefinitionError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "creator", malformed.Label)
		assert.Equal(t, "no identifier", malformed.Reason)
	})

	t.Run("DuplicateTerm", func(t *testing.T) {
		_, err := linkedart.ParseDefinitions("title\n: <http://example.org/1>\ntitle\n: <http://example.org/2>", 0)
		var malformed *linkedart.MalformedDefinitionError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "title", malformed.Label)
		assert.Equal(t, "duplicate term", malformed.Reason)
	})
}

func TestBuildContext(t *testing.T) {

	t.Run("ExternalOnly", func(t *testing.T) {
		value := linkedart.BuildContext(linkedart.Options{
			Context: "https://linked.art/ns/v1/linked-art.json",
		})
		require.NotNil(t, value)
		ja := jsonassert.New(t)
		ja.Assertf(jsontree.Render(value), `"https://linked.art/ns/v1/linked-art.json"`)
	})

	t.Run("ExternalAndLocal", func(t *testing.T) {
		value := linkedart.BuildContext(linkedart.Options{
			Context:  "https://linked.art/ns/v1/linked-art.json",
			Base:     "https://example.org/museum/",
			Vocab:    "http://vocab.getty.edu/aat/",
			Language: "en",
		})
		require.NotNil(t, value)
		ja := jsonassert.New(t)
		ja.Assertf(jsontree.Render(value), `[
			"https://linked.art/ns/v1/linked-art.json",
			{
				"@base": "https://example.org/museum/",
				"@vocab": "http://vocab.getty.edu/aat/",
				"@language": "en"
			}
		]`)
	})

	t.Run("LocalOnlyWithMetadataPrefix", func(t *testing.T) {
		value := linkedart.BuildContext(linkedart.Options{
			Language:            "fr",
			FrontmatterMetadata: true,
		})
		require.NotNil(t, value)
		ja := jsonassert.New(t)
		ja.Assertf(jsontree.Render(value), `{
			"@language": "fr",
			"dc": "http://purl.org/dc/elements/1.1/"
		}`)
	})

	t.Run("Nothing", func(t *testing.T) {
		assert.Nil(t, linkedart.BuildContext(linkedart.Options{}))
	})
}
