package jsontree_test

import (
	"encoding/json"
	"testing"

	"github.com/ednadion/lamark/pkg/jsontree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var tests = []struct {
		name     string
		value    jsontree.Value // input
		expected string         // output
	}{
		{
			name:     "PlainString",
			value:    jsontree.String(`La "joconde"`),
			expected: `"La \"joconde\""`,
		},
		{
			name:  "LanguageTaggedLiteral",
			value: jsontree.Tagged("La joconde", "fr"),
			expected: `{
  "@value": "La joconde",
  "@language": "fr"
}`,
		},
		{
			name:  "DateLiteral",
			value: jsontree.Typed("1452-04-15", "http://www.w3.org/2001/XMLSchema#date"),
			expected: `{
  "@value": "1452-04-15",
  "@type": "http://www.w3.org/2001/XMLSchema#date"
}`,
		},
		{
			name:     "NativeBooleanFromTypedLiteral",
			value:    jsontree.Typed("true", jsontree.XSDBoolean),
			expected: `true`,
		},
		{
			name:  "NonCanonicalBooleanStaysAValueObject",
			value: jsontree.Typed("True", jsontree.XSDBoolean),
			expected: `{
  "@value": "True",
  "@type": "http://www.w3.org/2001/XMLSchema#boolean"
}`,
		},
		{
			name:     "NativeInteger",
			value:    jsontree.Typed("77", jsontree.XSDInteger),
			expected: `77`,
		},
		{
			name:  "UnsafeIntegerStaysAValueObject",
			value: jsontree.Typed("92233720368547758080", jsontree.XSDInteger),
			expected: `{
  "@value": "92233720368547758080",
  "@type": "http://www.w3.org/2001/XMLSchema#integer"
}`,
		},
		{
			name:     "NativeDecimal",
			value:    jsontree.Typed("53.5", jsontree.XSDDecimal),
			expected: `53.5`,
		},
		{
			name:     "Bool",
			value:    jsontree.Bool(false),
			expected: `false`,
		},
		{
			name:     "Null",
			value:    jsontree.Null{},
			expected: `null`,
		},
		{
			name:     "EmptyMap",
			value:    jsontree.NewMap(),
			expected: `{}`,
		},
		{
			name: "NestedContainers",
			value: jsontree.NewMap().
				Set("@id", jsontree.String("http://www.wikidata.org/entity/Q12418")).
				Set("_label", jsontree.String("Mona Lisa")).
				Set("titles", jsontree.NewArray(
					jsontree.Tagged("La joconde", "fr"),
					jsontree.Null{},
				)),
			expected: `{
  "@id": "http://www.wikidata.org/entity/Q12418",
  "_label": "Mona Lisa",
  "titles": [
    {
      "@value": "La joconde",
      "@language": "fr"
    },
    null
  ]
}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := jsontree.Render(tt.value)
			assert.Equal(t, tt.expected, actual)
			assert.True(t, json.Valid([]byte(actual)), "output must be valid JSON")
		})
	}
}

func TestMapSetReplacesInPlace(t *testing.T) {
	m := jsontree.NewMap().
		Set("a", jsontree.String("1")).
		Set("b", jsontree.String("2")).
		Set("a", jsontree.String("3"))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, jsontree.String("3"), v)
}

func TestMapAddMergesDuplicateKeysIntoArray(t *testing.T) {
	m := jsontree.NewMap().
		Add("title", jsontree.String("Mona Lisa")).
		Add("title", jsontree.Tagged("La joconde", "fr"))

	v, ok := m.Get("title")
	require.True(t, ok)
	array, ok := v.(*jsontree.Array)
	require.True(t, ok)
	assert.Equal(t, 2, array.Len())

	// A third value appends to the same array
	m.Add("title", jsontree.Tagged("la Gioconda", "it"))
	assert.Equal(t, 3, array.Len())
	assert.Equal(t, []string{"title"}, m.Keys())
}

func TestRenderIsDeterministic(t *testing.T) {
	build := func() jsontree.Value {
		return jsontree.NewMap().
			Set("z", jsontree.String("last added first")).
			Set("a", jsontree.Bool(true)).
			Set("m", jsontree.NewArray(jsontree.String("x")))
	}
	assert.Equal(t, jsontree.Render(build()), jsontree.Render(build()))

	// Insertion order is preserved, not sorted
	assert.Equal(t, []string{"z", "a", "m"}, build().(*jsontree.Map).Keys())
}
