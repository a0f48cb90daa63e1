package text_test

import (
	"testing"

	"github.com/ednadion/lamark/pkg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineIterator(t *testing.T) {

	t.Run("Basic", func(t *testing.T) {
		iterator := text.NewLineIteratorFromText("line 1\nline 2\n\nline 3\n")

		var lines []text.Line
		for iterator.HasNext() {
			lines = append(lines, iterator.Next())
		}

		require.Len(t, lines, 4)
		assert.Equal(t, text.Line{Text: "line 1", Number: 1}, lines[0])
		assert.Equal(t, text.Line{Text: "line 2", Number: 2}, lines[1])
		assert.True(t, lines[2].IsBlank())
		assert.Equal(t, text.Line{Text: "line 3", Number: 4}, lines[3])
	})

	t.Run("SkipBlankLines", func(t *testing.T) {
		iterator := text.NewLineIteratorFromText("\n\nline 3\n\n\nline 6\n")

		iterator.SkipBlankLines()
		require.True(t, iterator.HasNext())
		assert.Equal(t, text.Line{Text: "line 3", Number: 3}, iterator.Next())

		iterator.SkipBlankLines()
		require.True(t, iterator.HasNext())
		assert.Equal(t, text.Line{Text: "line 6", Number: 6}, iterator.Next())

		// Skipping at the end is a no-op.
		iterator.SkipBlankLines()
		assert.False(t, iterator.HasNext())
	})
}
