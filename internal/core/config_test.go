package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ednadion/lamark/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {

	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		config, err := core.ReadConfig(filepath.Join(t.TempDir(), "lamark.toml"))
		require.NoError(t, err)
		assert.True(t, config.Document.Autotype)
		assert.Equal(t, core.DefaultContext, config.Document.Context)
		assert.Equal(t, "DigitalImage", config.Document.ImageType)
		assert.Empty(t, config.Document.Language)
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lamark.toml")
		content := `
[document]
autotype = false
language = "en"
base = "https://example.org/"
vocab = "https://linked.art/ns/terms/"
frontmatter-metadata = true
image-type = "VisualItem"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		config, err := core.ReadConfig(path)
		require.NoError(t, err)
		assert.False(t, config.Document.Autotype)
		assert.Equal(t, "en", config.Document.Language)
		assert.Equal(t, "https://example.org/", config.Document.Base)
		assert.True(t, config.Document.FrontmatterMetadata)
		assert.Equal(t, "VisualItem", config.Document.ImageType)
		// Untouched keys keep their default
		assert.Equal(t, core.DefaultContext, config.Document.Context)
	})

	t.Run("InvalidFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lamark.toml")
		require.NoError(t, os.WriteFile(path, []byte("document = ["), 0644))
		_, err := core.ReadConfig(path)
		assert.Error(t, err)
	})
}
