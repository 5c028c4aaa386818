package taginput

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseRegistryYAML(t *testing.T) {
	t.Run("should accept bare names and full descriptors", func(t *testing.T) {
		reg, err := ParseRegistryYAML([]byte(`
tags:
  - email
  - name: title
    mode: array
  - name: label
    mode: join
    separator: " | "
`))
		require.NoError(t, err)
		require.Equal(t, 3, reg.Len())

		res := NewParser(reg).Parse("title:A title:B label:x label:y email:a@b.com")
		assert.Equal(t, List{"A", "B"}, res.Tags["title"])
		assert.Equal(t, String("x | y"), res.Tags["label"])
		assert.Equal(t, String("a@b.com"), res.Tags["email"])
	})

	t.Run("should reject an unrecognized mode", func(t *testing.T) {
		_, err := ParseRegistryYAML([]byte("tags:\n  - name: x\n    mode: append\n"))
		require.Error(t, err)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "mode", cfgErr.Field)
	})

	t.Run("should reject an invalid tag name", func(t *testing.T) {
		_, err := ParseRegistryYAML([]byte("tags:\n  - \"a:b\"\n"))
		assert.Error(t, err)
	})

	t.Run("should reject a list entry that is neither scalar nor mapping", func(t *testing.T) {
		_, err := ParseRegistryYAML([]byte("tags:\n  - [a, b]\n"))
		assert.Error(t, err)
	})

	t.Run("should build an empty registry from empty config", func(t *testing.T) {
		reg, err := ParseRegistryYAML([]byte("tags: []\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, reg.Len())
	})
}

func Test_LoadRegistry(t *testing.T) {
	t.Run("should load a registry file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tags.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tags:\n  - email\n"), 0o644))
		reg, err := LoadRegistry(path)
		require.NoError(t, err)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("should surface missing files", func(t *testing.T) {
		_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
