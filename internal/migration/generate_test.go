package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FirstMigration(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "migrations")

	paths, err := Generate(dir, "Add Deck Owner")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "000001_add_deck_owner.up.sql"),
		filepath.Join(dir, "000001_add_deck_owner.down.sql"),
	}, paths)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}

func TestGenerate_NextVersion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000001_init.up.sql",
		"000001_init.down.sql",
		"000007_add_translations.up.sql",
		"000007_add_translations.down.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	paths, err := Generate(dir, "card-index")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "000008_card_index.up.sql"), paths[0])
	assert.Equal(t, filepath.Join(dir, "000008_card_index.down.sql"), paths[1])
}

func TestGenerate_InvalidName(t *testing.T) {
	_, err := Generate(t.TempDir(), "  --- ")

	assert.ErrorIs(t, err, ErrInvalidName)
}
