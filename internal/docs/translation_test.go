package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectTranslationStats(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "# Index")
	writeDoc(t, dir, "setup.md", "# Setup")
	writeDoc(t, dir, "index.de.md", "# Index (de)")
	writeDoc(t, dir, "setup.de.md", "# Setup (de)")
	writeDoc(t, dir, "index.es.md", "# Index (es)")
	writeDoc(t, dir, "README", "ignored, not markdown")

	stats, err := CollectTranslationStats(dir)

	require.NoError(t, err)
	assert.Len(t, stats.EnglishDocs, 2)
	assert.Len(t, stats.TranslatedDocs, 2)
	assert.True(t, stats.TranslatedDocs["de"]["index.md"])
	assert.True(t, stats.TranslatedDocs["de"]["setup.md"])
	assert.True(t, stats.TranslatedDocs["es"]["index.md"])
}

func TestCoverage(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "# Index")
	writeDoc(t, dir, "setup.md", "# Setup")
	writeDoc(t, dir, "index.de.md", "# Index (de)")
	writeDoc(t, dir, "setup.de.md", "# Setup (de)")
	writeDoc(t, dir, "index.es.md", "# Index (es)")

	coverage, err := Coverage(dir)

	require.NoError(t, err)
	// 3 translated documents out of 2 languages x 2 English documents
	assert.InDelta(t, 75.0, coverage, 0.001)
}

func TestCoverageIgnoresOrphanTranslations(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "# Index")
	writeDoc(t, dir, "ghost.de.md", "# Ghost (de)")

	coverage, err := Coverage(dir)

	require.NoError(t, err)
	// the orphan translation has no English counterpart
	assert.InDelta(t, 0.0, coverage, 0.001)
}

func TestCoverageEmptyDirectory(t *testing.T) {
	coverage, err := Coverage(t.TempDir())

	require.NoError(t, err)
	assert.Zero(t, coverage)
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scripts", "doc_quality.toml")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().MinLength, cfg.MinLength)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "default config file must be written")

	// the written file must round-trip
	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigReadsCustomValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc_quality.toml")
	content := `min_length = 10
required_sections = ["Overview"]
supported_languages = ["de"]
code_example_required = false
image_required = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MinLength)
	assert.Equal(t, []string{"Overview"}, cfg.RequiredSections)
	assert.Equal(t, []string{"de"}, cfg.SupportedLanguages)
	assert.False(t, cfg.CodeExampleRequired)
	assert.True(t, cfg.ImageRequired)
}
