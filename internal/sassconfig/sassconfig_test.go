package sassconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasExpandedStyleAndPrecisionTen(t *testing.T) {
	cfg := Default()
	assert.Equal(t, Expanded, cfg.OutputStyle)
	assert.Equal(t, 10, cfg.Precision)
	assert.Equal(t, SourceMapNone, cfg.SourceMap)
}

func TestLoadParsesYAMLAndFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sassrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entry: src/main.scss\noutput_style: compressed\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "src/main.scss", cfg.Entry)
	assert.Equal(t, Compressed, cfg.OutputStyle)
	assert.Equal(t, 10, cfg.Precision) // unset in file, falls back to default
}

func TestLoadRejectsNonPositivePrecisionFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sassrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: -2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Precision)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMergeOverridesWinOverFileConfig(t *testing.T) {
	base := &Config{Entry: "a.scss", OutputStyle: Expanded, Precision: 10}
	override := &Config{OutputStyle: Compressed, Precision: 5}

	merged := base.Merge(override)
	assert.Equal(t, "a.scss", merged.Entry)
	assert.Equal(t, Compressed, merged.OutputStyle)
	assert.Equal(t, 5, merged.Precision)
}

func TestMergeConcatenatesIncludePaths(t *testing.T) {
	base := &Config{IncludePaths: []string{"vendor"}}
	override := &Config{IncludePaths: []string{"local"}}

	merged := base.Merge(override)
	assert.Equal(t, []string{"vendor", "local"}, merged.IncludePaths)
}

func TestMergeLeavesBaseUntouchedWhenOverrideEmpty(t *testing.T) {
	base := &Config{Entry: "a.scss", Precision: 8}
	merged := base.Merge(&Config{})

	assert.Equal(t, "a.scss", merged.Entry)
	assert.Equal(t, 8, merged.Precision)
}
