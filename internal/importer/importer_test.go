package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/source"
)

func TestResolvePartialFileConvention(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_colors.scss"), []byte("$c: red;"), 0o644))

	fs := New(dir)
	resolved, err := fs.Resolve("", "colors")
	require.NoError(t, err)
	assert.Equal(t, "_colors.scss", filepath.Base(resolved))
}

func TestResolveSearchesEntryDirectoryFirst(t *testing.T) {
	entryDir := t.TempDir()
	loadDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(entryDir, "_shared.scss"), []byte("$from: entry;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(loadDir, "_shared.scss"), []byte("$from: loadpath;"), 0o644))

	fs := New(loadDir)
	resolved, err := fs.Resolve(filepath.Join(entryDir, "main.scss"), "shared")
	require.NoError(t, err)
	assert.Equal(t, entryDir, filepath.Dir(resolved))
}

func TestResolveIndexFileInDirectory(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "pkg")
	require.NoError(t, os.Mkdir(pkgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "_index.scss"), []byte("$x: 1;"), 0o644))

	fs := New(dir)
	resolved, err := fs.Resolve("", "pkg")
	require.NoError(t, err)
	assert.Equal(t, "_index.scss", filepath.Base(resolved))
}

func TestResolveSassPrefixPassesThrough(t *testing.T) {
	fs := New()
	resolved, err := fs.Resolve("", "sass:math")
	require.NoError(t, err)
	assert.Equal(t, "sass:math", resolved)
}

func TestResolveUnknownTargetErrors(t *testing.T) {
	fs := New(t.TempDir())
	_, err := fs.Resolve("", "nope")
	assert.Error(t, err)
}

func TestLoadInfersSyntaxFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sass")
	require.NoError(t, os.WriteFile(path, []byte("$x: 1"), 0o644))

	fs := New()
	text, syntax, err := fs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$x: 1", text)
	assert.Equal(t, source.SyntaxSass, syntax)
}
