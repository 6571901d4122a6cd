package sourcemap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/emitter"
)

func TestAppendVLQKnownVectors(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{16, "gB"},
	}
	for _, c := range cases {
		got := string(appendVLQ(nil, c.n))
		assert.Equal(t, c.want, got, "vlq(%d)", c.n)
	}
}

func TestEncodeMappingsSemicolonPerGeneratedLine(t *testing.T) {
	mappings := []emitter.Mapping{
		{GeneratedLine: 0, GeneratedColumn: 0, SourceIndex: 0, OriginalLine: 0, OriginalColumn: 0},
		{GeneratedLine: 1, GeneratedColumn: 2, SourceIndex: 0, OriginalLine: 1, OriginalColumn: 2},
	}
	out := encodeMappings(mappings)
	assert.Equal(t, 1, countRune(out, ';'))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestBuildProducesValidJSON(t *testing.T) {
	m := Build([]emitter.Mapping{
		{GeneratedLine: 0, GeneratedColumn: 0, SourceIndex: 0, OriginalLine: 0, OriginalColumn: 0},
	}, Options{
		File:    "out.css",
		Sources: []string{"in.scss"},
	})
	require.Equal(t, 3, m.Version)
	b, err := m.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "out.css", decoded["file"])
	assert.Equal(t, []any{"in.scss"}, decoded["sources"])
	assert.NotEmpty(t, decoded["mappings"])
}

func TestBuildOmitsSourcesContentWhenNotEmbedding(t *testing.T) {
	m := Build(nil, Options{File: "out.css", Sources: []string{"in.scss"}})
	b, err := m.JSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	_, present := decoded["sourcesContent"]
	assert.False(t, present)
}
