// Package sourcemap builds a source-map v3 JSON document from the
// mappings internal/emitter records, encoding positions as the
// standard's base64-VLQ "mappings" string. Grounded on spec.md §6's
// documented JSON shape; no repo in the retrieved pack ships a VLQ/
// source-map encoder, so this is a from-scratch implementation on the
// standard library's encoding/json (the same library every retrieved
// repo's own JSON needs, where they have any, reach for — there's no
// ecosystem "build me a v3 source map" package in the pack to prefer
// over it).
package sourcemap

import (
	"encoding/json"

	"github.com/toakleaf/sass.go/internal/emitter"
)

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Map is the source-map v3 JSON document, field order and names exactly
// as spec.md §6 documents.
type Map struct {
	Version        int      `json:"version"`
	File           string   `json:"file"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// Options controls what Build includes beyond the bare mappings.
type Options struct {
	File           string
	SourceRoot     string
	Sources        []string // by source.Span.SourceId index
	EmbedContents  bool
	SourcesContent []string // parallel to Sources, only used if EmbedContents
}

// Build encodes mappings (assumed already sorted by generated position,
// as internal/emitter produces them in write order) into a v3 Map.
func Build(mappings []emitter.Mapping, opts Options) *Map {
	m := &Map{
		Version: 3,
		File:    opts.File,
		Sources: opts.Sources,
		Names:   []string{},
	}
	if opts.SourceRoot != "" {
		m.SourceRoot = opts.SourceRoot
	}
	if opts.EmbedContents {
		m.SourcesContent = opts.SourcesContent
	}
	m.Mappings = encodeMappings(mappings)
	return m
}

// JSON renders m as the bytes a `.css.map` file (or an embedded data
// URI) holds.
func (m *Map) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// encodeMappings implements the source-map v3 "mappings" grammar:
// semicolon-separated generated lines, each a comma-separated list of
// segments, each segment a sequence of base64-VLQ fields that are
// *deltas* from the previous segment's fields (and, for the first field
// of a line, from the previous line's first segment).
func encodeMappings(mappings []emitter.Mapping) string {
	var out []byte
	prevGenLine := 0
	prevGenCol := 0
	prevSource := 0
	prevOrigLine := 0
	prevOrigCol := 0
	firstInLine := true

	for _, mp := range mappings {
		if mp.GeneratedLine != prevGenLine {
			for i := 0; i < mp.GeneratedLine-prevGenLine; i++ {
				out = append(out, ';')
			}
			prevGenLine = mp.GeneratedLine
			prevGenCol = 0
			firstInLine = true
		}
		if !firstInLine {
			out = append(out, ',')
		}
		firstInLine = false

		out = appendVLQ(out, mp.GeneratedColumn-prevGenCol)
		prevGenCol = mp.GeneratedColumn

		out = appendVLQ(out, mp.SourceIndex-prevSource)
		prevSource = mp.SourceIndex

		out = appendVLQ(out, mp.OriginalLine-prevOrigLine)
		prevOrigLine = mp.OriginalLine

		out = appendVLQ(out, mp.OriginalColumn-prevOrigCol)
		prevOrigCol = mp.OriginalColumn
	}
	return string(out)
}

// appendVLQ appends n's base64-VLQ encoding (sign in the low bit, 5 data
// bits per byte, high bit set on every byte but the last) to out.
func appendVLQ(out []byte, n int) []byte {
	v := n << 1
	if n < 0 {
		v = (-n << 1) | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		out = append(out, base64Chars[digit])
		if v == 0 {
			break
		}
	}
	return out
}
