// Package importer implements the filesystem Resolver spec.md §6 treats
// as an external collaborator: given a requested URL and the URL it was
// requested from, search the requesting file's own directory and then
// the configured load-path list, inferring the Sass partial-file
// conventions (a leading underscore, the .scss/.sass/.css extensions,
// and an index file within a directory) the way dart-sass's own loader
// does. Grounded on the teacher's own file-reading entry point
// (`less/main.go`'s `ioutil.ReadFile` + working-directory-relative
// resolution) generalized into spec.md's ordered load-path search and
// canonical-path cache.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toakleaf/sass.go/internal/source"
)

// FS resolves/loads stylesheets from disk.
type FS struct {
	LoadPaths []string

	cache map[string]string // canonical path -> already-read contents
}

// New creates a filesystem Resolver searching loadPaths (in order) after
// the requesting file's own directory.
func New(loadPaths ...string) *FS {
	return &FS{LoadPaths: loadPaths, cache: map[string]string{}}
}

// Resolve implements evaluator.Resolver: find the file target names,
// relative to fromURL's directory first, then each load path, applying
// the partial (`_name`) and extension-inference rules, and returns its
// canonical (absolute, cleaned) path.
func (f *FS) Resolve(fromURL, target string) (string, error) {
	if strings.HasPrefix(target, "sass:") {
		return target, nil
	}
	var dirs []string
	if fromURL != "" {
		dirs = append(dirs, filepath.Dir(fromURL))
	}
	dirs = append(dirs, f.LoadPaths...)

	for _, dir := range dirs {
		if p, ok := resolveInDir(dir, target); ok {
			abs, err := filepath.Abs(p)
			if err != nil {
				return "", err
			}
			return filepath.Clean(abs), nil
		}
	}
	return "", fmt.Errorf("could not resolve %q (from %q)", target, fromURL)
}

// resolveInDir applies §6's "partial file" search order for one
// candidate directory: the literal path and then the underscore-prefixed
// partial form, each first with the three extensions and only then as
// written, and finally (if target names a directory) an `_index`/`index`
// file within it.
func resolveInDir(dir, target string) (string, bool) {
	base := filepath.Join(dir, target)
	candidates := []string{base}

	name := filepath.Base(base)
	parent := filepath.Dir(base)
	if !strings.HasPrefix(name, "_") {
		candidates = append(candidates, filepath.Join(parent, "_"+name))
	}

	exts := []string{".scss", ".sass", ".css"}
	var withExt []string
	for _, c := range candidates {
		if hasKnownExt(c) {
			withExt = append(withExt, c)
			continue
		}
		for _, ext := range exts {
			withExt = append(withExt, c+ext)
		}
	}
	withExt = append(withExt, candidates...)

	for _, c := range withExt {
		if fileExists(c) {
			return c, true
		}
	}

	// Directory form: `@use "foo"` where foo/ contains _index.scss.
	for _, idxName := range []string{"_index.scss", "_index.sass", "index.scss", "index.sass"} {
		c := filepath.Join(base, idxName)
		if fileExists(c) {
			return c, true
		}
	}
	return "", false
}

func hasKnownExt(p string) bool {
	switch filepath.Ext(p) {
	case ".scss", ".sass", ".css":
		return true
	default:
		return false
	}
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Load implements evaluator.Resolver: read canonical's contents and
// infer its syntax from its extension.
func (f *FS) Load(canonical string) (string, source.Syntax, error) {
	if text, ok := f.cache[canonical]; ok {
		return text, syntaxOf(canonical), nil
	}
	data, err := os.ReadFile(canonical)
	if err != nil {
		return "", source.SyntaxAuto, err
	}
	text := string(data)
	f.cache[canonical] = text
	return text, syntaxOf(canonical), nil
}

func syntaxOf(path string) source.Syntax {
	switch filepath.Ext(path) {
	case ".sass":
		return source.SyntaxSass
	case ".css":
		return source.SyntaxCSS
	default:
		return source.SyntaxSCSS
	}
}
