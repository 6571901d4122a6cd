// Package compiler implements the driver lifecycle spec.md §6
// documents: Created -> Parsed -> Compiled -> Rendered -> Destroyed,
// wiring together internal/parser, internal/evaluator,
// internal/emitter, internal/sourcemap and internal/importer into the
// single entry point a CLI or embedder calls. Grounded on the teacher's
// `less/compiler.go`-shaped single-call "Render" driver (parse then eval
// then stringify in one method), split here into the spec's explicit
// states so a caller can inspect an in-progress compile (e.g. the
// included-files list) between phases.
package compiler

import (
	"encoding/base64"
	"fmt"

	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/csstree"
	"github.com/toakleaf/sass.go/internal/emitter"
	"github.com/toakleaf/sass.go/internal/evaluator"
	"github.com/toakleaf/sass.go/internal/parser"
	"github.com/toakleaf/sass.go/internal/sasslog"
	"github.com/toakleaf/sass.go/internal/source"
	"github.com/toakleaf/sass.go/internal/sourcemap"
	"go.uber.org/multierr"
)

// State is one of the driver lifecycle's five stations.
type State int

const (
	Created State = iota
	Parsed
	Compiled
	Rendered
	Destroyed
)

func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case Parsed:
		return "Parsed"
	case Compiled:
		return "Compiled"
	case Rendered:
		return "Rendered"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// SourceMapMode is spec.md §6's source-map mode input.
type SourceMapMode int

const (
	SourceMapNone SourceMapMode = iota
	SourceMapCreate
	SourceMapEmbedLink
	SourceMapEmbedJSON
)

// Options configures one compilation, the driver-level inputs of §6.
type Options struct {
	EntryURL      string // "" for a pure in-memory entry
	EntryText     string
	EntrySyntax   source.Syntax
	OutputStyle   emitter.Style
	SourceMapMode SourceMapMode
	EmbedContents bool
	QuietDeps     bool // suppress warnings whose span's source came from a @use'd dependency
	Logger        *sasslog.Logger
	Resolver      evaluator.Resolver
}

// Result is what a completed compile produces, spec.md §6's Outputs.
type Result struct {
	CSS             string
	SourceMapJSON   []byte // nil unless a source-map mode other than None was requested
	Footer          string
	IncludedFiles   []string
	Warnings        []sasslog.Entry
}

// Compiler drives one compilation through its lifecycle. It is not
// reusable across jobs — build a fresh Compiler per compile, matching
// the Non-goal that rules out incremental recompilation.
type Compiler struct {
	state   State
	opts    Options
	sources *source.Set
	sheet   *ast.Stylesheet
	root    *csstree.Root
	eval    *evaluator.Evaluator
	result  Result
}

// New creates a Compiler in the Created state.
func New(opts Options) *Compiler {
	if opts.Logger == nil {
		opts.Logger = sasslog.NewNop()
	}
	return &Compiler{state: Created, opts: opts, sources: &source.Set{}}
}

func (c *Compiler) requireState(want State) error {
	if c.state != want {
		return fmt.Errorf("compiler: invalid transition, expected state %s, got %s", want, c.state)
	}
	return nil
}

// Parse reads/parses the entry point, advancing Created -> Parsed.
func (c *Compiler) Parse() error {
	if err := c.requireState(Created); err != nil {
		return err
	}
	src := c.sources.Add(c.opts.EntryURL, c.opts.EntryText, c.opts.EntrySyntax)
	sheet, err := parser.New(c.sources, src).Parse()
	if err != nil {
		return err
	}
	c.sheet = sheet
	c.state = Parsed
	return nil
}

// Compile evaluates the parsed stylesheet (and its whole @use/@forward/
// @import graph) into a csstree.Root, advancing Parsed -> Compiled.
func (c *Compiler) Compile() error {
	if err := c.requireState(Parsed); err != nil {
		return err
	}
	c.eval = evaluator.New(c.sources, c.opts.Logger, c.opts.Resolver)
	root, err := c.eval.Compile(c.sheet)
	if err != nil {
		return err
	}
	c.root = root
	c.state = Compiled
	return nil
}

// Render serializes the compiled tree to CSS (and, if requested, a
// source map), advancing Compiled -> Rendered.
func (c *Compiler) Render() error {
	if err := c.requireState(Compiled); err != nil {
		return err
	}
	res := emitter.Emit(c.root, c.opts.OutputStyle, c.sources)
	c.result.CSS = res.CSS
	c.result.Warnings = c.filteredWarnings()
	c.result.IncludedFiles = c.includedFiles()

	if c.opts.SourceMapMode != SourceMapNone {
		opts := sourcemap.Options{
			File:          outputFileName(c.opts.EntryURL),
			Sources:       c.sourceURLs(),
			EmbedContents: c.opts.EmbedContents,
		}
		if c.opts.EmbedContents {
			opts.SourcesContent = c.sourceContents()
		}
		m := sourcemap.Build(res.Mappings, opts)
		j, err := m.JSON()
		if err != nil {
			return err
		}
		c.result.SourceMapJSON = j
		c.result.Footer = footerFor(c.opts.SourceMapMode, outputFileName(c.opts.EntryURL)+".map", j)
	}

	c.state = Rendered
	return nil
}

// Result returns the completed compile's output. Valid only once Render
// has run.
func (c *Compiler) Result() Result { return c.result }

// Destroy releases the compiler's resources, advancing *->Destroyed.
// After Destroy, no other method may be called.
func (c *Compiler) Destroy() {
	c.state = Destroyed
	c.sheet = nil
	c.root = nil
	c.eval = nil
}

func (c *Compiler) sourceURLs() []string {
	all := c.sources.All()
	urls := make([]string, len(all))
	for i, s := range all {
		urls[i] = s.URL
	}
	return urls
}

func (c *Compiler) sourceContents() []string {
	all := c.sources.All()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.Text
	}
	return out
}

func (c *Compiler) includedFiles() []string {
	var out []string
	for _, s := range c.sources.All() {
		if s.URL != "" {
			out = append(out, s.URL)
		}
	}
	return out
}

// filteredWarnings drops warnings whose span's source path differs from
// the entry point when QuietDeps is set, implementing SPEC_FULL's
// `--quiet-deps` supplemented feature.
func (c *Compiler) filteredWarnings() []sasslog.Entry {
	all := c.opts.Logger.Warnings()
	if !c.opts.QuietDeps {
		return all
	}
	var out []sasslog.Entry
	for _, w := range all {
		if w.Span.Path(c.sources) == c.opts.EntryURL {
			out = append(out, w)
		}
	}
	return out
}

func outputFileName(entryURL string) string {
	if entryURL == "" {
		return "stdin.css"
	}
	return trimExt(entryURL) + ".css"
}

func trimExt(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '.' {
			return p[:i]
		}
		if p[i] == '/' {
			break
		}
	}
	return p
}

func footerFor(mode SourceMapMode, mapURL string, mapJSON []byte) string {
	switch mode {
	case SourceMapCreate:
		return "/*# sourceMappingURL=" + mapURL + " */"
	case SourceMapEmbedLink, SourceMapEmbedJSON:
		return "/*# sourceMappingURL=data:application/json;base64," + base64Std(mapJSON) + " */"
	default:
		return ""
	}
}

// AggregateErrors folds multiple errors (one per failing entry point)
// into one, so a multi-entry-point batch reports them all rather than
// stopping at the first. The single-entry Compiler above never needs
// more than one error at a time, so this is exercised only by the batch
// path in cmd/sassc's compile command; kept here since it's the Compile
// package's natural home for the compiler's one use of go.uber.org/multierr.
func AggregateErrors(errs ...error) error {
	var combined error
	for _, err := range errs {
		if err != nil {
			combined = multierr.Append(combined, err)
		}
	}
	return combined
}

func base64Std(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
