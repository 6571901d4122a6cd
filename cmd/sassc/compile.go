package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toakleaf/sass.go/internal/compiler"
	"github.com/toakleaf/sass.go/internal/emitter"
	"github.com/toakleaf/sass.go/internal/importer"
	"github.com/toakleaf/sass.go/internal/sasslog"
	"github.com/toakleaf/sass.go/internal/source"
)

type compileFlags struct {
	output        string
	style         string
	sourceMap     string
	embedContents bool
	loadPaths     []string
	quietDeps     bool
}

func newCompileCmd() *cobra.Command {
	var f compileFlags
	cmd := &cobra.Command{
		Use:   "compile <entry.scss>...",
		Short: "Compile one or more entry points to CSS",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runCompile(cmd, args[0], f)
			}
			// Multiple entry points: compile each independently and
			// report every failure rather than stopping at the first,
			// since one bad entry shouldn't hide errors in the rest of
			// the batch.
			var errs []error
			for _, entry := range args {
				if err := runCompile(cmd, entry, f); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", entry, err))
				}
			}
			return compiler.AggregateErrors(errs...)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write CSS to this file instead of stdout")
	cmd.Flags().StringVar(&f.style, "style", "expanded", "Output style: expanded|nested|compact|compressed")
	cmd.Flags().StringVar(&f.sourceMap, "source-map", "none", "Source map mode: none|create|embed-link|embed-json")
	cmd.Flags().BoolVar(&f.embedContents, "embed-contents", false, "Embed source file contents in the source map")
	cmd.Flags().StringArrayVarP(&f.loadPaths, "load-path", "I", nil, "Additional directory to search for @use/@import/@forward targets")
	cmd.Flags().BoolVar(&f.quietDeps, "quiet-deps", false, "Suppress warnings from @use'd dependencies")
	return cmd
}

func runCompile(cmd *cobra.Command, entry string, f compileFlags) error {
	style, err := parseStyle(f.style)
	if err != nil {
		return err
	}
	mode, err := parseSourceMapMode(f.sourceMap)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(entry)
	if err != nil {
		return fmt.Errorf("reading %s: %w", entry, err)
	}

	logger := sasslog.New()
	res := importer.New(f.loadPaths...)
	c := compiler.New(compiler.Options{
		EntryURL:      entry,
		EntryText:     string(text),
		EntrySyntax:   syntaxFromExt(entry),
		OutputStyle:   style,
		SourceMapMode: mode,
		EmbedContents: f.embedContents,
		QuietDeps:     f.quietDeps,
		Logger:        logger,
		Resolver:      res,
	})
	defer c.Destroy()

	if err := c.Parse(); err != nil {
		return err
	}
	if err := c.Compile(); err != nil {
		return err
	}
	if err := c.Render(); err != nil {
		return err
	}

	result := c.Result()
	out := result.CSS
	if result.Footer != "" {
		out += result.Footer + "\n"
	}

	if f.output != "" {
		if err := os.WriteFile(f.output, []byte(out), 0o644); err != nil {
			return err
		}
		if result.SourceMapJSON != nil && mode == compiler.SourceMapCreate {
			if err := os.WriteFile(f.output+".map", result.SourceMapJSON, 0o644); err != nil {
				return err
			}
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), out)
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "WARNING:", w.Message)
	}
	return nil
}

func syntaxFromExt(path string) source.Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sass":
		return source.SyntaxSass
	case ".css":
		return source.SyntaxCSS
	default:
		return source.SyntaxSCSS
	}
}

func parseStyle(s string) (emitter.Style, error) {
	switch s {
	case "expanded":
		return emitter.Expanded, nil
	case "nested":
		return emitter.Nested, nil
	case "compact":
		return emitter.Compact, nil
	case "compressed":
		return emitter.Compressed, nil
	default:
		return 0, fmt.Errorf("unknown --style %q", s)
	}
}

func parseSourceMapMode(s string) (compiler.SourceMapMode, error) {
	switch s {
	case "none":
		return compiler.SourceMapNone, nil
	case "create":
		return compiler.SourceMapCreate, nil
	case "embed-link":
		return compiler.SourceMapEmbedLink, nil
	case "embed-json":
		return compiler.SourceMapEmbedJSON, nil
	default:
		return 0, fmt.Errorf("unknown --source-map %q", s)
	}
}
