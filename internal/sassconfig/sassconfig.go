// Package sassconfig loads a project's `.sassrc.yaml`, grounded on
// titpetric-lessgo and fredcamaral-slicli's use of gopkg.in/yaml.v3 for
// project/front-matter configuration. CLI flags parsed by cmd/sassc
// override whatever this file sets, matching the teacher's
// flags-win-over-defaults precedence.
package sassconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// OutputStyle mirrors §6's four emitter styles.
type OutputStyle string

const (
	Expanded  OutputStyle = "expanded"
	Nested    OutputStyle = "nested"
	Compact   OutputStyle = "compact"
	Compressed OutputStyle = "compressed"
)

// SourceMapMode mirrors §6's source-map modes.
type SourceMapMode string

const (
	SourceMapNone       SourceMapMode = "none"
	SourceMapCreate     SourceMapMode = "create"
	SourceMapEmbedLink  SourceMapMode = "embed-link"
	SourceMapEmbedJSON  SourceMapMode = "embed-json"
)

// Config is the on-disk project configuration.
type Config struct {
	Entry          string        `yaml:"entry"`
	OutDir         string        `yaml:"out_dir"`
	IncludePaths   []string      `yaml:"include_paths"`
	OutputStyle    OutputStyle   `yaml:"output_style"`
	Precision      int           `yaml:"precision"`
	SourceMap      SourceMapMode `yaml:"source_map"`
	EmbedContents  bool          `yaml:"embed_contents"`
	FileURLs       bool          `yaml:"file_urls"`
	QuietDeps      bool          `yaml:"quiet_deps"`
}

// Default returns the configuration the driver uses when no file and no
// flags override a field (§6: precision default 10, expanded style).
func Default() *Config {
	return &Config{
		OutputStyle: Expanded,
		Precision:   10,
		SourceMap:   SourceMapNone,
	}
}

// Load reads and parses a `.sassrc.yaml` file, returning Default() values
// for any field the file leaves unset.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Precision <= 0 {
		cfg.Precision = 10
	}
	if cfg.OutputStyle == "" {
		cfg.OutputStyle = Expanded
	}
	if cfg.SourceMap == "" {
		cfg.SourceMap = SourceMapNone
	}
	return cfg, nil
}

// Merge overlays non-zero fields of override onto a copy of c, the
// flags-win-over-file-config precedence cmd/sassc applies. IncludePaths
// are the exception: override's paths are appended after c's.
func (c *Config) Merge(override *Config) *Config {
	out := *c
	if override.Entry != "" {
		out.Entry = override.Entry
	}
	if override.OutDir != "" {
		out.OutDir = override.OutDir
	}
	if len(override.IncludePaths) > 0 {
		out.IncludePaths = append(append([]string{}, c.IncludePaths...), override.IncludePaths...)
	}
	if override.OutputStyle != "" {
		out.OutputStyle = override.OutputStyle
	}
	if override.Precision > 0 {
		out.Precision = override.Precision
	}
	if override.SourceMap != "" {
		out.SourceMap = override.SourceMap
	}
	if override.EmbedContents {
		out.EmbedContents = true
	}
	if override.FileURLs {
		out.FileURLs = true
	}
	if override.QuietDeps {
		out.QuietDeps = true
	}
	return &out
}
