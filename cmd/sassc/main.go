// Command sassc is the CLI driver for sass.go: compile and watch a Sass
// entry point to CSS. Grounded on the teacher's cmd/lessc-go flag
// surface (compress/source-map/include-path/output flags), re-expressed
// with github.com/spf13/cobra the way fredcamaral-slicli's cmd/ does,
// per SPEC_FULL's ambient CLI section.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at release time; the teacher's own cmd/lessc-go embeds
// a literal version constant the same way.
const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "sassc",
	Short:   "Compile Sass (.scss/.sass) to CSS",
	Version: version,
}

func main() {
	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newVersionCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sassc version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "sassc", version)
			return nil
		},
	}
}
