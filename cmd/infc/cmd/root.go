package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "infc",
	Short: "Semantic analyzer for the infc source language",
	Long: `infc runs the semantic-analysis front end over source files already
parsed into a concrete syntax tree: AST construction, symbol registration,
use-directive resolution, and bidirectional type checking, producing a
typed, name-bound intermediate representation and a diagnostic list.

This binary does not itself parse source text into a tree -- the core
consumes a CST node interface only, so "infc check" requires a
tree-sitter grammar for the source language to be linked in.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
