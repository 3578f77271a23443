package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/astbuild"
	"github.com/dotandev/infc/internal/cst/tscst"
	"github.com/dotandev/infc/internal/source"
	"github.com/dotandev/infc/pkg/infc"
)

var checkVerbose bool

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Run semantic analysis over one or more source files",
	Long: `Parse each given file into a concrete syntax tree, lower it to an AST,
then run registration, use-directive resolution, and bidirectional type
checking across the whole set of files as a single compilation unit.

Each file's module name is taken from its base filename (without
extension); files sharing a name are registered into the same module, so
a module may be split across several files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "verbose output")
}

func runCheck(_ *cobra.Command, args []string) error {
	if Language == nil {
		return fmt.Errorf("no concrete-syntax grammar is linked into this binary; " +
			"infc's semantic core consumes an externally produced CST only")
	}

	var files []*ast.SourceFile
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		if checkVerbose {
			fmt.Fprintf(os.Stderr, "parsing %s...\n", path)
		}
		root, err := tscst.Parse(context.Background(), Language, content)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		src := source.New(path, content)
		sf, buildErrs := astbuild.Build(src, root)
		for _, e := range buildErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		if sf == nil {
			continue
		}
		sf.Name = moduleNameFor(path)
		files = append(files, sf)
	}

	_, diags := infc.Check(files)
	for _, d := range diags {
		fmt.Println(d.Format())
	}
	if len(diags) > 0 {
		os.Exit(1)
	}
	return nil
}

func moduleNameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
