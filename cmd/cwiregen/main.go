// Command cwiregen generates owned/C-representation conversion methods
// for structs annotated with @cwire.
//
// Usage:
//
//	cwiregen [-output file.go] <file.go> [file.go ...]
//
// Without -output, each input file.go produces file_cwire.go next to it.
// Flags can also be set through CWIRE_* environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/peterbourgon/ff/v4"

	"github.com/cwire/cwire/internal/codegen"
	"github.com/cwire/cwire/internal/parser"
)

const envVarPrefix = "CWIRE"

func main() {
	if err := run(slices.Clone(os.Args[1:])); err != nil {
		fmt.Fprintf(os.Stderr, "cwiregen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cwiregen", flag.ContinueOnError)
	output := fs.String("output", "", "write all generated code to this file (default: per-input _cwire.go)")
	pkg := fs.String("pkg", "", "package name for generated files (default: same as input)")

	// Wrap the stdlib set explicitly: ff parses into its own FlagSet, so
	// the positional arguments live on the wrapper, not on fs.
	ffs := ff.NewFlagSetFrom("cwiregen", fs)

	err := ff.Parse(ffs, args, ff.WithEnvVarPrefix(envVarPrefix))
	if err != nil {
		if errors.Is(err, ff.ErrHelp) {
			fs.Usage()
			return nil
		}
		return err
	}

	inputs := ffs.GetArgs()
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("no input files")
	}
	if *output != "" && len(inputs) > 1 {
		return fmt.Errorf("-output requires a single input file")
	}

	for _, input := range inputs {
		if err := generateFile(input, *output, *pkg); err != nil {
			return err
		}
	}
	return nil
}

func generateFile(input, output, pkg string) error {
	src, err := parser.ParseFile(input)
	if err != nil {
		return err
	}
	if len(src.Structs) == 0 {
		return fmt.Errorf("%s: no structs with @cwire annotations", input)
	}
	if pkg != "" {
		src.Package = pkg
	}

	code, err := codegen.File(src)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if output == "" {
		output = outputPath(input)
	}
	if err := os.WriteFile(output, code, 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d types)\n", output, len(src.Structs))
	return nil
}

// outputPath derives file_cwire.go from file.go.
func outputPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_cwire.go"
}
