package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/proofroute/proof/internal/cli"
	"github.com/proofroute/proof/internal/utils"
)

func main() {
	var (
		moduleFlag  = flag.String("module", "", "Custom module name for log output (defaults to go.mod module)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flag.Bool("clean", false, "Delete all autogen_proof.go files from the specified directories")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "proof code generator\n")
		fmt.Fprintf(os.Stderr, "Scans directories for Go files with proof:: annotations and generates\n")
		fmt.Fprintf(os.Stderr, "error-to-response conversions and route wrappers.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/api     Scan only the specific directory\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./internal/...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	switch {
	case *quietFlag:
		diagnostics = utils.NewQuietDiagnostics()
	case *verboseFlag:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	if *cleanFlag {
		cleaner := cli.NewCleaner(diagnostics)
		removed, err := cleaner.Clean(args)
		if err != nil {
			diagnostics.Error("cleanup failed: %v", err)
			os.Exit(1)
		}
		diagnostics.Summary("proof: removed %d generated file(s)", removed)
		return
	}

	runner := cli.NewRunner(diagnostics)
	if err := runner.Run(cli.Options{ModuleName: *moduleFlag, Patterns: args}); err != nil {
		diagnostics.Error("%v", err)
		os.Exit(1)
	}
}
