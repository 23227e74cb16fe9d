// Package cli drives the generation pipeline: expand directory patterns,
// scan each package, render and write the generated files, and report
// diagnostics.
package cli

import (
	"errors"
	"fmt"

	"github.com/proofroute/proof/internal/annotations"
	"github.com/proofroute/proof/internal/generator"
	"github.com/proofroute/proof/internal/parser"
	"github.com/proofroute/proof/internal/utils"
)

// Options configures one generator run.
type Options struct {
	ModuleName string // overrides go.mod module resolution
	Patterns   []string
}

// Runner wires the parser and generator together for CLI use.
type Runner struct {
	diagnostics *utils.DiagnosticSystem
	resolver    *utils.ModuleResolver
	generator   *generator.Generator
}

// NewRunner creates a pipeline runner.
func NewRunner(diagnostics *utils.DiagnosticSystem) *Runner {
	return &Runner{
		diagnostics: diagnostics,
		resolver:    utils.NewModuleResolver(),
		generator:   generator.NewGenerator(),
	}
}

// Run executes the pipeline. It returns an error when any package failed;
// packages without annotations are skipped silently.
func (r *Runner) Run(opts Options) error {
	dirs, err := utils.ExpandDirectoryPatterns(opts.Patterns)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no directories matched the given patterns")
	}

	moduleName, err := r.resolver.ResolveModuleName(opts.ModuleName, dirs[0])
	if err != nil {
		// Module resolution only feeds diagnostics; scanning proceeds.
		moduleName = "(unknown module)"
	}
	r.diagnostics.Header(fmt.Sprintf("generating for %s", moduleName))

	r.diagnostics.Phase("Scanning")
	generated := 0
	failed := 0
	for _, dir := range dirs {
		switch err := r.processDirectory(dir); {
		case err == nil:
			generated++
		case errors.Is(err, errNothingToGenerate):
			r.diagnostics.Debug("%s: no annotations", dir)
		default:
			failed++
			r.reportFailure(dir, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("generation failed for %d package(s)", failed)
	}
	r.diagnostics.Summary("proof: generation complete (%d package(s))", generated)
	return nil
}

var errNothingToGenerate = errors.New("nothing to generate")

// processDirectory scans one package directory and writes its generated file.
func (r *Runner) processDirectory(dir string) error {
	p := parser.NewParser()
	metadata, err := p.ParseDirectory(dir)
	if err != nil {
		return err
	}

	file, err := r.generator.GenerateModule(metadata)
	if err != nil {
		return err
	}
	if file == nil {
		return errNothingToGenerate
	}

	if err := r.generator.WriteFile(file); err != nil {
		return err
	}
	r.diagnostics.Writing(file.FilePath)
	r.diagnostics.Item("%s: %d enum(s), %d route(s)", dir, len(metadata.Enums), len(metadata.Handlers))
	return nil
}

// reportFailure prints every aggregated diagnostic of a failed package.
func (r *Runner) reportFailure(dir string, err error) {
	var multi *annotations.MultipleAnnotationErrors
	if errors.As(err, &multi) {
		for _, aerr := range multi.Errors {
			r.diagnostics.Error("[%s] %s", aerr.Code(), aerr.Error())
		}
		return
	}
	r.diagnostics.Error("%s: %v", dir, err)
}
