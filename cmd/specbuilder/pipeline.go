package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/peter8zero/specbuilder/internal/errors"
	"github.com/peter8zero/specbuilder/internal/extract"
	"github.com/peter8zero/specbuilder/internal/render"
	"github.com/peter8zero/specbuilder/internal/source"
)

// extractOptions configures one extraction run.
type extractOptions struct {
	Input            string // directory to scan, or JSON file with Exchange
	Exchange         bool
	Pattern          string // doublestar include pattern for directory mode
	OptionsPath      string
	CapabilitiesPath string
	Trace            io.Writer // nil to silence
}

// extractResult holds what one run produced. The loaded modules are
// retained so reports can be rendered after the fact.
type extractResult struct {
	Modules         []source.Module
	Options         extract.Table[extract.Option]
	Capabilities    extract.Table[extract.Capability]
	OptionCount     int
	CapabilityCount int
}

// Preview renders the grouped preview summary for this run.
func (r *extractResult) Preview() string {
	return render.Preview(r.Options, r.Capabilities)
}

// Coverage renders the documentation-coverage report for this run.
func (r *extractResult) Coverage() string {
	return render.Coverage(r.Modules)
}

// runExtraction is the whole pipeline: load modules, aggregate both tables,
// write both generated files. Either it completes or it fails outright;
// nothing is written on a load failure.
func runExtraction(opts extractOptions) (*extractResult, error) {
	trace := opts.Trace
	if trace == nil {
		trace = io.Discard
	}

	var modules []source.Module
	var err error
	if opts.Exchange {
		modules, err = source.LoadExchange(opts.Input)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(trace, "Loaded %d modules from %s (exchange mode)\n", len(modules), opts.Input)
	} else {
		fmt.Fprintf(trace, "Scanning %s for %s files...\n", opts.Input, opts.Pattern)
		modules, err = source.LoadDir(opts.Input, opts.Pattern, trace)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(trace, "Loaded %d files from %s\n", len(modules), opts.Input)
	}

	fmt.Fprintf(trace, "\n--- Spec Options ---\n")
	options := extract.Options(modules, trace)
	fmt.Fprintf(trace, "\nExtracted %d spec options across %d categories\n", options.Total(), len(options))
	for _, cat := range slices.Sorted(maps.Keys(options)) {
		fmt.Fprintf(trace, "  %s: %d options\n", cat, len(options[cat]))
	}

	if err := writeOutput(opts.OptionsPath, render.Options(options)); err != nil {
		return nil, err
	}
	fmt.Fprintf(trace, "Wrote %s\n", opts.OptionsPath)

	fmt.Fprintf(trace, "\n--- Spec Capabilities ---\n")
	capabilities := extract.Capabilities(modules, trace)
	fmt.Fprintf(trace, "\nExtracted %d spec capabilities across %d categories\n", capabilities.Total(), len(capabilities))
	for _, cat := range slices.Sorted(maps.Keys(capabilities)) {
		fmt.Fprintf(trace, "  %s: %d capabilities\n", cat, len(capabilities[cat]))
	}

	if err := writeOutput(opts.CapabilitiesPath, render.Capabilities(capabilities)); err != nil {
		return nil, err
	}
	fmt.Fprintf(trace, "Wrote %s\n", opts.CapabilitiesPath)

	return &extractResult{
		Modules:         modules,
		Options:         options,
		Capabilities:    capabilities,
		OptionCount:     options.Total(),
		CapabilityCount: capabilities.Total(),
	}, nil
}

// writeOutput writes content via a temp file and rename, so an existing
// output survives a failed write.
func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewInternal(fmt.Errorf("failed to create output directory: %w", err))
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to write %s: %w", path, err))
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.NewInternal(fmt.Errorf("failed to finalize %s: %w", path, err))
	}
	return nil
}
