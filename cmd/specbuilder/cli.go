package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/peter8zero/specbuilder/internal/config"
	"github.com/peter8zero/specbuilder/internal/errors"
	"github.com/peter8zero/specbuilder/internal/render"
)

// newCLIApp creates the CLI application.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:      "specbuilder",
		Usage:     "Extract [SpecOption] and [SpecCapability] attributes and generate JS data tables",
		ArgsUsage: "<input>",
		// -v is taken by --verbose, so the built-in version flag stays off.
		HideVersion:     true,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Treat input as an exchange-format JSON file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output JS file for spec options (default: ./code-options.js)"},
			&cli.StringFlag{Name: "capabilities-output", Aliases: []string{"c"}, Usage: "Output JS file for spec capabilities (default: ./code-capabilities.js)"},
			&cli.BoolFlag{Name: "preview", Usage: "Print a formatted summary of extracted options and capabilities"},
			&cli.BoolFlag{Name: "coverage", Usage: "Print a coverage report of documented vs total public methods"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Print diagnostic output"},
			&cli.StringFlag{Name: "html", Usage: "Write an HTML report to the given path"},
			&cli.StringFlag{Name: "ext", Usage: "Source file extension for directory mode (default: .cs)"},
			&cli.StringFlag{Name: "config", Usage: "Config file path (default: ./specbuilder.json)"},
		},
		Action: runAction,
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// runAction is the single command: load, extract, write, report.
func runAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.NewInvalidInput("missing input path (directory, or JSON file with --json)")
	}
	input := c.Args().First()
	out := c.App.Writer

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return errors.NewInternal(err)
	}
	if path := c.String("output"); path != "" {
		cfg.OptionsOutput = path
	}
	if path := c.String("capabilities-output"); path != "" {
		cfg.CapabilitiesOutput = path
	}
	if ext := c.String("ext"); ext != "" {
		cfg.SourceExtension = ext
		cfg.IncludePattern = ""
	}

	verbose := c.Bool("verbose")
	trace := io.Discard
	if verbose {
		trace = out
	}

	result, err := runExtraction(extractOptions{
		Input:            input,
		Exchange:         c.Bool("json"),
		Pattern:          cfg.Pattern(),
		OptionsPath:      cfg.OptionsOutput,
		CapabilitiesPath: cfg.CapabilitiesOutput,
		Trace:            trace,
	})
	if err != nil {
		return err
	}

	if path := c.String("html"); path != "" {
		page, err := render.HTMLReport(result.Preview(), result.Coverage(), Version)
		if err != nil {
			return errors.NewInternal(err)
		}
		if err := writeOutput(path, page); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(trace, "Wrote %s\n", path)
		}
	}

	if c.Bool("preview") {
		if verbose {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, result.Preview())
	}

	if c.Bool("coverage") {
		if verbose {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, result.Coverage())
	}

	if !verbose && !c.Bool("preview") && !c.Bool("coverage") {
		fmt.Fprintf(out, "Extracted %d spec options -> %s\n", result.OptionCount, cfg.OptionsOutput)
		fmt.Fprintf(out, "Extracted %d spec capabilities -> %s\n", result.CapabilityCount, cfg.CapabilitiesOutput)
	}

	return nil
}
