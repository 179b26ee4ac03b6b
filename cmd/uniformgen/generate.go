package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uniformgen/internal/diagfmt"
	"uniformgen/internal/driver"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input]",
	Short: "Generate a C header from uniform signatures",
	Long: `Generate parses uniform signature declarations and writes a C header with one
packed struct and one signature string per declaration. Use "-" to read from
stdin or write to stdout. Missing arguments are taken from uniformgen.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd, "output header path (- for stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, args, true)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	// status lines move to stderr when the header itself goes to stdout
	status := cmd.OutOrStdout()
	if settings.output == "-" {
		status = cmd.ErrOrStderr()
	}
	if !quiet {
		fmt.Fprintf(status, "Generating bindings for %s\n", displayPath(settings.input))
	}

	text, err := readInput(settings.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	out, err := driver.Generate(cmd.Context(), text, settings.opts)
	if err != nil {
		return reportError(cmd, settings.input, text, err)
	}
	if err := writeOutput(settings.output, out.Header, cmd.OutOrStdout()); err != nil {
		return err
	}
	if showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), out.Timings.Summary())
	}
	if !quiet {
		fmt.Fprintf(status, "Wrote %d signatures to %s\n", len(out.Signatures), displayPath(settings.output))
	}
	return nil
}

// reportError prints err against the input text and returns errReported.
func reportError(cmd *cobra.Command, input, text string, err error) error {
	colorOn, cerr := useColor(cmd, os.Stderr)
	if cerr != nil {
		return cerr
	}
	diagfmt.Error(cmd.ErrOrStderr(), displayPath(input), text, err, diagfmt.PrettyOpts{
		Color:   colorOn,
		Context: true,
	})
	return errReported
}

func displayPath(p string) string {
	if p == "-" {
		return "<stdin>"
	}
	return p
}
