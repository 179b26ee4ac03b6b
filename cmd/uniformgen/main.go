package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"uniformgen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "uniformgen",
	Short: "Uniform signature to C header generator",
	Long: `uniformgen reads uniform signature declarations and emits packed C structs
laid out with uniform-buffer alignment rules.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errReported marks failures whose details were already printed.
var errReported = errors.New("errors reported")

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "path to uniformgen.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "off", "log level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("log-output", "-", "log destination file (- for stderr; .json/.ndjson selects JSON)")
	rootCmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")
}

// main executes the root command. Any error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
