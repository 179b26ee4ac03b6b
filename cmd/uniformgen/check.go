package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"uniformgen/internal/diag"
	"uniformgen/internal/diagfmt"
	"uniformgen/internal/signature"
)

var checkCmd = &cobra.Command{
	Use:   "check [input]",
	Short: "Validate uniform signatures without generating output",
	Long:  `Check parses every declaration line and reports all errors found, not only the first.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("max-errors", 100, "maximum number of errors to report (0 = unlimited)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxErrors, err := cmd.Flags().GetInt("max-errors")
	if err != nil {
		return fmt.Errorf("failed to get max-errors flag: %w", err)
	}
	if maxErrors < 0 {
		return fmt.Errorf("--max-errors must not be negative")
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	input, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	text, err := readInput(input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	if maxErrors == 0 {
		maxErrors = math.MaxInt32
	}
	bag := diag.NewBag(maxErrors)
	sigs := signature.Collect(text, bag)

	if bag.HasErrors() {
		bag.Sort()
		colorOn, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		diagfmt.Pretty(cmd.ErrOrStderr(), displayPath(input), text, bag.Items(), diagfmt.PrettyOpts{
			Color:   colorOn,
			Context: true,
		})
		return errReported
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d signatures OK\n", displayPath(input), len(sigs))
	}
	return nil
}

// resolveInput picks the input from args or the project manifest.
func resolveInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	manifest, err := loadProjectManifest(configPath, wd)
	if err != nil {
		return "", err
	}
	if manifest == nil || manifest.Config.Generate.Input == "" {
		return "", fmt.Errorf("no input file: pass one or set [generate].input in %s", manifestFileName)
	}
	return manifest.resolvePath(manifest.Config.Generate.Input), nil
}
