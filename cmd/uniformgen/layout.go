package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"uniformgen/internal/driver"
	"uniformgen/internal/ui"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [input]",
	Short: "Show computed struct layouts",
	Long: `Layout prints the offset, size and alignment of every field, including the
padding inserted before it. The json and msgpack formats write a manifest that
other tools can consume.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayout,
}

func init() {
	addGenerateFlags(layoutCmd, "output path (default stdout)")
	layoutCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runLayout(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "pretty" {
		if _, err := driver.ParseManifestFormat(format); err != nil {
			return err
		}
	}

	settings, err := resolveSettings(cmd, args, false)
	if err != nil {
		return err
	}
	// generate's manifest output path is a header, not a layout destination
	if !cmd.Flags().Changed("output") {
		settings.output = "-"
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

	text, err := readInput(settings.input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	out, err := driver.Analyze(cmd.Context(), text, settings.opts, 0)
	if err != nil {
		return reportError(cmd, settings.input, text, err)
	}

	var buf bytes.Buffer
	if format == "pretty" {
		colorOn := false
		if settings.output == "-" {
			if colorOn, err = useColor(cmd, os.Stdout); err != nil {
				return err
			}
		}
		if err := ui.RenderLayouts(&buf, out.Layouts, ui.TableOpts{Color: colorOn}); err != nil {
			return err
		}
	} else {
		mf, _ := driver.ParseManifestFormat(format)
		if err := driver.EncodeManifest(&buf, driver.BuildManifest(out.Layouts, settings.opts), mf); err != nil {
			return fmt.Errorf("failed to encode manifest: %w", err)
		}
	}
	return writeOutput(settings.output, buf.Bytes(), cmd.OutOrStdout())
}
