package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uniformgen/internal/driver"
	"uniformgen/internal/emit"
	"uniformgen/internal/layout"
)

// flagValues captures the command-line values and whether each was set.
type flagValues struct {
	input      string
	output     string
	outputSet  bool
	backend    string
	backendSet bool
	cursor     string
	cursorSet  bool
	jobs       int
	jobsSet    bool
}

type generateSettings struct {
	input  string
	output string
	opts   driver.Options
}

// mergeSettings applies flags over manifest values. requireOutput is false
// for commands that default to stdout.
func mergeSettings(fv flagValues, m *projectManifest, requireOutput bool) (generateSettings, error) {
	var cfg projectConfig
	if m != nil {
		cfg = m.Config
	}

	s := generateSettings{input: fv.input, output: fv.output}
	if s.input == "" && m != nil {
		s.input = m.resolvePath(cfg.Generate.Input)
	}
	if s.input == "" {
		return s, fmt.Errorf("no input file: pass one or set [generate].input in %s", manifestFileName)
	}
	if !fv.outputSet && m != nil && cfg.Generate.Output != "" {
		s.output = m.resolvePath(cfg.Generate.Output)
	}
	if s.output == "" {
		if requireOutput {
			return s, fmt.Errorf("no output file: pass --output or set [generate].output in %s", manifestFileName)
		}
		s.output = "-"
	}

	backendName := fv.backend
	if !fv.backendSet && cfg.Generate.Backend != "" {
		backendName = cfg.Generate.Backend
	}
	if backendName == "" {
		if requireOutput {
			return s, fmt.Errorf("no backend: pass --backend (vulkan|opengl) or set [generate].backend in %s", manifestFileName)
		}
		backendName = emit.Vulkan.String()
	}
	backend, err := emit.ParseBackend(backendName)
	if err != nil {
		return s, err
	}

	cursorName := fv.cursor
	if !fv.cursorSet && cfg.Layout.Cursor != "" {
		cursorName = cfg.Layout.Cursor
	}
	cursor, err := layout.ParseCursorMode(cursorName)
	if err != nil {
		return s, err
	}

	jobs := fv.jobs
	if !fv.jobsSet && cfg.Layout.Jobs > 0 {
		jobs = cfg.Layout.Jobs
	}
	if jobs < 0 {
		return s, fmt.Errorf("--jobs must not be negative")
	}

	s.opts = driver.Options{Backend: backend, Cursor: cursor, Jobs: jobs}
	return s, nil
}

// addGenerateFlags registers the flags shared by generate and layout.
func addGenerateFlags(cmd *cobra.Command, outputHelp string) {
	cmd.Flags().StringP("output", "o", "", outputHelp)
	cmd.Flags().StringP("backend", "b", "", "target backend (vulkan|opengl); does not change the emitted header")
	cmd.Flags().String("cursor", "logical", "offset advance past array fields (logical|aligned)")
	cmd.Flags().IntP("jobs", "j", 0, "parallel layout workers (0 = GOMAXPROCS)")
}

func readFlagValues(cmd *cobra.Command, args []string) (flagValues, error) {
	var fv flagValues
	var err error
	if len(args) > 0 {
		fv.input = args[0]
	}
	flags := cmd.Flags()
	if fv.output, err = flags.GetString("output"); err != nil {
		return fv, fmt.Errorf("failed to get output flag: %w", err)
	}
	if fv.backend, err = flags.GetString("backend"); err != nil {
		return fv, fmt.Errorf("failed to get backend flag: %w", err)
	}
	if fv.cursor, err = flags.GetString("cursor"); err != nil {
		return fv, fmt.Errorf("failed to get cursor flag: %w", err)
	}
	if fv.jobs, err = flags.GetInt("jobs"); err != nil {
		return fv, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	fv.outputSet = flags.Changed("output")
	fv.backendSet = flags.Changed("backend")
	fv.cursorSet = flags.Changed("cursor")
	fv.jobsSet = flags.Changed("jobs")
	return fv, nil
}

func resolveSettings(cmd *cobra.Command, args []string, requireOutput bool) (generateSettings, error) {
	fv, err := readFlagValues(cmd, args)
	if err != nil {
		return generateSettings{}, err
	}
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return generateSettings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return generateSettings{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	manifest, err := loadProjectManifest(configPath, wd)
	if err != nil {
		return generateSettings{}, err
	}
	return mergeSettings(fv, manifest, requireOutput)
}
