package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uniformgen/internal/trace"
)

// setupTracing reads the log flags and attaches a tracer to the command
// context. It returns a cleanup function that flushes and closes the tracer.
func setupTracing(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	levelStr, err := root.PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	output, err := root.PersistentFlags().GetString("log-output")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-output flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	cfg := trace.Config{Level: level, OutputPath: output}
	if output == "" || output == "-" {
		cfg.Output = cmd.ErrOrStderr()
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	cleanup := func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "log: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
