package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"uniformgen/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type versionInfo struct {
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	w := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "pretty":
		colorOn, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "uniformgen %s\n", version.Styled(colorOn))
		if version.GitCommit != "" {
			fmt.Fprintf(w, "commit: %s\n", version.GitCommit)
		}
		if version.GitMessage != "" {
			fmt.Fprintf(w, "message: %s\n", version.GitMessage)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(w, "built: %s\n", version.BuildDate)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(versionInfo{
			Version:    version.Version,
			GitCommit:  version.GitCommit,
			GitMessage: version.GitMessage,
			BuildDate:  version.BuildDate,
		})
	default:
		return fmt.Errorf("unknown format %q (expected pretty|json)", format)
	}
}
