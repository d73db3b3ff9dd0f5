package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hurttlocker/agrovoz/internal/config"
)

func newConfigCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := gf.resolve("")
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			if a.format != "text" {
				return encode(cmd.OutOrStdout(), a.format, a.cfg)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatConfig(a.cfg))
			return err
		},
	}
}

func formatConfig(cfg config.ResolvedConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "config file: %s\n", cfg.ConfigPath)
	for _, row := range []struct {
		name string
		v    config.ResolvedValue
	}{
		{"review_threshold", cfg.ReviewThreshold},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"output_format", cfg.OutputFormat},
		{"batch_workers", cfg.BatchWorkers},
	} {
		fmt.Fprintf(&sb, "  %-17s %-10s (%s: %s)\n", row.name, row.v.Value, row.v.Source, row.v.From)
	}
	return sb.String()
}
