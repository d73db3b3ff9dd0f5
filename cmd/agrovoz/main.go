// agrovoz turns transcribed farm-activity sentences into structured records.
//
// Usage:
//
//	agrovoz process "contratei o Eduardo para plantar soja no talhão 5 por 3000 reais" --user user_12345
//	agrovoz batch utterances.txt --workers 8 -o yaml
//	agrovoz config
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hurttlocker/agrovoz/internal/config"
	"github.com/hurttlocker/agrovoz/internal/extract"
	"github.com/hurttlocker/agrovoz/internal/logging"
)

// version is set at build time via -ldflags.
var version = "0.1.0-dev"

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	threshold  string
	logLevel   string
	logFormat  string
	output     string
}

// app is what a subcommand needs once configuration is resolved.
type app struct {
	cfg       config.ResolvedConfig
	threshold float64
	format    string
	logger    *zap.Logger
	pipeline  *extract.Pipeline
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:   "agrovoz",
		Short: "Extract structured farm records from transcribed speech",
		Long: "agrovoz reads Portuguese sentences describing farm activities and\n" +
			"extracts activity type, person, crop, plot, value and quantity,\n" +
			"with a validation report and a confidence score.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "config file (default ~/.agrovoz/config.yaml)")
	pf.StringVar(&gf.threshold, "review-threshold", "", "confidence below which a record needs review")
	pf.StringVar(&gf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&gf.logFormat, "log-format", "", "log format: console or json")
	pf.StringVarP(&gf.output, "output", "o", "", "output format: json, yaml or text")

	root.AddCommand(newProcessCmd(gf))
	root.AddCommand(newBatchCmd(gf))
	root.AddCommand(newConfigCmd(gf))
	root.AddCommand(newVersionCmd())
	return root
}

// resolve merges config sources and builds the logger and pipeline.
func (gf *globalFlags) resolve(cliWorkers string) (*app, error) {
	cfg, err := config.ResolveConfig(config.ResolveOptions{
		ConfigPath:      gf.configPath,
		CLIThreshold:    gf.threshold,
		CLILogLevel:     gf.logLevel,
		CLILogFormat:    gf.logFormat,
		CLIOutputFormat: gf.output,
		CLIWorkers:      cliWorkers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "resolving config")
	}

	threshold, err := cfg.Threshold()
	if err != nil {
		return nil, err
	}
	format, err := parseFormat(cfg.OutputFormat.Value)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel.Value, cfg.LogFormat.Value)
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}

	return &app{
		cfg:       cfg,
		threshold: threshold,
		format:    format,
		logger:    logger,
		pipeline:  extract.NewPipeline(extract.WithLogger(logger.Named("extract"))),
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "agrovoz %s\n", version)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		stop()
		os.Exit(1)
	}
}
