// Command costar answers "how is this performer connected to the reference"
// queries over a movie cast dataset, from the terminal or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/costar/internal/config"
	"github.com/katalvlaran/costar/internal/logging"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("costar version %s (commit: %s)", version, commit)
	}

	return fmt.Sprintf("costar version %s-dev", version)
}

// app carries global flags and the state resolved from them.
type app struct {
	flagConfig    string
	flagReference string
	flagDataset   string
	flagLogLevel  string

	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "costar",
		Short:   "Shortest co-star chains to a reference performer",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flagConfig, "config", "", "YAML config file (env overrides apply on top)")
	flags.StringVar(&a.flagReference, "reference", "", "reference performer (env: COSTAR_REFERENCE)")
	flags.StringVar(&a.flagDataset, "dataset", "", "dataset file path (env: COSTAR_DATASET)")
	flags.StringVar(&a.flagLogLevel, "log-level", "", "debug|info|warn|error (env: COSTAR_LOG_LEVEL)")

	rootCmd.AddCommand(newQueryCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newDatagenCmd(a))

	return rootCmd
}

// setup resolves configuration: defaults, then file, then env, then flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("reference") {
		cfg.Reference = a.flagReference
	}
	if flags.Changed("dataset") {
		cfg.Dataset.Source = config.SourceFile
		cfg.Dataset.Path = a.flagDataset
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Log)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
