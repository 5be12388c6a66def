package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/movies"
	"github.com/katalvlaran/degrees/separation"
)

// app carries flag values and the components built from them.
type app struct {
	configPath string
	dataset    string
	dataRoot   string
	logLevel   string
	workers    int

	cfg    *config.Config
	logger *zap.Logger
	data   *movies.Dataset
	finder *separation.Finder
}

// setup loads configuration, applies flag overrides, builds the logger and
// loads the dataset. Flags win over file and environment.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, nil)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset = a.dataset
	}
	if flags.Changed("data-root") {
		cfg.DataRoot = a.dataRoot
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.logger = logger

	a.logger.Debug("Loading data", zap.String("dir", cfg.DatasetDir()))
	data, err := movies.Load(cfg.DatasetDir(), a.logger)
	if err != nil {
		return err
	}
	a.data = data

	a.finder, err = separation.New(data,
		separation.WithLogger(a.logger),
		separation.WithCacheSize(cfg.CacheSize),
		separation.WithWorkers(cfg.Workers),
		separation.WithMaxDepth(cfg.MaxDepth),
	)
	return err
}

// close flushes buffered log entries.
func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "degrees",
		Short: "Find degrees of separation between two actors",
		Long: `Find the shortest chain of shared movies linking two actors.

Without a subcommand, degrees prompts for a source and a target name and
asks which person is meant when a name is shared.

Examples:
  degrees --dataset small
  degrees path "Kevin Bacon" "Tom Hanks"
  degrees batch pairs.csv`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", cobra.ShellCompRequestCmd:
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInteractive(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: degrees.yaml in . or ./config)")
	pf.StringVar(&a.dataset, "dataset", "large", "dataset folder to load (small or large)")
	pf.StringVar(&a.dataRoot, "data-root", "data", "directory containing dataset folders")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.IntVar(&a.workers, "workers", 4, "parallel searches for batch mode")

	root.AddCommand(newPathCmd(a), newBatchCmd(a))
	return root
}
