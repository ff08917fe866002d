package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/olsdiag/config"
	"github.com/arloliu/olsdiag/dataset"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	dataPath   string
	limit      int
	logLevel   string
	noColor    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "olsdiag",
		Short: "Leverage diagnostics for simple linear regression",
		Long: `olsdiag fits y = intercept + slope*x to a JSON dataset and shows how
much each point pulls the regression line: residuals with and without the
point, the leave-one-out leverage delta and the hat-matrix diagonal.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.dataPath, "data", "", "dataset JSON file (.zst, .s2, .lz4 and .gz are decompressed)")
	flags.IntVar(&a.limit, "limit", 0, "keep the first N records (0 keeps all; default from config)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newFitCmd(a), newDragCmd(a), newSceneCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Dataset.Path = a.dataPath
	}
	if flags.Changed("limit") {
		cfg.Dataset.Limit = a.limit
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if a.noColor {
		color.NoColor = true
	}

	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// loadDataset loads the configured dataset.
func (a *app) loadDataset() (*dataset.Dataset, error) {
	if a.cfg.Dataset.Path == "" {
		return nil, errors.New("no dataset: pass --data or set dataset.path in the config")
	}

	opts, err := a.cfg.DatasetOptions()
	if err != nil {
		return nil, err
	}

	ds, err := dataset.Load(a.cfg.Dataset.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	a.logger.Info("dataset loaded",
		zap.String("source", ds.Source),
		zap.Int("records", ds.Len()),
		zap.Int("total", ds.Total),
		zap.String("fingerprint", fmt.Sprintf("%016x", ds.Fingerprint())),
	)

	return ds, nil
}
