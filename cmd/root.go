package cmd

import (
	"context"
	"time"

	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/config"
	"github.com/misterclayt0n/gymlog/internal/logging"
	"github.com/misterclayt0n/gymlog/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "gymlog",
	Short:         "Workout log with strength trends, PRs and weekly streaks",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFile(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}

		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.Log.File,
			LogLevel:      cfg.Log.Level,
			LogFormatJSON: cfg.Log.JSON,
		})
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/gymlog/config.toml)")
}

func openStorage() (*storage.Storage, error) {
	st, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("open storage")
		return nil, err
	}
	return st, nil
}

func newEngine() *analytics.Engine {
	// The location was validated when the config was loaded.
	loc, _ := cfg.Location()
	return analytics.New(loc, time.Now)
}

// loadSnapshot opens the store, reads one consistent snapshot and closes it.
func loadSnapshot(ctx context.Context) (*analytics.Snapshot, error) {
	st, err := openStorage()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	snap, err := st.Snapshot(ctx)
	if err != nil {
		logrus.WithError(err).Error("load snapshot")
		return nil, err
	}
	return snap, nil
}
