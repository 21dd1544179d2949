package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uni_recommender/pkg/config"
	"uni_recommender/pkg/logging"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "uni-recommender",
	Short: "University program recommendation service",
	Long: `uni-recommender ranks university programs against a student's weighted
preferences and refines the ranking with patterns mined from historical
student migration outcomes.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML, optional)")
}

// loadConfig reads configuration and initializes logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}
