package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"uni_recommender/pkg/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the catalog database and populate it with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := catalog.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer db.Close()

		if err := catalog.Seed(db); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		log.Info().Str("path", cfg.DatabasePath).Msg("sample catalog seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
