package cmd

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"uni_recommender/pkg/recommend"
)

var preferencesFile string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the pipeline once for a preferences file and print the ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(preferencesFile)
		if err != nil {
			return fmt.Errorf("read preferences file: %w", err)
		}
		var prefs recommend.PreferenceSet
		if err := json.Unmarshal(data, &prefs); err != nil {
			return fmt.Errorf("parse preferences file: %w", err)
		}

		db, programs, countries, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		store, _ := buildCohort(cfg)

		svc := recommend.NewService(programs, countries, store, cfg.TopN)
		result, err := svc.Recommend(prefs)
		if err != nil {
			return err
		}
		if len(result.Programs) == 0 {
			fmt.Println("No programs match your criteria.")
			return nil
		}

		for i, sp := range result.Programs {
			fmt.Printf("%2d. %s — %s (%s, %s)\n", i+1, sp.Program.Name, sp.Program.University,
				sp.Program.Country, sp.Program.Level)
			fmt.Printf("    tuition $%.0f/year, match %.1f%%\n", sp.Program.TuitionPerYear, sp.MatchPercentage)
			if sp.Explanation != "" {
				fmt.Printf("    %s\n", sp.Explanation)
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVarP(&preferencesFile, "preferences", "f", "preferences.json", "JSON file with the preference set")
	rootCmd.AddCommand(recommendCmd)
}
