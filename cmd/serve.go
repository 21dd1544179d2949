package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"uni_recommender/pkg/api"
	"uni_recommender/pkg/catalog"
	"uni_recommender/pkg/cohort"
	"uni_recommender/pkg/config"
	"uni_recommender/pkg/recommend"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recommendation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServe(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cfg *config.Config) error {
	db, programs, countries, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	store, dataset := buildCohort(cfg)

	svc := recommend.NewService(programs, countries, store, cfg.TopN)
	server := api.New(svc, programs, countries, dataset, store, db).HTTPServer(cfg.ListenAddr)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("starting recommendation API")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// loadCatalog opens the program database and loads the reference
// snapshot served for the process lifetime.
func loadCatalog(cfg *config.Config) (*sql.DB, []catalog.Program, []catalog.Country, error) {
	db, err := catalog.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	programs, err := catalog.LoadPrograms(db)
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("load programs: %w", err)
	}
	countries, err := catalog.LoadCountries(db)
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("load countries: %w", err)
	}
	log.Info().Int("programs", len(programs)).Int("countries", len(countries)).Msg("catalog loaded")
	return db, programs, countries, nil
}

// buildCohort loads the migration dataset and publishes the similarity
// index. Failures degrade the service to unenhanced recommendations
// rather than preventing startup.
func buildCohort(cfg *config.Config) (*cohort.Store, *cohort.Dataset) {
	store := cohort.NewStore()

	dataset, err := cohort.LoadCSV(cfg.MigrationCSV)
	if err != nil {
		log.Warn().Err(err).Msg("no student migration data, cohort enhancement disabled")
		return store, nil
	}

	idx, err := cohort.Build(dataset)
	if err != nil {
		log.Warn().Err(err).Msg("cohort index build failed, enhancement disabled")
		return store, dataset
	}
	store.Publish(idx)
	log.Info().Int("neighbors", idx.NeighborCount()).Strs("features", idx.Features()).Msg("cohort index built")
	return store, dataset
}
