// Package api exposes the recommendation pipeline over HTTP.
package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"uni_recommender/pkg/catalog"
	"uni_recommender/pkg/cohort"
	"uni_recommender/pkg/recommend"
)

// Server wires the pipeline, catalog snapshot, and cohort data into an
// HTTP handler.
type Server struct {
	svc       *recommend.Service
	programs  []catalog.Program
	countries []catalog.Country
	dataset   *cohort.Dataset
	store     *cohort.Store
	db        *sql.DB
}

// New builds a Server over already-loaded reference data.
func New(svc *recommend.Service, programs []catalog.Program, countries []catalog.Country, dataset *cohort.Dataset, store *cohort.Store, db *sql.DB) *Server {
	return &Server{
		svc:       svc,
		programs:  programs,
		countries: countries,
		dataset:   dataset,
		store:     store,
		db:        db,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", s.handleRecommendations)
		r.Post("/similar-students", s.handleSimilarStudents)
		r.Get("/countries", s.handleCountries)
		r.Get("/programs", s.handlePrograms)
		r.Get("/cohort/insights", s.handleCohortInsights)
	})
	return r
}

// HTTPServer wraps the handler in a server with the standard timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
