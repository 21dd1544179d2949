package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"uni_recommender/pkg/catalog"
	"uni_recommender/pkg/cohort"
	"uni_recommender/pkg/recommend"
)

const similarStudentsDefault = 5

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	status := http.StatusOK
	if s.db == nil {
		database = "not_loaded"
	} else if err := s.db.Ping(); err != nil {
		database = "unreachable"
		status = http.StatusInternalServerError
	}

	cohortState := "not_built"
	if s.store != nil && s.store.Current() != nil {
		cohortState = "ready"
	}

	writeJSON(w, status, map[string]any{
		"status":       "ok",
		"timestamp":    time.Now().Format(time.RFC3339),
		"service":      "program-recommender",
		"database":     database,
		"cohort_index": cohortState,
		"programs":     len(s.programs),
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var prefs recommend.PreferenceSet
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to parse request body", err.Error())
		return
	}

	result, err := s.svc.Recommend(prefs)
	if err != nil {
		var verr *recommend.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "INVALID_PREFERENCES", verr.Error(), "")
			return
		}
		log.Error().Err(err).Msg("recommendation pipeline failed")
		writeError(w, http.StatusInternalServerError, "ALGORITHM_ERROR", "failed to generate recommendations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"count":           len(result.Programs),
		"recommendations": result.Programs,
		"explanations":    result.Explanations,
	})
}

type studentSummary struct {
	ID               int      `json:"id"`
	FieldOfStudy     string   `json:"field_of_study"`
	GPA              *float64 `json:"gpa"`
	FinalDestination *string  `json:"final_destination"`
	Satisfaction     *int     `json:"satisfaction_score"`
}

func (s *Server) handleSimilarStudents(w http.ResponseWriter, r *http.Request) {
	var prefs recommend.PreferenceSet
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to parse request body", err.Error())
		return
	}

	records, err := s.svc.SimilarStudents(prefs, similarStudentsDefault)
	if err != nil {
		writeError(w, http.StatusNotFound, "NO_COHORT_MODEL", "could not find similar students", err.Error())
		return
	}

	summaries := make([]studentSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, summarize(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"similar_students": summaries,
	})
}

func summarize(rec cohort.Record) studentSummary {
	sum := studentSummary{ID: rec.StudentID, FieldOfStudy: rec.FieldOfStudy}
	if !math.IsNaN(rec.GPA) {
		gpa := rec.GPA
		sum.GPA = &gpa
	}
	if rec.DestinationCountry != "" {
		dest := rec.DestinationCountry
		sum.FinalDestination = &dest
	}
	if !math.IsNaN(rec.Satisfaction) {
		sat := int(rec.Satisfaction)
		sum.Satisfaction = &sat
	}
	return sum
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	countries := s.countries
	if countries == nil {
		countries = []catalog.Country{}
	}
	writeJSON(w, http.StatusOK, countries)
}

func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	limit := queryInt(r, "limit", 100)
	offset := queryInt(r, "offset", 0)

	filtered := make([]catalog.Program, 0, len(s.programs))
	for _, p := range s.programs {
		if country != "" && !strings.EqualFold(p.Country, country) {
			continue
		}
		filtered = append(filtered, p)
	}

	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	page := filtered[offset:end]

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(page),
		"programs": page,
	})
}

func (s *Server) handleCohortInsights(w http.ResponseWriter, r *http.Request) {
	if s.dataset == nil || len(s.dataset.Records) == 0 {
		writeError(w, http.StatusNotFound, "NO_COHORT_DATA", "no historical dataset loaded", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"records":      len(s.dataset.Records),
		"correlations": cohort.SatisfactionCorrelations(s.dataset),
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, message, details string) {
	writeJSON(w, status, map[string]string{
		"status":     "error",
		"error_code": code,
		"message":    message,
		"details":    details,
	})
}
