package server

import (
	"encoding/json"
	"net/http"

	"github.com/dovydas-v/uniguide/internal/provider"
	"github.com/dovydas-v/uniguide/internal/ranking"
	"github.com/dovydas-v/uniguide/internal/types"
)

// handleRecommend runs the recommendation pipeline for a preference profile.
// mode=filter forces the deterministic provider; the default uses the AI
// provider when one is configured.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var prefs types.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(prefs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	p := s.recommendProvider(r.URL.Query().Get("mode"))
	resp, err := p.Recommend(r.Context(), &prefs)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Recommendation failed: "+err.Error())
		return
	}

	// Both pools leave the server ranked by relevance so clients can render
	// them directly and still re-sort locally.
	resp.StrictPrograms = ranking.Rank(resp.StrictPrograms, &prefs)
	resp.RelaxedPrograms = ranking.Rank(resp.RelaxedPrograms, &prefs)

	s.jsonResponse(w, http.StatusOK, resp)
}

// recommendProvider picks the provider for the requested mode.
func (s *Server) recommendProvider(mode string) provider.Provider {
	if mode == "filter" || s.aiProvider == nil {
		return s.filterProvider
	}
	return s.aiProvider
}

// RankRequest is the payload for re-ranking an existing result payload
// against a preference profile.
type RankRequest struct {
	Preferences *types.Preferences `json:"preferences"`
	Results     json.RawMessage    `json:"results"`
}

// handleRankResults re-scores and re-orders a previously obtained result
// payload. The results field accepts the same shapes the providers emit: the
// two-pool object or the legacy flat array.
func (s *Server) handleRankResults(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Results) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "results is required")
		return
	}

	resp, err := provider.DecodeResponse(req.Results)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid results payload: "+err.Error())
		return
	}

	strict := ranking.Rank(resp.StrictPrograms, req.Preferences)
	relaxed := ranking.Rank(resp.RelaxedPrograms, req.Preferences)

	if search := r.URL.Query().Get("search"); search != "" {
		strict = ranking.FilterPrograms(strict, search)
		relaxed = ranking.FilterPrograms(relaxed, search)
	}

	if sortKey := r.URL.Query().Get("sort"); sortKey != "" {
		field := ranking.ParseSortField(sortKey)
		order := ranking.ParseSortOrder(r.URL.Query().Get("order"))
		strict = ranking.SortPrograms(strict, field, order)
		relaxed = ranking.SortPrograms(relaxed, field, order)
	}

	s.jsonResponse(w, http.StatusOK, &types.RecommendationResponse{
		StrictPrograms:  strict,
		RelaxedPrograms: relaxed,
	})
}
