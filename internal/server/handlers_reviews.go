package server

import (
	"encoding/json"
	"net/http"

	"github.com/dovydas-v/uniguide/internal/db"
	"github.com/dovydas-v/uniguide/internal/server/middleware"
)

// reviewTargets maps the path segment to the review target kind.
var reviewTargets = map[string]string{
	"universities": db.TargetUniversity,
	"programs":     db.TargetProgram,
	"lecturers":    db.TargetLecturer,
}

// handleListReviews lists reviews for a target entity
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	targetKind, ok := reviewTargets[r.PathValue("target")]
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid review target")
		return
	}

	targetID, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := s.db.ListReviews(r.Context(), targetKind, targetID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// handleCreateReview creates a review for a target entity. Requires
// authentication; the author is taken from the token, not the body.
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetKind, ok := reviewTargets[r.PathValue("target")]
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid review target")
		return
	}

	targetID, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	var review db.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if review.Rating < 1 || review.Rating > 5 {
		s.errorResponse(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	review.AuthorID = userID
	review.TargetKind = targetKind
	review.TargetID = targetID

	id, err := s.db.CreateReview(r.Context(), &review)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleDeleteReview deletes the authenticated user's own review
func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteReview(r.Context(), id, userID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Review not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
