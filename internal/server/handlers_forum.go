package server

import (
	"encoding/json"
	"net/http"

	"github.com/dovydas-v/uniguide/internal/db"
	"github.com/dovydas-v/uniguide/internal/server/middleware"
)

// ThreadResponse is a forum thread with its comments assembled into a tree.
type ThreadResponse struct {
	Thread   *db.Thread    `json:"thread"`
	Comments []*db.Comment `json:"comments"`
}

// handleListThreads lists forum threads, newest first
func (s *Server) handleListThreads(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	threads, err := s.db.ListThreads(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"threads": threads,
		"count":   len(threads),
		"limit":   limit,
		"offset":  offset,
	})
}

// handleGetThread retrieves a thread with its nested comment tree
func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	thread, err := s.db.GetThread(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if thread == nil {
		s.errorResponse(w, http.StatusNotFound, "Thread not found")
		return
	}

	comments, err := s.db.ListComments(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ThreadResponse{
		Thread:   thread,
		Comments: db.BuildCommentTree(comments),
	})
}

// handleCreateThread creates a forum thread for the authenticated user
func (s *Server) handleCreateThread(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var thread db.Thread
	if err := json.NewDecoder(r.Body).Decode(&thread); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if thread.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	thread.AuthorID = userID

	id, err := s.db.CreateThread(r.Context(), &thread)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleDeleteThread deletes the authenticated user's own thread
func (s *Server) handleDeleteThread(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteThread(r.Context(), id, userID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Thread not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCreateComment adds a comment to a thread, optionally as a reply
func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	threadID, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	var comment db.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if comment.Body == "" {
		s.errorResponse(w, http.StatusBadRequest, "body is required")
		return
	}
	comment.ThreadID = threadID
	comment.AuthorID = userID

	id, err := s.db.CreateComment(r.Context(), &comment)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}
