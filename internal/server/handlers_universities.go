package server

import (
	"encoding/json"
	"net/http"

	"github.com/dovydas-v/uniguide/internal/db"
)

// handleListUniversities lists universities with optional filters and pagination
func (s *Server) handleListUniversities(w http.ResponseWriter, r *http.Request) {
	filters := db.UniversityFilters{
		Location: r.URL.Query().Get("location"),
		Search:   r.URL.Query().Get("search"),
		Limit:    parseQueryInt(r, "limit", 50, 100),
		Offset:   parseQueryInt(r, "offset", 0, 0),
	}

	universities, err := s.db.ListUniversities(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"universities": universities,
		"count":        len(universities),
	})
}

// handleGetUniversity retrieves a university by its ID
func (s *Server) handleGetUniversity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	university, err := s.db.GetUniversity(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if university == nil {
		s.errorResponse(w, http.StatusNotFound, "University not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, university)
}

// handleCreateUniversity creates a new university
func (s *Server) handleCreateUniversity(w http.ResponseWriter, r *http.Request) {
	var university db.University
	if err := json.NewDecoder(r.Body).Decode(&university); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if university.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := s.db.CreateUniversity(r.Context(), &university)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleUpdateUniversity updates an existing university
func (s *Server) handleUpdateUniversity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	var university db.University
	if err := json.NewDecoder(r.Body).Decode(&university); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	university.ID = id

	if err := s.db.UpdateUniversity(r.Context(), &university); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, university)
}

// handleDeleteUniversity deletes a university
func (s *Server) handleDeleteUniversity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteUniversity(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListFaculties lists faculties of a university
func (s *Server) handleListFaculties(w http.ResponseWriter, r *http.Request) {
	universityID, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	faculties, err := s.db.ListFacultiesByUniversity(r.Context(), universityID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"faculties": faculties,
		"count":     len(faculties),
	})
}

// handleCreateFaculty creates a faculty under a university
func (s *Server) handleCreateFaculty(w http.ResponseWriter, r *http.Request) {
	universityID, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	var faculty db.Faculty
	if err := json.NewDecoder(r.Body).Decode(&faculty); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if faculty.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	faculty.UniversityID = universityID

	id, err := s.db.CreateFaculty(r.Context(), &faculty)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleGetFaculty retrieves a faculty by its ID
func (s *Server) handleGetFaculty(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	faculty, err := s.db.GetFaculty(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if faculty == nil {
		s.errorResponse(w, http.StatusNotFound, "Faculty not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, faculty)
}

// handleDeleteFaculty deletes a faculty
func (s *Server) handleDeleteFaculty(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteFaculty(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
