package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dovydas-v/uniguide/internal/db"
)

// ListProgramsResponse represents the response for listing study programs
type ListProgramsResponse struct {
	Programs []db.ProgramRecord `json:"programs"`
	Count    int                `json:"count"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

// handleListPrograms lists study programs with optional filters and pagination
func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	filters := db.ProgramFilters{
		DegreeType: r.URL.Query().Get("degree_type"),
		Search:     r.URL.Query().Get("search"),
		Limit:      limit,
		Offset:     offset,
	}

	if facultyIDStr := r.URL.Query().Get("faculty_id"); facultyIDStr != "" {
		facultyID, err := uuid.Parse(facultyIDStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid faculty_id")
			return
		}
		filters.FacultyID = &facultyID
	}

	if universityIDStr := r.URL.Query().Get("university_id"); universityIDStr != "" {
		universityID, err := uuid.Parse(universityIDStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid university_id")
			return
		}
		filters.UniversityID = &universityID
	}

	programs, total, err := s.db.ListPrograms(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListProgramsResponse{
		Programs: programs,
		Count:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

// handleGetProgram retrieves a study program by its ID
func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	program, err := s.db.GetProgram(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if program == nil {
		s.errorResponse(w, http.StatusNotFound, "Program not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, program)
}

// handleCreateProgram creates a study program
func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	var program db.ProgramRecord
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if program.Title == "" || program.FacultyID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "title and faculty_id are required")
		return
	}

	id, err := s.db.CreateProgram(r.Context(), &program)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleUpdateProgram updates a study program
func (s *Server) handleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	var program db.ProgramRecord
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	program.ID = id

	if err := s.db.UpdateProgram(r.Context(), &program); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, program)
}

// handleDeleteProgram deletes a study program
func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteProgram(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListLecturers lists lecturers of a faculty
func (s *Server) handleListLecturers(w http.ResponseWriter, r *http.Request) {
	facultyID, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	lecturers, err := s.db.ListLecturersByFaculty(r.Context(), facultyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"lecturers": lecturers,
		"count":     len(lecturers),
	})
}

// handleCreateLecturer creates a lecturer under a faculty
func (s *Server) handleCreateLecturer(w http.ResponseWriter, r *http.Request) {
	facultyID, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	var lecturer db.Lecturer
	if err := json.NewDecoder(r.Body).Decode(&lecturer); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if lecturer.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	lecturer.FacultyID = facultyID

	id, err := s.db.CreateLecturer(r.Context(), &lecturer)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleGetLecturer retrieves a lecturer by its ID
func (s *Server) handleGetLecturer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	lecturer, err := s.db.GetLecturer(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if lecturer == nil {
		s.errorResponse(w, http.StatusNotFound, "Lecturer not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, lecturer)
}

// handleDeleteLecturer deletes a lecturer
func (s *Server) handleDeleteLecturer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parsePathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteLecturer(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
