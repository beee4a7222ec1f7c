package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// parseQueryInt parses an integer query parameter with a default and an
// optional upper bound (maxValue <= 0 disables the bound).
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// parsePathID parses a UUID path segment. On failure it writes a 400 response
// and returns false.
func (s *Server) parsePathID(w http.ResponseWriter, r *http.Request, segment string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(segment))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+segment)
		return uuid.Nil, false
	}
	return id, true
}
