package types

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// University is the institution a program belongs to, as returned by the
// recommendation provider. All fields beyond the name are optional.
type University struct {
	ID                uuid.UUID `json:"id,omitempty"`
	Name              string    `json:"name"`
	Location          string    `json:"location,omitempty"`
	DormitoriesRating float64   `json:"dormitories_rating,omitempty"`
	FacilitiesRating  float64   `json:"facilities_rating,omitempty"`
}

// Faculty is the optional faculty a program belongs to.
type Faculty struct {
	Name string `json:"name"`
}

// StudentCount carries the provider's student-count field, which is free text
// and may arrive as either a JSON string or a JSON number ("apie 120",
// "25", 25). Parsing into an actual count happens in the ranking engine.
type StudentCount string

// UnmarshalJSON accepts both string and numeric representations.
func (s *StudentCount) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = StudentCount(str)
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = StudentCount(strconv.FormatFloat(num, 'f', -1, 64))
	return nil
}

// Program is a study-program record returned by the recommendation provider.
// The record is read-only to the ranking engine except for RelevanceScore,
// which the engine attaches during a ranking pass.
type Program struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DegreeType  DegreeType   `json:"degree_type,omitempty"`
	// StudentCount is free text; the first integer substring inside it is the
	// effective count, zero when none is present.
	StudentCount StudentCount `json:"student_count,omitempty"`
	// DifficultyRating is 1-5; nil is treated as 3 ("medium") during scoring.
	DifficultyRating *int        `json:"difficulty_rating,omitempty"`
	Rating           float64     `json:"rating,omitempty"`
	YearlyCost       float64     `json:"yearly_cost,omitempty"`
	StateFinanced    bool        `json:"state_financed,omitempty"`
	University       *University `json:"university,omitempty"`
	Faculty          *Faculty    `json:"faculty,omitempty"`

	// RelevanceScore is computed, never persisted. It is recomputed whenever
	// the preferences change and is zero when no preferences were available.
	RelevanceScore float64 `json:"relevance_score,omitempty"`
}

// Difficulty returns the program's difficulty rating, defaulting missing
// values to 3 (medium).
func (p *Program) Difficulty() int {
	if p.DifficultyRating == nil {
		return 3
	}
	return *p.DifficultyRating
}

// UniversityName returns the university name or "" when the relation is absent.
func (p *Program) UniversityName() string {
	if p.University == nil {
		return ""
	}
	return p.University.Name
}

// FacultyName returns the faculty name or "" when the relation is absent.
func (p *Program) FacultyName() string {
	if p.Faculty == nil {
		return ""
	}
	return p.Faculty.Name
}
