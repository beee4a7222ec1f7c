package db

import (
	"time"

	"github.com/google/uuid"
)

// University is an institution record.
type University struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Location          string    `json:"location"`
	Description       string    `json:"description,omitempty"`
	Website           string    `json:"website,omitempty"`
	Rating            float64   `json:"rating"`
	DormitoriesRating float64   `json:"dormitories_rating"`
	FacilitiesRating  float64   `json:"facilities_rating"`
	CreatedAt         time.Time `json:"created_at"`
}

// Faculty is a faculty within a university.
type Faculty struct {
	ID           uuid.UUID `json:"id"`
	UniversityID uuid.UUID `json:"university_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProgramRecord is a study program row. The provider layer converts it into
// the shared types.Program contract with its university and faculty joined in.
type ProgramRecord struct {
	ID               uuid.UUID `json:"id"`
	FacultyID        uuid.UUID `json:"faculty_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	DegreeType       string    `json:"degree_type"`
	StudentCount     string    `json:"student_count,omitempty"`
	DifficultyRating *int      `json:"difficulty_rating,omitempty"`
	Rating           float64   `json:"rating"`
	YearlyCost       float64   `json:"yearly_cost"`
	StateFinanced    bool      `json:"state_financed"`
	CreatedAt        time.Time `json:"created_at"`
}

// Lecturer is a lecturer record attached to a faculty.
type Lecturer struct {
	ID        uuid.UUID `json:"id"`
	FacultyID uuid.UUID `json:"faculty_id"`
	Name      string    `json:"name"`
	Title     string    `json:"title,omitempty"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// Review target kinds.
const (
	TargetUniversity = "university"
	TargetProgram    = "program"
	TargetLecturer   = "lecturer"
)

// Review is a rating with an optional comment against a university, program
// or lecturer.
type Review struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	TargetKind string    `json:"target_kind"`
	TargetID   uuid.UUID `json:"target_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Thread is a forum discussion thread.
type Thread struct {
	ID           uuid.UUID `json:"id"`
	AuthorID     uuid.UUID `json:"author_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Comment is a forum comment. Replies nest via ParentID; the tree is
// assembled server-side before the thread is returned.
type Comment struct {
	ID        uuid.UUID  `json:"id"`
	ThreadID  uuid.UUID  `json:"thread_id"`
	AuthorID  uuid.UUID  `json:"author_id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	Replies   []*Comment `json:"replies,omitempty"`
}

// User is an account record.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
