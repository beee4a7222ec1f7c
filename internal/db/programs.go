package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dovydas-v/uniguide/internal/types"
)

// ProgramFilters holds optional filters for listing programs.
type ProgramFilters struct {
	FacultyID    *uuid.UUID
	UniversityID *uuid.UUID
	DegreeType   string
	Search       string
	Limit        int
	Offset       int
}

// CreateProgram inserts a program and returns its ID.
func (db *DB) CreateProgram(ctx context.Context, p *ProgramRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO programs (faculty_id, title, description, degree_type, student_count,
		                       difficulty_rating, yearly_cost, state_financed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		p.FacultyID, p.Title, p.Description, p.DegreeType, p.StudentCount,
		p.DifficultyRating, p.YearlyCost, p.StateFinanced,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create program: %w", err)
	}
	return id, nil
}

// GetProgram retrieves a program by ID. Returns (nil, nil) when absent.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID) (*ProgramRecord, error) {
	var p ProgramRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, faculty_id, title, COALESCE(description, ''), degree_type,
		        COALESCE(student_count, ''), difficulty_rating, rating, yearly_cost,
		        state_financed, created_at
		 FROM programs WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.FacultyID, &p.Title, &p.Description, &p.DegreeType,
		&p.StudentCount, &p.DifficultyRating, &p.Rating, &p.YearlyCost,
		&p.StateFinanced, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}
	return &p, nil
}

// ListPrograms retrieves programs with optional filters and pagination.
func (db *DB) ListPrograms(ctx context.Context, filters ProgramFilters) ([]ProgramRecord, int, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	where := ` WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.FacultyID != nil {
		where += fmt.Sprintf(" AND p.faculty_id = $%d", argNum)
		args = append(args, *filters.FacultyID)
		argNum++
	}
	if filters.UniversityID != nil {
		where += fmt.Sprintf(" AND f.university_id = $%d", argNum)
		args = append(args, *filters.UniversityID)
		argNum++
	}
	if filters.DegreeType != "" {
		where += fmt.Sprintf(" AND p.degree_type = $%d", argNum)
		args = append(args, filters.DegreeType)
		argNum++
	}
	if filters.Search != "" {
		where += fmt.Sprintf(" AND p.title ILIKE $%d", argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM programs p JOIN faculties f ON f.id = p.faculty_id` + where
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count programs: %w", err)
	}

	query := `SELECT p.id, p.faculty_id, p.title, COALESCE(p.description, ''), p.degree_type,
	                 COALESCE(p.student_count, ''), p.difficulty_rating, p.rating, p.yearly_cost,
	                 p.state_financed, p.created_at
		FROM programs p JOIN faculties f ON f.id = p.faculty_id` + where
	query += fmt.Sprintf(" ORDER BY p.rating DESC, p.title ASC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	var programs []ProgramRecord
	for rows.Next() {
		var p ProgramRecord
		if err := rows.Scan(&p.ID, &p.FacultyID, &p.Title, &p.Description, &p.DegreeType,
			&p.StudentCount, &p.DifficultyRating, &p.Rating, &p.YearlyCost,
			&p.StateFinanced, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, total, nil
}

// UpdateProgram updates the mutable fields of a program.
func (db *DB) UpdateProgram(ctx context.Context, p *ProgramRecord) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE programs
		 SET title = $1, description = $2, degree_type = $3, student_count = $4,
		     difficulty_rating = $5, yearly_cost = $6, state_financed = $7
		 WHERE id = $8`,
		p.Title, p.Description, p.DegreeType, p.StudentCount,
		p.DifficultyRating, p.YearlyCost, p.StateFinanced, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("program not found: %s", p.ID)
	}
	return nil
}

// DeleteProgram deletes a program.
func (db *DB) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("program not found: %s", id)
	}
	return nil
}

// ListCandidatePrograms loads the candidate catalog for the recommendation
// providers: programs with their university and faculty joined in, shaped as
// the shared program contract. An empty degree loads every program.
func (db *DB) ListCandidatePrograms(ctx context.Context, degree types.DegreeType) ([]*types.Program, error) {
	query := `SELECT p.id, p.title, COALESCE(p.description, ''), p.degree_type,
	                 COALESCE(p.student_count, ''), p.difficulty_rating, p.rating,
	                 p.yearly_cost, p.state_financed,
	                 u.id, u.name, u.location, u.dormitories_rating, u.facilities_rating,
	                 f.name
		FROM programs p
		JOIN faculties f ON f.id = p.faculty_id
		JOIN universities u ON u.id = f.university_id`
	args := []any{}
	if degree != "" {
		query += ` WHERE p.degree_type = $1`
		args = append(args, string(degree))
	}
	query += ` ORDER BY p.rating DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate programs: %w", err)
	}
	defer rows.Close()

	var programs []*types.Program
	for rows.Next() {
		var (
			p           types.Program
			u           types.University
			facultyName string
			count       string
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.DegreeType,
			&count, &p.DifficultyRating, &p.Rating, &p.YearlyCost, &p.StateFinanced,
			&u.ID, &u.Name, &u.Location, &u.DormitoriesRating, &u.FacilitiesRating,
			&facultyName); err != nil {
			return nil, fmt.Errorf("failed to scan candidate program: %w", err)
		}
		p.StudentCount = types.StudentCount(count)
		p.University = &u
		if facultyName != "" {
			p.Faculty = &types.Faculty{Name: facultyName}
		}
		programs = append(programs, &p)
	}
	return programs, nil
}
