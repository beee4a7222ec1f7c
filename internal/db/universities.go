package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UniversityFilters holds optional filters for listing universities.
type UniversityFilters struct {
	Location string
	Search   string
	Limit    int
	Offset   int
}

// CreateUniversity inserts a university and returns its ID.
func (db *DB) CreateUniversity(ctx context.Context, u *University) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO universities (name, location, description, website, dormitories_rating, facilities_rating)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		u.Name, u.Location, u.Description, u.Website, u.DormitoriesRating, u.FacilitiesRating,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create university: %w", err)
	}
	return id, nil
}

// GetUniversity retrieves a university by ID. Returns (nil, nil) when absent.
func (db *DB) GetUniversity(ctx context.Context, id uuid.UUID) (*University, error) {
	var u University
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, location, COALESCE(description, ''), COALESCE(website, ''),
		        rating, dormitories_rating, facilities_rating, created_at
		 FROM universities WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Location, &u.Description, &u.Website,
		&u.Rating, &u.DormitoriesRating, &u.FacilitiesRating, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get university: %w", err)
	}
	return &u, nil
}

// ListUniversities retrieves universities with optional filters.
func (db *DB) ListUniversities(ctx context.Context, filters UniversityFilters) ([]University, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, name, location, COALESCE(description, ''), COALESCE(website, ''),
	                 rating, dormitories_rating, facilities_rating, created_at
		FROM universities WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Location != "" {
		query += fmt.Sprintf(" AND location = $%d", argNum)
		args = append(args, filters.Location)
		argNum++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY rating DESC, name ASC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list universities: %w", err)
	}
	defer rows.Close()

	var universities []University
	for rows.Next() {
		var u University
		if err := rows.Scan(&u.ID, &u.Name, &u.Location, &u.Description, &u.Website,
			&u.Rating, &u.DormitoriesRating, &u.FacilitiesRating, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan university: %w", err)
		}
		universities = append(universities, u)
	}
	return universities, nil
}

// UpdateUniversity updates the mutable fields of a university.
func (db *DB) UpdateUniversity(ctx context.Context, u *University) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE universities
		 SET name = $1, location = $2, description = $3, website = $4,
		     dormitories_rating = $5, facilities_rating = $6
		 WHERE id = $7`,
		u.Name, u.Location, u.Description, u.Website,
		u.DormitoriesRating, u.FacilitiesRating, u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update university: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("university not found: %s", u.ID)
	}
	return nil
}

// DeleteUniversity deletes a university and its faculties, programs and
// reviews via cascade.
func (db *DB) DeleteUniversity(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete university: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("university not found: %s", id)
	}
	return nil
}

// CreateFaculty inserts a faculty and returns its ID.
func (db *DB) CreateFaculty(ctx context.Context, f *Faculty) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO faculties (university_id, name, description)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		f.UniversityID, f.Name, f.Description,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create faculty: %w", err)
	}
	return id, nil
}

// GetFaculty retrieves a faculty by ID. Returns (nil, nil) when absent.
func (db *DB) GetFaculty(ctx context.Context, id uuid.UUID) (*Faculty, error) {
	var f Faculty
	err := db.pool.QueryRow(ctx,
		`SELECT id, university_id, name, COALESCE(description, ''), created_at
		 FROM faculties WHERE id = $1`,
		id,
	).Scan(&f.ID, &f.UniversityID, &f.Name, &f.Description, &f.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get faculty: %w", err)
	}
	return &f, nil
}

// ListFacultiesByUniversity retrieves all faculties of a university.
func (db *DB) ListFacultiesByUniversity(ctx context.Context, universityID uuid.UUID) ([]Faculty, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, university_id, name, COALESCE(description, ''), created_at
		 FROM faculties WHERE university_id = $1 ORDER BY name ASC`,
		universityID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list faculties: %w", err)
	}
	defer rows.Close()

	var faculties []Faculty
	for rows.Next() {
		var f Faculty
		if err := rows.Scan(&f.ID, &f.UniversityID, &f.Name, &f.Description, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faculty: %w", err)
		}
		faculties = append(faculties, f)
	}
	return faculties, nil
}

// DeleteFaculty deletes a faculty.
func (db *DB) DeleteFaculty(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM faculties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete faculty: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("faculty not found: %s", id)
	}
	return nil
}
