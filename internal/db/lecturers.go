package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateLecturer inserts a lecturer and returns its ID.
func (db *DB) CreateLecturer(ctx context.Context, l *Lecturer) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO lecturers (faculty_id, name, title)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		l.FacultyID, l.Name, l.Title,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create lecturer: %w", err)
	}
	return id, nil
}

// GetLecturer retrieves a lecturer by ID. Returns (nil, nil) when absent.
func (db *DB) GetLecturer(ctx context.Context, id uuid.UUID) (*Lecturer, error) {
	var l Lecturer
	err := db.pool.QueryRow(ctx,
		`SELECT id, faculty_id, name, COALESCE(title, ''), rating, created_at
		 FROM lecturers WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.FacultyID, &l.Name, &l.Title, &l.Rating, &l.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lecturer: %w", err)
	}
	return &l, nil
}

// ListLecturersByFaculty retrieves all lecturers of a faculty.
func (db *DB) ListLecturersByFaculty(ctx context.Context, facultyID uuid.UUID) ([]Lecturer, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, faculty_id, name, COALESCE(title, ''), rating, created_at
		 FROM lecturers WHERE faculty_id = $1 ORDER BY name ASC`,
		facultyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lecturers: %w", err)
	}
	defer rows.Close()

	var lecturers []Lecturer
	for rows.Next() {
		var l Lecturer
		if err := rows.Scan(&l.ID, &l.FacultyID, &l.Name, &l.Title, &l.Rating, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lecturer: %w", err)
		}
		lecturers = append(lecturers, l)
	}
	return lecturers, nil
}

// DeleteLecturer deletes a lecturer.
func (db *DB) DeleteLecturer(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM lecturers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lecturer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("lecturer not found: %s", id)
	}
	return nil
}
