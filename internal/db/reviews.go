package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ratingTables maps a review target kind to the table whose aggregate rating
// is refreshed after a review changes.
var ratingTables = map[string]string{
	TargetUniversity: "universities",
	TargetProgram:    "programs",
	TargetLecturer:   "lecturers",
}

// CreateReview inserts a review and refreshes the target's aggregate rating.
func (db *DB) CreateReview(ctx context.Context, r *Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO reviews (author_id, target_kind, target_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		r.AuthorID, r.TargetKind, r.TargetID, r.Rating, r.Comment,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := db.refreshTargetRating(ctx, r.TargetKind, r.TargetID); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ListReviews retrieves all reviews for a target, newest first.
func (db *DB) ListReviews(ctx context.Context, targetKind string, targetID uuid.UUID) ([]Review, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, author_id, target_kind, target_id, rating, COALESCE(comment, ''), created_at
		 FROM reviews WHERE target_kind = $1 AND target_id = $2
		 ORDER BY created_at DESC`,
		targetKind, targetID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.AuthorID, &r.TargetKind, &r.TargetID,
			&r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

// DeleteReview deletes a review owned by the given author and refreshes the
// target's aggregate rating.
func (db *DB) DeleteReview(ctx context.Context, id, authorID uuid.UUID) error {
	var targetKind string
	var targetID uuid.UUID
	err := db.pool.QueryRow(ctx,
		`DELETE FROM reviews WHERE id = $1 AND author_id = $2
		 RETURNING target_kind, target_id`,
		id, authorID,
	).Scan(&targetKind, &targetID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return db.refreshTargetRating(ctx, targetKind, targetID)
}

// refreshTargetRating recomputes a target's average rating from its reviews.
func (db *DB) refreshTargetRating(ctx context.Context, targetKind string, targetID uuid.UUID) error {
	table, ok := ratingTables[targetKind]
	if !ok {
		return fmt.Errorf("unknown review target kind: %s", targetKind)
	}

	query := fmt.Sprintf(
		`UPDATE %s SET rating = COALESCE(
			(SELECT AVG(rating) FROM reviews WHERE target_kind = $1 AND target_id = $2), 0)
		 WHERE id = $2`, table)
	if _, err := db.pool.Exec(ctx, query, targetKind, targetID); err != nil {
		return fmt.Errorf("failed to refresh %s rating: %w", targetKind, err)
	}
	return nil
}
