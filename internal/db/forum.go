package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateThread inserts a forum thread and returns its ID.
func (db *DB) CreateThread(ctx context.Context, t *Thread) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO forum_threads (author_id, title, body)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		t.AuthorID, t.Title, t.Body,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create thread: %w", err)
	}
	return id, nil
}

// GetThread retrieves a thread by ID. Returns (nil, nil) when absent.
func (db *DB) GetThread(ctx context.Context, id uuid.UUID) (*Thread, error) {
	var t Thread
	err := db.pool.QueryRow(ctx,
		`SELECT t.id, t.author_id, t.title, t.body, t.created_at,
		        (SELECT COUNT(*) FROM forum_comments c WHERE c.thread_id = t.id)
		 FROM forum_threads t WHERE t.id = $1`,
		id,
	).Scan(&t.ID, &t.AuthorID, &t.Title, &t.Body, &t.CreatedAt, &t.CommentCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return &t, nil
}

// ListThreads retrieves recent threads.
func (db *DB) ListThreads(ctx context.Context, limit, offset int) ([]Thread, error) {
	if limit == 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT t.id, t.author_id, t.title, t.body, t.created_at,
		        (SELECT COUNT(*) FROM forum_comments c WHERE c.thread_id = t.id)
		 FROM forum_threads t ORDER BY t.created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer rows.Close()

	var threads []Thread
	for rows.Next() {
		var t Thread
		if err := rows.Scan(&t.ID, &t.AuthorID, &t.Title, &t.Body, &t.CreatedAt, &t.CommentCount); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	return threads, nil
}

// DeleteThread deletes a thread owned by the given author.
func (db *DB) DeleteThread(ctx context.Context, id, authorID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM forum_threads WHERE id = $1 AND author_id = $2`, id, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("thread not found: %s", id)
	}
	return nil
}

// CreateComment inserts a comment, optionally as a reply to another comment.
func (db *DB) CreateComment(ctx context.Context, c *Comment) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO forum_comments (thread_id, author_id, parent_comment_id, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.ThreadID, c.AuthorID, c.ParentID, c.Body,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return id, nil
}

// ListComments retrieves all comments of a thread in insertion order.
func (db *DB) ListComments(ctx context.Context, threadID uuid.UUID) ([]*Comment, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, thread_id, author_id, parent_comment_id, body, created_at
		 FROM forum_comments WHERE thread_id = $1 ORDER BY created_at ASC`,
		threadID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.ThreadID, &c.AuthorID, &c.ParentID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &c)
	}
	return comments, nil
}

// BuildCommentTree nests a flat comment list into reply trees. Comments whose
// parent is missing (deleted mid-listing) are promoted to the top level
// rather than dropped. Input order is preserved at every level.
func BuildCommentTree(comments []*Comment) []*Comment {
	byID := make(map[uuid.UUID]*Comment, len(comments))
	for _, c := range comments {
		c.Replies = nil
		byID[c.ID] = c
	}

	var roots []*Comment
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		parent, ok := byID[*c.ParentID]
		if !ok {
			roots = append(roots, c)
			continue
		}
		parent.Replies = append(parent.Replies, c)
	}
	return roots
}
