package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// CommentRepo defines the persistence operations for rating comments.
type CommentRepo interface {
	// Create inserts a new comment.
	Create(ctx context.Context, c domain.Comment) error

	// List returns a snapshot of all comments ordered by creation time.
	List(ctx context.Context) ([]domain.Comment, error)
}

// pgCommentRepo is the Postgres implementation of CommentRepo.
type pgCommentRepo struct {
	db db
}

// NewCommentRepo constructs a CommentRepo backed by the provided db connection.
func NewCommentRepo(db db) CommentRepo {
	return &pgCommentRepo{db: db}
}

func (r *pgCommentRepo) Create(ctx context.Context, c domain.Comment) error {
	const q = `
		INSERT INTO comments (id, created, text)
		VALUES (@id, @created, @text)`

	args := pgx.NamedArgs{"id": c.ID, "created": c.Created, "text": c.Text}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.CommentRepo.Create: %w", err)
	}
	return nil
}

func (r *pgCommentRepo) List(ctx context.Context) ([]domain.Comment, error) {
	const q = `SELECT id, created, text FROM comments ORDER BY created`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CommentRepo.List: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Created, &c.Text); err != nil {
			return nil, fmt.Errorf("repo.CommentRepo.List: scan: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CommentRepo.List: rows: %w", err)
	}
	return comments, nil
}
