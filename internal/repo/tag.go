package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// TagRepo defines the persistence operations for free-form tags.
// A tag's id is the tag text itself; there is no surrogate key.
type TagRepo interface {
	// Upsert inserts the tag if it does not already exist. Idempotent.
	Upsert(ctx context.Context, id string) error

	// List returns all tags ordered by id.
	List(ctx context.Context) ([]domain.Tag, error)

	// Count returns the number of distinct tags.
	Count(ctx context.Context) (int64, error)
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

// Upsert inserts a tag, ignoring duplicates via ON CONFLICT DO NOTHING.
func (r *pgTagRepo) Upsert(ctx context.Context, id string) error {
	const q = `
		INSERT INTO tags (id)
		VALUES (@id)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TagRepo.Upsert: %w", err)
	}
	return nil
}

func (r *pgTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	const q = `SELECT id FROM tags ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID); err != nil {
			return nil, fmt.Errorf("repo.TagRepo.List: scan: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: rows: %w", err)
	}
	return tags, nil
}

func (r *pgTagRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM tags`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.TagRepo.Count: %w", err)
	}
	return n, nil
}
