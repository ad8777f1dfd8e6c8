package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// TripleRepo defines the persistence operations for the relation graph.
// A triple's identity is derived from its three fields; storing the same
// fact twice is a no-op.
type TripleRepo interface {
	// Create inserts the triple. Idempotent: duplicates are ignored.
	Create(ctx context.Context, t domain.Triple) error

	// Delete removes the triple identified by t's fields.
	// Returns domain.ErrNotFound if the fact is not stored.
	Delete(ctx context.Context, t domain.Triple) error

	// List returns a snapshot of all triples in insertion order.
	List(ctx context.Context) ([]domain.Triple, error)
}

// pgTripleRepo is the Postgres implementation of TripleRepo.
type pgTripleRepo struct {
	db db
}

// NewTripleRepo constructs a TripleRepo backed by the provided db connection.
func NewTripleRepo(db db) TripleRepo {
	return &pgTripleRepo{db: db}
}

func (r *pgTripleRepo) Create(ctx context.Context, t domain.Triple) error {
	const q = `
		INSERT INTO triples (key, subject_kind, subject_id, predicate, object_kind, object_id)
		VALUES (@key, @subject_kind, @subject_id, @predicate, @object_kind, @object_id)
		ON CONFLICT (key) DO NOTHING`

	if _, err := r.db.Exec(ctx, q, tripleArgs(t)); err != nil {
		return fmt.Errorf("repo.TripleRepo.Create: %w", err)
	}
	return nil
}

func (r *pgTripleRepo) Delete(ctx context.Context, t domain.Triple) error {
	const q = `DELETE FROM triples WHERE key = @key`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": t.Key()})
	if err != nil {
		return fmt.Errorf("repo.TripleRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripleRepo) List(ctx context.Context) ([]domain.Triple, error) {
	const q = `
		SELECT subject_kind, subject_id, predicate, object_kind, object_id
		FROM triples
		ORDER BY pos`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripleRepo.List: %w", err)
	}
	defer rows.Close()

	triples := []domain.Triple{}
	for rows.Next() {
		var t domain.Triple
		err := rows.Scan(&t.Subject.Kind, &t.Subject.ID, &t.Predicate, &t.Object.Kind, &t.Object.ID)
		if err != nil {
			return nil, fmt.Errorf("repo.TripleRepo.List: scan: %w", err)
		}
		triples = append(triples, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripleRepo.List: rows: %w", err)
	}
	return triples, nil
}

func tripleArgs(t domain.Triple) pgx.NamedArgs {
	return pgx.NamedArgs{
		"key":          t.Key(),
		"subject_kind": t.Subject.Kind,
		"subject_id":   t.Subject.ID,
		"predicate":    t.Predicate,
		"object_kind":  t.Object.Kind,
		"object_id":    t.Object.ID,
	}
}
