package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// RatingRepo defines the persistence operations for ratings.
type RatingRepo interface {
	// Create inserts a new rating.
	Create(ctx context.Context, r domain.Rating) error

	// List returns a snapshot of all ratings ordered by creation time.
	List(ctx context.Context) ([]domain.Rating, error)
}

// pgRatingRepo is the Postgres implementation of RatingRepo.
type pgRatingRepo struct {
	db db
}

// NewRatingRepo constructs a RatingRepo backed by the provided db connection.
func NewRatingRepo(db db) RatingRepo {
	return &pgRatingRepo{db: db}
}

const ratingColumns = `id, entry_id, created, title, value, context, source`

func (r *pgRatingRepo) Create(ctx context.Context, rating domain.Rating) error {
	const q = `
		INSERT INTO ratings (` + ratingColumns + `)
		VALUES (@id, @entry_id, @created, @title, @value, @context, @source)`

	args := pgx.NamedArgs{
		"id":       rating.ID,
		"entry_id": rating.EntryID,
		"created":  rating.Created,
		"title":    rating.Title,
		"value":    rating.Value,
		"context":  rating.Context,
		"source":   rating.Source,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.RatingRepo.Create: %w", err)
	}
	return nil
}

func (r *pgRatingRepo) List(ctx context.Context) ([]domain.Rating, error) {
	const q = `SELECT ` + ratingColumns + ` FROM ratings ORDER BY created`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RatingRepo.List: %w", err)
	}
	defer rows.Close()

	ratings := []domain.Rating{}
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RatingRepo.List: scan: %w", err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RatingRepo.List: rows: %w", err)
	}
	return ratings, nil
}

func scanRating(s scanner) (domain.Rating, error) {
	var r domain.Rating
	err := s.Scan(&r.ID, &r.EntryID, &r.Created, &r.Title, &r.Value, &r.Context, &r.Source)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Rating{}, domain.ErrNotFound
		}
		return domain.Rating{}, err
	}
	return r, nil
}
