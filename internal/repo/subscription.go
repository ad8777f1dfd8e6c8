package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// SubscriptionRepo defines the persistence operations for bbox subscriptions.
type SubscriptionRepo interface {
	// Create inserts a new subscription.
	Create(ctx context.Context, s domain.BboxSubscription) error

	// Delete removes a subscription by id.
	// Returns domain.ErrNotFound if no subscription with that id exists.
	Delete(ctx context.Context, id string) error

	// List returns a snapshot of all subscriptions.
	List(ctx context.Context) ([]domain.BboxSubscription, error)
}

// pgSubscriptionRepo is the Postgres implementation of SubscriptionRepo.
type pgSubscriptionRepo struct {
	db db
}

// NewSubscriptionRepo constructs a SubscriptionRepo backed by the provided db connection.
func NewSubscriptionRepo(db db) SubscriptionRepo {
	return &pgSubscriptionRepo{db: db}
}

func (r *pgSubscriptionRepo) Create(ctx context.Context, s domain.BboxSubscription) error {
	const q = `
		INSERT INTO bbox_subscriptions (id, south_west_lat, south_west_lng, north_east_lat, north_east_lng)
		VALUES (@id, @south_west_lat, @south_west_lng, @north_east_lat, @north_east_lng)`

	args := pgx.NamedArgs{
		"id":             s.ID,
		"south_west_lat": s.Bbox.SouthWest.Lat,
		"south_west_lng": s.Bbox.SouthWest.Lng,
		"north_east_lat": s.Bbox.NorthEast.Lat,
		"north_east_lng": s.Bbox.NorthEast.Lng,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.SubscriptionRepo.Create: %w", err)
	}
	return nil
}

func (r *pgSubscriptionRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM bbox_subscriptions WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.SubscriptionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SubscriptionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgSubscriptionRepo) List(ctx context.Context) ([]domain.BboxSubscription, error) {
	const q = `
		SELECT id, south_west_lat, south_west_lng, north_east_lat, north_east_lng
		FROM bbox_subscriptions`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.SubscriptionRepo.List: %w", err)
	}
	defer rows.Close()

	subs := []domain.BboxSubscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SubscriptionRepo.List: scan: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SubscriptionRepo.List: rows: %w", err)
	}
	return subs, nil
}

func scanSubscription(s scanner) (domain.BboxSubscription, error) {
	var sub domain.BboxSubscription
	err := s.Scan(&sub.ID,
		&sub.Bbox.SouthWest.Lat, &sub.Bbox.SouthWest.Lng,
		&sub.Bbox.NorthEast.Lat, &sub.Bbox.NorthEast.Lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.BboxSubscription{}, domain.ErrNotFound
		}
		return domain.BboxSubscription{}, err
	}
	return sub, nil
}
