package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// CategoryRepo defines the persistence operations for the fixed category set.
type CategoryRepo interface {
	// Create inserts a new category.
	Create(ctx context.Context, c domain.Category) error

	// List returns all categories ordered by name.
	List(ctx context.Context) ([]domain.Category, error)
}

// pgCategoryRepo is the Postgres implementation of CategoryRepo.
type pgCategoryRepo struct {
	db db
}

// NewCategoryRepo constructs a CategoryRepo backed by the provided db connection.
func NewCategoryRepo(db db) CategoryRepo {
	return &pgCategoryRepo{db: db}
}

func (r *pgCategoryRepo) Create(ctx context.Context, c domain.Category) error {
	const q = `
		INSERT INTO categories (id, created, version, name)
		VALUES (@id, @created, @version, @name)`

	args := pgx.NamedArgs{"id": c.ID, "created": c.Created, "version": c.Version, "name": c.Name}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.CategoryRepo.Create: %w", err)
	}
	return nil
}

func (r *pgCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `SELECT id, created, version, name FROM categories ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.List: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CategoryRepo.List: scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CategoryRepo.List: rows: %w", err)
	}
	return categories, nil
}

func scanCategory(s scanner) (domain.Category, error) {
	var c domain.Category
	err := s.Scan(&c.ID, &c.Created, &c.Version, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}
	return c, nil
}
