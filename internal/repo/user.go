package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// UserRepo defines the persistence operations for user accounts.
type UserRepo interface {
	// Create inserts a new user.
	Create(ctx context.Context, u domain.User) error

	// GetByUsername retrieves a single user by username.
	// Returns domain.ErrNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// List returns a snapshot of all users.
	List(ctx context.Context) ([]domain.User, error)

	// Delete removes a user by id.
	// Returns domain.ErrNotFound if no user with that id exists.
	Delete(ctx context.Context, id string) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = `id, username, password, email, email_confirmed`

func (r *pgUserRepo) Create(ctx context.Context, u domain.User) error {
	const q = `
		INSERT INTO users (` + userColumns + `)
		VALUES (@id, @username, @password, @email, @email_confirmed)`

	args := pgx.NamedArgs{
		"id":              u.ID,
		"username":        u.Username,
		"password":        u.Password,
		"email":           u.Email,
		"email_confirmed": u.EmailConfirmed,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = @username`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByUsername: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) List(ctx context.Context) ([]domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY username`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.UserRepo.List: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: rows: %w", err)
	}
	return users, nil
}

func (r *pgUserRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.EmailConfirmed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
