package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmaurer/placedir/internal/domain"
)

// EntryRepo defines the persistence operations for directory entries.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type EntryRepo interface {
	// Create inserts a new entry. The id and version are supplied by the
	// service layer, not generated by the database.
	Create(ctx context.Context, e domain.Entry) error

	// GetByID retrieves a single entry by id.
	// Returns domain.ErrNotFound if no entry with that id exists.
	GetByID(ctx context.Context, id string) (domain.Entry, error)

	// List returns a snapshot of all entries ordered by creation time.
	List(ctx context.Context) ([]domain.Entry, error)

	// Update replaces the stored record for e.ID with e.
	// Returns domain.ErrNotFound if no entry with that id exists.
	Update(ctx context.Context, e domain.Entry) error

	// Count returns the number of entries.
	Count(ctx context.Context) (int64, error)
}

// pgEntryRepo is the Postgres implementation of EntryRepo.
type pgEntryRepo struct {
	db db
}

// NewEntryRepo constructs an EntryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEntryRepo(db db) EntryRepo {
	return &pgEntryRepo{db: db}
}

const entryColumns = `id, created, version, title, description, lat, lng,
		street, zip, city, country, email, telephone, homepage,
		categories, tags, license`

func (r *pgEntryRepo) Create(ctx context.Context, e domain.Entry) error {
	const q = `
		INSERT INTO entries (` + entryColumns + `)
		VALUES (@id, @created, @version, @title, @description, @lat, @lng,
		        @street, @zip, @city, @country, @email, @telephone, @homepage,
		        @categories, @tags, @license)`

	_, err := r.db.Exec(ctx, q, entryArgs(e))
	if err != nil {
		return fmt.Errorf("repo.EntryRepo.Create: %w", err)
	}
	return nil
}

func (r *pgEntryRepo) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	const q = `SELECT ` + entryColumns + ` FROM entries WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanEntry(row)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("repo.EntryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgEntryRepo) List(ctx context.Context) ([]domain.Entry, error) {
	const q = `SELECT ` + entryColumns + ` FROM entries ORDER BY created`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.List: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EntryRepo.List: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.List: rows: %w", err)
	}
	return entries, nil
}

func (r *pgEntryRepo) Update(ctx context.Context, e domain.Entry) error {
	const q = `
		UPDATE entries
		SET created     = @created,
		    version     = @version,
		    title       = @title,
		    description = @description,
		    lat         = @lat,
		    lng         = @lng,
		    street      = @street,
		    zip         = @zip,
		    city        = @city,
		    country     = @country,
		    email       = @email,
		    telephone   = @telephone,
		    homepage    = @homepage,
		    categories  = @categories,
		    tags        = @tags,
		    license     = @license
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, entryArgs(e))
	if err != nil {
		return fmt.Errorf("repo.EntryRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EntryRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgEntryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM entries`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.EntryRepo.Count: %w", err)
	}
	return n, nil
}

func entryArgs(e domain.Entry) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":          e.ID,
		"created":     e.Created,
		"version":     e.Version,
		"title":       e.Title,
		"description": e.Description,
		"lat":         e.Lat,
		"lng":         e.Lng,
		"street":      e.Street,
		"zip":         e.Zip,
		"city":        e.City,
		"country":     e.Country,
		"email":       e.Email,
		"telephone":   e.Telephone,
		"homepage":    e.Homepage,
		"categories":  e.Categories,
		"tags":        e.Tags,
		"license":     e.License,
	}
}

// scanEntry maps a single database row into a domain.Entry.
func scanEntry(s scanner) (domain.Entry, error) {
	var e domain.Entry
	err := s.Scan(&e.ID, &e.Created, &e.Version, &e.Title, &e.Description,
		&e.Lat, &e.Lng, &e.Street, &e.Zip, &e.City, &e.Country,
		&e.Email, &e.Telephone, &e.Homepage, &e.Categories, &e.Tags, &e.License)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Entry{}, domain.ErrNotFound
		}
		return domain.Entry{}, err
	}
	return e, nil
}
