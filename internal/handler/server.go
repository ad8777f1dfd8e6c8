// Package handler implements the HTTP handlers for the place directory API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (entry.go, search.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/service"
)

// The Servicer interfaces define the business operations the handlers depend
// on. Defining them here (in the consumer package) follows the Go convention:
// "accept interfaces, return concrete types". It lets handler tests inject a
// mock without touching the database or service layer.

// EntryServicer defines the entry operations the handlers depend on.
type EntryServicer interface {
	Create(ctx context.Context, e service.NewEntry) (string, error)
	Update(ctx context.Context, e service.UpdateEntry) error
	GetMany(ctx context.Context, ids []string) ([]domain.Entry, error)
	Count(ctx context.Context) (int64, error)
}

// SearchServicer defines the search operation the handlers depend on.
type SearchServicer interface {
	Search(ctx context.Context, req service.SearchRequest) (service.SearchResult, error)
}

// RatingServicer defines the rating operations the handlers depend on.
type RatingServicer interface {
	Rate(ctx context.Context, r service.RateEntry) error
	WithComments(ctx context.Context, ids []string) ([]service.RatingView, error)
	EntryRatings(ctx context.Context) (map[string]float64, error)
}

// CategoryServicer defines the category reads the handlers depend on.
type CategoryServicer interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetMany(ctx context.Context, ids []string) ([]domain.Category, error)
}

// TagServicer defines the tag reads the handlers depend on.
type TagServicer interface {
	List(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// UserServicer defines the account operations the handlers depend on.
type UserServicer interface {
	Register(ctx context.Context, u service.NewUser) error
	Login(ctx context.Context, l service.Login) (string, error)
}

// SubscriptionServicer defines the subscription operations the handlers
// depend on.
type SubscriptionServicer interface {
	Subscribe(ctx context.Context, userID string, bbox domain.BoundingBox) error
	UnsubscribeAll(ctx context.Context, userID string) error
	ForUser(ctx context.Context, userID string) ([]domain.BboxSubscription, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	entries       EntryServicer
	search        SearchServicer
	ratings       RatingServicer
	categories    CategoryServicer
	tags          TagServicer
	users         UserServicer
	subscriptions SubscriptionServicer
	version       string
}

// NewServer constructs the Server with all its dependencies.
// version is the build version reported by GET /server/version.
func NewServer(
	entries EntryServicer,
	search SearchServicer,
	ratings RatingServicer,
	categories CategoryServicer,
	tags TagServicer,
	users UserServicer,
	subscriptions SubscriptionServicer,
	version string,
) *Server {
	return &Server{
		entries:       entries,
		search:        search,
		ratings:       ratings,
		categories:    categories,
		tags:          tags,
		users:         users,
		subscriptions: subscriptions,
		version:       version,
	}
}

// Routes returns the API routing table.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/server/version", s.GetVersion)

	r.Get("/entries/{ids}", s.GetEntries)
	r.Post("/entries", s.CreateEntry)
	r.Put("/entries/{id}", s.UpdateEntry)

	r.Get("/categories", s.ListCategories)
	r.Get("/categories/{ids}", s.GetCategories)
	r.Get("/tags", s.ListTags)

	r.Get("/ratings/{ids}", s.GetRatings)
	r.Post("/ratings", s.CreateRating)

	r.Get("/search", s.Search)

	r.Post("/users", s.RegisterUser)
	r.Post("/login", s.Login)

	r.Get("/subscriptions/{userID}", s.GetSubscriptions)
	r.Post("/subscriptions/{userID}", s.CreateSubscription)
	r.Delete("/subscriptions/{userID}", s.DeleteSubscriptions)

	r.Get("/count/entries", s.CountEntries)
	r.Get("/count/tags", s.CountTags)

	return r
}
