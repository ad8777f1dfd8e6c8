package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/handler"
	"github.com/jmaurer/placedir/internal/service"
)

// Test doubles for the handler.Servicer interfaces.
// Set only the method fields your test needs.

type mockEntryServicer struct {
	create  func(ctx context.Context, e service.NewEntry) (string, error)
	update  func(ctx context.Context, e service.UpdateEntry) error
	getMany func(ctx context.Context, ids []string) ([]domain.Entry, error)
	count   func(ctx context.Context) (int64, error)
}

func (m *mockEntryServicer) Create(ctx context.Context, e service.NewEntry) (string, error) {
	return m.create(ctx, e)
}
func (m *mockEntryServicer) Update(ctx context.Context, e service.UpdateEntry) error {
	return m.update(ctx, e)
}
func (m *mockEntryServicer) GetMany(ctx context.Context, ids []string) ([]domain.Entry, error) {
	return m.getMany(ctx, ids)
}
func (m *mockEntryServicer) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

var _ handler.EntryServicer = (*mockEntryServicer)(nil)

type mockSearchServicer struct {
	search func(ctx context.Context, req service.SearchRequest) (service.SearchResult, error)
}

func (m *mockSearchServicer) Search(ctx context.Context, req service.SearchRequest) (service.SearchResult, error) {
	return m.search(ctx, req)
}

var _ handler.SearchServicer = (*mockSearchServicer)(nil)

type mockRatingServicer struct {
	rate         func(ctx context.Context, r service.RateEntry) error
	withComments func(ctx context.Context, ids []string) ([]service.RatingView, error)
	entryRatings func(ctx context.Context) (map[string]float64, error)
}

func (m *mockRatingServicer) Rate(ctx context.Context, r service.RateEntry) error {
	return m.rate(ctx, r)
}
func (m *mockRatingServicer) WithComments(ctx context.Context, ids []string) ([]service.RatingView, error) {
	return m.withComments(ctx, ids)
}
func (m *mockRatingServicer) EntryRatings(ctx context.Context) (map[string]float64, error) {
	if m.entryRatings != nil {
		return m.entryRatings(ctx)
	}
	return map[string]float64{}, nil
}

var _ handler.RatingServicer = (*mockRatingServicer)(nil)

type mockCategoryServicer struct {
	list    func(ctx context.Context) ([]domain.Category, error)
	getMany func(ctx context.Context, ids []string) ([]domain.Category, error)
}

func (m *mockCategoryServicer) List(ctx context.Context) ([]domain.Category, error) {
	return m.list(ctx)
}
func (m *mockCategoryServicer) GetMany(ctx context.Context, ids []string) ([]domain.Category, error) {
	return m.getMany(ctx, ids)
}

var _ handler.CategoryServicer = (*mockCategoryServicer)(nil)

type mockTagServicer struct {
	list  func(ctx context.Context) ([]string, error)
	count func(ctx context.Context) (int64, error)
}

func (m *mockTagServicer) List(ctx context.Context) ([]string, error) {
	return m.list(ctx)
}
func (m *mockTagServicer) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

var _ handler.TagServicer = (*mockTagServicer)(nil)

type mockUserServicer struct {
	register func(ctx context.Context, u service.NewUser) error
	login    func(ctx context.Context, l service.Login) (string, error)
}

func (m *mockUserServicer) Register(ctx context.Context, u service.NewUser) error {
	return m.register(ctx, u)
}
func (m *mockUserServicer) Login(ctx context.Context, l service.Login) (string, error) {
	return m.login(ctx, l)
}

var _ handler.UserServicer = (*mockUserServicer)(nil)

type mockSubscriptionServicer struct {
	subscribe      func(ctx context.Context, userID string, bbox domain.BoundingBox) error
	unsubscribeAll func(ctx context.Context, userID string) error
	forUser        func(ctx context.Context, userID string) ([]domain.BboxSubscription, error)
}

func (m *mockSubscriptionServicer) Subscribe(ctx context.Context, userID string, bbox domain.BoundingBox) error {
	return m.subscribe(ctx, userID, bbox)
}
func (m *mockSubscriptionServicer) UnsubscribeAll(ctx context.Context, userID string) error {
	return m.unsubscribeAll(ctx, userID)
}
func (m *mockSubscriptionServicer) ForUser(ctx context.Context, userID string) ([]domain.BboxSubscription, error) {
	return m.forUser(ctx, userID)
}

var _ handler.SubscriptionServicer = (*mockSubscriptionServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// serverMocks bundles one mock per dependency so tests only override what
// they exercise.
type serverMocks struct {
	entries       *mockEntryServicer
	search        *mockSearchServicer
	ratings       *mockRatingServicer
	categories    *mockCategoryServicer
	tags          *mockTagServicer
	users         *mockUserServicer
	subscriptions *mockSubscriptionServicer
}

func newServerMocks() *serverMocks {
	return &serverMocks{
		entries:       &mockEntryServicer{},
		search:        &mockSearchServicer{},
		ratings:       &mockRatingServicer{},
		categories:    &mockCategoryServicer{},
		tags:          &mockTagServicer{},
		users:         &mockUserServicer{},
		subscriptions: &mockSubscriptionServicer{},
	}
}

// handler wires a Server with the mocks into its chi router, mirroring
// exactly how main.go wires it in production.
func (m *serverMocks) handler() http.Handler {
	srv := handler.NewServer(
		m.entries, m.search, m.ratings, m.categories,
		m.tags, m.users, m.subscriptions, "test",
	)
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body *bytes.Buffer) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}
