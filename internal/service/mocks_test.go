package service_test

import (
	"context"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Each method delegates to
// a func field when set, so tests only wire what they exercise.

type mockEntryRepo struct {
	create  func(ctx context.Context, e domain.Entry) error
	getByID func(ctx context.Context, id string) (domain.Entry, error)
	list    func(ctx context.Context) ([]domain.Entry, error)
	update  func(ctx context.Context, e domain.Entry) error
	count   func(ctx context.Context) (int64, error)
}

func (m *mockEntryRepo) Create(ctx context.Context, e domain.Entry) error {
	if m.create != nil {
		return m.create(ctx, e)
	}
	return nil
}
func (m *mockEntryRepo) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return domain.Entry{}, domain.ErrNotFound
}
func (m *mockEntryRepo) List(ctx context.Context) ([]domain.Entry, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}
func (m *mockEntryRepo) Update(ctx context.Context, e domain.Entry) error {
	if m.update != nil {
		return m.update(ctx, e)
	}
	return nil
}
func (m *mockEntryRepo) Count(ctx context.Context) (int64, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, nil
}

var _ repo.EntryRepo = (*mockEntryRepo)(nil)

type mockTagRepo struct {
	upsert func(ctx context.Context, id string) error
	list   func(ctx context.Context) ([]domain.Tag, error)
	count  func(ctx context.Context) (int64, error)
}

func (m *mockTagRepo) Upsert(ctx context.Context, id string) error {
	if m.upsert != nil {
		return m.upsert(ctx, id)
	}
	return nil
}
func (m *mockTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}
func (m *mockTagRepo) Count(ctx context.Context) (int64, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, nil
}

var _ repo.TagRepo = (*mockTagRepo)(nil)

type mockTripleRepo struct {
	create func(ctx context.Context, t domain.Triple) error
	delete func(ctx context.Context, t domain.Triple) error
	list   func(ctx context.Context) ([]domain.Triple, error)
}

func (m *mockTripleRepo) Create(ctx context.Context, t domain.Triple) error {
	if m.create != nil {
		return m.create(ctx, t)
	}
	return nil
}
func (m *mockTripleRepo) Delete(ctx context.Context, t domain.Triple) error {
	if m.delete != nil {
		return m.delete(ctx, t)
	}
	return nil
}
func (m *mockTripleRepo) List(ctx context.Context) ([]domain.Triple, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}

var _ repo.TripleRepo = (*mockTripleRepo)(nil)

type mockRatingRepo struct {
	create func(ctx context.Context, r domain.Rating) error
	list   func(ctx context.Context) ([]domain.Rating, error)
}

func (m *mockRatingRepo) Create(ctx context.Context, r domain.Rating) error {
	if m.create != nil {
		return m.create(ctx, r)
	}
	return nil
}
func (m *mockRatingRepo) List(ctx context.Context) ([]domain.Rating, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}

var _ repo.RatingRepo = (*mockRatingRepo)(nil)

type mockCommentRepo struct {
	create func(ctx context.Context, c domain.Comment) error
	list   func(ctx context.Context) ([]domain.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, c domain.Comment) error {
	if m.create != nil {
		return m.create(ctx, c)
	}
	return nil
}
func (m *mockCommentRepo) List(ctx context.Context) ([]domain.Comment, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}

var _ repo.CommentRepo = (*mockCommentRepo)(nil)

type mockUserRepo struct {
	create        func(ctx context.Context, u domain.User) error
	getByUsername func(ctx context.Context, username string) (domain.User, error)
	list          func(ctx context.Context) ([]domain.User, error)
	delete        func(ctx context.Context, id string) error
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) error {
	if m.create != nil {
		return m.create(ctx, u)
	}
	return nil
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	if m.getByUsername != nil {
		return m.getByUsername(ctx, username)
	}
	return domain.User{}, domain.ErrNotFound
}
func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}
func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

type mockSubscriptionRepo struct {
	create func(ctx context.Context, s domain.BboxSubscription) error
	delete func(ctx context.Context, id string) error
	list   func(ctx context.Context) ([]domain.BboxSubscription, error)
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, s domain.BboxSubscription) error {
	if m.create != nil {
		return m.create(ctx, s)
	}
	return nil
}
func (m *mockSubscriptionRepo) Delete(ctx context.Context, id string) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}
func (m *mockSubscriptionRepo) List(ctx context.Context) ([]domain.BboxSubscription, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}

var _ repo.SubscriptionRepo = (*mockSubscriptionRepo)(nil)
