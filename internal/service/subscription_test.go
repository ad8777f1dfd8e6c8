package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/service"
)

func bboxAround(lat, lng float64) domain.BoundingBox {
	return domain.BoundingBox{
		SouthWest: domain.Coordinate{Lat: lat - 1, Lng: lng - 1},
		NorthEast: domain.Coordinate{Lat: lat + 1, Lng: lng + 1},
	}
}

func subscribedTo(userID, subID string) domain.Triple {
	return domain.Triple{
		Subject:   domain.UserID(userID),
		Predicate: domain.SubscribedTo,
		Object:    domain.SubscriptionID(subID),
	}
}

// ---- Subscribe ----

func TestSubscriptionService_Subscribe(t *testing.T) {
	var created domain.BboxSubscription
	var fact domain.Triple
	subs := &mockSubscriptionRepo{
		create: func(ctx context.Context, s domain.BboxSubscription) error {
			created = s
			return nil
		},
	}
	triples := &mockTripleRepo{
		create: func(ctx context.Context, tr domain.Triple) error {
			fact = tr
			return nil
		},
	}
	svc := service.NewSubscriptionService(&mockUserRepo{}, subs, triples)

	err := svc.Subscribe(context.Background(), "u1", bboxAround(48, 11))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, bboxAround(48, 11), created.Bbox)
	assert.Equal(t, subscribedTo("u1", created.ID), fact)
}

func TestSubscriptionService_Subscribe_ReplacesPrevious(t *testing.T) {
	deletedSubs := []string{}
	var deletedTriples []domain.Triple
	subs := &mockSubscriptionRepo{
		delete: func(ctx context.Context, id string) error {
			deletedSubs = append(deletedSubs, id)
			return nil
		},
	}
	triples := &mockTripleRepo{
		list: func(ctx context.Context) ([]domain.Triple, error) {
			return []domain.Triple{
				subscribedTo("u1", "old-sub"),
				subscribedTo("other", "other-sub"),
			}, nil
		},
		delete: func(ctx context.Context, tr domain.Triple) error {
			deletedTriples = append(deletedTriples, tr)
			return nil
		},
	}
	svc := service.NewSubscriptionService(&mockUserRepo{}, subs, triples)

	err := svc.Subscribe(context.Background(), "u1", bboxAround(48, 11))

	require.NoError(t, err)
	assert.Equal(t, []string{"old-sub"}, deletedSubs, "only the caller's subscription is replaced")
	assert.Equal(t, []domain.Triple{subscribedTo("u1", "old-sub")}, deletedTriples)
}

func TestSubscriptionService_Subscribe_InvalidBbox(t *testing.T) {
	svc := service.NewSubscriptionService(&mockUserRepo{}, &mockSubscriptionRepo{}, &mockTripleRepo{})

	bad := []domain.BoundingBox{
		{SouthWest: domain.Coordinate{Lat: math.NaN(), Lng: 0}, NorthEast: domain.Coordinate{Lat: 1, Lng: 1}},
		{SouthWest: domain.Coordinate{Lat: 2, Lng: 0}, NorthEast: domain.Coordinate{Lat: 1, Lng: 1}},
		{SouthWest: domain.Coordinate{Lat: 0, Lng: 2}, NorthEast: domain.Coordinate{Lat: 1, Lng: 1}},
	}
	for _, b := range bad {
		err := svc.Subscribe(context.Background(), "u1", b)
		assert.ErrorIs(t, err, domain.ErrBBox)
	}
}

// ---- ForUser ----

func TestSubscriptionService_ForUser(t *testing.T) {
	subs := &mockSubscriptionRepo{
		list: func(ctx context.Context) ([]domain.BboxSubscription, error) {
			return []domain.BboxSubscription{
				{ID: "s1", Bbox: bboxAround(48, 11)},
				{ID: "s2", Bbox: bboxAround(0, 0)},
			}, nil
		},
	}
	triples := &mockTripleRepo{
		list: func(ctx context.Context) ([]domain.Triple, error) {
			return []domain.Triple{subscribedTo("u1", "s1")}, nil
		},
	}
	svc := service.NewSubscriptionService(&mockUserRepo{}, subs, triples)

	got, err := svc.ForUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
}

func TestSubscriptionService_ForUser_NoneIsEmptyNotNil(t *testing.T) {
	svc := service.NewSubscriptionService(&mockUserRepo{}, &mockSubscriptionRepo{}, &mockTripleRepo{})

	got, err := svc.ForUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- EmailAddressesToNotify ----

func TestSubscriptionService_EmailAddressesToNotify(t *testing.T) {
	users := &mockUserRepo{
		list: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "u1", Email: "inside@example.com"},
				{ID: "u2", Email: "outside@example.com"},
			}, nil
		},
	}
	subs := &mockSubscriptionRepo{
		list: func(ctx context.Context) ([]domain.BboxSubscription, error) {
			return []domain.BboxSubscription{
				{ID: "s1", Bbox: bboxAround(48, 11)},
				{ID: "s2", Bbox: bboxAround(-30, 150)},
			}, nil
		},
	}
	triples := &mockTripleRepo{
		list: func(ctx context.Context) ([]domain.Triple, error) {
			return []domain.Triple{
				subscribedTo("u1", "s1"),
				subscribedTo("u2", "s2"),
				subscribedTo("ghost", "s1"),    // user record missing
				subscribedTo("u1", "gone-sub"), // subscription record missing
			}, nil
		},
	}
	svc := service.NewSubscriptionService(users, subs, triples)

	got, err := svc.EmailAddressesToNotify(context.Background(), 48.1, 11.2)

	require.NoError(t, err)
	assert.Equal(t, []string{"inside@example.com"}, got)
}

func TestSubscriptionService_EmailAddressesToNotify_NoSubscriptions(t *testing.T) {
	svc := service.NewSubscriptionService(&mockUserRepo{}, &mockSubscriptionRepo{}, &mockTripleRepo{})

	got, err := svc.EmailAddressesToNotify(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
