package service

import (
	"context"
	"fmt"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/repo"
)

// SubscriptionService implements the bbox subscription use cases.
// A user holds at most one active subscription; subscribing again replaces
// the previous one (delete-then-create, last write wins).
type SubscriptionService struct {
	users   repo.UserRepo
	subs    repo.SubscriptionRepo
	triples repo.TripleRepo
}

// NewSubscriptionService constructs a SubscriptionService backed by the provided repos.
func NewSubscriptionService(users repo.UserRepo, subs repo.SubscriptionRepo, triples repo.TripleRepo) *SubscriptionService {
	return &SubscriptionService{users: users, subs: subs, triples: triples}
}

// Subscribe registers bbox as userID's subscription, replacing any prior one.
// Returns domain.ErrBBox for a box with non-finite or out-of-order corners.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID string, bbox domain.BoundingBox) error {
	if err := validateBbox(bbox); err != nil {
		return err
	}
	if err := s.deleteSubscriptions(ctx, userID); err != nil {
		return fmt.Errorf("service.SubscriptionService.Subscribe: %w", err)
	}

	sub := domain.BboxSubscription{ID: newID(), Bbox: bbox}
	if err := s.subs.Create(ctx, sub); err != nil {
		return fmt.Errorf("service.SubscriptionService.Subscribe: %w", err)
	}
	t := domain.Triple{
		Subject:   domain.UserID(userID),
		Predicate: domain.SubscribedTo,
		Object:    domain.SubscriptionID(sub.ID),
	}
	if err := s.triples.Create(ctx, t); err != nil {
		return fmt.Errorf("service.SubscriptionService.Subscribe: %w", err)
	}
	return nil
}

// UnsubscribeAll removes every subscription of userID.
func (s *SubscriptionService) UnsubscribeAll(ctx context.Context, userID string) error {
	if err := s.deleteSubscriptions(ctx, userID); err != nil {
		return fmt.Errorf("service.SubscriptionService.UnsubscribeAll: %w", err)
	}
	return nil
}

// ForUser returns the subscriptions of userID reachable via SubscribedTo
// triples. Always returns a non-nil slice.
func (s *SubscriptionService) ForUser(ctx context.Context, userID string) ([]domain.BboxSubscription, error) {
	triples, err := s.triples.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SubscriptionService.ForUser: %w", err)
	}
	ids := domain.SubscriptionIDsForUser(triples, userID)
	out := []domain.BboxSubscription{}
	if len(ids) == 0 {
		return out, nil
	}

	subs, err := s.subs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SubscriptionService.ForUser: %w", err)
	}
	for _, sub := range subs {
		for _, id := range ids {
			if sub.ID == id {
				out = append(out, sub)
			}
		}
	}
	return out, nil
}

// EmailAddressesToNotify returns the email addresses of every user whose
// subscribed region contains the point (lat, lng). Pairs whose user or
// subscription record is missing are skipped.
func (s *SubscriptionService) EmailAddressesToNotify(ctx context.Context, lat, lng float64) ([]string, error) {
	triples, err := s.triples.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SubscriptionService.EmailAddressesToNotify: %w", err)
	}
	pairs := domain.AllUserSubscriptions(triples)
	if len(pairs) == 0 {
		return []string{}, nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SubscriptionService.EmailAddressesToNotify: %w", err)
	}
	subs, err := s.subs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SubscriptionService.EmailAddressesToNotify: %w", err)
	}

	emailByUser := make(map[string]string, len(users))
	for _, u := range users {
		emailByUser[u.ID] = u.Email
	}
	bboxBySub := make(map[string]domain.BoundingBox, len(subs))
	for _, sub := range subs {
		bboxBySub[sub.ID] = sub.Bbox
	}

	emails := []string{}
	for _, p := range pairs {
		email, ok := emailByUser[p.UserID]
		if !ok {
			continue
		}
		bbox, ok := bboxBySub[p.SubscriptionID]
		if !ok {
			continue
		}
		if bbox.Contains(lat, lng) {
			emails = append(emails, email)
		}
	}
	return emails, nil
}

// deleteSubscriptions removes all subscription records and SubscribedTo
// triples of userID.
func (s *SubscriptionService) deleteSubscriptions(ctx context.Context, userID string) error {
	triples, err := s.triples.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range domain.SubscriptionIDsForUser(triples, userID) {
		if err := s.subs.Delete(ctx, id); err != nil {
			return err
		}
		t := domain.Triple{
			Subject:   domain.UserID(userID),
			Predicate: domain.SubscribedTo,
			Object:    domain.SubscriptionID(id),
		}
		if err := s.triples.Delete(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// validateBbox rejects boxes with non-finite or out-of-order corners.
func validateBbox(b domain.BoundingBox) error {
	if !b.SouthWest.IsFinite() || !b.NorthEast.IsFinite() {
		return domain.ErrBBox
	}
	if b.SouthWest.Lat > b.NorthEast.Lat || b.SouthWest.Lng > b.NorthEast.Lng {
		return domain.ErrBBox
	}
	return nil
}
