package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/repo"
)

// RateEntry is the input for rating an entry. User optionally names the
// rating author ("" for anonymous).
type RateEntry struct {
	Entry   string
	Title   string
	Value   int
	Context domain.RatingContext
	Comment string
	Source  string
	User    string
}

// RatingView is a rating assembled with its comments and author attribution
// from the relation graph, as served by the ratings endpoint.
type RatingView struct {
	domain.Rating
	UserID   string        `json:"user,omitempty"`
	Comments []CommentView `json:"comments"`
}

// CommentView is a comment with its author attribution.
type CommentView struct {
	domain.Comment
	UserID string `json:"user,omitempty"`
}

// RatingService implements the rating use cases.
type RatingService struct {
	entries  repo.EntryRepo
	ratings  repo.RatingRepo
	comments repo.CommentRepo
	triples  repo.TripleRepo
	now      func() time.Time
}

// NewRatingService constructs a RatingService backed by the provided repos.
func NewRatingService(entries repo.EntryRepo, ratings repo.RatingRepo, comments repo.CommentRepo, triples repo.TripleRepo) *RatingService {
	return &RatingService{entries: entries, ratings: ratings, comments: comments, triples: triples, now: time.Now}
}

// Rate records a rating on an entry together with its mandatory comment.
// It writes the Rating and Comment records plus the graph facts linking them:
// entry IsRatedWith rating, rating IsCommentedWith comment, and, when an
// author is given, CreatedBy triples for both. At most one CreatedBy triple
// per subject is written, keeping the read-side "last match wins" lookup
// unambiguous.
func (s *RatingService) Rate(ctx context.Context, r RateEntry) error {
	entry, err := s.entries.GetByID(ctx, r.Entry)
	if err != nil {
		return fmt.Errorf("service.RatingService.Rate: %w", err)
	}
	if strings.TrimSpace(r.Comment) == "" {
		return domain.ErrEmptyComment
	}
	if r.Value < domain.RatingValueMin || r.Value > domain.RatingValueMax {
		return domain.ErrRatingValue
	}

	now := s.now().UTC()
	rating := domain.Rating{
		ID:      newID(),
		EntryID: entry.ID,
		Created: now,
		Title:   r.Title,
		Value:   r.Value,
		Context: r.Context,
		Source:  r.Source,
	}
	comment := domain.Comment{ID: newID(), Created: now, Text: r.Comment}

	if err := s.ratings.Create(ctx, rating); err != nil {
		return fmt.Errorf("service.RatingService.Rate: %w", err)
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return fmt.Errorf("service.RatingService.Rate: %w", err)
	}

	facts := []domain.Triple{
		{Subject: domain.EntryID(entry.ID), Predicate: domain.IsRatedWith, Object: domain.RatingID(rating.ID)},
		{Subject: domain.RatingID(rating.ID), Predicate: domain.IsCommentedWith, Object: domain.CommentID(comment.ID)},
	}
	if r.User != "" {
		facts = append(facts,
			domain.Triple{Subject: domain.RatingID(rating.ID), Predicate: domain.CreatedBy, Object: domain.UserID(r.User)},
			domain.Triple{Subject: domain.CommentID(comment.ID), Predicate: domain.CreatedBy, Object: domain.UserID(r.User)},
		)
	}
	for _, t := range facts {
		if err := s.triples.Create(ctx, t); err != nil {
			return fmt.Errorf("service.RatingService.Rate: %w", err)
		}
	}
	return nil
}

// Get returns the ratings whose ids appear in ids, in snapshot order.
func (s *RatingService) Get(ctx context.Context, ids []string) ([]domain.Rating, error) {
	all, err := s.ratings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RatingService.Get: %w", err)
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := []domain.Rating{}
	for _, r := range all {
		if _, ok := wanted[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// ForEntries returns the ratings of each given entry, keyed by entry id.
// Every requested id is present in the map, possibly with an empty slice.
func (s *RatingService) ForEntries(ctx context.Context, entryIDs []string) (map[string][]domain.Rating, error) {
	all, err := s.ratings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RatingService.ForEntries: %w", err)
	}
	out := make(map[string][]domain.Rating, len(entryIDs))
	for _, id := range entryIDs {
		out[id] = []domain.Rating{}
	}
	for _, r := range all {
		if _, ok := out[r.EntryID]; ok {
			out[r.EntryID] = append(out[r.EntryID], r)
		}
	}
	return out, nil
}

// WithComments assembles the ratings in ids with their comments and author
// ids resolved through the relation graph.
func (s *RatingService) WithComments(ctx context.Context, ids []string) ([]RatingView, error) {
	ratings, err := s.Get(ctx, ids)
	if err != nil {
		return nil, err
	}
	triples, err := s.triples.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RatingService.WithComments: %w", err)
	}
	comments, err := s.comments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RatingService.WithComments: %w", err)
	}
	byID := make(map[string]domain.Comment, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
	}

	views := []RatingView{}
	for _, r := range ratings {
		view := RatingView{Rating: r, Comments: []CommentView{}}
		if userID, ok := domain.UserIDForRating(triples, r.ID); ok {
			view.UserID = userID
		}
		for _, cID := range domain.CommentIDsForRating(triples, r.ID) {
			c, ok := byID[cID]
			if !ok {
				continue
			}
			cv := CommentView{Comment: c}
			if userID, ok := domain.UserIDForComment(triples, c.ID); ok {
				cv.UserID = userID
			}
			view.Comments = append(view.Comments, cv)
		}
		views = append(views, view)
	}
	return views, nil
}

// EntryRatings builds the average-rating lookup over the full entry snapshot,
// for the search orchestrator.
func (s *RatingService) EntryRatings(ctx context.Context) (map[string]float64, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RatingService.EntryRatings: %w", err)
	}
	ratings, err := s.ratings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RatingService.EntryRatings: %w", err)
	}
	triples, err := s.triples.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RatingService.EntryRatings: %w", err)
	}
	return EntryRatings(entries, ratings, triples), nil
}
