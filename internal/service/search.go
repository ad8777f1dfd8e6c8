// Package service contains the business logic for the place directory:
// the search pipeline, rating aggregation, and the transactional use cases.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/repo"
)

const (
	// maxInvisibleResults caps the number of near-miss entries surfaced
	// outside the requested viewport.
	maxInvisibleResults = 5

	// bboxLatExt and bboxLngExt are the fixed margins (in degrees) added to
	// each side of the requested bounding box. Degrees, not meters: a
	// longitude degree shrinks toward the poles, and that is accepted.
	bboxLatExt = 0.02
	bboxLngExt = 0.04
)

// HashtagParser extracts #tag tokens from free text. The token shape is
// '#' followed by word characters, optionally joined by single hyphens
// ("#repair-cafe"). The regex is compiled once at construction; there is
// no lazily-initialized package state.
type HashtagParser struct {
	re *regexp.Regexp
}

// NewHashtagParser compiles the hashtag pattern.
func NewHashtagParser() *HashtagParser {
	return &HashtagParser{re: regexp.MustCompile(`#(\w+(?:-\w+)*)`)}
}

// Extract returns the tags embedded in text, without the leading '#'.
func (p *HashtagParser) Extract(text string) []string {
	var tags []string
	for _, m := range p.re.FindAllStringSubmatch(text, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

// Strip removes all hashtag tokens from text, collapses the double spaces
// that leaves behind, and trims the result.
func (p *HashtagParser) Strip(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(p.re.ReplaceAllString(text, ""), "  ", " "))
}

// SearchRequest is a parsed search query.
// Categories distinguishes "no filter" (nil) from "filter on the empty set"
// (empty non-nil slice). EntryRatings is the rating lookup indexed by entry
// id, usually built by RatingService.EntryRatings.
type SearchRequest struct {
	Bbox         domain.BoundingBox
	Categories   []string
	Text         string
	Tags         []string
	EntryRatings map[string]float64
}

// SearchResult is the two-tier response: Visible holds the ids of entries
// inside the requested viewport, Invisible up to maxInvisibleResults
// high-relevance near-misses just outside it. No id appears in both.
type SearchResult struct {
	Visible   []string `json:"visible"`
	Invisible []string `json:"invisible"`
}

// SearchService runs the bounded-search pipeline over entry snapshots.
type SearchService struct {
	entries  repo.EntryRepo
	triples  repo.TripleRepo
	hashtags *HashtagParser
}

// NewSearchService constructs a SearchService backed by the provided repos.
func NewSearchService(entries repo.EntryRepo, triples repo.TripleRepo) *SearchService {
	return &SearchService{entries: entries, triples: triples, hashtags: NewHashtagParser()}
}

// Search runs the pipeline in fixed order: extended-bbox filter, category
// filter, tag/text filter, rating sort, visible/invisible partition.
//
// The requested box is inflated so that entries just outside the viewport are
// available as secondary results instead of being silently dropped. Visible
// results are the rating-sorted entries inside the original box; the rest
// become invisible results, truncated to maxInvisibleResults.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	all, err := s.entries.List(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	extended := req.Bbox.Extend(bboxLatExt, bboxLngExt)
	entries := filterEntries(all, ByBoundingBox(extended))

	if req.Categories != nil {
		entries = filterEntries(entries, ByCategoryIDs(req.Categories))
	}

	tags := s.hashtags.Extract(req.Text)
	tags = append(tags, req.Tags...)
	txt := s.hashtags.Strip(req.Text)

	// Tags and residual text form one combined filter: with tags present an
	// entry passes on a tag match or a text match, not both at once.
	if len(tags) > 0 {
		triples, err := s.triples.List(ctx)
		if err != nil {
			return SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
		}
		byTag := ByTags(tags, triples, Or)
		byText := BySearchText(txt)
		entries = filterEntries(entries, func(e domain.Entry) bool {
			return byTag(e) || (txt != "" && byText(e))
		})
	} else if txt != "" {
		entries = filterEntries(entries, BySearchText(txt))
	}

	sortByRating(entries, req.EntryRatings)

	result := SearchResult{Visible: []string{}, Invisible: []string{}}
	for _, e := range entries {
		if req.Bbox.Contains(e.Lat, e.Lng) {
			result.Visible = append(result.Visible, e.ID)
		} else if len(result.Invisible) < maxInvisibleResults {
			result.Invisible = append(result.Invisible, e.ID)
		}
	}
	return result, nil
}
