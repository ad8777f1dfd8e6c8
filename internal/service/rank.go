package service

import (
	"log/slog"
	"sort"

	"github.com/jmaurer/placedir/internal/domain"
)

// AverageRating computes the scalar score of an entry: the arithmetic mean of
// the values of all ratings linked to it via IsRatedWith triples. Ratings not
// linked to the entry never influence the result.
//
// An entry with zero linked ratings scores 0.0; the zero-denominator case is
// detected explicitly so that NaN never leaks into ordering.
func AverageRating(e domain.Entry, ratings []domain.Rating, triples []domain.Triple) float64 {
	linked := domain.RatingIDsForEntry(triples, e.ID)
	if len(linked) == 0 {
		return 0.0
	}

	ids := make(map[string]struct{}, len(linked))
	for _, id := range linked {
		ids[id] = struct{}{}
	}

	sum := 0
	for _, r := range ratings {
		if _, ok := ids[r.ID]; ok {
			sum += r.Value
		}
	}
	return float64(sum) / float64(len(linked))
}

// EntryRatings computes the rating lookup the search orchestrator consumes:
// entry id to average rating, for every entry in the snapshot.
func EntryRatings(entries []domain.Entry, ratings []domain.Rating, triples []domain.Triple) map[string]float64 {
	byEntry := make(map[string]float64, len(entries))
	for _, e := range entries {
		byEntry[e.ID] = AverageRating(e, ratings, triples)
	}
	return byEntry
}

// SortByAverageRating sorts entries in place, stably, descending by average
// rating. Degenerate comparisons (NaN on either side) fall back to "equal"
// instead of failing.
func SortByAverageRating(entries []domain.Entry, ratings []domain.Rating, triples []domain.Triple) {
	avg := EntryRatings(entries, ratings, triples)
	sortByRating(entries, avg)
}

// sortByRating orders entries descending by their score in byEntry.
// Entries missing from the lookup score 0.0.
func sortByRating(entries []domain.Entry, byEntry map[string]float64) {
	sort.SliceStable(entries, func(i, j int) bool {
		// A NaN comparison is false either way, which leaves the pair
		// in its original (stable) order.
		return byEntry[entries[i].ID] > byEntry[entries[j].ID]
	})
}

// SortByDistanceTo sorts entries in place, ascending by great-circle distance
// to ref. Entries with a non-finite coordinate are logged and moved after all
// valid entries, preserving their relative order. A non-finite reference
// leaves the slice untouched.
func SortByDistanceTo(entries []domain.Entry, ref domain.Coordinate) {
	if !ref.IsFinite() {
		return
	}

	valid := entries[:0:0]
	invalid := []domain.Entry{}
	for _, e := range entries {
		if e.Coordinate().IsFinite() {
			valid = append(valid, e)
		} else {
			slog.Warn("entry has invalid coordinate", "id", e.ID, "lat", e.Lat, "lng", e.Lng)
			invalid = append(invalid, e)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return domain.Distance(valid[i].Coordinate(), ref) < domain.Distance(valid[j].Coordinate(), ref)
	})

	copy(entries, valid)
	copy(entries[len(valid):], invalid)
}
