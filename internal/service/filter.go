package service

import (
	"strings"

	"github.com/jmaurer/placedir/internal/domain"
)

// Combination selects how multiple requested tags combine in ByTags.
type Combination int

const (
	// Or passes an entry carrying at least one of the requested tags.
	Or Combination = iota
	// And requires every requested tag to be present.
	And
)

// ByBoundingBox returns a filter matching entries located inside b.
func ByBoundingBox(b domain.BoundingBox) func(domain.Entry) bool {
	return func(e domain.Entry) bool {
		return b.Contains(e.Lat, e.Lng)
	}
}

// ByCategoryIDs returns a filter matching entries whose categories intersect
// ids (OR semantics). A filter built from an empty id set passes nothing;
// "no category filter requested" is the caller's distinction to make, by not
// applying the filter at all.
func ByCategoryIDs(ids []string) func(domain.Entry) bool {
	return func(e domain.Entry) bool {
		for _, c := range e.Categories {
			for _, id := range ids {
				if c == id {
					return true
				}
			}
		}
		return false
	}
}

// ByTags returns a filter matching entries against the requested tags.
// A tag counts as present if it appears in the entry's own tag list or is
// reachable via an IsTaggedWith triple in the supplied snapshot.
func ByTags(tags []string, triples []domain.Triple, comb Combination) func(domain.Entry) bool {
	return func(e domain.Entry) bool {
		have := make(map[string]struct{}, len(e.Tags))
		for _, t := range e.Tags {
			have[t] = struct{}{}
		}
		for _, t := range domain.TagIDsForEntry(triples, e.ID) {
			have[t] = struct{}{}
		}

		matched := 0
		for _, t := range tags {
			if _, ok := have[t]; ok {
				matched++
			}
		}
		if comb == And {
			return matched == len(tags)
		}
		return matched > 0
	}
}

// BySearchText returns a filter matching entries whose title or description
// contains txt, case-insensitively. An empty txt matches everything.
func BySearchText(txt string) func(domain.Entry) bool {
	needle := strings.ToLower(txt)
	return func(e domain.Entry) bool {
		return strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle)
	}
}

// filterEntries returns the entries passing pred, preserving order.
func filterEntries(entries []domain.Entry, pred func(domain.Entry) bool) []domain.Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}
