package domain

import "time"

// RatingContext names the aspect of an entry a rating applies to.
type RatingContext string

const (
	RatingContextDiversity    RatingContext = "diversity"
	RatingContextRenewable    RatingContext = "renewable"
	RatingContextFairness     RatingContext = "fairness"
	RatingContextHumanity     RatingContext = "humanity"
	RatingContextTransparency RatingContext = "transparency"
	RatingContextSolidarity   RatingContext = "solidarity"
)

// RatingValueMin and RatingValueMax bound the accepted rating scale.
const (
	RatingValueMin = -1
	RatingValueMax = 2
)

// Rating is a single community vote on an entry. EntryID is denormalized;
// the same link also exists as an IsRatedWith triple.
// Source optionally names where the rating came from ("" for none).
type Rating struct {
	ID      string        `json:"id"`
	EntryID string        `json:"entry_id"`
	Created time.Time     `json:"created"`
	Title   string        `json:"title"`
	Value   int           `json:"value"`
	Context RatingContext `json:"context"`
	Source  string        `json:"source,omitempty"`
}

// Comment is the free-text justification attached to a rating via an
// IsCommentedWith triple. Its author, if known, is linked via CreatedBy.
type Comment struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Text    string    `json:"text"`
}
