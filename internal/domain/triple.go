package domain

// ObjectKind discriminates the entity kind an ObjectID points at.
type ObjectKind string

const (
	KindEntry        ObjectKind = "entry"
	KindTag          ObjectKind = "tag"
	KindUser         ObjectKind = "user"
	KindComment      ObjectKind = "comment"
	KindRating       ObjectKind = "rating"
	KindSubscription ObjectKind = "bbox_subscription"
)

// ObjectID is a typed reference to an entity, used as subject or object of a
// Triple. It is a back-reference, never an owning handle: it only carries
// the entity's id string, not the entity itself.
type ObjectID struct {
	Kind ObjectKind `json:"kind"`
	ID   string     `json:"id"`
}

func EntryID(id string) ObjectID        { return ObjectID{Kind: KindEntry, ID: id} }
func TagID(id string) ObjectID          { return ObjectID{Kind: KindTag, ID: id} }
func UserID(id string) ObjectID         { return ObjectID{Kind: KindUser, ID: id} }
func CommentID(id string) ObjectID      { return ObjectID{Kind: KindComment, ID: id} }
func RatingID(id string) ObjectID       { return ObjectID{Kind: KindRating, ID: id} }
func SubscriptionID(id string) ObjectID { return ObjectID{Kind: KindSubscription, ID: id} }

// Relation is the predicate of a Triple. Each predicate is only ever used
// between one pair of ObjectID kinds:
//
//	IsTaggedWith:    entry  → tag
//	IsRatedWith:     entry  → rating
//	IsCommentedWith: rating → comment
//	CreatedBy:       rating → user, comment → user
//	SubscribedTo:    user   → bbox_subscription
//
// The pairing is a convention verified by tests, not by the type system.
type Relation string

const (
	IsTaggedWith    Relation = "is_tagged_with"
	IsCommentedWith Relation = "is_commented_with"
	CreatedBy       Relation = "created_by"
	SubscribedTo    Relation = "subscribed_to"
	IsRatedWith     Relation = "is_rated_with"
)

// Triple is a (subject, predicate, object) fact in the relation graph.
// Triples are immutable; relationships change by adding or deleting whole
// triples. Two triples with identical fields are the same fact.
type Triple struct {
	Subject   ObjectID `json:"subject"`
	Predicate Relation `json:"predicate"`
	Object    ObjectID `json:"object"`
}

// Key returns the deterministic identity of the triple, used for
// deduplication and deletion. There is no surrogate key.
func (t Triple) Key() string {
	return string(t.Subject.Kind) + "-" + t.Subject.ID + "-" + string(t.Predicate) +
		"-" + string(t.Object.Kind) + "-" + t.Object.ID
}

// BySubject returns a reusable filter matching triples whose subject equals id.
func BySubject(id ObjectID) func(Triple) bool {
	return func(t Triple) bool { return t.Subject == id }
}

// objectIDs collects the object ids of triples matching subject, predicate,
// and object kind. All graph queries below are pure functions over a supplied
// snapshot; the graph itself holds no state.
func objectIDs(triples []Triple, subject ObjectID, predicate Relation, objectKind ObjectKind) []string {
	var ids []string
	matches := BySubject(subject)
	for _, t := range triples {
		if matches(t) && t.Predicate == predicate && t.Object.Kind == objectKind {
			ids = append(ids, t.Object.ID)
		}
	}
	return ids
}

// CommentIDsForRating returns the ids of all comments attached to the rating
// via IsCommentedWith triples.
func CommentIDsForRating(triples []Triple, ratingID string) []string {
	return objectIDs(triples, RatingID(ratingID), IsCommentedWith, KindComment)
}

// RatingIDsForEntry returns the ids of all ratings linked to the entry via
// IsRatedWith triples.
func RatingIDsForEntry(triples []Triple, entryID string) []string {
	return objectIDs(triples, EntryID(entryID), IsRatedWith, KindRating)
}

// TagIDsForEntry returns the ids of all tags linked to the entry via
// IsTaggedWith triples.
func TagIDsForEntry(triples []Triple, entryID string) []string {
	return objectIDs(triples, EntryID(entryID), IsTaggedWith, KindTag)
}

// UserIDForComment returns the id of the user that created the comment.
// If multiple CreatedBy triples exist the last one wins; at most one such
// triple per subject is an integrity invariant enforced at write time.
func UserIDForComment(triples []Triple, commentID string) (string, bool) {
	return lastUserID(triples, CommentID(commentID))
}

// UserIDForRating returns the id of the user that created the rating.
func UserIDForRating(triples []Triple, ratingID string) (string, bool) {
	return lastUserID(triples, RatingID(ratingID))
}

func lastUserID(triples []Triple, subject ObjectID) (string, bool) {
	ids := objectIDs(triples, subject, CreatedBy, KindUser)
	if len(ids) == 0 {
		return "", false
	}
	return ids[len(ids)-1], true
}

// SubscriptionIDsForUser returns the ids of all bbox subscriptions the user
// is linked to via SubscribedTo triples.
func SubscriptionIDsForUser(triples []Triple, userID string) []string {
	return objectIDs(triples, UserID(userID), SubscribedTo, KindSubscription)
}

// UserSubscription is one (user, subscription) pair from the relation graph.
type UserSubscription struct {
	UserID         string
	SubscriptionID string
}

// AllUserSubscriptions returns every (user, subscription) pair reachable via
// SubscribedTo triples, in snapshot order.
func AllUserSubscriptions(triples []Triple) []UserSubscription {
	var pairs []UserSubscription
	for _, t := range triples {
		if t.Predicate == SubscribedTo && t.Subject.Kind == KindUser && t.Object.Kind == KindSubscription {
			pairs = append(pairs, UserSubscription{UserID: t.Subject.ID, SubscriptionID: t.Object.ID})
		}
	}
	return pairs
}
