package domain

// User is a registered account. Password holds the bcrypt hash, never the
// plain text.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"-"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// BboxSubscription is a saved rectangular region a user wants to be notified
// about when new entries appear inside it. The subscribing user is linked via
// a SubscribedTo triple; a user holds at most one active subscription.
type BboxSubscription struct {
	ID   string      `json:"id"`
	Bbox BoundingBox `json:"bbox"`
}
