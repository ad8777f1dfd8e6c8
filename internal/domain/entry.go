package domain

import "time"

// Entry is a geotagged directory record (an organization or place).
// Entries are immutable-by-replacement: every update writes a whole new
// record whose Version must be exactly the stored Version plus one.
// License is set once on creation and carried forward on every update.
// The optional address and contact fields use "" for absent.
type Entry struct {
	ID          string    `json:"id"`
	Created     time.Time `json:"created"`
	Version     uint64    `json:"version"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Street      string    `json:"street,omitempty"`
	Zip         string    `json:"zip,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Email       string    `json:"email,omitempty"`
	Telephone   string    `json:"telephone,omitempty"`
	Homepage    string    `json:"homepage,omitempty"`
	Categories  []string  `json:"categories"`
	Tags        []string  `json:"tags"`
	License     string    `json:"license,omitempty"`
}

// Coordinate returns the entry's location as a Coordinate value.
func (e Entry) Coordinate() Coordinate {
	return Coordinate{Lat: e.Lat, Lng: e.Lng}
}

// Category is a fixed classification entries can belong to
// (e.g. "initiative", "company", "event").
type Category struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Version uint64    `json:"version"`
	Name    string    `json:"name"`
}

// Tag is a free-form label. Identity is the tag text itself; there is no
// surrogate key, so creating an existing tag is a no-op.
type Tag struct {
	ID string `json:"id"`
}
