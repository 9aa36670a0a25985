package models

import "time"

// Profile is the user's onboarding record. Categories stay nil until the
// user picks them in the separate category-selection step, so pre-migration
// profiles can be completed without categories.
type Profile struct {
	FirstName   string
	LastName    string
	DateOfBirth string // backend date format, yyyy-mm-dd
	Location    string
	PictureURL  string
	Completed   bool
	Categories  []string
	CreatedAt   time.Time
}

// HasCategories reports whether the categories field has ever been set.
// Category selection requires at least one pick, so an empty list and an
// absent field mean the same thing on the wire.
func (p Profile) HasCategories() bool {
	return len(p.Categories) > 0
}
