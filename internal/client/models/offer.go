package models

import "time"

// SkillOffer is one skill a user offers to teach. Offers accumulate under
// an account; there is no update or delete path.
type SkillOffer struct {
	ID          string
	Title       string
	Category    string
	Subcategory string
	Description string
	CreatedAt   time.Time
}

// Categories is the fixed catalog a skill offer's category must come from,
// which is also the set offered during category selection.
var Categories = []string{
	"Art & Creativity",
	"Business & Professional",
	"Design & Interior",
	"Languages",
	"Music",
	"Photography & Videography",
	"Programming",
}

// Subcategories lists the known subcategories per category. Categories
// without an entry accept free-text subcategories.
var Subcategories = map[string][]string{
	"Programming":       {"Web Development", "Mobile Development", "Data Science"},
	"Design & Interior": {"UI/UX Design", "Graphic Design", "Interior Design"},
	"Music":             {"Vocal", "Instrumental", "Production"},
	"Art & Creativity":  {"Painting", "Sculpture", "Photography"},
}

// ValidCategory reports whether name is in the fixed catalog.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
