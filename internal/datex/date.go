// Package datex holds date rules shared by the profile flow: the server-side
// date format and age derivation for display.
package datex

import "time"

// ServerDateLayout is the format the backend expects for dateOfBirth.
const ServerDateLayout = "2006-01-02"

// FormatServerDate renders t in the backend's date format.
func FormatServerDate(t time.Time) string {
	return t.Format(ServerDateLayout)
}

// ParseServerDate parses a date string in the backend's format.
func ParseServerDate(s string) (time.Time, error) {
	return time.Parse(ServerDateLayout, s)
}

// Age returns the number of whole years between dateOfBirth and now:
// the year difference, minus one if now's day-of-year precedes the birth
// day-of-year. Display only, never persisted.
func Age(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	// Birthday projected into the current year, so leap years on either
	// side do not shift the comparison.
	birthday := time.Date(now.Year(), dateOfBirth.Month(), dateOfBirth.Day(), 0, 0, 0, 0, now.Location())
	if now.YearDay() < birthday.YearDay() {
		age--
	}
	return age
}
