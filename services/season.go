package services

import "time"

type Season string

const (
	Winter Season = "Winter"
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
)

// GetSeason maps a date to a season by calendar month. The partition is the
// four-season one: Dec-Feb Winter, Mar-May Spring, Jun-Aug Summer, Sep-Nov
// Autumn. A five-season variant with Monsoon exists elsewhere but is not
// used for meal rotation.
func GetSeason(date time.Time) Season {
	switch date.Month() {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Autumn
	}
}
