package timeutil

import (
	"sync"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// leagueTimezone is the zone the feed source uses to delimit a sporting day.
// Day boundaries must be computed here, not in the caller's local zone, or an
// evening game rolls into the wrong day.
const leagueTimezone = "America/New_York"

var (
	leagueOnce sync.Once
	leagueLoc  *time.Location
)

// LeagueLocation returns the feed source's canonical time zone. Falls back to
// UTC when the zone database cannot resolve it.
func LeagueLocation() *time.Location {
	leagueOnce.Do(func() {
		loc, err := time.LoadLocation(leagueTimezone)
		if err != nil {
			loc = time.UTC
		}
		leagueLoc = loc
	})
	return leagueLoc
}

// SportingDay formats the current sporting day for the given instant.
func SportingDay(now time.Time) string {
	return now.In(LeagueLocation()).Format(DateLayout)
}

// PreviousDay returns the calendar day before a YYYY-MM-DD date.
func PreviousDay(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(DateLayout), nil
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
