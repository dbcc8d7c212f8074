package summary

import "time"

// Period holds the resolved time boundaries for one summary request.
type Period struct {
	// Start is now minus the period length.
	Start time.Time
	// Mid splits the period into the older and the recent half,
	// fractional half-days allowed.
	Mid time.Time
	// CurrentWeekStart is the most recent Monday midnight <= now
	// (ISO week, Monday start).
	CurrentWeekStart time.Time
	// LastWeekStart is CurrentWeekStart minus 7 days.
	LastWeekStart time.Time
}

// ResolvePeriod computes the period boundaries for the given instant.
// periodDays == 0 yields Start == now, i.e. empty windows downstream,
// which all consumers handle gracefully.
func ResolvePeriod(now time.Time, periodDays int) Period {
	if periodDays < 0 {
		periodDays = 0
	}

	start := now.AddDate(0, 0, -periodDays)
	mid := start.Add(time.Duration(periodDays) * 24 * time.Hour / 2)

	// Weekday() is Sunday=0 based, ISO weeks start on Monday
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	currentWeekStart := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, now.Location(),
	).AddDate(0, 0, -daysSinceMonday)

	return Period{
		Start:            start,
		Mid:              mid,
		CurrentWeekStart: currentWeekStart,
		LastWeekStart:    currentWeekStart.AddDate(0, 0, -7),
	}
}
