package study

import "time"

// DayStart returns the start of the calendar day of now in tz, in UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	if tz == nil {
		tz = time.UTC
	}
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}
