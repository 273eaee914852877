package reports

import (
	"time"

	"github.com/Christian112b/costanzo-backend/pkg/enums"
)

// StartFor returns the first instant of the requested reporting window in
// server-local time. Weeks start on Monday.
func StartFor(period enums.ReportPeriod, now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case enums.ReportPeriodToday:
		return midnight
	case enums.ReportPeriodWeek:
		offset := (int(now.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset)
	case enums.ReportPeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case enums.ReportPeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return now.AddDate(0, 0, -30)
	}
}

// weekStarts returns the Monday 00:00 boundaries of the last n calendar
// weeks, oldest first, the current week last.
func weekStarts(now time.Time, n int) []time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	currentMonday := midnight.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	starts := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		starts = append(starts, currentMonday.AddDate(0, 0, -7*i))
	}
	return starts
}
