package services

import "time"

// currentWeekRange returns the Monday-through-Sunday window containing now,
// in now's location. Both bounds are inclusive: the start sits on Monday
// 00:00:00.000000000 and the end on the last nanosecond of Sunday.
func currentWeekRange(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		// time.Sunday is 0; our week ends on Sunday
		weekday = 7
	}

	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	start := midnight.AddDate(0, 0, 1-weekday)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)

	return start, end
}
