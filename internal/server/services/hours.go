package services

import (
	"math"
	"time"

	"shifttracker/internal/server/models"
)

// shiftHours converts a shift duration to hours with two decimal places.
// The duration is truncated to whole minutes first, then minutes/60 is
// rounded half up.
func shiftHours(d time.Duration) float64 {
	minutes := int64(d / time.Minute)
	return math.Floor(float64(minutes)/60*100+0.5) / 100
}

// sumHours totals the closed shifts in the list. Open shifts contribute
// zero. The sum is accumulated in integer hundredths so that repeated float
// addition cannot drift.
func sumHours(shifts []*models.Shift) float64 {
	var hundredths int64
	for _, s := range shifts {
		if s.Open() || s.TotalHours == nil {
			continue
		}
		hundredths += int64(math.Round(*s.TotalHours * 100))
	}
	return float64(hundredths) / 100
}
