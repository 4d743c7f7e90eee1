package progress

import (
	"time"

	"github.com/lingoread/backend/internal/models"
)

// AdvanceStreak returns the streak after an activity at "at"
//
// Days are compared as UTC calendar dates: an activity on the same day keeps the counter,
// the next day increments it and a longer gap restarts it at 1. Activities older than the
// stored last activity leave the streak unchanged.
func AdvanceStreak(streak models.StudyStreak, at time.Time) models.StudyStreak {
	if streak.LastActivity.IsZero() || streak.Days <= 0 {
		return models.StudyStreak{Days: 1, LastActivity: at}
	}
	if at.Before(streak.LastActivity) {
		return streak
	}

	switch calendarDays(streak.LastActivity, at) {
	case 0:
		// same day
	case 1:
		streak.Days++
	default:
		streak.Days = 1
	}
	streak.LastActivity = at
	return streak
}

func calendarDays(from, to time.Time) int {
	fy, fm, fd := from.UTC().Date()
	ty, tm, td := to.UTC().Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
