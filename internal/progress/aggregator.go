// Package progress derives learner progress metrics from a vocabulary snapshot
package progress

import (
	"math"
	"time"

	"github.com/lingoread/backend/internal/models"
	"github.com/lingoread/backend/internal/review"
)

// weekDays is the window used for the weekly counters
const weekDays = 7

// Summarize computes the progress summary for one language
//
// "items" is the learner's vocabulary snapshot for the language and "activity" the learner's
// activity records for the same language. "streak" is the stored study streak counter.
// The function performs no I/O and is deterministic for fixed inputs.
func Summarize(language models.Language, items []models.VocabularyItem, activity []models.ActivityRecord, streak models.StudyStreak, now time.Time) models.ProgressSummary {
	weekAgo := now.AddDate(0, 0, -weekDays)

	summary := models.ProgressSummary{
		Language:    language,
		TotalWords:  len(items),
		StudyStreak: streak.Days,
	}

	for _, item := range items {
		if item.Mastered {
			summary.MasteredWords++
		} else {
			summary.WordsInProgress++
		}
		if !item.CreatedAt.Before(weekAgo) {
			summary.WordsThisWeek++
		}
		if item.LastReviewed != nil && !item.LastReviewed.Before(weekAgo) {
			summary.ReviewsThisWeek++
		}
		if review.IsDue(item, now) {
			summary.WordsReadyForReview++
		}
	}

	summary.MasteryPercentage = MasteryPercentage(summary.MasteredWords, summary.TotalWords)
	summary.ArticlesRead = countReadArticles(activity)

	lastActivity := latestActivity(activity, streak.LastActivity)
	if !lastActivity.IsZero() {
		summary.LastActivity = &lastActivity
		summary.IsStreakActive = DaysBetween(lastActivity, now) <= 1
	}

	return summary
}

// MasteryPercentage returns the rounded share of mastered words, 0 for an empty vocabulary
func MasteryPercentage(mastered, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(mastered) / float64(total) * 100))
}

// DaysBetween returns the number of whole 24-hour days elapsed from "from" to "to"
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// countReadArticles counts distinct articles with a read_article action
func countReadArticles(activity []models.ActivityRecord) int {
	seen := make(map[string]struct{})
	for _, record := range activity {
		if record.ActionKind != models.ActionReadArticle || record.TargetID == "" {
			continue
		}
		seen[record.TargetID] = struct{}{}
	}
	return len(seen)
}

func latestActivity(activity []models.ActivityRecord, fallback time.Time) time.Time {
	latest := fallback
	for _, record := range activity {
		if record.Timestamp.After(latest) {
			latest = record.Timestamp
		}
	}
	return latest
}
