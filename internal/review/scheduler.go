// Package review implements the spaced-repetition schedule used by flashcard sessions
package review

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lingoread/backend/internal/models"
)

// MasteryReviewCount is the number of reviews after which a correct answer masters an item
const MasteryReviewCount = 5

// intervals holds the review intervals in days for correct answers,
// indexed by the review count after the answer is recorded
var intervals = []int{1, 3, 7, 14, 30}

// failedInterval is the interval in days after an incorrect answer
const failedInterval = 1

// Scheduler decides which items are due and advances an item schedule after a review
type Scheduler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewScheduler creates a new scheduler
//
// "src" parameter is the randomness source used by PresentationOrder.
// Pass a seeded source to get reproducible sessions, nil to seed from the current time.
func NewScheduler(src rand.Source) *Scheduler {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Scheduler{rnd: rand.New(src)}
}

// IsDue reports whether the item is eligible for review at "now"
//
// Items that are mastered with at least MasteryReviewCount reviews are never due.
// Other items are due when they have no next review date or the date has passed.
func IsDue(item models.VocabularyItem, now time.Time) bool {
	if item.Mastered && item.ReviewCount >= MasteryReviewCount {
		return false
	}
	if item.NextReview == nil {
		return true
	}
	return !item.NextReview.After(now)
}

// SelectDue returns the items due for review at "now"
//
// Input order is preserved and the input slice is not modified.
func (s *Scheduler) SelectDue(items []models.VocabularyItem, now time.Time) []models.VocabularyItem {
	due := make([]models.VocabularyItem, 0, len(items))
	for _, item := range items {
		if IsDue(item, now) {
			due = append(due, item)
		}
	}
	return due
}

// PresentationOrder returns a uniformly shuffled copy of the due items for one review session
func (s *Scheduler) PresentationOrder(due []models.VocabularyItem) []models.VocabularyItem {
	shuffled := make([]models.VocabularyItem, len(due))
	copy(shuffled, due)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// RecordOutcome returns the item with its schedule advanced by one review
//
// Only Mastered, ReviewCount, LastReviewed and NextReview are changed. Persisting the
// returned item is the caller's responsibility.
func (s *Scheduler) RecordOutcome(item models.VocabularyItem, correct bool, now time.Time) models.VocabularyItem {
	reviewCount := item.ReviewCount
	if reviewCount < 0 {
		reviewCount = 0
	}
	reviewCount++

	item.ReviewCount = reviewCount
	item.Mastered = correct && reviewCount >= MasteryReviewCount

	lastReviewed := now
	nextReview := now.AddDate(0, 0, NextInterval(correct, reviewCount))
	item.LastReviewed = &lastReviewed
	item.NextReview = &nextReview

	return item
}

// NextInterval returns the interval in days for the given outcome
//
// "reviewCount" is the count after the current review was added, so the
// first correct answer maps to the second table entry.
// TODO: product review pending on whether the first correct answer should use the 1-day interval.
func NextInterval(correct bool, reviewCount int) int {
	if !correct {
		return failedInterval
	}
	idx := min(reviewCount, len(intervals)-1)
	if idx < 0 {
		idx = 0
	}
	return intervals[idx]
}
