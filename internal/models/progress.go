package models

import "time"

// LanguageProgress is the cached per-language summary of a learner
type LanguageProgress struct {
	LearnerID     int       `json:"learnerId"`
	Language      Language  `json:"language"`
	TotalWords    int       `json:"totalWords"`
	MasteredWords int       `json:"masteredWords"`
	ArticlesRead  int       `json:"articlesRead"`
	LastActivity  time.Time `json:"lastActivity"`
	StudyStreak   int       `json:"studyStreak"`
}

// StudyStreak is the counter of consecutive study days
type StudyStreak struct {
	Days         int       `json:"days"`
	LastActivity time.Time `json:"lastActivity"` // Zero when the learner has no recorded activity
}

// ProgressSummary represents the progress page metrics for one language
type ProgressSummary struct {
	Language            Language   `json:"language"`
	TotalWords          int        `json:"totalWords"`
	MasteredWords       int        `json:"masteredWords"`
	MasteryPercentage   int        `json:"masteryPercentage"`
	WordsThisWeek       int        `json:"wordsThisWeek"`
	ReviewsThisWeek     int        `json:"reviewsThisWeek"`
	WordsInProgress     int        `json:"wordsInProgress"`
	WordsReadyForReview int        `json:"wordsReadyForReview"`
	ArticlesRead        int        `json:"articlesRead"`
	LastActivity        *time.Time `json:"lastActivity,omitempty"`
	StudyStreak         int        `json:"studyStreak"` // Stored count, stale once IsStreakActive is false
	IsStreakActive      bool       `json:"isStreakActive"`
}

// ProgressSnapshot holds the stored inputs of a progress summary for one language
//
// The snapshot is time independent. Summaries are derived from it at read time.
type ProgressSnapshot struct {
	Language Language         `json:"language"`
	Items    []VocabularyItem `json:"items"`
	Activity []ActivityRecord `json:"activity"`
	Streak   StudyStreak      `json:"streak"`
}

// Progress converts the summary into the cached LanguageProgress record
func (s ProgressSummary) Progress(learnerID int) LanguageProgress {
	p := LanguageProgress{
		LearnerID:     learnerID,
		Language:      s.Language,
		TotalWords:    s.TotalWords,
		MasteredWords: s.MasteredWords,
		ArticlesRead:  s.ArticlesRead,
		StudyStreak:   s.StudyStreak,
	}
	if s.LastActivity != nil {
		p.LastActivity = *s.LastActivity
	}
	return p
}
