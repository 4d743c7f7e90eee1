package models

import "time"

// VocabularyItem represents one word or phrase saved by a learner
type VocabularyItem struct {
	ID                 string     `json:"id"`
	LearnerID          int        `json:"learnerId"`
	OriginalWord       string     `json:"originalWord"`
	TranslatedWord     string     `json:"translatedWord"`
	OriginalSentence   string     `json:"originalSentence"`
	TranslatedSentence string     `json:"translatedSentence"`
	Language           Language   `json:"language"`
	SourceID           string     `json:"sourceId"`    // Article or song the word was extracted from
	SourceTitle        string     `json:"sourceTitle"` // Free-form, not validated
	Mastered           bool       `json:"mastered"`
	ReviewCount        int        `json:"reviewCount"`
	LastReviewed       *time.Time `json:"lastReviewed,omitempty"`
	NextReview         *time.Time `json:"nextReview,omitempty"` // nil means always due
	CreatedAt          time.Time  `json:"createdAt"`
}

// CreateVocabularyRequest represents a request to save a new vocabulary item
type CreateVocabularyRequest struct {
	OriginalWord       string   `json:"originalWord"`
	TranslatedWord     string   `json:"translatedWord"`
	OriginalSentence   string   `json:"originalSentence"`
	TranslatedSentence string   `json:"translatedSentence"`
	Language           Language `json:"language"`
	SourceID           string   `json:"sourceId"`
	SourceTitle        string   `json:"sourceTitle"`
}

// VocabularyUpdate represents a partial update of a vocabulary item
// Only non-nil fields are written
type VocabularyUpdate struct {
	OriginalWord       *string `json:"originalWord,omitempty"`
	TranslatedWord     *string `json:"translatedWord,omitempty"`
	OriginalSentence   *string `json:"originalSentence,omitempty"`
	TranslatedSentence *string `json:"translatedSentence,omitempty"`
	SourceID           *string `json:"sourceId,omitempty"`
	SourceTitle        *string `json:"sourceTitle,omitempty"`
	Mastered           *bool   `json:"mastered,omitempty"`
}

// IsEmpty reports whether the update carries no fields
func (u VocabularyUpdate) IsEmpty() bool {
	return u.OriginalWord == nil &&
		u.TranslatedWord == nil &&
		u.OriginalSentence == nil &&
		u.TranslatedSentence == nil &&
		u.SourceID == nil &&
		u.SourceTitle == nil &&
		u.Mastered == nil
}

// ReviewAnswerRequest represents the outcome of one answered flashcard
type ReviewAnswerRequest struct {
	Correct *bool `json:"correct"`
}
