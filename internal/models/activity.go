package models

import (
	"slices"
	"time"
)

// ActionKind categorizes the action performed by a learner
type ActionKind string

const (
	ActionReadArticle           ActionKind = "read_article"
	ActionCompletedFlashcard    ActionKind = "completed_flashcard"
	ActionSavedWord             ActionKind = "saved_word"
	ActionViewedProgress        ActionKind = "viewed_progress"
	ActionChangedTargetLanguage ActionKind = "changed_target_language"
	ActionStartedArticle        ActionKind = "started_article"
	ActionTranslatedArticle     ActionKind = "translated_article"
	ActionExtractedVocabulary   ActionKind = "extracted_vocabulary"
	ActionUsedAIChat            ActionKind = "used_ai_chat"
	ActionSavedFlashcardSet     ActionKind = "saved_flashcard_set"
	ActionCompletedLesson       ActionKind = "completed_lesson"
	ActionUpdatedProfile        ActionKind = "updated_profile"
)

var actionKinds = []ActionKind{
	ActionReadArticle, ActionCompletedFlashcard, ActionSavedWord, ActionViewedProgress,
	ActionChangedTargetLanguage, ActionStartedArticle, ActionTranslatedArticle,
	ActionExtractedVocabulary, ActionUsedAIChat, ActionSavedFlashcardSet,
	ActionCompletedLesson, ActionUpdatedProfile,
}

// IsValid reports whether the action kind is known
func (k ActionKind) IsValid() bool {
	return slices.Contains(actionKinds, k)
}

// IsIdempotent reports whether repeated actions on the same target collapse into one record
func (k ActionKind) IsIdempotent() bool {
	return k == ActionReadArticle || k == ActionSavedWord || k == ActionSavedFlashcardSet
}

// TargetKind specifies what the action was performed on
type TargetKind string

const (
	TargetArticle      TargetKind = "article"
	TargetFlashcardSet TargetKind = "flashcard_set"
	TargetWord         TargetKind = "word"
	TargetSetting      TargetKind = "setting"
	TargetProfile      TargetKind = "profile"
	TargetVocabulary   TargetKind = "vocabulary"
	TargetTranslation  TargetKind = "translation"
	TargetAIChat       TargetKind = "ai_chat"
)

var targetKinds = []TargetKind{
	TargetArticle, TargetFlashcardSet, TargetWord, TargetSetting,
	TargetProfile, TargetVocabulary, TargetTranslation, TargetAIChat,
}

// IsValid reports whether the target kind is known
func (k TargetKind) IsValid() bool {
	return slices.Contains(targetKinds, k)
}

// ActivityRecord is an immutable log entry of one learner action
type ActivityRecord struct {
	ID         int64          `json:"id"`
	LearnerID  int            `json:"learnerId"`
	ActionKind ActionKind     `json:"actionKind"`
	TargetKind TargetKind     `json:"targetKind"`
	TargetID   string         `json:"targetId,omitempty"` // Empty when the action has no target
	Language   Language       `json:"language,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// RecordActivityRequest represents a request to log an action
type RecordActivityRequest struct {
	ActionKind ActionKind     `json:"actionKind"`
	TargetKind TargetKind     `json:"targetKind"`
	TargetID   string         `json:"targetId"`
	Language   Language       `json:"language"`
	Metadata   map[string]any `json:"metadata"`
}

// ActivityHistory is the structured view over a learner's activity log
type ActivityHistory struct {
	ReadArticles          []string       `json:"readArticles"`
	CompletedFlashcards   []string       `json:"completedFlashcards"`
	SavedWords            []string       `json:"savedWords"`
	Translations          []string       `json:"translations"`
	VocabularyExtractions []string       `json:"vocabularyExtractions"`
	AIChatSessions        []string       `json:"aiChatSessions"`
	Settings              map[string]any `json:"settings"`
	LastActivity          *time.Time     `json:"lastActivity"`
	TotalActions          int            `json:"totalActions"`
}
