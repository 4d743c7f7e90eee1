package models

// LearnerSettings holds per-learner preferences
type LearnerSettings struct {
	LearnerID        int      `json:"learnerId"`
	SelectedLanguage Language `json:"selectedLanguage"`
	Email            string   `json:"email"`
	RemindersEnabled bool     `json:"remindersEnabled"`
}

// UpdateSettingsRequest represents a partial update of learner settings
type UpdateSettingsRequest struct {
	SelectedLanguage *Language `json:"selectedLanguage,omitempty"`
	Email            *string   `json:"email,omitempty"`
	RemindersEnabled *bool     `json:"remindersEnabled,omitempty"`
}
