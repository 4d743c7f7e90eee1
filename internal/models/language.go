package models

// Language represents a target language a learner studies
// Used for scoping vocabulary items and progress records
type Language string

const (
	LanguageItalian    Language = "italian"
	LanguageFrench     Language = "french"
	LanguageGerman     Language = "german"
	LanguageSpanish    Language = "spanish"
	LanguagePortuguese Language = "portuguese"
	LanguageRussian    Language = "russian"
	LanguageJapanese   Language = "japanese"
	LanguageChinese    Language = "chinese"
	LanguageKorean     Language = "korean"
)

// DefaultLanguage is used when a learner has not selected a language yet
const DefaultLanguage = LanguageItalian

// LanguageInfo describes a supported language in API responses
type LanguageInfo struct {
	ID   Language `json:"id"`
	Code string   `json:"code"` // ISO 639-1 code, used for speech synthesis on the client
	Name string   `json:"name"`
}

var supportedLanguages = []LanguageInfo{
	{ID: LanguageItalian, Code: "it", Name: "Italian"},
	{ID: LanguageFrench, Code: "fr", Name: "French"},
	{ID: LanguageGerman, Code: "de", Name: "German"},
	{ID: LanguageSpanish, Code: "es", Name: "Spanish"},
	{ID: LanguagePortuguese, Code: "pt", Name: "Portuguese"},
	{ID: LanguageRussian, Code: "ru", Name: "Russian"},
	{ID: LanguageJapanese, Code: "ja", Name: "Japanese"},
	{ID: LanguageChinese, Code: "zh", Name: "Chinese"},
	{ID: LanguageKorean, Code: "ko", Name: "Korean"},
}

// SupportedLanguages returns a copy of the supported languages list
func SupportedLanguages() []LanguageInfo {
	out := make([]LanguageInfo, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// IsValid reports whether the language is one of the supported languages
func (l Language) IsValid() bool {
	for _, info := range supportedLanguages {
		if info.ID == l {
			return true
		}
	}
	return false
}

// Code returns the ISO code of the language or an empty string for unknown languages
func (l Language) Code() string {
	for _, info := range supportedLanguages {
		if info.ID == l {
			return info.Code
		}
	}
	return ""
}

// Name returns the display name of the language or the raw id for unknown languages
func (l Language) Name() string {
	for _, info := range supportedLanguages {
		if info.ID == l {
			return info.Name
		}
	}
	return string(l)
}
