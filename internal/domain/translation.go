package domain

import "time"

// MaxTextLength is the longest word or phrase accepted for translation
const MaxTextLength = 500

// TranslationRequest is the form a learner fills in to create a translation flashcard
type TranslationRequest struct {
	Text       string `json:"text" validate:"required,max=500"`
	SourceLang string `json:"sourceLang" validate:"required"`
	TargetLang string `json:"targetLang" validate:"required"`
}

// Translation is the result of translating a TranslationRequest
type Translation struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// CachedTranslation is a stored provider result
type CachedTranslation struct {
	SourceLang string
	TargetLang string
	SourceText string
	TargetText string
	CreatedAt  time.Time
}
