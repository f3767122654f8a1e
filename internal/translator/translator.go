// Package translator turns a word or phrase into its translation using a
// remote machine translation provider.
package translator

import (
	"context"
	"errors"

	"lingodeck/internal/domain"
)

var (
	// ErrUnsupportedLanguage is returned for language codes outside the catalogue
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrEmptyTranslation is returned when the provider answers without text
	ErrEmptyTranslation = errors.New("provider returned an empty translation")
)

// Translator translates text between two languages
type Translator interface {
	Translate(ctx context.Context, req domain.TranslationRequest) (*domain.Translation, error)
}

// ProviderError carries a non-2xx provider response
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "translation provider failed"
}
