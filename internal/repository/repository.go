package repository

import (
	"context"
	"errors"

	"lingodeck/internal/domain"
)

// ErrNotFound is returned when a looked up record does not exist
var ErrNotFound = errors.New("record not found")

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	GetActiveDeck(userID int64) (string, error)
	SetActiveDeck(userID int64, deckID string) error
}

// DeckRepository defines deck data operations
type DeckRepository interface {
	CreateDeck(ctx context.Context, publicID string, deck domain.NewDeck) (*domain.Deck, error)
	GetDeck(ctx context.Context, publicID string) (*domain.Deck, error)
	ListDecks(ctx context.Context, ownerID *int64) ([]domain.Deck, error)
	DeleteDeck(ctx context.Context, publicID string) error
}

// FlashcardRepository defines flashcard data operations
type FlashcardRepository interface {
	CreateFlashcard(ctx context.Context, publicID string, card domain.NewFlashcard) (*domain.Flashcard, error)
	ListFlashcards(ctx context.Context, deckID string, limit, offset int) ([]domain.Flashcard, error)
	CountFlashcards(ctx context.Context, deckID string) (int, error)
	GetRandomFlashcard(ctx context.Context, deckID string) (*domain.Flashcard, error)
	DeleteFlashcard(ctx context.Context, publicID string) error
}

// TranslationCache stores provider translations
type TranslationCache interface {
	GetTranslation(ctx context.Context, sourceLang, targetLang, text string) (*domain.CachedTranslation, error)
	SaveTranslation(ctx context.Context, t domain.CachedTranslation) error
	CleanOldTranslations(days int) (int64, error)
}
