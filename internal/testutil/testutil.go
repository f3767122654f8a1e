package testutil

import (
	"time"

	"lingodeck/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDeck creates a test deck
func NewTestDeck(id, name string, cardCount int) *domain.Deck {
	return &domain.Deck{
		ID:        id,
		Name:      name,
		CardCount: cardCount,
		CreatedAt: time.Now(),
	}
}

// NewTestFlashcard creates a test flashcard
func NewTestFlashcard(id, deckID, front, back string) *domain.Flashcard {
	return &domain.Flashcard{
		ID:        id,
		DeckID:    deckID,
		Front:     front,
		Back:      back,
		CreatedAt: time.Now(),
	}
}
