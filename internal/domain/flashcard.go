package domain

import "time"

// MaxCardSideLength limits the front and back of a flashcard
const MaxCardSideLength = 1000

// Flashcard represents a front/back pair stored in a deck
type Flashcard struct {
	ID        string    `json:"id"`
	DeckID    string    `json:"deckId"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFlashcard is the payload for creating a flashcard
type NewFlashcard struct {
	DeckID string `json:"deckId" validate:"required"`
	Front  string `json:"front" validate:"required,max=1000"`
	Back   string `json:"back" validate:"required,max=1000"`
}
