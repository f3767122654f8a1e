package domain

import "time"

// Deck is a named collection of flashcards
type Deck struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   *int64    `json:"ownerId,omitempty"`
	CardCount int       `json:"cardCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewDeck is the payload for creating a deck
type NewDeck struct {
	Name    string `json:"name" validate:"required,max=100"`
	OwnerID *int64 `json:"ownerId,omitempty"`
}
