package service

import "errors"

var (
	// ErrDeckNotFound is returned when a deck id does not match any deck
	ErrDeckNotFound = errors.New("deck not found")
	// ErrFlashcardNotFound is returned when a flashcard id does not match any card
	ErrFlashcardNotFound = errors.New("flashcard not found")
	// ErrDeckNotOwned is returned when a bot user selects someone else's deck
	ErrDeckNotOwned = errors.New("deck belongs to another user")
)
