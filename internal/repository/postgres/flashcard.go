package postgres

import (
	"context"
	"database/sql"

	"lingodeck/internal/domain"
	"lingodeck/internal/repository"
)

// FlashcardRepo implements repository.FlashcardRepository
type FlashcardRepo struct {
	db *sql.DB
}

// NewFlashcardRepo creates a new flashcard repository
func NewFlashcardRepo(db *sql.DB) *FlashcardRepo {
	return &FlashcardRepo{db: db}
}

// CreateFlashcard inserts a card into the deck with public id card.DeckID.
// Returns repository.ErrNotFound if the deck does not exist.
func (r *FlashcardRepo) CreateFlashcard(ctx context.Context, publicID string, card domain.NewFlashcard) (*domain.Flashcard, error) {
	query := `
		INSERT INTO flashcards (public_id, deck_id, front, back)
		SELECT $1, d.id, $3, $4
		FROM decks d
		WHERE d.public_id = $2
		RETURNING created_at
	`
	created := &domain.Flashcard{
		ID:     publicID,
		DeckID: card.DeckID,
		Front:  card.Front,
		Back:   card.Back,
	}
	err := r.db.QueryRowContext(ctx, query, publicID, card.DeckID, card.Front, card.Back).Scan(&created.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListFlashcards returns a page of a deck's cards, newest first
func (r *FlashcardRepo) ListFlashcards(ctx context.Context, deckID string, limit, offset int) ([]domain.Flashcard, error) {
	query := `
		SELECT f.public_id, d.public_id, f.front, f.back, f.created_at
		FROM flashcards f
		JOIN decks d ON d.id = f.deck_id
		WHERE d.public_id = $1
		ORDER BY f.created_at DESC, f.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, deckID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []domain.Flashcard{}
	for rows.Next() {
		var c domain.Flashcard
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &c.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

// CountFlashcards returns the number of cards in a deck
func (r *FlashcardRepo) CountFlashcards(ctx context.Context, deckID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM flashcards f
		JOIN decks d ON d.id = f.deck_id
		WHERE d.public_id = $1
	`
	var count int
	err := r.db.QueryRowContext(ctx, query, deckID).Scan(&count)
	return count, err
}

// GetRandomFlashcard returns a random card of the deck, or nil if the deck is empty
func (r *FlashcardRepo) GetRandomFlashcard(ctx context.Context, deckID string) (*domain.Flashcard, error) {
	query := `
		SELECT f.public_id, d.public_id, f.front, f.back, f.created_at
		FROM flashcards f
		JOIN decks d ON d.id = f.deck_id
		WHERE d.public_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`
	var c domain.Flashcard
	err := r.db.QueryRowContext(ctx, query, deckID).Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// DeleteFlashcard removes a card by public id
func (r *FlashcardRepo) DeleteFlashcard(ctx context.Context, publicID string) error {
	query := `DELETE FROM flashcards WHERE public_id = $1`
	res, err := r.db.ExecContext(ctx, query, publicID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}
