package postgres

import (
	"context"
	"database/sql"

	"lingodeck/internal/domain"
	"lingodeck/internal/repository"
)

// DeckRepo implements repository.DeckRepository
type DeckRepo struct {
	db *sql.DB
}

// NewDeckRepo creates a new deck repository
func NewDeckRepo(db *sql.DB) *DeckRepo {
	return &DeckRepo{db: db}
}

// CreateDeck inserts a deck under the given public id
func (r *DeckRepo) CreateDeck(ctx context.Context, publicID string, deck domain.NewDeck) (*domain.Deck, error) {
	query := `
		INSERT INTO decks (public_id, name, owner_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	created := &domain.Deck{
		ID:      publicID,
		Name:    deck.Name,
		OwnerID: deck.OwnerID,
	}
	err := r.db.QueryRowContext(ctx, query, publicID, deck.Name, deck.OwnerID).Scan(&created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetDeck returns a deck with its card count
func (r *DeckRepo) GetDeck(ctx context.Context, publicID string) (*domain.Deck, error) {
	query := `
		SELECT d.public_id, d.name, d.owner_id, d.created_at, COUNT(f.id)
		FROM decks d
		LEFT JOIN flashcards f ON f.deck_id = d.id
		WHERE d.public_id = $1
		GROUP BY d.id
	`
	deck, err := scanDeck(r.db.QueryRowContext(ctx, query, publicID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return deck, nil
}

// ListDecks returns decks newest first, limited to one owner when ownerID is set
func (r *DeckRepo) ListDecks(ctx context.Context, ownerID *int64) ([]domain.Deck, error) {
	query := `
		SELECT d.public_id, d.name, d.owner_id, d.created_at, COUNT(f.id)
		FROM decks d
		LEFT JOIN flashcards f ON f.deck_id = d.id
		WHERE ($1::BIGINT IS NULL OR d.owner_id = $1)
		GROUP BY d.id
		ORDER BY d.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decks := []domain.Deck{}
	for rows.Next() {
		deck, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, *deck)
	}

	return decks, rows.Err()
}

// DeleteDeck removes a deck together with its flashcards
func (r *DeckRepo) DeleteDeck(ctx context.Context, publicID string) error {
	query := `DELETE FROM decks WHERE public_id = $1`
	res, err := r.db.ExecContext(ctx, query, publicID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeck(row rowScanner) (*domain.Deck, error) {
	var d domain.Deck
	var ownerID sql.NullInt64
	if err := row.Scan(&d.ID, &d.Name, &ownerID, &d.CreatedAt, &d.CardCount); err != nil {
		return nil, err
	}
	if ownerID.Valid {
		d.OwnerID = &ownerID.Int64
	}
	return &d, nil
}

// expectAffected turns a no-op delete into repository.ErrNotFound
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
