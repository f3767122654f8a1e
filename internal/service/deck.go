package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lingodeck/internal/domain"
	"lingodeck/internal/repository"
	"lingodeck/internal/validation"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

// DeckService handles deck business logic
type DeckService struct {
	deckRepo repository.DeckRepository
	userRepo repository.UserRepository
	newID    func() (string, error)
	logger   *zap.Logger
}

// NewDeckService creates a new deck service
func NewDeckService(deckRepo repository.DeckRepository, userRepo repository.UserRepository, logger *zap.Logger) *DeckService {
	return &DeckService{
		deckRepo: deckRepo,
		userRepo: userRepo,
		newID:    func() (string, error) { return gonanoid.New() },
		logger:   logger,
	}
}

// CreateDeck creates a named deck
func (s *DeckService) CreateDeck(ctx context.Context, deck domain.NewDeck) (*domain.Deck, error) {
	deck.Name = strings.TrimSpace(deck.Name)
	if err := validation.Struct(deck); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate deck id: %w", err)
	}

	created, err := s.deckRepo.CreateDeck(ctx, id, deck)
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}

	s.logger.Info("Deck created", zap.String("deck_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// GetDeck returns a deck by id
func (s *DeckService) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	deck, err := s.deckRepo.GetDeck(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDeckNotFound
	}
	return deck, err
}

// ListDecks returns all decks, or only the owner's when ownerID is set
func (s *DeckService) ListDecks(ctx context.Context, ownerID *int64) ([]domain.Deck, error) {
	return s.deckRepo.ListDecks(ctx, ownerID)
}

// DeleteDeck removes a deck and its cards
func (s *DeckService) DeleteDeck(ctx context.Context, id string) error {
	err := s.deckRepo.DeleteDeck(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDeckNotFound
	}
	if err != nil {
		return err
	}

	s.logger.Info("Deck deleted", zap.String("deck_id", id))
	return nil
}

// ActiveDeck returns the deck a bot user adds cards to, or nil if none is selected
func (s *DeckService) ActiveDeck(ctx context.Context, userID int64) (*domain.Deck, error) {
	deckID, err := s.userRepo.GetActiveDeck(userID)
	if err != nil {
		return nil, err
	}
	if deckID == "" {
		return nil, nil
	}

	deck, err := s.GetDeck(ctx, deckID)
	if errors.Is(err, ErrDeckNotFound) {
		return nil, nil
	}
	return deck, err
}

// SelectDeck makes one of the user's decks the active one
func (s *DeckService) SelectDeck(ctx context.Context, userID int64, deckID string) (*domain.Deck, error) {
	deck, err := s.GetDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck.OwnerID == nil || *deck.OwnerID != userID {
		return nil, ErrDeckNotOwned
	}

	if err := s.userRepo.SetActiveDeck(userID, deck.ID); err != nil {
		return nil, err
	}
	return deck, nil
}
