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

// FlashcardPageSize is the number of cards per page when listing a deck
const FlashcardPageSize = 20

// FlashcardService handles flashcard business logic
type FlashcardService struct {
	cardRepo repository.FlashcardRepository
	newID    func() (string, error)
	logger   *zap.Logger
}

// NewFlashcardService creates a new flashcard service
func NewFlashcardService(cardRepo repository.FlashcardRepository, logger *zap.Logger) *FlashcardService {
	return &FlashcardService{
		cardRepo: cardRepo,
		newID:    func() (string, error) { return gonanoid.New() },
		logger:   logger,
	}
}

// CreateFlashcard stores a new card in an existing deck
func (s *FlashcardService) CreateFlashcard(ctx context.Context, card domain.NewFlashcard) (*domain.Flashcard, error) {
	card.DeckID = strings.TrimSpace(card.DeckID)
	card.Front = strings.TrimSpace(card.Front)
	card.Back = strings.TrimSpace(card.Back)

	if err := validation.Struct(card); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate flashcard id: %w", err)
	}

	created, err := s.cardRepo.CreateFlashcard(ctx, id, card)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}

	s.logger.Info("Flashcard created",
		zap.String("flashcard_id", created.ID),
		zap.String("deck_id", created.DeckID),
	)

	return created, nil
}

// ListFlashcards returns one page of a deck's cards and the total page count
func (s *FlashcardService) ListFlashcards(ctx context.Context, deckID string, page int) ([]domain.Flashcard, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * FlashcardPageSize
	cards, err := s.cardRepo.ListFlashcards(ctx, deckID, FlashcardPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.cardRepo.CountFlashcards(ctx, deckID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + FlashcardPageSize - 1) / FlashcardPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return cards, totalPages, nil
}

// GetRandomCard returns a random card of the deck, or nil for an empty deck
func (s *FlashcardService) GetRandomCard(ctx context.Context, deckID string) (*domain.Flashcard, error) {
	return s.cardRepo.GetRandomFlashcard(ctx, deckID)
}

// DeleteFlashcard removes a card
func (s *FlashcardService) DeleteFlashcard(ctx context.Context, id string) error {
	err := s.cardRepo.DeleteFlashcard(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFlashcardNotFound
	}
	return err
}
