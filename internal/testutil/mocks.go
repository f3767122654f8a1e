package testutil

import (
	"context"

	"lingodeck/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) GetActiveDeck(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) SetActiveDeck(userID int64, deckID string) error {
	args := m.Called(userID, deckID)
	return args.Error(0)
}

// MockDeckRepository is a mock for DeckRepository
type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) CreateDeck(ctx context.Context, publicID string, deck domain.NewDeck) (*domain.Deck, error) {
	args := m.Called(ctx, publicID, deck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) GetDeck(ctx context.Context, publicID string) (*domain.Deck, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) ListDecks(ctx context.Context, ownerID *int64) ([]domain.Deck, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) DeleteDeck(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

// MockFlashcardRepository is a mock for FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) CreateFlashcard(ctx context.Context, publicID string, card domain.NewFlashcard) (*domain.Flashcard, error) {
	args := m.Called(ctx, publicID, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) ListFlashcards(ctx context.Context, deckID string, limit, offset int) ([]domain.Flashcard, error) {
	args := m.Called(ctx, deckID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) CountFlashcards(ctx context.Context, deckID string) (int, error) {
	args := m.Called(ctx, deckID)
	return args.Int(0), args.Error(1)
}

func (m *MockFlashcardRepository) GetRandomFlashcard(ctx context.Context, deckID string) (*domain.Flashcard, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) DeleteFlashcard(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

// MockTranslationCache is a mock for TranslationCache
type MockTranslationCache struct {
	mock.Mock
}

func (m *MockTranslationCache) GetTranslation(ctx context.Context, sourceLang, targetLang, text string) (*domain.CachedTranslation, error) {
	args := m.Called(ctx, sourceLang, targetLang, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedTranslation), args.Error(1)
}

func (m *MockTranslationCache) SaveTranslation(ctx context.Context, t domain.CachedTranslation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTranslationCache) CleanOldTranslations(days int) (int64, error) {
	args := m.Called(days)
	return args.Get(0).(int64), args.Error(1)
}

// MockTranslator is a mock for translator.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.Translation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

// MockCardCreator is a mock for the flashcard creation step of a submission
type MockCardCreator struct {
	mock.Mock
}

func (m *MockCardCreator) CreateFlashcard(ctx context.Context, card domain.NewFlashcard) (*domain.Flashcard, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flashcard), args.Error(1)
}
