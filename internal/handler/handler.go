package handler

import (
	"sync"

	"lingodeck/internal/dialog"
	"lingodeck/internal/domain"
	"lingodeck/internal/middleware"
	"lingodeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	translations *service.TranslationService
	flashcards   *service.FlashcardService
	decks        *service.DeckService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// One dialog per user so a double tap cannot submit the same card twice
	dialogs   map[int64]*dialog.Dialog
	dialogMux sync.Mutex

	// Serializes callbacks of one user
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	translations *service.TranslationService,
	flashcards *service.FlashcardService,
	decks *service.DeckService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		authService:   authService,
		translations:  translations,
		flashcards:    flashcards,
		decks:         decks,
		logger:        logger,
		states:        make(map[int64]*domain.StateData),
		dialogs:       make(map[int64]*dialog.Dialog),
		callbackLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Every inline button goes through one router; unauthorized users are stopped first
	h.bot.Handle(tele.OnCallback, h.handleCallback, middleware.AuthMiddleware(h.authService, h.logger))
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// lockUser serializes work for one user and returns the unlock func
func (h *Handler) lockUser(userID int64) func() {
	h.callbackMux.Lock()
	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	h.callbackMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Inline keyboard buttons
var (
	btnCreateCard = tele.Btn{
		Unique: "create_card",
		Text:   "➕ Create translation flashcard",
	}
	btnMyDecks = tele.Btn{
		Unique: "my_decks",
		Text:   "📚 My decks",
	}
	btnRandomCard = tele.Btn{
		Unique: "random_card",
		Text:   "🎲 Random card",
	}
	btnShowAnswer = tele.Btn{
		Unique: "show_answer",
		Text:   "👀 Show answer",
	}
	btnNewDeck = tele.Btn{
		Unique: "new_deck",
		Text:   "🆕 New deck",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

const (
	mainMenuText   = "🏠 Main menu\n\nChoose an action:"
	genericError   = "Something went wrong. Please try again later."
	passwordPrompt = "Hi! This bot is private. Enter the password to continue:"
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnCreateCard),
		menu.Row(btnMyDecks),
		menu.Row(btnRandomCard),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
