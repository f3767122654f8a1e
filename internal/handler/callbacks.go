package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"lingodeck/internal/dialog"
	"lingodeck/internal/domain"
	"lingodeck/internal/service"
	"lingodeck/internal/validation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// submitTimeout bounds translation plus card creation
const submitTimeout = 30 * time.Second

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseCallback returns the button unique and payload. Telebot fills Unique
// for "\funique|payload" data; raw data without a unique is split here.
func parseCallback(cb *tele.Callback) (string, string) {
	if cb.Unique != "" {
		return cb.Unique, cleanCallbackData(cb.Data)
	}
	data := cleanCallbackData(cb.Data)
	unique, payload, _ := strings.Cut(data, "|")
	return unique, payload
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the callback message, falling back to a new message
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	userID := c.Sender().ID
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, data := parseCallback(callback)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("unique", unique),
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	defer h.lockUser(c.Sender().ID)()

	switch unique {
	case btnCreateCard.Unique:
		return h.handleCreateCard(c)
	case btnMyDecks.Unique:
		return h.handleMyDecks(c)
	case btnRandomCard.Unique:
		return h.handleRandomCard(c)
	case btnShowAnswer.Unique:
		return h.handleShowAnswer(c)
	case btnNewDeck.Unique:
		return h.handleNewDeck(c)
	case btnCancel.Unique, btnMainMenu.Unique:
		return h.handleCancel(c)
	case callbackSource:
		return h.handleSourceLang(c, data)
	case callbackTarget:
		return h.handleTargetLang(c, data)
	case callbackDeck:
		return h.handleDeckSelection(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("unique", unique),
		zap.String("data", data),
	)
	return c.Respond()
}

// handleCreateCard opens the translation flashcard flow
func (h *Handler) handleCreateCard(c tele.Context) error {
	userID := c.Sender().ID

	deck, err := h.decks.ActiveDeck(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to load active deck", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: genericError})
	}
	if deck == nil {
		return h.show(c, "You have no active deck yet. Create or choose one first.", decksShortcutMarkup())
	}

	h.dialogFor(userID, deck.ID).SetOpen(true)
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingText})

	return h.show(c,
		fmt.Sprintf("📚 Deck: %s\n\nSend the word or phrase to translate (up to %d characters).", deck.Name, domain.MaxTextLength),
		cancelMarkup(),
	)
}

// handleSourceLang stores the source language and asks for the target
func (h *Handler) handleSourceLang(c tele.Context, code string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateChoosingSource || !domain.IsSupportedLanguage(code) {
		return c.Respond(&tele.CallbackResponse{Text: "This choice has expired"})
	}

	h.SetState(userID, &domain.StateData{
		State:      domain.StateChoosingTarget,
		Text:       state.Text,
		SourceLang: code,
	})

	sourceName, _ := domain.LanguageName(code)
	return h.show(c,
		fmt.Sprintf("📝 %s (%s)\n\nTranslate into which language?", state.Text, sourceName),
		languageMarkup(callbackTarget, code),
	)
}

// handleTargetLang submits the form through the user's dialog
func (h *Handler) handleTargetLang(c tele.Context, code string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StateChoosingTarget || !domain.IsSupportedLanguage(code) {
		return c.Respond(&tele.CallbackResponse{Text: "This choice has expired"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	deck, err := h.decks.ActiveDeck(ctx, userID)
	if err != nil || deck == nil {
		if err != nil {
			h.logger.Error("Failed to load active deck", zap.Error(err))
		}
		h.ResetState(userID)
		return h.show(c, "Your active deck is gone. Choose another one.", decksShortcutMarkup())
	}

	if err := c.Respond(&tele.CallbackResponse{Text: "Translating..."}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	d := h.dialogFor(userID, deck.ID)
	card, err := d.Submit(ctx, domain.TranslationRequest{
		Text:       state.Text,
		SourceLang: state.SourceLang,
		TargetLang: code,
	})

	var vErr *validation.Error
	switch {
	case errors.Is(err, dialog.ErrBusy):
		return c.Send("Still working on your previous card...")
	case errors.As(err, &vErr):
		h.ResetState(userID)
		return c.Send("⚠️ "+vErr.Error(), mainMenuMarkup())
	case err != nil:
		// The dialog already told the user what failed
		h.ResetState(userID)
		return c.Send(mainMenuText, mainMenuMarkup())
	}

	h.logger.Info("Flashcard created from bot",
		zap.Int64("user_id", userID),
		zap.String("flashcard_id", card.ID),
		zap.String("deck_id", card.DeckID),
	)

	// Ready for the next word in the same deck
	d.SetOpen(true)
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingText})

	return c.Send(
		fmt.Sprintf("📝 %s\n🔄 %s\n\nSend the next word or go back to the menu.", card.Front, card.Back),
		cancelMarkup(),
	)
}

// handleMyDecks lists the user's decks
func (h *Handler) handleMyDecks(c tele.Context) error {
	userID := c.Sender().ID
	ctx := context.Background()

	decks, err := h.decks.ListDecks(ctx, &userID)
	if err != nil {
		h.logger.Error("Failed to list decks", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load decks"})
	}

	var activeID string
	if active, err := h.decks.ActiveDeck(ctx, userID); err == nil && active != nil {
		activeID = active.ID
	}

	text := "📚 Your decks:\n\nTap a deck to add new cards to it."
	if len(decks) == 0 {
		text = "📚 You have no decks yet. Create one to start adding cards."
	}
	return h.show(c, text, decksMarkup(decks, activeID))
}

// handleNewDeck asks for the name of a new deck
func (h *Handler) handleNewDeck(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingDeckName})
	return h.show(c, "Send a name for the new deck:", cancelMarkup())
}

// handleDeckSelection makes the chosen deck active
func (h *Handler) handleDeckSelection(c tele.Context, deckID string) error {
	userID := c.Sender().ID

	deck, err := h.decks.SelectDeck(context.Background(), userID, deckID)
	switch {
	case errors.Is(err, service.ErrDeckNotFound), errors.Is(err, service.ErrDeckNotOwned):
		return c.Respond(&tele.CallbackResponse{Text: "Deck not found", ShowAlert: true})
	case err != nil:
		h.logger.Error("Failed to select deck", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: genericError})
	}

	h.ResetState(userID)
	return h.show(c,
		fmt.Sprintf("✅ New cards go to «%s» now.\n\n%s", deck.Name, mainMenuText),
		mainMenuMarkup(),
	)
}

// handleRandomCard shows the front of a random card of the active deck
func (h *Handler) handleRandomCard(c tele.Context) error {
	userID := c.Sender().ID
	ctx := context.Background()

	deck, err := h.decks.ActiveDeck(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load active deck", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: genericError})
	}
	if deck == nil {
		return h.show(c, "Choose a deck first.", decksShortcutMarkup())
	}

	card, err := h.flashcards.GetRandomCard(ctx, deck.ID)
	if err != nil {
		h.logger.Error("Failed to get random card", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load a card"})
	}
	if card == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "This deck has no cards yet",
			ShowAlert: true,
		})
	}

	h.SetState(userID, &domain.StateData{State: domain.StateIdle, Card: card})

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnShowAnswer),
		markup.Row(btnRandomCard),
		markup.Row(btnMainMenu),
	)
	return h.show(c, cardText(card, false), markup)
}

// handleShowAnswer reveals the back of the last random card
func (h *Handler) handleShowAnswer(c tele.Context) error {
	state := h.GetState(c.Sender().ID)
	if state.Card == nil {
		return c.Respond(&tele.CallbackResponse{Text: "This card has expired"})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnRandomCard),
		markup.Row(btnMainMenu),
	)
	return h.show(c, cardText(state.Card, true), markup)
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	h.dialogMux.Lock()
	if d, ok := h.dialogs[userID]; ok {
		d.SetOpen(false)
	}
	h.dialogMux.Unlock()

	return h.show(c, mainMenuText, mainMenuMarkup())
}
