package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"lingodeck/internal/domain"
	"lingodeck/internal/validation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.authService.Admit(userID)
	if err != nil {
		h.logger.Error("Failed to admit user", zap.Error(err))
		return c.Send(genericError)
	}

	// If not authorized, treat the message as a password attempt
	if !authorized {
		return h.handlePassword(c, text)
	}

	defer h.lockUser(userID)()

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingDeckName:
		return h.createDeck(c, text)

	default:
		// Idle or waiting for text: the message is the word to translate
		return h.acceptText(c, text)
	}
}

// acceptText stores the text of a new card and asks for the source language
func (h *Handler) acceptText(c tele.Context, text string) error {
	userID := c.Sender().ID

	if msg := checkText(text); msg != "" {
		return c.Send(msg, cancelMarkup())
	}

	deck, err := h.decks.ActiveDeck(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to load active deck", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(genericError)
	}
	if deck == nil {
		h.ResetState(userID)
		return c.Send("Create or choose a deck first.", decksShortcutMarkup())
	}

	h.SetState(userID, &domain.StateData{
		State: domain.StateChoosingSource,
		Text:  text,
	})

	return c.Send(
		fmt.Sprintf("📝 %s\n\nWhich language is this?", text),
		languageMarkup(callbackSource, ""),
	)
}

// checkText returns a message for the learner when text cannot be translated
func checkText(text string) string {
	switch {
	case text == "":
		return "Send the word or phrase you want to translate."
	case utf8.RuneCountInString(text) > domain.MaxTextLength:
		return fmt.Sprintf("That is too long. Use at most %d characters.", domain.MaxTextLength)
	}
	return ""
}

// createDeck creates a deck owned by the user and makes it active
func (h *Handler) createDeck(c tele.Context, name string) error {
	userID := c.Sender().ID
	ctx := context.Background()

	deck, err := h.decks.CreateDeck(ctx, domain.NewDeck{Name: name, OwnerID: &userID})
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return c.Send("A deck name needs 1 to 100 characters. Try another name:", cancelMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to create deck", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(genericError)
	}

	if _, err := h.decks.SelectDeck(ctx, userID, deck.ID); err != nil {
		h.logger.Error("Failed to select new deck", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(genericError)
	}

	h.ResetState(userID)
	return c.Send(
		fmt.Sprintf("✅ Deck «%s» created. New cards will go there.\n\n%s", deck.Name, mainMenuText),
		mainMenuMarkup(),
	)
}
