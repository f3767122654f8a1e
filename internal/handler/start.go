package handler

import (
	"lingodeck/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.authService.Admit(userID)
	if err != nil {
		h.logger.Error("Failed to admit user", zap.Error(err))
		return c.Send(genericError)
	}

	if !authorized {
		// Request password
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingPassword})
		return c.Send(passwordPrompt)
	}

	// Show main menu
	h.ResetState(userID)
	return c.Send(mainMenuText, mainMenuMarkup())
}

// handlePassword checks a password sent by a user who is not authorized yet
func (h *Handler) handlePassword(c tele.Context, password string) error {
	userID := c.Sender().ID

	ok, err := h.authService.Login(userID, password)
	if err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(genericError)
	}
	if !ok {
		return c.Send("Wrong password")
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("✅ Access granted!\n\n"+mainMenuText, mainMenuMarkup())
}
