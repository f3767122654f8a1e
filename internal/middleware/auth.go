package middleware

import (
	"lingodeck/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	errorText      = "Something went wrong. Please try again later."
	passwordPrompt = "Hi! This bot is private. Enter the password to continue:"
)

// Admitter reports whether a bot user passed the password gate
type Admitter interface {
	Admit(userID int64) (bool, error)
}

var _ Admitter = (*service.AuthService)(nil)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(auth Admitter, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := auth.Admit(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(errorText)
			}

			// If not authorized and not /start command, prompt for password
			if !authorized && c.Text() != "/start" {
				if c.Callback() != nil {
					c.Respond()
				}
				return c.Send(passwordPrompt)
			}

			// User is authorized or using /start, continue
			return next(c)
		}
	}
}
