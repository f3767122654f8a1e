// Package api exposes the flashcard services as a JSON HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"lingodeck/internal/api/response"
	"lingodeck/internal/service"
	"lingodeck/internal/translator"
	"lingodeck/internal/validation"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 64 << 10

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server holds the services the HTTP handlers call into
type Server struct {
	translations *service.TranslationService
	flashcards   *service.FlashcardService
	decks        *service.DeckService
	db           Pinger
	logger       *zap.Logger
}

// NewServer creates the HTTP API server
func NewServer(
	translations *service.TranslationService,
	flashcards *service.FlashcardService,
	decks *service.DeckService,
	db Pinger,
	logger *zap.Logger,
) *Server {
	return &Server{
		translations: translations,
		flashcards:   flashcards,
		decks:        decks,
		db:           db,
		logger:       logger,
	}
}

// Handler builds the routed handler wrapped in middleware.
// allowedOrigins configures CORS; an empty list allows any origin.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.health)
	mux.HandleFunc("GET /api/languages", s.languages)
	mux.HandleFunc("POST /api/translate", s.translate)

	mux.HandleFunc("GET /api/decks", s.listDecks)
	mux.HandleFunc("POST /api/decks", s.createDeck)
	mux.HandleFunc("GET /api/decks/{deckId}", s.getDeck)
	mux.HandleFunc("DELETE /api/decks/{deckId}", s.deleteDeck)
	mux.HandleFunc("GET /api/decks/{deckId}/flashcards", s.listFlashcards)

	mux.HandleFunc("POST /api/flashcards", s.createFlashcard)
	mux.HandleFunc("DELETE /api/flashcards/{flashcardId}", s.deleteFlashcard)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         86400,
	})

	return Chain(mux,
		RequestID,
		Logger(s.logger),
		Recovery(s.logger),
		c.Handler,
	)
}

// decode reads a JSON body into dst
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return errors.New("request body is empty")
	}
	if err != nil {
		return errors.New("request body is not valid JSON")
	}
	return nil
}

// writeError maps service errors to status codes. fallback is sent for
// unexpected failures instead of the internal error text.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		vErr     *validation.Error
		provider *translator.ProviderError
	)

	switch {
	case errors.As(err, &vErr):
		response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(vErr))
	case errors.Is(err, translator.ErrUnsupportedLanguage):
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
	case errors.Is(err, service.ErrDeckNotFound), errors.Is(err, service.ErrFlashcardNotFound):
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
	case errors.As(err, &provider):
		response.WriteJSON(w, http.StatusBadGateway, response.GeneralError(err))
	case errors.Is(err, context.DeadlineExceeded):
		response.WriteJSON(w, http.StatusGatewayTimeout, response.Error(fallback))
	default:
		s.logger.Error("Request failed",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", RequestIDFromCtx(r.Context())),
		)
		response.WriteJSON(w, http.StatusInternalServerError, response.Error(fallback))
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		s.logger.Warn("Health check failed", zap.Error(err))
		response.WriteJSON(w, http.StatusServiceUnavailable, response.Error("database unavailable"))
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
}
