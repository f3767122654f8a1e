package service

import (
	"context"
	"strings"

	"lingodeck/internal/domain"
	"lingodeck/internal/translator"
	"lingodeck/internal/validation"

	"go.uber.org/zap"
)

// TranslationService handles translation requests
type TranslationService struct {
	translator translator.Translator
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(t translator.Translator, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		translator: t,
		logger:     logger,
	}
}

// Translate validates the request and translates its text
func (s *TranslationService) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.Translation, error) {
	req.Text = strings.TrimSpace(req.Text)
	req.SourceLang = strings.TrimSpace(req.SourceLang)
	req.TargetLang = strings.TrimSpace(req.TargetLang)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	result, err := s.translator.Translate(ctx, req)
	if err != nil {
		s.logger.Error("Translation failed",
			zap.Error(err),
			zap.String("source_lang", req.SourceLang),
			zap.String("target_lang", req.TargetLang),
		)
		return nil, err
	}

	s.logger.Info("Text translated",
		zap.String("source_lang", req.SourceLang),
		zap.String("target_lang", req.TargetLang),
	)

	return result, nil
}
