package translator

import (
	"context"

	"lingodeck/internal/domain"
	"lingodeck/internal/repository"

	"go.uber.org/zap"
)

// Cached serves repeated translations from a TranslationCache
type Cached struct {
	next   Translator
	cache  repository.TranslationCache
	logger *zap.Logger
}

// NewCached wraps next with a translation cache
func NewCached(next Translator, cache repository.TranslationCache, logger *zap.Logger) *Cached {
	return &Cached{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

// Translate checks the cache before asking the wrapped translator.
// Cache errors are logged and never fail a translation.
func (c *Cached) Translate(ctx context.Context, req domain.TranslationRequest) (*domain.Translation, error) {
	hit, err := c.cache.GetTranslation(ctx, req.SourceLang, req.TargetLang, req.Text)
	if err != nil {
		c.logger.Warn("Failed to read translation cache", zap.Error(err))
	}
	if hit != nil {
		c.logger.Debug("Translation cache hit",
			zap.String("source_lang", req.SourceLang),
			zap.String("target_lang", req.TargetLang),
		)
		return &domain.Translation{Source: req.Text, Target: hit.TargetText}, nil
	}

	result, err := c.next.Translate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SaveTranslation(ctx, domain.CachedTranslation{
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		SourceText: req.Text,
		TargetText: result.Target,
	}); err != nil {
		c.logger.Warn("Failed to store translation", zap.Error(err))
	}

	return result, nil
}
