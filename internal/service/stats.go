package service

import (
	"lingodeck/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles statistics and cleanup
type StatsService struct {
	cache         repository.TranslationCache
	retentionDays int
	logger        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(cache repository.TranslationCache, retentionDays int, logger *zap.Logger) *StatsService {
	return &StatsService{
		cache:         cache,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes cached translations older than the retention window
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of cached translations", zap.Int("retention_days", s.retentionDays))

	removed, err := s.cache.CleanOldTranslations(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup cached translations", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("removed", removed))
	return nil
}
