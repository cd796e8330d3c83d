package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/domain/repository"
	"github.com/transit-planner/internal/network"
	"github.com/transit-planner/internal/pkg/errors"
)

// StatsUseCase отдает размеры загруженной сети
type StatsUseCase struct {
	graph     *network.Graph
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewStatsUseCase создает новый экземпляр StatsUseCase. cacheRepo may be nil.
func NewStatsUseCase(
	graph *network.Graph,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		graph:     graph,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetStats возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStats(ctx context.Context) (*domain.NetworkStats, error) {
	if uc.graph == nil {
		return nil, errors.ErrNetworkUnavailable
	}

	// 1. Проверяем кеш
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetStats(ctx)
		if err == nil && cached != nil {
			uc.logger.Debug("Statistics fetched from cache")
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
		}
	}

	// 2. Считаем по графу
	stats := uc.graph.Stats()

	// 3. Кешируем
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetStats(ctx, &stats, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
			// Не возвращаем ошибку, т.к. данные уже получены
		}
	}

	return &stats, nil
}
