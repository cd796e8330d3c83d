package repository

import (
	"context"
	"time"

	"github.com/transit-planner/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get returns nil, nil on a cache miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetRoute returns a cached best-path payload for a query key
	GetRoute(ctx context.Context, queryKey string) ([]byte, error)

	// SetRoute stores a best-path payload
	SetRoute(ctx context.Context, queryKey string, data []byte, ttl time.Duration) error

	// GetStats получает статистику сети из кеша
	GetStats(ctx context.Context) (*domain.NetworkStats, error)

	// SetStats сохраняет статистику сети в кеше
	SetStats(ctx context.Context, stats *domain.NetworkStats, ttl time.Duration) error
}
