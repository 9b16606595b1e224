package repository

import (
	"context"

	"github.com/geocoding-gateway/internal/domain"
)

// GeocoderRepository определяет методы обращения к апстрим-геокодеру.
// Каждый вызов - ровно один синхронный HTTP запрос.
type GeocoderRepository interface {
	// Search выполняет текстовый поиск
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.Feature, error)

	// SearchNear выполняет текстовый поиск с приоритетом вокруг точки
	SearchNear(ctx context.Context, q domain.LocationQuery) ([]domain.Feature, error)

	// Reverse возвращает объекты, ближайшие к точке. Пустой список не ошибка
	// на этом уровне.
	Reverse(ctx context.Context, q domain.ReverseQuery) ([]domain.Feature, error)
}
