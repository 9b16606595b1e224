package cache

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/geocoding-gateway/internal/domain"
	"github.com/geocoding-gateway/internal/domain/repository"
	"github.com/geocoding-gateway/internal/observability"
	"go.uber.org/zap"
)

const keyPrefix = "geocode"

// cachedGeocoder кеширует успешные ответы геокодера. Ошибки не кешируются,
// сбой кеша не ломает запрос: уходим в апстрим.
type cachedGeocoder struct {
	next    repository.GeocoderRepository
	cache   repository.CacheRepository
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewCachedGeocoder оборачивает next кешем: сначала Redis, при промахе апстрим
func NewCachedGeocoder(
	next repository.GeocoderRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	metrics *observability.Metrics,
	logger *zap.Logger,
) repository.GeocoderRepository {
	return &cachedGeocoder{
		next:    next,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

func (g *cachedGeocoder) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Feature, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	if q.Limit != nil && *q.Limit != 0 {
		params.Set("limit", strconv.Itoa(*q.Limit))
	}
	if q.Lang != nil && *q.Lang != "" {
		params.Set("lang", *q.Lang)
	}

	return g.lookup(ctx, "search", params, func() ([]domain.Feature, error) {
		return g.next.Search(ctx, q)
	})
}

func (g *cachedGeocoder) SearchNear(ctx context.Context, q domain.LocationQuery) ([]domain.Feature, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))

	return g.lookup(ctx, "search_near", params, func() ([]domain.Feature, error) {
		return g.next.SearchNear(ctx, q)
	})
}

func (g *cachedGeocoder) Reverse(ctx context.Context, q domain.ReverseQuery) ([]domain.Feature, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))

	return g.lookup(ctx, "reverse", params, func() ([]domain.Feature, error) {
		return g.next.Reverse(ctx, q)
	})
}

func (g *cachedGeocoder) lookup(
	ctx context.Context,
	op string,
	params url.Values,
	fetch func() ([]domain.Feature, error),
) ([]domain.Feature, error) {
	key := cacheKey(op, params)

	data, err := g.cache.Get(ctx, key)
	switch {
	case err != nil:
		g.record(op, "error")
		g.logger.Warn("Cache lookup failed, falling back to upstream", zap.String("key", key), zap.Error(err))
	case data != nil:
		var features []domain.Feature
		if err := json.Unmarshal(data, &features); err == nil {
			g.record(op, "hit")
			return features, nil
		}
		g.record(op, "error")
		g.logger.Warn("Corrupted cache entry", zap.String("key", key))
	default:
		g.record(op, "miss")
	}

	features, err := fetch()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(features); err != nil {
		g.logger.Warn("Failed to marshal features for cache", zap.Error(err))
	} else if err := g.cache.Set(ctx, key, payload, g.ttl); err != nil {
		g.logger.Warn("Failed to store features in cache", zap.String("key", key), zap.Error(err))
	}

	return features, nil
}

func (g *cachedGeocoder) record(op, result string) {
	if g.metrics != nil {
		g.metrics.CacheLookups.WithLabelValues(op, result).Inc()
	}
}

func cacheKey(op string, params url.Values) string {
	return keyPrefix + ":" + op + ":" + params.Encode()
}
