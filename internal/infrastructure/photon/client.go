package photon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/geocoding-gateway/internal/config"
	"github.com/geocoding-gateway/internal/domain"
	"github.com/geocoding-gateway/internal/domain/repository"
	"github.com/geocoding-gateway/internal/observability"
	"go.uber.org/zap"
)

const (
	searchPath  = "/api/"
	reversePath = "/reverse"

	// maxErrorBody - сколько байт тела ошибки попадает в detail
	maxErrorBody = 4 << 10
)

// Названия операций для логов и метрик
const (
	OpSearch     = "search"
	OpSearchNear = "search_near"
	OpReverse    = "reverse"
)

var errMissingFeatures = errors.New("failed to decode response: missing features")

// featureCollection отличает отсутствующий ключ features от пустого списка
type featureCollection struct {
	Features *[]domain.Feature `json:"features"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewPhotonClient создает клиент Photon API. HTTP клиент общий на весь процесс,
// соединения переиспользуются между запросами.
func NewPhotonClient(cfg *config.UpstreamConfig, metrics *observability.Metrics, logger *zap.Logger) repository.GeocoderRepository {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 32

	return &client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		metrics:   metrics,
		logger:    logger,
	}
}

// Search выполняет текстовый поиск: q обязателен, limit и lang только если заданы
func (c *client) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Feature, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	if q.Limit != nil && *q.Limit != 0 {
		params.Set("limit", strconv.Itoa(*q.Limit))
	}
	if q.Lang != nil && *q.Lang != "" {
		params.Set("lang", *q.Lang)
	}

	return c.get(ctx, OpSearch, searchPath, params)
}

// SearchNear выполняет поиск с приоритетом вокруг точки: q, lat, lon передаются всегда
func (c *client) SearchNear(ctx context.Context, q domain.LocationQuery) ([]domain.Feature, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("lat", formatCoord(q.Lat))
	params.Set("lon", formatCoord(q.Lon))

	return c.get(ctx, OpSearchNear, searchPath, params)
}

// Reverse возвращает объекты рядом с точкой
func (c *client) Reverse(ctx context.Context, q domain.ReverseQuery) ([]domain.Feature, error) {
	params := url.Values{}
	params.Set("lat", formatCoord(q.Lat))
	params.Set("lon", formatCoord(q.Lon))

	return c.get(ctx, OpReverse, reversePath, params)
}

func (c *client) get(ctx context.Context, op, path string, params url.Values) (features []domain.Feature, err error) {
	start := time.Now()
	defer func() {
		c.observe(op, start, len(features), err)
	}()

	reqURL := c.baseURL + path + "?" + params.Encode()

	c.logger.Debug("Calling Photon API",
		zap.String("operation", op),
		zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("operation", op), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("Failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("Photon API returned error",
			zap.String("operation", op),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, &domain.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var collection featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		c.logger.Error("Failed to decode response", zap.String("operation", op), zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if collection.Features == nil {
		c.logger.Error("Photon response has no features", zap.String("operation", op))
		return nil, errMissingFeatures
	}

	c.logger.Debug("Photon API call successful",
		zap.String("operation", op),
		zap.Int("features", len(*collection.Features)))

	return *collection.Features, nil
}

func (c *client) observe(op string, start time.Time, n int, err error) {
	if c.metrics == nil {
		return
	}

	outcome := observability.OutcomeSuccess
	switch {
	case err != nil:
		outcome = observability.OutcomeError
		var statusErr *domain.UpstreamStatusError
		if errors.As(err, &statusErr) {
			outcome = observability.OutcomeStatusError
		}
	case n == 0:
		outcome = observability.OutcomeEmpty
	}

	c.metrics.UpstreamRequests.WithLabelValues(op, outcome).Inc()
	c.metrics.UpstreamDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
