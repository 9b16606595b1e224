package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geocoding-gateway/internal/domain"
	"github.com/geocoding-gateway/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Feature, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feature), args.Error(1)
}

func (m *MockGeocoderRepository) SearchNear(ctx context.Context, q domain.LocationQuery) ([]domain.Feature, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feature), args.Error(1)
}

func (m *MockGeocoderRepository) Reverse(ctx context.Context, q domain.ReverseQuery) ([]domain.Feature, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feature), args.Error(1)
}

func setupApp(t *testing.T) (*fiber.App, *MockGeocoderRepository) {
	t.Helper()

	repo := &MockGeocoderRepository{}
	h := NewGeocodingHandler(usecase.NewGeocodingUseCase(repo, zap.NewNop()), zap.NewNop())
	info := NewInfoHandler("1.0.0")

	app := fiber.New()
	app.Get("/", info.Root)
	app.Get("/health", info.Health)
	app.Get("/search", h.Search)
	app.Post("/search", h.SearchPost)
	app.Get("/search/location", h.SearchByLocation)
	app.Post("/search/location", h.SearchByLocationPost)
	app.Get("/reverse", h.Reverse)
	app.Post("/reverse", h.ReversePost)

	return app, repo
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

var twoBerlins = []domain.Feature{
	{
		Geometry:   domain.Geometry{Coordinates: []float64{13.3888599, 52.5170365}},
		Properties: domain.Properties{"name": "Berlin", "country": "Germany", "osm_id": float64(240109189)},
	},
	{
		Geometry:   domain.Geometry{Coordinates: []float64{-72.7498, 41.6215}},
		Properties: domain.Properties{"name": "Berlin", "state": "Connecticut"},
	},
}

func TestGeocodingHandler_Search(t *testing.T) {
	t.Run("GET berlin limit 2", func(t *testing.T) {
		app, repo := setupApp(t)
		limit := 2
		repo.On("Search", mock.Anything, domain.SearchQuery{Query: "Berlin", Limit: &limit}).Return(twoBerlins, nil)

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/search?query=Berlin&limit=2", nil))
		require.Equal(t, http.StatusOK, status)

		assert.JSONEq(t, `[
			{"name":"Berlin","country":"Germany","coordinates":[13.3888599,52.5170365],
			 "properties":{"name":"Berlin","country":"Germany","osm_id":240109189}},
			{"name":"Berlin","country":null,"coordinates":[-72.7498,41.6215],
			 "properties":{"name":"Berlin","state":"Connecticut"}}
		]`, string(body))
		repo.AssertExpectations(t)
	})

	t.Run("POST with lang", func(t *testing.T) {
		app, repo := setupApp(t)
		limit := 2
		lang := "en"
		repo.On("Search", mock.Anything, domain.SearchQuery{Query: "Paris", Limit: &limit, Lang: &lang}).Return([]domain.Feature{}, nil)

		status, body := doRequest(t, app, postJSON("/search", `{"query":"Paris","limit":2,"lang":"en"}`))
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(body))
		repo.AssertExpectations(t)
	})

	t.Run("POST zero limit and empty lang are dropped", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("Search", mock.Anything, domain.SearchQuery{Query: "Paris"}).Return([]domain.Feature{}, nil)

		status, _ := doRequest(t, app, postJSON("/search", `{"query":"Paris","limit":0,"lang":""}`))
		require.Equal(t, http.StatusOK, status)
		repo.AssertExpectations(t)
	})

	t.Run("GET zero limit is dropped", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("Search", mock.Anything, domain.SearchQuery{Query: "Paris"}).Return([]domain.Feature{}, nil)

		status, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/search?query=Paris&limit=0&lang=", nil))
		require.Equal(t, http.StatusOK, status)
		repo.AssertExpectations(t)
	})

	t.Run("missing query is rejected", func(t *testing.T) {
		app, repo := setupApp(t)

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/search?limit=2", nil))
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, string(body), "field required: query")
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("non-integer limit is rejected", func(t *testing.T) {
		app, repo := setupApp(t)

		status, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/search?query=Berlin&limit=two", nil))
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("upstream status is forwarded", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("Search", mock.Anything, mock.Anything).Return(nil, &domain.UpstreamStatusError{
			StatusCode: http.StatusBadRequest,
			Body:       `{"message":"language not supported"}`,
		})

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/search?query=Berlin&lang=xx", nil))
		assert.Equal(t, http.StatusBadRequest, status)

		var errResp map[string]string
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, "UPSTREAM_ERROR", errResp["code"])
		assert.Contains(t, errResp["detail"], "language not supported")
	})
}

func TestGeocodingHandler_SearchByLocation(t *testing.T) {
	t.Run("GET success", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("SearchNear", mock.Anything, domain.LocationQuery{Query: "Berlin", Lat: 52.3879, Lon: 13.0582}).Return(twoBerlins[:1], nil)

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/search/location?query=Berlin&lat=52.3879&lon=13.0582", nil))
		require.Equal(t, http.StatusOK, status)

		var results []map[string]any
		require.NoError(t, json.Unmarshal(body, &results))
		require.Len(t, results, 1)
		assert.Equal(t, "Germany", results[0]["country"])
	})

	t.Run("POST success", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("SearchNear", mock.Anything, domain.LocationQuery{Query: "Paris", Lat: 48.8566, Lon: 2.3522}).Return([]domain.Feature{}, nil)

		status, _ := doRequest(t, app, postJSON("/search/location", `{"query":"Paris","lat":48.8566,"lon":2.3522}`))
		assert.Equal(t, http.StatusOK, status)
		repo.AssertExpectations(t)
	})

	missing := []struct {
		name string
		req  *http.Request
		want string
	}{
		{"GET without lat", httptest.NewRequest(http.MethodGet, "/search/location?query=Berlin&lon=13.0582", nil), "lat"},
		{"GET without lon", httptest.NewRequest(http.MethodGet, "/search/location?query=Berlin&lat=52.3879", nil), "lon"},
		{"POST without lat", postJSON("/search/location", `{"query":"Berlin","lon":13.0582}`), "lat"},
		{"POST without lon", postJSON("/search/location", `{"query":"Berlin","lat":52.3879}`), "lon"},
	}
	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			app, repo := setupApp(t)

			status, body := doRequest(t, app, tt.req)
			assert.Equal(t, http.StatusUnprocessableEntity, status)
			assert.Contains(t, string(body), "field required: "+tt.want)
			repo.AssertNotCalled(t, "SearchNear", mock.Anything, mock.Anything)
		})
	}

	t.Run("zero coordinates are valid", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("SearchNear", mock.Anything, domain.LocationQuery{Query: "Null Island", Lat: 0, Lon: 0}).Return([]domain.Feature{}, nil)

		status, _ := doRequest(t, app, postJSON("/search/location", `{"query":"Null Island","lat":0,"lon":0}`))
		assert.Equal(t, http.StatusOK, status)
		repo.AssertExpectations(t)
	})
}

func TestGeocodingHandler_Reverse(t *testing.T) {
	t.Run("GET returns first properties unwrapped", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("Reverse", mock.Anything, domain.ReverseQuery{Lat: 52.519854, Lon: 13.438596}).Return([]domain.Feature{
			{Properties: domain.Properties{"name": "Friedrichshain", "country": "Germany"}},
			{Properties: domain.Properties{"name": "Lichtenberg", "country": "Germany"}},
		}, nil)

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/reverse?lat=52.519854&lon=13.438596", nil))
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"name":"Friedrichshain","country":"Germany"}`, string(body))
	})

	t.Run("POST with empty upstream list is 404", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("Reverse", mock.Anything, domain.ReverseQuery{Lat: 48.8566, Lon: 2.3522}).Return([]domain.Feature{}, nil)

		status, body := doRequest(t, app, postJSON("/reverse", `{"lat":48.8566,"lon":2.3522}`))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, string(body), "LOCATION_NOT_FOUND")
	})

	t.Run("upstream unreachable is 500 with error text", func(t *testing.T) {
		app, repo := setupApp(t)
		repo.On("Reverse", mock.Anything, mock.Anything).Return(nil,
			fmt.Errorf("failed to execute request: %w", errors.New("dial tcp 127.0.0.1:2322: connect: connection refused")))

		status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/reverse?lat=1&lon=2", nil))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, string(body), "connection refused")
	})

	t.Run("malformed body", func(t *testing.T) {
		app, repo := setupApp(t)

		status, body := doRequest(t, app, postJSON("/reverse", `{"lat":`))
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, string(body), "Invalid request body")
		repo.AssertNotCalled(t, "Reverse", mock.Anything, mock.Anything)
	})

	t.Run("non-numeric lat", func(t *testing.T) {
		app, repo := setupApp(t)

		status, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/reverse?lat=north&lon=2", nil))
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		repo.AssertNotCalled(t, "Reverse", mock.Anything, mock.Anything)
	})
}

func TestInfoHandler(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, status)

	var info map[string]any
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, "Geocoding API", info["message"])
	assert.Equal(t, "1.0.0", info["version"])
	endpoints, ok := info["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/search", endpoints["search"])
	assert.Equal(t, "/search/location", endpoints["search_with_location"])
	assert.Equal(t, "/reverse", endpoints["reverse_geocode"])

	status, body = doRequest(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"healthy","service":"geocoding-api"}`, string(body))
}

type stubChecker struct {
	err error
}

func (s stubChecker) Health(context.Context) error {
	return s.err
}

func TestInfoHandler_HealthChecks(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "redis up",
			expected: `{"status":"healthy","service":"geocoding-api","checks":{"redis":"ok"}}`,
		},
		{
			name:     "redis down",
			err:      errors.New("redis localhost:6379: connection refused"),
			expected: `{"status":"degraded","service":"geocoding-api","checks":{"redis":"redis localhost:6379: connection refused"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewInfoHandler("1.0.0").WithCheck("redis", stubChecker{err: tt.err})
			app := fiber.New()
			app.Get("/health", h.Health)

			status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, tt.expected, string(body))
		})
	}
}
