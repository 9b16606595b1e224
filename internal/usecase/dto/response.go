package dto

import "github.com/geocoding-gateway/internal/domain"

// PlaceResult - результат поиска. Name и Country сериализуются как null,
// если апстрим их не прислал.
type PlaceResult struct {
	Name        *string           `json:"name"`
	Country     *string           `json:"country"`
	Coordinates []float64         `json:"coordinates"`
	Properties  domain.Properties `json:"properties"`
}

// NewPlaceResult преобразует объект апстрима в PlaceResult. Properties
// передаются как есть, чтобы клиенту были доступны все поля.
func NewPlaceResult(f domain.Feature) PlaceResult {
	props := f.Properties
	if props == nil {
		props = domain.Properties{}
	}

	return PlaceResult{
		Name:        props.String("name"),
		Country:     props.String("country"),
		Coordinates: f.Geometry.Coordinates,
		Properties:  props,
	}
}

// NewPlaceResults преобразует все объекты с сохранением порядка
func NewPlaceResults(features []domain.Feature) []PlaceResult {
	results := make([]PlaceResult, 0, len(features))
	for _, f := range features {
		results = append(results, NewPlaceResult(f))
	}
	return results
}

// InfoResponse - ответ корневого эндпоинта
type InfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse - ответ health check. Checks есть только когда у сервиса
// подключены зависимости (Redis кеш).
type HealthResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
}
