package dto

import "github.com/geocoding-gateway/internal/domain"

// SearchRequest - запрос на текстовый поиск места
type SearchRequest struct {
	Query string  `json:"query" validate:"required"`
	Limit *int    `json:"limit,omitempty"`
	Lang  *string `json:"lang,omitempty"`
}

// LocationSearchRequest - запрос на поиск с приоритетом вокруг точки.
// Координаты не проверяются на диапазон, только на наличие.
type LocationSearchRequest struct {
	Query string   `json:"query" validate:"required"`
	Lat   *float64 `json:"lat" validate:"required"`
	Lon   *float64 `json:"lon" validate:"required"`
}

// ReverseRequest - запрос на обратное геокодирование
type ReverseRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lon *float64 `json:"lon" validate:"required"`
}

// ToQuery - нулевой limit и пустой lang считаются незаданными
func (r SearchRequest) ToQuery() domain.SearchQuery {
	q := domain.SearchQuery{Query: r.Query}
	if r.Limit != nil && *r.Limit != 0 {
		q.Limit = r.Limit
	}
	if r.Lang != nil && *r.Lang != "" {
		q.Lang = r.Lang
	}
	return q
}

// ToQuery вызывается только после валидации
func (r LocationSearchRequest) ToQuery() domain.LocationQuery {
	return domain.LocationQuery{
		Query: r.Query,
		Lat:   *r.Lat,
		Lon:   *r.Lon,
	}
}

// ToQuery вызывается только после валидации
func (r ReverseRequest) ToQuery() domain.ReverseQuery {
	return domain.ReverseQuery{
		Lat: *r.Lat,
		Lon: *r.Lon,
	}
}
