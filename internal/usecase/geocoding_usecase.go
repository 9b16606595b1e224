package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/geocoding-gateway/internal/domain"
	"github.com/geocoding-gateway/internal/domain/repository"
	apperrors "github.com/geocoding-gateway/internal/pkg/errors"
	"github.com/geocoding-gateway/internal/usecase/dto"
)

// GeocodingUseCase - use case для поиска и обратного геокодирования через апстрим
type GeocodingUseCase struct {
	geocoder repository.GeocoderRepository
	logger   *zap.Logger
}

// NewGeocodingUseCase - создание нового GeocodingUseCase
func NewGeocodingUseCase(geocoder repository.GeocoderRepository, logger *zap.Logger) *GeocodingUseCase {
	return &GeocodingUseCase{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Search - поиск мест по текстовому запросу
func (uc *GeocodingUseCase) Search(ctx context.Context, req dto.SearchRequest) ([]dto.PlaceResult, error) {
	features, err := uc.geocoder.Search(ctx, req.ToQuery())
	if err != nil {
		uc.logger.Error("Failed to search places", zap.String("query", req.Query), zap.Error(err))
		return nil, translateError(err)
	}

	return dto.NewPlaceResults(features), nil
}

// SearchByLocation - поиск мест с приоритетом вокруг заданной точки
func (uc *GeocodingUseCase) SearchByLocation(ctx context.Context, req dto.LocationSearchRequest) ([]dto.PlaceResult, error) {
	features, err := uc.geocoder.SearchNear(ctx, req.ToQuery())
	if err != nil {
		uc.logger.Error("Failed to search places by location", zap.String("query", req.Query), zap.Error(err))
		return nil, translateError(err)
	}

	return dto.NewPlaceResults(features), nil
}

// ReverseGeocode - обратное геокодирование. Возвращает свойства ближайшего
// объекта как есть, без проекции в PlaceResult.
func (uc *GeocodingUseCase) ReverseGeocode(ctx context.Context, req dto.ReverseRequest) (domain.Properties, error) {
	q := req.ToQuery()

	features, err := uc.geocoder.Reverse(ctx, q)
	if err != nil {
		uc.logger.Error("Failed to reverse geocode",
			zap.Float64("lat", q.Lat),
			zap.Float64("lon", q.Lon),
			zap.Error(err))
		return nil, translateError(err)
	}

	if len(features) == 0 {
		uc.logger.Info("No location found",
			zap.Float64("lat", q.Lat),
			zap.Float64("lon", q.Lon))
		return nil, translateError(domain.ErrNoFeatures)
	}

	props := features[0].Properties
	if props == nil {
		props = domain.Properties{}
	}
	return props, nil
}

// translateError переводит ошибки апстрима в пары статус/detail для клиента
func translateError(err error) *apperrors.AppError {
	var statusErr *domain.UpstreamStatusError
	switch {
	case errors.As(err, &statusErr):
		return apperrors.Upstream(statusErr.StatusCode, err)
	case errors.Is(err, domain.ErrNoFeatures):
		return apperrors.ErrLocationNotFound
	default:
		return apperrors.Internal(err)
	}
}
