package handler

import (
	"github.com/geocoding-gateway/internal/pkg/utils"
	"github.com/geocoding-gateway/internal/usecase"
	"github.com/geocoding-gateway/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GeocodingHandler - обработчик поиска и обратного геокодирования.
// Каждая операция доступна как GET с query параметрами и как POST с JSON телом.
type GeocodingHandler struct {
	geocodingUC *usecase.GeocodingUseCase
	logger      *zap.Logger
}

// NewGeocodingHandler - создание нового GeocodingHandler
func NewGeocodingHandler(geocodingUC *usecase.GeocodingUseCase, logger *zap.Logger) *GeocodingHandler {
	return &GeocodingHandler{
		geocodingUC: geocodingUC,
		logger:      logger,
	}
}

// Search godoc
// @Summary Поиск мест по тексту
// @Description Проксирует текстовый поиск в геокодер. limit и lang передаются только если заданы.
// @Tags Search
// @Produce json
// @Param query query string true "Поисковый запрос"
// @Param limit query int false "Максимальное количество результатов"
// @Param lang query string false "Язык результатов"
// @Success 200 {array} dto.PlaceResult
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /search [get]
func (h *GeocodingHandler) Search(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.SearchRequest{
		Query: c.Query("query"),
		Limit: limit,
		Lang:  queryString(c, "lang"),
	}

	return h.search(c, req)
}

// SearchPost godoc
// @Summary Поиск мест по тексту (JSON)
// @Description То же, что GET /search, параметры в теле запроса
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Параметры поиска"
// @Success 200 {array} dto.PlaceResult
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /search [post]
func (h *GeocodingHandler) SearchPost(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	return h.search(c, req)
}

func (h *GeocodingHandler) search(c *fiber.Ctx, req dto.SearchRequest) error {
	if err := validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	results, err := h.geocodingUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, results)
}

// SearchByLocation godoc
// @Summary Поиск мест рядом с точкой
// @Description Текстовый поиск с приоритетом результатов вокруг lat/lon. Все параметры обязательны.
// @Tags Search
// @Produce json
// @Param query query string true "Поисковый запрос"
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {array} dto.PlaceResult
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /search/location [get]
func (h *GeocodingHandler) SearchByLocation(c *fiber.Ctx) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.LocationSearchRequest{
		Query: c.Query("query"),
		Lat:   lat,
		Lon:   lon,
	}

	return h.searchByLocation(c, req)
}

// SearchByLocationPost godoc
// @Summary Поиск мест рядом с точкой (JSON)
// @Description То же, что GET /search/location, параметры в теле запроса
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.LocationSearchRequest true "Запрос и координаты"
// @Success 200 {array} dto.PlaceResult
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /search/location [post]
func (h *GeocodingHandler) SearchByLocationPost(c *fiber.Ctx) error {
	var req dto.LocationSearchRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	return h.searchByLocation(c, req)
}

func (h *GeocodingHandler) searchByLocation(c *fiber.Ctx, req dto.LocationSearchRequest) error {
	if err := validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	results, err := h.geocodingUC.SearchByLocation(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, results)
}

// Reverse godoc
// @Summary Обратное геокодирование
// @Description Возвращает свойства ближайшего к точке объекта (без обертки в список)
// @Tags Reverse
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /reverse [get]
func (h *GeocodingHandler) Reverse(c *fiber.Ctx) error {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.reverse(c, dto.ReverseRequest{Lat: lat, Lon: lon})
}

// ReversePost godoc
// @Summary Обратное геокодирование (JSON)
// @Description То же, что GET /reverse, координаты в теле запроса
// @Tags Reverse
// @Accept json
// @Produce json
// @Param request body dto.ReverseRequest true "Координаты точки"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /reverse [post]
func (h *GeocodingHandler) ReversePost(c *fiber.Ctx) error {
	var req dto.ReverseRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	return h.reverse(c, req)
}

func (h *GeocodingHandler) reverse(c *fiber.Ctx, req dto.ReverseRequest) error {
	if err := validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	props, err := h.geocodingUC.ReverseGeocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, props)
}
