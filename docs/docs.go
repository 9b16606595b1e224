// Package docs Geocoding API.
//
// Registers the OpenAPI document served by fiber-swagger under /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Info"],
                "summary": "Информация о сервисе",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.InfoResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Info"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/search": {
            "get": {
                "description": "Проксирует текстовый поиск в геокодер. limit и lang передаются только если заданы.",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Поиск мест по тексту",
                "parameters": [
                    {"type": "string", "description": "Поисковый запрос", "name": "query", "in": "query", "required": true},
                    {"type": "integer", "description": "Максимальное количество результатов", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Язык результатов", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PlaceResult"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.AppError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.AppError"}}
                }
            },
            "post": {
                "description": "То же, что GET /search, параметры в теле запроса",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Поиск мест по тексту (JSON)",
                "parameters": [
                    {"description": "Параметры поиска", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PlaceResult"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.AppError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.AppError"}}
                }
            }
        },
        "/search/location": {
            "get": {
                "description": "Текстовый поиск с приоритетом результатов вокруг lat/lon. Все параметры обязательны.",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Поиск мест рядом с точкой",
                "parameters": [
                    {"type": "string", "description": "Поисковый запрос", "name": "query", "in": "query", "required": true},
                    {"type": "number", "description": "Широта", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Долгота", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PlaceResult"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.AppError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.AppError"}}
                }
            },
            "post": {
                "description": "То же, что GET /search/location, параметры в теле запроса",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Поиск мест рядом с точкой (JSON)",
                "parameters": [
                    {"description": "Запрос и координаты", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LocationSearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PlaceResult"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.AppError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.AppError"}}
                }
            }
        },
        "/reverse": {
            "get": {
                "description": "Возвращает свойства ближайшего к точке объекта (без обертки в список)",
                "produces": ["application/json"],
                "tags": ["Reverse"],
                "summary": "Обратное геокодирование",
                "parameters": [
                    {"type": "number", "description": "Широта", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Долгота", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.AppError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.AppError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.AppError"}}
                }
            },
            "post": {
                "description": "То же, что GET /reverse, координаты в теле запроса",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reverse"],
                "summary": "Обратное геокодирование (JSON)",
                "parameters": [
                    {"description": "Координаты точки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReverseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.AppError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errors.AppError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.AppError"}}
                }
            }
        }
    },
    "definitions": {
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"type": "object", "additionalProperties": {"type": "string"}},
                "service": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "dto.InfoResponse": {
            "type": "object",
            "properties": {
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "dto.LocationSearchRequest": {
            "type": "object",
            "required": ["lat", "lon", "query"],
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "query": {"type": "string"}
            }
        },
        "dto.PlaceResult": {
            "type": "object",
            "properties": {
                "coordinates": {"type": "array", "items": {"type": "number"}},
                "country": {"type": "string"},
                "name": {"type": "string"},
                "properties": {"type": "object", "additionalProperties": true}
            }
        },
        "dto.ReverseRequest": {
            "type": "object",
            "required": ["lat", "lon"],
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "dto.SearchRequest": {
            "type": "object",
            "required": ["query"],
            "properties": {
                "lang": {"type": "string"},
                "limit": {"type": "integer"},
                "query": {"type": "string"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Geocoding API",
	Description:      "Прокси к геокодеру Photon: поиск мест, поиск рядом с точкой и обратное геокодирование.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
