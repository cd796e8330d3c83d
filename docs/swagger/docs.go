// Package swagger registers the OpenAPI description served under /swagger.
package swagger

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
        "/api/v1/path/best-path": {
            "get": {
                "description": "Ищет маршрут между двумя станциями или точками \"(lat, lon)\" с учетом расписания",
                "produces": ["application/json"],
                "tags": ["Path"],
                "summary": "Лучший маршрут",
                "parameters": [
                    {"type": "string", "description": "Станция или точка (lat, lon)", "name": "start", "in": "query", "required": true},
                    {"type": "string", "description": "Станция или точка (lat, lon)", "name": "end", "in": "query", "required": true},
                    {"type": "integer", "default": 0, "description": "Время отправления, секунды от полуночи", "name": "time", "in": "query"},
                    {"type": "string", "description": "Время отправления hh:mm, заменяет time", "name": "clock", "in": "query"},
                    {"type": "string", "default": "TIME", "description": "TIME или DISTANCE", "name": "method", "in": "query"},
                    {"type": "string", "default": "METRO_FOOT", "description": "METRO, FOOT или METRO_FOOT", "name": "transportation", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BestPathResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/metro/list": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Metro"],
                "summary": "Список линий",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/api/v1/metro/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Metro"],
                "summary": "Станции и расписания линии",
                "parameters": [{"type": "string", "description": "Имя линии", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LineResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/metro/best-stations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Metro"],
                "summary": "Станции с наибольшим числом пересадок",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.Station"}}}}
            }
        },
        "/api/v1/metro/stations-correspondence": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Metro"],
                "summary": "Линии каждой станции",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.StationCorrespondence"}}}}
            }
        },
        "/api/v1/metro/stations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Metro"],
                "summary": "Все станции",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.Station"}}}}
            }
        },
        "/api/v1/metro/station-schedules": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Metro"],
                "summary": "Расписание линии на станции",
                "parameters": [
                    {"type": "string", "description": "Станция", "name": "station", "in": "query", "required": true},
                    {"type": "string", "description": "Линия", "name": "line", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StationSchedulesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stats"],
                "summary": "Статистика сети",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NetworkStats"}}}
            }
        }
    },
    "definitions": {
        "domain.NetworkStats": {
            "type": "object",
            "properties": {
                "stations": {"type": "integer"},
                "lines": {"type": "integer"},
                "base_lines": {"type": "integer"},
                "rail_segments": {"type": "integer"},
                "walk_segments": {"type": "integer"}
            }
        },
        "dto.PathPoint": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "dto.PathSegment": {
            "type": "object",
            "properties": {
                "start": {"$ref": "#/definitions/dto.PathPoint"},
                "end": {"$ref": "#/definitions/dto.PathPoint"},
                "mode": {"type": "string"},
                "departure": {"type": "number"},
                "arrival": {"type": "number"},
                "distance": {"type": "number"},
                "line": {"type": "string"},
                "terminus": {"type": "string"}
            }
        },
        "dto.BestPathResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "method": {"type": "string"},
                "transportation": {"type": "string"},
                "departure": {"type": "number"},
                "arrival": {"type": "number"},
                "distance": {"type": "number"},
                "found": {"type": "boolean"},
                "cached": {"type": "boolean"},
                "segments": {"type": "array", "items": {"$ref": "#/definitions/dto.PathSegment"}}
            }
        },
        "dto.Station": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "lines": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.LineSchedule": {
            "type": "object",
            "properties": {
                "line": {"type": "string"},
                "terminus": {"type": "string"},
                "direction": {"type": "string"},
                "departures": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "dto.LineResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "stations": {"type": "array", "items": {"$ref": "#/definitions/dto.Station"}},
                "schedules": {"type": "array", "items": {"$ref": "#/definitions/dto.LineSchedule"}}
            }
        },
        "dto.StationCorrespondence": {
            "type": "object",
            "properties": {
                "station": {"type": "string"},
                "lines": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.StationSchedulesResponse": {
            "type": "object",
            "properties": {
                "station": {"type": "string"},
                "line": {"type": "string"},
                "departures": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Transit Planner API",
	Description:      "Поиск маршрутов по сети метро с учетом расписаний и пеших переходов.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
