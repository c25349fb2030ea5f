// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}}}},
            "post": {"tags": ["users"], "summary": "Register a user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/http.registerUserRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                              "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get a user", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                              "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/goals": {
            "get": {"tags": ["goals"], "summary": "List the goals of a user", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "query", "name": "userId"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}}},
            "post": {"tags": ["goals"], "summary": "Create a goal", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "header", "name": "X-User-ID"},
                               {"in": "body", "name": "goal", "required": true, "schema": {"$ref": "#/definitions/http.goalRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}}}
        },
        "/goals/{id}": {
            "get": {"tags": ["goals"], "summary": "Get a goal", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}}},
            "put": {"tags": ["goals"], "summary": "Update a goal", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true},
                               {"in": "body", "name": "goal", "required": true, "schema": {"$ref": "#/definitions/http.goalRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["goals"], "summary": "Delete a goal and its logs",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/goals/{id}/progress": {
            "get": {"tags": ["progress"], "summary": "Evaluate a goal", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true},
                               {"type": "string", "in": "query", "name": "date"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/goals/{id}/history": {
            "get": {"tags": ["progress"], "summary": "Streaks, successes and ratings of a goal", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/logs": {
            "get": {"tags": ["logs"], "summary": "Query logs", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "query", "name": "goalId"},
                               {"type": "string", "in": "query", "name": "userId"},
                               {"type": "string", "in": "query", "name": "date"},
                               {"type": "string", "in": "query", "name": "from"},
                               {"type": "string", "in": "query", "name": "to"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "post": {"tags": ["logs"], "summary": "Record the outcome of a goal for one day", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "log", "required": true, "schema": {"$ref": "#/definitions/http.upsertLogRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/logs/month": {
            "get": {"tags": ["progress"], "summary": "Calendar summary of a month", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "query", "name": "userId"},
                               {"type": "integer", "in": "query", "name": "year", "required": true},
                               {"type": "integer", "in": "query", "name": "month", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/logs/{id}": {
            "delete": {"tags": ["logs"], "summary": "Delete a log",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "domain.User": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"},
            "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "http.errorResponse": {"type": "object", "properties": {"error": {"type": "string", "example": "goal not found"}}},
        "http.registerUserRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "example": "Ada"}}},
        "http.goalRequest": {"type": "object", "properties": {
            "user_id": {"type": "string"}, "category": {"type": "string"}, "title": {"type": "string"},
            "floor": {"type": "string"}, "ceiling": {"type": "string"}, "unit": {"type": "string"},
            "start_date": {"type": "string", "example": "2024-01-01"},
            "frequency_type": {"type": "string", "enum": ["daily", "specific_days", "days_per_period", "repeating_n_days"]},
            "specific_days": {"type": "array", "items": {"type": "string"}},
            "days_per_period": {"type": "integer"},
            "period_unit": {"type": "string", "enum": ["week", "month", "year"]},
            "repeat_every_n_days": {"type": "integer"},
            "target_date": {"type": "string"}, "target_successes": {"type": "integer"}}},
        "http.upsertLogRequest": {"type": "object", "required": ["goal_id", "date", "status"], "properties": {
            "goal_id": {"type": "string"}, "user_id": {"type": "string"},
            "date": {"type": "string", "example": "2024-01-15"},
            "status": {"type": "string", "enum": ["achieved", "failed", "not_logged"]},
            "rating": {"type": "integer", "minimum": 1, "maximum": 10}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Floor/Ceiling Goal Tracker API",
	Description:      "Goals with a minimum and a stretch level, daily logs, progress verdicts and streaks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
