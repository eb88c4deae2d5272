// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/auth/register": {"post": {"tags": ["Auth"], "summary": "Register an account", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Username taken"}}}},
        "/api/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}}},
        "/api/auth/logout": {"post": {"tags": ["Auth"], "summary": "Log out", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/auth/me": {"get": {"tags": ["Auth"], "summary": "Current account", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/items": {
            "get": {"tags": ["Items"], "summary": "List items", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Items"], "summary": "Create an item", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/items/{id}": {
            "get": {"tags": ["Items"], "summary": "Get item detail", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Items"], "summary": "Update an item", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Items"], "summary": "Delete an item", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/items/{id}/toggle": {"post": {"tags": ["Items"], "summary": "Toggle completion", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Incomplete sub-items"}}}},
        "/api/calendar/items": {"get": {"tags": ["Calendar"], "summary": "Categorized items for a date", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/calendar/events": {
            "get": {"tags": ["Calendar"], "summary": "External events for a date", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Calendar"], "summary": "Create an external event", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "503": {"description": "Calendar not configured"}}}
        },
        "/api/calendar/events/{eventId}": {"delete": {"tags": ["Calendar"], "summary": "Delete an external event", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "503": {"description": "Calendar not configured"}}}},
        "/api/notes": {
            "get": {"tags": ["Notes"], "summary": "List notes", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Notes"], "summary": "Create a note", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/api/notes/{id}": {
            "get": {"tags": ["Notes"], "summary": "Get a note", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Notes"], "summary": "Update a note", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Notes"], "summary": "Delete a note", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/notes/{id}/checklist": {"post": {"tags": ["Notes"], "summary": "Tick or untick checklist lines", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/lists": {
            "get": {"tags": ["Lists"], "summary": "List lists", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Lists"], "summary": "Create a list", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/lists/{id}": {
            "get": {"tags": ["Lists"], "summary": "Get a list with its entries", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Lists"], "summary": "Rename or pin a list", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Lists"], "summary": "Delete a list and its entries", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/lists/{id}/entries": {"post": {"tags": ["Lists"], "summary": "Append an entry", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/lists/{id}/entries/{entryId}": {
            "patch": {"tags": ["Lists"], "summary": "Rename or check off an entry", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Lists"], "summary": "Remove an entry", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/lists/{id}/clear-checked": {"post": {"tags": ["Lists"], "summary": "Remove every checked entry", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "LifeOS API",
	Description:      "Personal task, habit and reminder planner with a categorized calendar view.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
