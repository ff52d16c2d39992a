package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Media Content API",
        "description": "Read-only query layer over the media content catalog",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Content", "description": "Filtered, paginated and full-text content queries"},
        {"name": "Stats", "description": "Aggregate statistics"},
        {"name": "Health", "description": "Service health"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health check including database and Redis reachability",
                "responses": {
                    "200": {"description": "Healthy"},
                    "500": {"description": "Unhealthy"}
                }
            }
        },
        "/content": {
            "get": {
                "tags": ["Content"],
                "summary": "List content with optional filters",
                "parameters": [
                    {"name": "type", "in": "query", "type": "string", "description": "Matches source_type or media_type"},
                    {"name": "format", "in": "query", "type": "string", "description": "Exact file format"},
                    {"name": "author", "in": "query", "type": "string", "description": "Author name substring, case-insensitive"},
                    {"name": "page", "in": "query", "type": "integer", "default": 1},
                    {"name": "limit", "in": "query", "type": "integer", "default": 50, "maximum": 100}
                ],
                "responses": {
                    "200": {"description": "Content page with pagination and echoed filters"}
                }
            }
        },
        "/content/{id}": {
            "get": {
                "tags": ["Content"],
                "summary": "Fetch one content record",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Content record"},
                    "404": {"description": "Content not found"}
                }
            }
        },
        "/content/recent": {
            "get": {
                "tags": ["Content"],
                "summary": "Most recently created content",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer", "default": 10},
                    {"name": "type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Recent content"}
                }
            }
        },
        "/content/by-author": {
            "get": {
                "tags": ["Content"],
                "summary": "All content by an author",
                "parameters": [
                    {"name": "author", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Matching content"},
                    "400": {"description": "Missing author parameter"}
                }
            }
        },
        "/search": {
            "get": {
                "tags": ["Content"],
                "summary": "Full-text search across title, body, author and topics",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "required": true},
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer", "default": 1},
                    {"name": "limit", "in": "query", "type": "integer", "default": 20}
                ],
                "responses": {
                    "200": {"description": "Search results"},
                    "400": {"description": "Missing q parameter"}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["Stats"],
                "summary": "Aggregate statistics over the content universe",
                "responses": {
                    "200": {"description": "Statistics payload"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Media Content API",
	Description:      "Read-only query layer over the media content catalog",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
