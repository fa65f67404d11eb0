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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["misc"],
                "summary": "Server greeting",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            }
        },
        "/free-endpoint": {
            "get": {
                "produces": ["application/json"],
                "tags": ["misc"],
                "summary": "Unauthenticated endpoint",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            }
        },
        "/auth-endpoint": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["misc"],
                "summary": "Token check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"description": "Email and password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.credentialsRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.credentialsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.logoutResponse"}}}
            }
        },
        "/fetch-palette": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["palette"],
                "summary": "Fetch the caller's palette",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Palette"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/auth-endpoint-post": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["palette"],
                "summary": "Create a seeded palette",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.createPaletteResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["programs"],
                "summary": "Prepend a program",
                "parameters": [{"description": "Program fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.programRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/{paletteId}/programs": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["programs"],
                "summary": "Add a program",
                "parameters": [
                    {"type": "string", "description": "Palette id", "name": "paletteId", "in": "path", "required": true},
                    {"description": "New program", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addProgramRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Palette"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/{paletteId}/programs/{programId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["programs"],
                "summary": "Delete a program",
                "parameters": [
                    {"type": "string", "description": "Palette id", "name": "paletteId", "in": "path", "required": true},
                    {"type": "string", "description": "Program id", "name": "programId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/{paletteId}/edit/{progId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["programs"],
                "summary": "Edit a program",
                "parameters": [
                    {"type": "string", "description": "Palette id", "name": "paletteId", "in": "path", "required": true},
                    {"type": "string", "description": "Program id", "name": "progId", "in": "path", "required": true},
                    {"description": "Updated program", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.editProgramRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UpdateAck"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/{paletteId}/insert-new-category": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Insert a category",
                "parameters": [
                    {"type": "string", "description": "Palette id", "name": "paletteId", "in": "path", "required": true},
                    {"description": "New category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.insertCategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Palette"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/{paletteId}/delete-category/{categoryId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [
                    {"type": "string", "description": "Palette id", "name": "paletteId", "in": "path", "required": true},
                    {"type": "string", "description": "Category id", "name": "categoryId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Palette"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "error": {"type": "string"}}
        },
        "domain.Duration": {
            "type": "object",
            "properties": {"minutes": {"type": "integer"}, "seconds": {"type": "integer"}}
        },
        "domain.Program": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "filename": {"type": "string"},
                "duration": {"$ref": "#/definitions/domain.Duration"},
                "category": {"type": "string"},
                "info": {"type": "string"}
            }
        },
        "domain.Category": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "color": {"type": "string"}}
        },
        "domain.Palette": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "user": {"type": "string"},
                "tvPrograms": {"type": "array", "items": {"$ref": "#/definitions/domain.Program"}},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}}
            }
        },
        "domain.UpdateAck": {
            "type": "object",
            "properties": {"acknowledged": {"type": "boolean"}, "matchedCount": {"type": "integer"}, "modifiedCount": {"type": "integer"}}
        },
        "domain.User": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "email": {"type": "string"}, "createdAt": {"type": "string"}}
        },
        "handler.credentialsRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.registerResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/domain.User"}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "email": {"type": "string"}, "token": {"type": "string"}}
        },
        "handler.logoutResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.createPaletteResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "palette": {"$ref": "#/definitions/domain.Palette"}}
        },
        "handler.programRequest": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "duration": {"$ref": "#/definitions/domain.Duration"},
                "category": {"type": "string"},
                "info": {"type": "string"}
            }
        },
        "handler.addProgramRequest": {
            "type": "object",
            "properties": {"newProg": {"$ref": "#/definitions/handler.programRequest"}}
        },
        "handler.editProgramRequest": {
            "type": "object",
            "properties": {"updProg": {"$ref": "#/definitions/handler.programRequest"}}
        },
        "handler.insertCategoryRequest": {
            "type": "object",
            "properties": {
                "newCategory": {
                    "type": "object",
                    "required": ["name"],
                    "properties": {"name": {"type": "string"}, "color": {"type": "string"}}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TV Palette API",
	Description:      "Users, bearer tokens and per-user palettes of scheduled TV programs and categories.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
