// Package docs registers the OpenAPI document served at /spec and /docs.
// Regenerate with `swag init -g cmd/bookcritic/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "emma.idika@yahoo.com"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/books": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "List books",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/data.Book"}}},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/v1/books/{bookId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["books"],
                "summary": "Show details of a book",
                "parameters": [{"type": "integer", "description": "ID of book to show", "name": "bookId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.Book"}},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/v1/books/{bookId}/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List reviews of a book",
                "parameters": [{"type": "integer", "description": "ID of book", "name": "bookId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/data.Review"}}},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Review a book",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "token", "in": "header", "required": true},
                    {"type": "integer", "description": "ID of book to review", "name": "bookId", "in": "path", "required": true},
                    {"description": "JSON payload required to review a book", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateReviewRequestBody"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/data.Review"}},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/v1/reviews/{reviewId}/likes": {
            "post": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Like a review",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "token", "in": "header", "required": true},
                    {"type": "integer", "description": "ID of review to like", "name": "reviewId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LikeReviewResponse"}},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/v1/challenges": {
            "post": {
                "produces": ["application/json"],
                "tags": ["challenges"],
                "summary": "Request a challenge",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ChallengeResponse"}}
                }
            }
        },
        "/v1/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [{"description": "JSON payload required to register a user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterUserRequestBody"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/data.User"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/v1/users/{username}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Show a public profile",
                "parameters": [{"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/data.User"}},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/v1/tokens/authentication": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tokens"],
                "summary": "Login",
                "parameters": [{"description": "JSON payload required to create an authentication token", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateAuthenticationTokenRequestBody"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/data.Token"}},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"},
                    "422": {"description": "Unprocessable Entity"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["tokens"],
                "summary": "Logout",
                "parameters": [{"type": "string", "description": "Bearer token", "name": "token", "in": "header", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    },
    "definitions": {
        "data.Book": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "author_name": {"type": "string"},
                "year_published": {"type": "integer"},
                "rating": {"$ref": "#/definitions/data.Rating"},
                "image_url": {"type": "string"}
            }
        },
        "data.Rating": {
            "type": "object",
            "properties": {
                "buckets": {"type": "array", "items": {"type": "integer"}},
                "count": {"type": "integer"},
                "average": {"type": "number"}
            }
        },
        "data.Review": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "book_id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "rating": {"type": "integer"},
                "likes": {"type": "integer"},
                "username": {"type": "string"},
                "profile_picture": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "data.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "profile_picture": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "data.Token": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expiry": {"type": "string"}
            }
        },
        "dto.CreateReviewRequestBody": {
            "type": "object",
            "required": ["title", "content", "rating", "challenge_token", "challenge_answer"],
            "properties": {
                "title": {"type": "string", "maxLength": 255},
                "content": {"type": "string", "maxLength": 10000},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "challenge_token": {"type": "string"},
                "challenge_answer": {"type": "string"}
            }
        },
        "dto.LikeReviewResponse": {
            "type": "object",
            "properties": {
                "review_id": {"type": "integer"},
                "likes": {"type": "integer"}
            }
        },
        "dto.ChallengeResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "prompt": {"type": "string"}
            }
        },
        "dto.RegisterUserRequestBody": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string", "minLength": 8, "maxLength": 72},
                "profile_picture": {"type": "string"}
            }
        },
        "dto.CreateAuthenticationTokenRequestBody": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookcritic API",
	Description:      "This is an API service for book reviews and ratings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
