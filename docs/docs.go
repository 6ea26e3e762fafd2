// Package docs holds the swagger document of the HTTP API, served under /swagger
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
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
        "/health": {
            "get": {
                "description": "Report service and database availability",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/translate": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Translate a keyed set of texts, applying the glossary of the language pair when one is ready",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["translation"],
                "summary": "Translate texts",
                "parameters": [
                    {"description": "Texts and languages", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TranslateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TranslateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/glossary/entries": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Get all glossary entry aggregates with their texts per language",
                "produces": ["application/json"],
                "tags": ["glossary"],
                "summary": "List glossary entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.EntriesResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Create an entry aggregate with a text for every configured language",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["glossary"],
                "summary": "Create glossary entry",
                "parameters": [
                    {"description": "Texts per language", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EntryTextsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.EntriesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/glossary/entries/{aggregateIdentifier}": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Update the texts of an entry aggregate; languages without an entry are added",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["glossary"],
                "summary": "Update glossary entry",
                "parameters": [
                    {"type": "string", "description": "Aggregate identifier", "name": "aggregateIdentifier", "in": "path", "required": true},
                    {"description": "Texts per language", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EntryTextsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.EntriesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Delete every entry of an aggregate",
                "produces": ["application/json"],
                "tags": ["glossary"],
                "summary": "Delete glossary entry",
                "parameters": [
                    {"type": "string", "description": "Aggregate identifier", "name": "aggregateIdentifier", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.EntriesResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/glossary/language-pairs": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Get the configured language pairs the provider supports for glossaries",
                "produces": ["application/json"],
                "tags": ["glossary"],
                "summary": "Get glossary language pairs",
                "parameters": [
                    {"type": "string", "description": "Comma-separated languages; only pairs containing one of them are returned", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LanguagePairsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/glossary/status": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Report for every usable language pair whether its provider glossary is ready and up to date",
                "produces": ["application/json"],
                "tags": ["glossary"],
                "summary": "Get glossary status",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GlossaryStatus"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/glossary/sync": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Replace the provider glossary of every usable language pair with the stored entries",
                "produces": ["application/json"],
                "tags": ["glossary"],
                "summary": "Synchronise glossaries",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GlossarySyncResult"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.TranslateRequest": {
            "type": "object",
            "properties": {
                "texts": {"type": "object", "additionalProperties": {"type": "string"}},
                "targetLanguage": {"type": "string"},
                "sourceLanguage": {"type": "string"}
            }
        },
        "models.TranslateResponse": {
            "type": "object",
            "properties": {
                "translations": {"type": "object", "additionalProperties": {"type": "string"}},
                "outcome": {"type": "string", "enum": ["success", "degraded"]}
            }
        },
        "models.EntryAggregate": {
            "type": "object",
            "properties": {
                "aggregateIdentifier": {"type": "string"},
                "texts": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "models.EntryTextsRequest": {
            "type": "object",
            "properties": {
                "aggregateIdentifier": {"type": "string"},
                "texts": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "models.EntriesResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "languages": {"type": "array", "items": {"type": "string"}},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/models.EntryAggregate"}}
            }
        },
        "models.LanguagePair": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "target": {"type": "string"}
            }
        },
        "models.LanguagePairsResponse": {
            "type": "object",
            "properties": {
                "languagePairs": {"type": "array", "items": {"$ref": "#/definitions/models.LanguagePair"}},
                "languages": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.GlossaryStatus": {
            "type": "object",
            "properties": {
                "sourceLang": {"type": "string"},
                "targetLang": {"type": "string"},
                "glossaryId": {"type": "string"},
                "creationDate": {"type": "string", "format": "date-time"},
                "isOutdated": {"type": "boolean"},
                "canBeUsed": {"type": "boolean"}
            }
        },
        "models.GlossarySyncResult": {
            "type": "object",
            "properties": {
                "sourceLang": {"type": "string"},
                "targetLang": {"type": "string"},
                "entryCount": {"type": "integer"},
                "deleted": {"type": "integer"},
                "created": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Admin API key",
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Glossary Gateway API",
	Description:      "Machine translation gateway with managed provider glossaries",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
