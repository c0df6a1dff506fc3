package api

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
    "paths": {
        "/health": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/symbols": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["codec"],
                "summary": "List the alphabet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SymbolsResponse"}}
                }
            }
        },
        "/encode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["codec"],
                "summary": "Encode bytes",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.EncodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.EncodeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/decode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["codec"],
                "summary": "Decode symbols",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.DecodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DecodeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "api.EncodeRequest": {
            "type": "object",
            "properties": {
                "data": {"type": "string", "format": "byte"},
                "ignore_partial_symbol": {"type": "boolean"}
            }
        },
        "api.EncodeResponse": {
            "type": "object",
            "properties": {
                "encoded": {"type": "string"},
                "symbols": {"type": "integer"}
            }
        },
        "api.DecodeRequest": {
            "type": "object",
            "properties": {
                "encoded": {"type": "string"},
                "ignore_partial_byte": {"type": "boolean"}
            }
        },
        "api.DecodeResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "string", "format": "byte"},
                "bytes": {"type": "integer"}
            }
        },
        "api.SymbolsResponse": {
            "type": "object",
            "properties": {
                "alphabet": {"type": "string"},
                "indices": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8032",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "wibblr REST API",
	Description:      "HTTP access to the wibblr base-32 codec.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
