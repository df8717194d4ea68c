// Package docs registers the OpenAPI document served under /swagger.
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
    "paths": {
        "/idosos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["elders"],
                "summary": "List every registered elder",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ElderResponse"}}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["elders"],
                "summary": "Register an elder",
                "parameters": [
                    {"in": "body", "name": "elder", "required": true, "schema": {"$ref": "#/definitions/dto.CreateElderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreateElderResponse"}},
                    "400": {"description": "Missing required fields", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/idosos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["elders"],
                "summary": "Get an elder",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ElderResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["elders"],
                "summary": "Delete an elder",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/cep/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "Resolve a postal code (CEP) into an address",
                "parameters": [{"in": "path", "name": "code", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AddressResponse"}},
                    "404": {"description": "Unknown postal code", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Provider failure", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateElderRequest": {
            "type": "object",
            "required": ["name", "age", "guardian_name", "guardian_phone", "postal_code"],
            "properties": {
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "guardian_name": {"type": "string"},
                "guardian_phone": {"type": "string", "maxLength": 15},
                "postal_code": {"type": "string", "maxLength": 9},
                "street": {"type": "string"},
                "number": {"type": "string"},
                "neighborhood": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "dto.CreateElderResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "id": {"type": "integer"}
            }
        },
        "dto.ElderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "guardian_name": {"type": "string"},
                "guardian_phone": {"type": "string"},
                "postal_code": {"type": "string"},
                "street": {"type": "string"},
                "number": {"type": "string"},
                "neighborhood": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "dto.AddressResponse": {
            "type": "object",
            "properties": {
                "street": {"type": "string"},
                "number": {"type": "string"},
                "neighborhood": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "postal_code": {"type": "string"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Idosos API",
	Description:      "Registration of elders under care and postal code lookup.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
