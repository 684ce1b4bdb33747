// Package docs registra la especificación OpenAPI servida en /swagger/*.
// Se regenera con `swag init -g cmd/api/main.go`.
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
        "/getName": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Nombre del último gato",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cats.nameResponse"}}
                }
            }
        },
        "/setName": {
            "post": {
                "description": "Crea un gato con nombre ` + "`" + `firstname lastname` + "`" + ` y ` + "`" + `beds` + "`" + ` camas. Pasa a ser el último gato.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Crear gato",
                "parameters": [
                    {"description": "Datos del gato", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cats.setNameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cats.catSummary"}},
                    "400": {"description": "campos faltantes o inválidos", "schema": {"$ref": "#/definitions/cats.errorResponse"}},
                    "500": {"description": "internal error", "schema": {"$ref": "#/definitions/cats.errorResponse"}}
                }
            }
        },
        "/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Buscar gato por nombre",
                "parameters": [
                    {"type": "string", "description": "Nombre exacto", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cats.catSummary"}},
                    "400": {"description": "Name is required to perform a search", "schema": {"$ref": "#/definitions/cats.errorResponse"}},
                    "404": {"description": "No cats found", "schema": {"$ref": "#/definitions/cats.errorResponse"}}
                }
            }
        },
        "/updateLast": {
            "post": {
                "description": "Incrementa bedsOwned del último gato creado/actualizado y lo persiste. No relee del store.",
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Sumar una cama al último gato",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cats.catSummary"}},
                    "500": {"description": "internal error", "schema": {"$ref": "#/definitions/cats.errorResponse"}}
                }
            }
        },
        "/setDog": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Crear perro",
                "parameters": [
                    {"description": "Datos del perro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dogs.setDogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.dogSummary"}},
                    "400": {"description": "campos faltantes o inválidos", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "500": {"description": "internal error", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            }
        },
        "/searchDog": {
            "get": {
                "description": "Busca por nombre, incrementa age, lo persiste y devuelve el valor ya incrementado.",
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Buscar perro y sumarle un año",
                "parameters": [
                    {"type": "string", "description": "Nombre exacto", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.dogSummary"}},
                    "400": {"description": "Name is required to perform a search", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "404": {"description": "No dogs found", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "500": {"description": "internal error", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            }
        },
        "/updateLastDog": {
            "post": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Sumar un año al último perro",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.dogSummary"}},
                    "500": {"description": "internal error", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "cats.catSummary": {
            "type": "object",
            "properties": {"beds": {"type": "integer"}, "name": {"type": "string"}}
        },
        "cats.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "cats.nameResponse": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "cats.setNameRequest": {
            "type": "object",
            "properties": {"beds": {"type": "integer"}, "firstname": {"type": "string"}, "lastname": {"type": "string"}}
        },
        "dogs.dogSummary": {
            "type": "object",
            "properties": {"age": {"type": "integer"}, "breed": {"type": "string"}, "name": {"type": "string"}}
        },
        "dogs.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "dogs.setDogRequest": {
            "type": "object",
            "properties": {"age": {"type": "integer"}, "breed": {"type": "string"}, "name": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "pet-records API",
	Description:      "Registros de gatos y perros: alta, búsqueda y actualización del último registro.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
