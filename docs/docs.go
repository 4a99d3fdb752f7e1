// Package docs registra la especificación OpenAPI del servicio en swag.
// Se regenera con `swag init -g cmd/api/main.go` a partir de las anotaciones
// de los handlers.
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
        "/personajes": {
            "get": {
                "description": "Devuelve la colección completa en el orden de almacenamiento, sin formatear.",
                "produces": ["application/json"],
                "tags": ["personajes"],
                "summary": "Listar personajes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/personajes.Personaje"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/personajes.errorResponse"}}
                }
            },
            "put": {
                "description": "Reemplazo completo: los campos que no vienen en el cuerpo se pierden. El id va en el cuerpo.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["personajes"],
                "summary": "Reemplazar personaje",
                "parameters": [
                    {"description": "Documento de reemplazo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/personajes.personajeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/personajes.mutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/personajes.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/personajes.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/personajes.errorResponse"}}
                }
            },
            "post": {
                "description": "El id lo asigna el cliente. Requiere nombre, edad, genero, raza y clase.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["personajes"],
                "summary": "Crear personaje",
                "parameters": [
                    {"description": "Personaje a crear", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/personajes.personajeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/personajes.mutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/personajes.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/personajes.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/personajes.errorResponse"}}
                }
            }
        },
        "/personajes/ordenados": {
            "get": {
                "description": "Orden alfabético sin distinguir mayúsculas ni acentos. No modifica el orden guardado.",
                "produces": ["application/json"],
                "tags": ["personajes"],
                "summary": "Listar personajes ordenados por nombre",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/personajes.Personaje"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/personajes.errorResponse"}}
                }
            }
        },
        "/personajes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["personajes"],
                "summary": "Obtener personaje por id",
                "parameters": [
                    {"type": "integer", "description": "ID del personaje", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/personajes.getResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/personajes.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/personajes.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/personajes.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["personajes"],
                "summary": "Eliminar personaje",
                "parameters": [
                    {"type": "integer", "description": "ID del personaje", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/personajes.mutationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/personajes.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/personajes.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/personajes.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "personajes.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "mensaje": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "personajes.Personaje": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "edad": {"type": "number"},
                "genero": {"type": "string"},
                "raza": {"type": "string"},
                "clase": {"type": "string"},
                "profesion": {"type": "string"},
                "personalidad": {"type": "string"},
                "vivo": {"type": "boolean"},
                "img": {"type": "string"},
                "frase": {"type": "string"}
            }
        },
        "personajes.PersonajeFormateado": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "edad": {"type": "number"},
                "profesion": {"type": "string"},
                "personalidad": {"type": "string"},
                "estado": {"type": "string"},
                "imagen": {"type": "string"},
                "genero": {"type": "string"},
                "raza": {"type": "string"},
                "clase": {"type": "string"},
                "fraseiconica": {"type": "string"}
            }
        },
        "personajes.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "detalle": {"type": "string"}
            }
        },
        "personajes.getResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "mensaje": {"type": "string"},
                "data": {"$ref": "#/definitions/personajes.PersonajeFormateado"}
            }
        },
        "personajes.mutationResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "personaje": {"$ref": "#/definitions/personajes.Personaje"}
            }
        },
        "personajes.personajeRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "edad": {"type": "number"},
                "genero": {"type": "string"},
                "raza": {"type": "string"},
                "clase": {"type": "string"}
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
	Title:            "Personajes API",
	Description:      "CRUD de personajes persistidos en un archivo JSON.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
