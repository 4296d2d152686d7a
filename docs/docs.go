// Package docs holds the Swagger 2.0 document served under /swagger.
// It follows the layout swag emits for the controller annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/airlines": {
            "get": {
                "description": "Returns all airlines with their airport links. No filtering or pagination.",
                "produces": ["application/json"],
                "tags": ["airlines"],
                "summary": "List airlines",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/models.Airline"}
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Creates an airline with one link per airport id",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["airlines"],
                "summary": "Create an airline",
                "parameters": [
                    {
                        "description": "Airline name and airport ids",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateAirlineRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/models.Airline"}
                    },
                    "400": {
                        "description": "Invalid request data",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/airlines/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["airlines"],
                "summary": "Get an airline",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Airline ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.Airline"}
                    },
                    "400": {
                        "description": "Invalid airline ID",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "404": {
                        "description": "Airline not found",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "tags": ["airlines"],
                "summary": "Delete an airline",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Airline ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {"description": "Airline deleted"},
                    "400": {
                        "description": "Invalid airline ID",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            },
            "patch": {
                "description": "Replaces the name and the full set of airport links in one transaction",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["airlines"],
                "summary": "Update an airline",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Airline ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New name and airport ids",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.UpdateAirlineRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.Airline"}
                    },
                    "400": {
                        "description": "Invalid request data",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "404": {
                        "description": "Airline not found",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/airports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["airports"],
                "summary": "List airports",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/models.Airport"}
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.CreateAirlineRequest": {
            "type": "object",
            "required": ["airportIds", "name"],
            "properties": {
                "airportIds": {
                    "type": "array",
                    "items": {"type": "string"},
                    "example": ["1", "2"]
                },
                "name": {"type": "string", "maxLength": 255, "example": "Delta"}
            }
        },
        "dto.UpdateAirlineRequest": {
            "type": "object",
            "required": ["airportIds", "name"],
            "properties": {
                "airportIds": {"type": "string", "example": "1,2,3"},
                "name": {"type": "string", "maxLength": 255, "example": "Delta Air Lines"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "details": {},
                "error": {"type": "string", "example": "Airline not found."}
            }
        },
        "models.Airline": {
            "type": "object",
            "properties": {
                "airlineAirport": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/models.AirlineAirport"}
                },
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.AirlineAirport": {
            "type": "object",
            "properties": {
                "airlineId": {"type": "integer"},
                "airportId": {"type": "integer"},
                "id": {"type": "integer"}
            }
        },
        "models.Airport": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "code": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Airline Hub API",
	Description:      "API for managing airlines and the airports they serve",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
