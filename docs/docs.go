// Package docs holds the OpenAPI description served under /swagger.
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
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/kinds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tokenize"],
                "summary": "List token kinds",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/dto.KindInfo"}
                        }
                    }
                }
            }
        },
        "/scans/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scans"],
                "summary": "Get an archived scan",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Scan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.ScanResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/scans/{id}/tokens": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scans"],
                "summary": "Page through the tokens of an archived scan",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Scan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Cursor from a previous page",
                        "name": "cursor",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "size",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/pagination.CursorResult-dto_IndexedToken"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/tokenize": {
            "post": {
                "description": "Scans the source into tokens. The source field is required; an empty source yields a single EOF token. Unrecognized bytes are skipped and reported as diagnostics. With persist set the scan is archived and its id returned.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tokenize"],
                "summary": "Tokenize source text",
                "parameters": [
                    {
                        "description": "Source to tokenize",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TokenizeRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.TokenizeResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.IndexedToken": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "location": {"$ref": "#/definitions/token.Location"},
                "position": {"type": "integer"},
                "value": {"type": "string"}
            }
        },
        "dto.KindInfo": {
            "type": "object",
            "properties": {
                "hasValue": {"type": "boolean"},
                "name": {"type": "string"},
                "ordinal": {"type": "integer"}
            }
        },
        "dto.ScanResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "diagnostics": {"type": "array", "items": {"$ref": "#/definitions/lexer.Diagnostic"}},
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "rawSource": {"type": "string", "format": "base64"},
                "source": {"type": "string"},
                "tokens": {"type": "array", "items": {"$ref": "#/definitions/token.Token"}}
            }
        },
        "dto.TokenizeRequest": {
            "type": "object",
            "required": ["source"],
            "properties": {
                "name": {"type": "string"},
                "persist": {"type": "boolean"},
                "source": {"type": "string"}
            }
        },
        "dto.TokenizeResponse": {
            "type": "object",
            "properties": {
                "diagnostics": {"type": "array", "items": {"$ref": "#/definitions/lexer.Diagnostic"}},
                "id": {"type": "string", "format": "uuid"},
                "kindCounts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "name": {"type": "string"},
                "tokens": {"type": "array", "items": {"$ref": "#/definitions/token.Token"}}
            }
        },
        "lexer.Diagnostic": {
            "type": "object",
            "properties": {
                "byte": {"type": "integer"},
                "code": {"type": "string"},
                "column": {"type": "integer"},
                "line": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "pagination.CursorResult-dto_IndexedToken": {
            "type": "object",
            "properties": {
                "has_more": {"type": "boolean"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.IndexedToken"}},
                "next_cursor": {"type": "string"}
            }
        },
        "token.Location": {
            "type": "object",
            "properties": {
                "column": {"type": "integer"},
                "length": {"type": "integer"},
                "line": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "token.Token": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "location": {"$ref": "#/definitions/token.Location"},
                "value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.0.1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Proteus Tokenizer API",
	Description:      "Tokenizes protc source text and archives scans",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
