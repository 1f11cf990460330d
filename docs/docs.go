// Package docs holds the swagger document served at /swagger. It is kept by
// hand and must be updated when the HTTP surface changes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/lookup-email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["magiclink"],
                "summary": "Look up an email and issue a magic link",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["email"],
                            "properties": {
                                "email": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Magic link generated"},
                    "400": {"description": "Email is required"},
                    "404": {"description": "Email or startup not found"},
                    "500": {"description": "Internal server error"}
                }
            }
        },
        "/dashboard/{token}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["dashboard"],
                "summary": "Render the startup dashboard",
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {"description": "Dashboard HTML"},
                    "401": {"description": "Invalid or expired link page"}
                }
            }
        },
        "/update-profile": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Update a team member profile",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["token", "memberId", "updates"],
                            "properties": {
                                "token": {"type": "string"},
                                "memberId": {"type": "string"},
                                "updates": {
                                    "type": "object",
                                    "additionalProperties": {"type": "string"}
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Profile updated"},
                    "400": {"description": "Invalid request payload"},
                    "401": {"description": "Invalid or expired token"},
                    "403": {"description": "Not authorized for this member"},
                    "404": {"description": "Member not found"},
                    "500": {"description": "Internal server error"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "FounderDesk API",
	Description:      "Magic-link authentication and team roster dashboard for startup-program members",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
