// Package docs holds the Swagger 2.0 document for the handler annotations in
// api/handlers, in the layout swag init emits. Regenerate with
// swag init -g cmd/predictor/main.go after changing an annotation.
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
        "/api/v1/features": {
            "get": {
                "description": "Returns the 30 features in the order the model expects them",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "prediction"
                ],
                "summary": "List input features",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.FeaturesResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/predict": {
            "post": {
                "description": "Scales the 30 features and classifies them with the loaded model",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "prediction"
                ],
                "summary": "Predict benign or malignant",
                "parameters": [
                    {
                        "description": "Feature values keyed by name, or a row in schema order",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.PredictRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.PredictResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Service health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "string",
                    "example": "Key: 'PredictRequest.Features' Error:Field validation for 'Features' failed on the 'required_without' tag"
                },
                "error": {
                    "type": "string",
                    "example": "invalid request"
                }
            }
        },
        "handlers.FeatureInfo": {
            "type": "object",
            "properties": {
                "aggregation": {
                    "type": "string",
                    "example": "mean"
                },
                "default": {
                    "type": "number",
                    "example": 1
                },
                "index": {
                    "type": "integer",
                    "example": 0
                },
                "measurement": {
                    "type": "string",
                    "example": "radius"
                },
                "min": {
                    "type": "number",
                    "example": 0
                },
                "name": {
                    "type": "string",
                    "example": "radius_mean"
                }
            }
        },
        "handlers.FeaturesResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "example": 30
                },
                "features": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handlers.FeatureInfo"
                    }
                }
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2024-01-15T10:30:00Z"
                }
            }
        },
        "handlers.PredictRequest": {
            "type": "object",
            "properties": {
                "features": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "values": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                }
            }
        },
        "handlers.PredictResponse": {
            "type": "object",
            "properties": {
                "confidence": {
                    "type": "number",
                    "example": 0.9977
                },
                "confidence_percent": {
                    "type": "string",
                    "example": "99.77%"
                },
                "label": {
                    "type": "integer",
                    "example": 1
                },
                "label_name": {
                    "type": "string",
                    "example": "malignant"
                },
                "message": {
                    "type": "string",
                    "example": "Prediction: Malignant (Cancerous)"
                },
                "tone": {
                    "type": "string",
                    "example": "error"
                }
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
	Title:            "Breast Cancer Predictor API",
	Description:      "Single-row benign/malignant prediction over 30 tumor measurements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
