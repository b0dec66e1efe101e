package routes

import (
	"net/http"

	"github.com/IfedayoAwe/webhook-callback-service/config"
	"github.com/IfedayoAwe/webhook-callback-service/handlers"
	"github.com/IfedayoAwe/webhook-callback-service/middleware"
	echo "github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"
)

const maxWebhookBody = "1M"

func Register(e *echo.Echo, cfg *config.Config, handlers *handlers.Handlers) {
	e.Use(middleware.TraceIDMiddleware(), emw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Ok")
	})

	e.GET("/docs/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, getOpenAPISpec(cfg))
	})

	RegisterWebhookRoutes(e, handlers)
}

func RegisterWebhookRoutes(e *echo.Echo, handlers *handlers.Handlers) {
	webhookHandler := handlers.Webhook()

	e.POST("/webhook", webhookHandler.ReceiveWebhook,
		emw.Logger(),
		emw.BodyLimit(maxWebhookBody),
		middleware.WebhookTokenMiddleware(),
	)
}

func plainText(description, example string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content": map[string]interface{}{
			"text/plain": map[string]interface{}{
				"schema": map[string]interface{}{
					"type":    "string",
					"example": example,
				},
			},
		},
	}
}

func getOpenAPISpec(cfg *config.Config) map[string]interface{} {
	stringField := map[string]interface{}{"type": "string"}

	return map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "Webhook Callback Service API",
			"version":     "1.0.0",
			"description": "Receives payment webhooks, rejects duplicate transactions and notifies the callback service with confirmar or cancelar.",
		},
		"servers": []map[string]interface{}{
			{
				"url":         "http://" + cfg.Addr(),
				"description": "Configured bind address",
			},
		},
		"paths": map[string]interface{}{
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Health check",
					"description": "Check if the service is running",
					"responses": map[string]interface{}{
						"200": plainText("Service is healthy", "Ok"),
					},
				},
			},
			"/webhook": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":  "Receive a webhook",
					"security": []map[string]interface{}{{"X-Webhook-Token": []string{}}},
					"requestBody": map[string]interface{}{
						"required": true,
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": map[string]interface{}{
									"type": "object",
									"properties": map[string]interface{}{
										"event":          stringField,
										"transaction_id": stringField,
										"amount":         stringField,
										"currency":       stringField,
										"timestamp":      stringField,
									},
								},
							},
						},
					},
					"responses": map[string]interface{}{
						"200": plainText("Transaction recorded and confirmed", "Webhook processed successfully"),
						"400": plainText("Malformed JSON, missing fields or invalid amount", "Invalid or malformed JSON"),
						"401": plainText("Missing or incorrect X-Webhook-Token", "Invalid token"),
						"409": plainText("Transaction already processed", "Transaction already processed"),
						"500": plainText("Unexpected internal failure", "Internal server error"),
					},
				},
			},
		},
		"components": map[string]interface{}{
			"securitySchemes": map[string]interface{}{
				"X-Webhook-Token": map[string]interface{}{
					"type":        "apiKey",
					"in":          "header",
					"name":        "X-Webhook-Token",
					"description": "Shared secret configured on the service",
				},
			},
		},
	}
}
