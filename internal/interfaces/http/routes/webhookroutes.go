// Package routes wires HTTP handlers onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	webhookhandlers "github.com/Belkouche/jarvis-sub000/internal/interfaces/http/handlers/webhook"
)

type WebhookRouteConfig struct {
	WebhookHandler *webhookhandlers.WebhookHandler
}

func SetupWebhookRoutes(engine *gin.Engine, config *WebhookRouteConfig) {
	webhook := engine.Group("/webhook")
	{
		webhook.POST("/messages", config.WebhookHandler.ProcessMessage)
		webhook.GET("/outcomes", config.WebhookHandler.ListOutcomes)
	}
}
