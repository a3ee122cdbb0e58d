package routes

import (
	"github.com/gin-gonic/gin"

	templatehandlers "github.com/Belkouche/jarvis-sub000/internal/interfaces/http/handlers/template"
)

type TemplateRouteConfig struct {
	TemplateHandler *templatehandlers.TemplateHandler
}

func SetupTemplateRoutes(engine *gin.Engine, config *TemplateRouteConfig) {
	templates := engine.Group("/templates")
	{
		templates.POST("", config.TemplateHandler.CreateTemplate)
		templates.GET("", config.TemplateHandler.ListTemplates)
		templates.PUT("/:id", config.TemplateHandler.UpdateTemplate)
		templates.DELETE("/:id", config.TemplateHandler.DeleteTemplate)
	}
}
