package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "github.com/Belkouche/jarvis-sub000/internal/interfaces/http/handlers/complaint"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	complaints := engine.Group("/complaints")
	{
		complaints.POST("", config.ComplaintHandler.CreateComplaint)
		complaints.GET("", config.ComplaintHandler.ListComplaints)

		// Specific action endpoints must come before the generic /:id routes.
		complaints.POST("/:id/assign", config.ComplaintHandler.AssignComplaint)
		complaints.POST("/:id/resolve", config.ComplaintHandler.ResolveComplaint)
		complaints.POST("/:id/notes", config.ComplaintHandler.AddNote)

		complaints.GET("/:id", config.ComplaintHandler.GetComplaint)
	}
}
