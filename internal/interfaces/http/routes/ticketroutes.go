package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/Belkouche/jarvis-sub000/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.PATCH("/:id/status", config.TicketHandler.UpdateTicketStatus)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
