package routes

import (
	"github.com/gin-gonic/gin"

	tickethandler "litrevu/internal/interfaces/http/handlers/ticket"
	"litrevu/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for the ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *tickethandler.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures the ticket creation and edit pages.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets", cfg.AuthMiddleware.RequireAuth())
	{
		tickets.GET("/create/", cfg.TicketHandler.ShowCreate)
		tickets.POST("/create/", cfg.TicketHandler.Create)
		tickets.GET("/update/:ticket_id/", cfg.TicketHandler.ShowUpdate)
		tickets.POST("/update/:ticket_id/", cfg.TicketHandler.Edit)
	}
}
