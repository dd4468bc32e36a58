package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific paths (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/statistics", config.TicketHandler.GetStatistics)

		// Sub-resource endpoints
		tickets.POST("/:id/annotations", config.TicketHandler.AddAnnotation)
		tickets.GET("/:id/annotations", config.TicketHandler.ListAnnotations)
		tickets.DELETE("/:id/annotations/:annotationId", config.TicketHandler.DeleteAnnotation)
		tickets.POST("/:id/attachments", config.TicketHandler.UploadAttachment)
		tickets.GET("/:id/files/:fileIndex", config.TicketHandler.GetAttachment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
