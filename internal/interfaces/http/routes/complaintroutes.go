package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/complaintdesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/complaintdesk/internal/interfaces/http/middleware"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *handlers.ComplaintHandler
	AuthMiddleware   *middleware.AuthMiddleware
	// WriteLimit guards mutating routes; nil disables it.
	WriteLimit gin.HandlerFunc
}

func SetupComplaintRoutes(api *gin.RouterGroup, config *ComplaintRouteConfig) {
	complaints := api.Group("/complaints")
	complaints.Use(config.AuthMiddleware.RequireAuth())
	{
		complaints.POST("", withLimit(config.WriteLimit, config.ComplaintHandler.Submit)...)

		complaints.GET("/:id", config.ComplaintHandler.Get)
		complaints.GET("/:id/history", config.ComplaintHandler.History)

		complaints.POST("/:id/transitions", withLimit(config.WriteLimit, config.ComplaintHandler.Transition)...)
		complaints.POST("/:id/assignment", withLimit(config.WriteLimit, config.ComplaintHandler.Assign)...)
		complaints.POST("/:id/responses", withLimit(config.WriteLimit, config.ComplaintHandler.AddResponse)...)
	}
}

func withLimit(limit gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	if limit == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{limit, handler}
}
