package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/complaintdesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/complaintdesk/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.List)
		notifications.PATCH("/:id/read", config.NotificationHandler.MarkRead)
	}
}
