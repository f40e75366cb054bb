package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/complaintdesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/complaintdesk/internal/interfaces/http/middleware"
)

type TeamRouteConfig struct {
	TeamHandler    *handlers.TeamHandler
	AuthMiddleware *middleware.AuthMiddleware
	WriteLimit     gin.HandlerFunc
}

func SetupTeamRoutes(api *gin.RouterGroup, config *TeamRouteConfig) {
	teams := api.Group("/teams")
	teams.Use(config.AuthMiddleware.RequireAuth())
	{
		teams.POST("/:id/members", withLimit(config.WriteLimit, config.TeamHandler.AddMember)...)
		teams.DELETE("/:id/members/:user_id", config.TeamHandler.RemoveMember)
	}
}
