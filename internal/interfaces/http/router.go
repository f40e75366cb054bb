package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orris-inc/complaintdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/complaintdesk/internal/interfaces/http/routes"
)

// Router owns the gin engine built from a Container.
type Router struct {
	container *Container
	engine    *gin.Engine
}

func NewRouter(container *Container) *Router {
	return &Router{
		container: container,
		engine:    container.engine,
	}
}

func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(
		middleware.Recovery(c.log),
		middleware.Logger(c.log),
		middleware.Metrics(c.metrics),
	)
	if origins := c.cfg.Server.AllowedOrigins; len(origins) > 0 {
		r.engine.Use(middleware.CORS(origins))
	}

	r.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})))

	var writeLimit gin.HandlerFunc
	if c.rateLimit != nil {
		writeLimit = c.rateLimit.Limit()
	}

	api := r.engine.Group("/api")

	routes.SetupComplaintRoutes(api, &routes.ComplaintRouteConfig{
		ComplaintHandler: c.hdlrs.complaintHandler,
		AuthMiddleware:   c.authMiddleware,
		WriteLimit:       writeLimit,
	})

	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notificationHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupTeamRoutes(api, &routes.TeamRouteConfig{
		TeamHandler:    c.hdlrs.teamHandler,
		AuthMiddleware: c.authMiddleware,
		WriteLimit:     writeLimit,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
