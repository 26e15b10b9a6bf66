package routes

import (
	"github.com/gin-gonic/gin"

	followhandler "litrevu/internal/interfaces/http/handlers/follow"
	"litrevu/internal/interfaces/http/middleware"
)

// FollowRouteConfig holds dependencies for the follow graph routes.
type FollowRouteConfig struct {
	FollowHandler  *followhandler.FollowHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupFollowRoutes configures the subscription management pages.
func SetupFollowRoutes(engine *gin.Engine, cfg *FollowRouteConfig) {
	followings := engine.Group("/followings", cfg.AuthMiddleware.RequireAuth())
	{
		followings.GET("/", cfg.FollowHandler.List)
		followings.POST("/", cfg.FollowHandler.Follow)
		followings.GET("/unfollow/:user_id/", cfg.FollowHandler.Unfollow)
	}
}
