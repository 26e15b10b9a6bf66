package routes

import (
	"github.com/gin-gonic/gin"

	feedhandler "litrevu/internal/interfaces/http/handlers/feed"
	"litrevu/internal/interfaces/http/middleware"
)

// FeedRouteConfig holds dependencies for the feed routes.
type FeedRouteConfig struct {
	FeedHandler    *feedhandler.FeedHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupFeedRoutes configures the home feed and own-posts pages.
func SetupFeedRoutes(engine *gin.Engine, cfg *FeedRouteConfig) {
	engine.GET("/home/", cfg.AuthMiddleware.RequireAuth(), cfg.FeedHandler.Home)
	engine.GET("/posts/", cfg.AuthMiddleware.RequireAuth(), cfg.FeedHandler.OwnPosts)
}
