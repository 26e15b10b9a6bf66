package routes

import (
	"github.com/gin-gonic/gin"

	authhandler "litrevu/internal/interfaces/http/handlers/auth"
	"litrevu/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for the login and signup routes.
type AuthRouteConfig struct {
	AuthHandler    *authhandler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginRateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures the anonymous entry points. The login page is
// the site root.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.GET("/", cfg.AuthHandler.ShowLogin)
	engine.POST("/", cfg.LoginRateLimit, cfg.AuthHandler.Login)

	engine.GET("/signup/", cfg.AuthHandler.ShowSignup)
	engine.POST("/signup/", cfg.AuthHandler.Signup)

	engine.GET("/logout/", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
}
