package routes

import (
	"github.com/gin-gonic/gin"

	reviewhandler "litrevu/internal/interfaces/http/handlers/review"
	"litrevu/internal/interfaces/http/middleware"
)

// ReviewRouteConfig holds dependencies for the review routes.
type ReviewRouteConfig struct {
	ReviewHandler  *reviewhandler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupReviewRoutes configures the review pages. The bare create path serves
// the combined ticket-and-review form; the ticket-scoped one answers an
// existing ticket.
func SetupReviewRoutes(engine *gin.Engine, cfg *ReviewRouteConfig) {
	reviews := engine.Group("/reviews", cfg.AuthMiddleware.RequireAuth())
	{
		reviews.GET("/create/", cfg.ReviewHandler.ShowCreateWithTicket)
		reviews.POST("/create/", cfg.ReviewHandler.CreateWithTicket)
		reviews.GET("/create/:ticket_id/", cfg.ReviewHandler.ShowCreateForTicket)
		reviews.POST("/create/:ticket_id/", cfg.ReviewHandler.CreateForTicket)

		reviews.GET("/update/:review_id/", cfg.ReviewHandler.ShowUpdate)
		reviews.POST("/update/:review_id/", cfg.ReviewHandler.Edit)

		reviews.GET("/:review_id/", cfg.ReviewHandler.Detail)
		reviews.POST("/:review_id/", cfg.ReviewHandler.AddComment)
	}
}
