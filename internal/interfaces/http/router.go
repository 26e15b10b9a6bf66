package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	feedusecases "litrevu/internal/application/feed/usecases"
	reviewusecases "litrevu/internal/application/review/usecases"
	ticketusecases "litrevu/internal/application/ticket/usecases"
	userusecases "litrevu/internal/application/user/usecases"
	"litrevu/internal/infrastructure/auth"
	"litrevu/internal/infrastructure/config"
	"litrevu/internal/infrastructure/email"
	"litrevu/internal/infrastructure/ratelimit"
	"litrevu/internal/infrastructure/repository"
	"litrevu/internal/infrastructure/storage"
	authhandler "litrevu/internal/interfaces/http/handlers/auth"
	feedhandler "litrevu/internal/interfaces/http/handlers/feed"
	followhandler "litrevu/internal/interfaces/http/handlers/follow"
	reviewhandler "litrevu/internal/interfaces/http/handlers/review"
	tickethandler "litrevu/internal/interfaces/http/handlers/ticket"
	"litrevu/internal/interfaces/http/middleware"
	"litrevu/internal/interfaces/http/routes"
	"litrevu/internal/shared/db"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/services/markdown"
)

// Router wires repositories, use cases, handlers and middleware into one
// gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	redisClient    *redis.Client
	authHandler    *authhandler.AuthHandler
	feedHandler    *feedhandler.FeedHandler
	ticketHandler  *tickethandler.TicketHandler
	reviewHandler  *reviewhandler.ReviewHandler
	followHandler  *followhandler.FollowHandler
	authMiddleware *middleware.AuthMiddleware
	loginRateLimit gin.HandlerFunc
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	sessions := auth.NewSessionService(cfg.Auth.Session.Secret, cfg.Auth.Session.ExpHours)
	images := storage.NewLocalImageStore(cfg.Media.UploadDir, cfg.Media.MaxUploadBytes)
	renderer := markdown.NewService()

	var welcome email.WelcomeSender = email.NoopEmailService{}
	if cfg.Email.Enabled {
		welcome = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	}

	var redisClient *redis.Client
	var limiter ratelimit.RateLimiter = ratelimit.NoopRateLimiter{}
	if cfg.Auth.LoginRateLimit > 0 {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, sessions, welcome, log)
	authenticateUC := userusecases.NewAuthenticateUserUseCase(userRepo, hasher, sessions, log)
	followUC := userusecases.NewFollowUserUseCase(userRepo, followRepo, log)
	unfollowUC := userusecases.NewUnfollowUserUseCase(followRepo, log)
	listFollowingsUC := userusecases.NewListFollowingsUseCase(followRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, images, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, reviewRepo, commentRepo, images, txManager, log)

	createReviewUC := reviewusecases.NewCreateReviewUseCase(reviewRepo, ticketRepo, log)
	createCombinedUC := reviewusecases.NewCreateTicketWithReviewUseCase(ticketRepo, reviewRepo, txManager, log)
	getDetailUC := reviewusecases.NewGetReviewDetailUseCase(reviewRepo, ticketRepo, commentRepo, userRepo, renderer, log)
	updateReviewUC := reviewusecases.NewUpdateReviewUseCase(reviewRepo, log)
	deleteReviewUC := reviewusecases.NewDeleteReviewUseCase(reviewRepo, commentRepo, txManager, log)
	addCommentUC := reviewusecases.NewAddCommentUseCase(reviewRepo, commentRepo, log)

	homeFeedUC := feedusecases.NewGetHomeFeedUseCase(followRepo, ticketRepo, reviewRepo, userRepo, log)
	ownPostsUC := feedusecases.NewGetOwnPostsUseCase(ticketRepo, reviewRepo, userRepo, log)

	cookieCfg := cfg.Auth.Cookie

	return &Router{
		engine:      engine,
		cfg:         cfg,
		log:         log,
		redisClient: redisClient,
		authHandler: authhandler.NewAuthHandler(registerUC, authenticateUC, sessions, &cfg.Auth),
		feedHandler: feedhandler.NewFeedHandler(homeFeedUC, ownPostsUC, cookieCfg),
		ticketHandler: tickethandler.NewTicketHandler(
			createTicketUC, getTicketUC, updateTicketUC, deleteTicketUC, images, cookieCfg,
		),
		reviewHandler: reviewhandler.NewReviewHandler(
			createReviewUC, createCombinedUC, getDetailUC, updateReviewUC,
			deleteReviewUC, addCommentUC, getTicketUC, images, cookieCfg,
		),
		followHandler:  followhandler.NewFollowHandler(followUC, unfollowUC, listFollowingsUC, cookieCfg),
		authMiddleware: middleware.NewAuthMiddleware(sessions, log),
		loginRateLimit: middleware.LoginRateLimit(limiter, cfg.Auth.LoginRateLimit, log),
	}
}

// SetupRoutes installs global middleware and registers all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	if len(r.cfg.Server.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	}

	// Uploaded ticket images are served directly.
	r.engine.Static("/media", r.cfg.Media.UploadDir)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		LoginRateLimit: r.loginRateLimit,
	})
	routes.SetupFeedRoutes(r.engine, &routes.FeedRouteConfig{
		FeedHandler:    r.feedHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupReviewRoutes(r.engine, &routes.ReviewRouteConfig{
		ReviewHandler:  r.reviewHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFollowRoutes(r.engine, &routes.FollowRouteConfig{
		FollowHandler:  r.followHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine exposes the underlying gin engine for serving and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	return r.engine.Run(r.cfg.Server.GetAddr())
}

// Shutdown releases resources held by the router.
func (r *Router) Shutdown() error {
	if r.redisClient != nil {
		return r.redisClient.Close()
	}
	return nil
}
