package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/emilythestrangee/game-reviews/backend/internal/apperror"
	"github.com/emilythestrangee/game-reviews/backend/internal/config"
	"github.com/emilythestrangee/game-reviews/backend/internal/database"
	"github.com/emilythestrangee/game-reviews/backend/internal/handlers"
	"github.com/emilythestrangee/game-reviews/backend/internal/metrics"
	"github.com/emilythestrangee/game-reviews/backend/internal/middleware"
	"github.com/emilythestrangee/game-reviews/backend/internal/repository"
	"github.com/emilythestrangee/game-reviews/backend/internal/service"
)

// Options are the collaborators a Server is built from.
type Options struct {
	Config   config.ServerConfig
	Database *database.Database
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

type Server struct {
	cfg      config.ServerConfig
	handler  *handlers.Handler
	logger   *zap.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

// New wires repositories, services and handlers over the database.
func New(opts Options) *Server {
	db := opts.Database.DB

	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	reviews := service.NewReviewService(reviewRepo, categoryRepo, opts.Metrics, opts.Logger)
	comments := service.NewCommentService(commentRepo, reviewRepo, userRepo, opts.Metrics, opts.Logger)
	catalog := service.NewCatalogService(categoryRepo, userRepo)

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Server{
		cfg:      opts.Config,
		handler:  handlers.NewHandler(reviews, comments, catalog, opts.Database, opts.Metrics),
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		gatherer: gatherer,
	}
}

// HTTPServer returns the configured http.Server for the router.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  s.cfg.IdleTimeout,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Metrics(s.metrics))

	origins := s.cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.Use(middleware.ErrorHandler(s.logger))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		api.GET("", s.handler.System.GetEndpoints)
		api.GET("/health", s.handler.System.Health)
		api.GET("/health/ready", s.handler.System.Ready)

		api.GET("/categories", s.handler.Category.GetCategories)

		api.GET("/reviews", s.handler.Review.GetReviews)
		api.GET("/reviews/:review_id", s.handler.Review.GetReview)
		api.PATCH("/reviews/:review_id", s.handler.Review.PatchReview)

		api.GET("/reviews/:review_id/comments", s.handler.Comment.GetComments)
		api.POST("/reviews/:review_id/comments", s.handler.Comment.CreateComment)
		api.DELETE("/comments/:comment_id", s.handler.Comment.DeleteComment)

		api.GET("/users", s.handler.User.GetUsers)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": apperror.MsgRouteNotFound})
	})

	return r
}
