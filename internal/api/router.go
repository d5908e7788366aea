package api

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-trivia-backend/internal/api/handlers"
	"github.com/welldanyogia/webrana-trivia-backend/internal/api/middleware"
	"github.com/welldanyogia/webrana-trivia-backend/internal/api/response"
	"github.com/welldanyogia/webrana-trivia-backend/internal/logger"
	"github.com/welldanyogia/webrana-trivia-backend/internal/repository"
	"github.com/welldanyogia/webrana-trivia-backend/internal/services"
	"github.com/welldanyogia/webrana-trivia-backend/internal/validator"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Idle rate limiter entries are evicted on this schedule
const (
	limiterCleanupInterval = 10 * time.Minute
	limiterMaxIdle         = 30 * time.Minute
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB     *gorm.DB
	Logger *slog.Logger
	// Security configuration
	AllowedOrigins []string // Allowed CORS origins
	Production     bool     // Drops wildcard origins
	RateLimit      float64  // Requests per second per IP (0 = default)
	RateBurst      int      // Burst size for rate limiter (0 = default)
	// Quiz randomness; nil uses math/rand/v2
	Pick func(n int) int
	// Closing Done stops background work started by the router
	Done <-chan struct{}
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	events := logger.NewEventLogger(log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = response.HTTPErrorHandler(log)

	// 1. Recover from panics
	e.Use(middleware.Recover(events))

	// 2. Tag requests so log lines correlate
	e.Use(middleware.RequestID())

	// 3. Security headers (applied to all responses)
	e.Use(middleware.SecureHeaders())

	// 4. CORS
	e.Use(middleware.CORS(cfg.AllowedOrigins, cfg.Production))

	// 5. Rate limiting
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	if cfg.Done != nil {
		limiter.StartCleanup(limiterCleanupInterval, limiterMaxIdle, cfg.Done)
	}
	e.Use(middleware.RateLimiter(limiter, events))

	// 6. Request logging
	e.Use(middleware.RequestLogger(log))

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(cfg.DB)
	questionRepo := repository.NewQuestionRepository(cfg.DB)

	// Initialize services
	quizService := services.NewQuizService(categoryRepo, questionRepo, services.QuizServiceConfig{
		Pick: cfg.Pick,
	})

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionRepo, categoryRepo, log)
	quizHandler := handlers.NewQuizHandler(quizService)

	// Health routes
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	// Category routes
	categories := e.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id/questions", categoryHandler.Questions)

	// Question routes
	questions := e.Group("/questions")
	questions.GET("", questionHandler.List)
	questions.POST("", questionHandler.Post)
	questions.DELETE("/:id", questionHandler.Delete)

	// Quiz routes
	e.POST("/quizzes", quizHandler.Next)

	return e
}
