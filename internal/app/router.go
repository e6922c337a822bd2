package app

import (
	"quiz_backend/docs"
	"quiz_backend/internal/config"
	"quiz_backend/internal/middleware"
	"quiz_backend/pkg/monitoring"
	"quiz_backend/pkg/security"
	"quiz_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	a.registerQuizRoutes(api, c)
}

func (a *App) registerQuizRoutes(api *gin.RouterGroup, c *controllers) {
	quiz := api.Group("/quiz")
	{
		// 题库浏览
		quiz.GET("", c.quiz.ListQuizzes)
		quiz.GET("/subjects", c.quiz.ListSubjects)
		quiz.GET("/:id", c.quiz.GetQuiz)
		quiz.GET("/:id/questions", c.quiz.ListQuestions)
		quiz.GET("/questions/:questionId/options", c.quiz.ListOptions)

		// 答题流程
		quiz.POST("/:id/start", c.quiz.StartAttempt)
		quiz.POST("/attempts/:attemptId/answer", c.quiz.RecordAnswer)
		quiz.POST("/attempts/:attemptId/complete", c.quiz.CompleteAttempt)
		quiz.GET("/attempts/:attemptId", c.quiz.GetAttempt)
		quiz.GET("/users/:userId/attempts", c.quiz.ListUserAttempts)
	}
}
