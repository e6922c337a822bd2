package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"quiz_backend/internal/config"
	"quiz_backend/internal/controller"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/service"
	"quiz_backend/pkg/configwatcher"
	"quiz_backend/pkg/database"
	"quiz_backend/pkg/logger"
	"quiz_backend/pkg/monitoring"
	"quiz_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	subject  *repository.SubjectRepository
	quiz     *repository.QuizRepository
	question *repository.QuestionRepository
	option   *repository.QuestionOptionRepository
	attempt  *repository.QuizAttemptRepository
	answer   *repository.UserAnswerRepository
}

type services struct {
	quiz *service.QuizService
}

type controllers struct {
	quiz   *controller.QuizController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		subject:  repository.NewSubjectRepository(db),
		quiz:     repository.NewQuizRepository(db),
		question: repository.NewQuestionRepository(db),
		option:   repository.NewQuestionOptionRepository(db),
		attempt:  repository.NewQuizAttemptRepository(db),
		answer:   repository.NewUserAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	// 接口变量不能直接赋 nil 指针，否则 cache != nil 判断失效
	var cache service.SubjectCache
	if rdb != nil {
		cache = repository.NewSubjectCache(rdb, time.Duration(cfg.Redis.SubjectTTL)*time.Second)
	}

	stores := service.Stores{
		Quizzes:   repos.quiz,
		Subjects:  repos.subject,
		Questions: repos.question,
		Options:   repos.option,
		Attempts:  repos.attempt,
		Answers:   repos.answer,
		Tx:        service.GormTx(db),
	}

	return &services{
		quiz: service.NewQuizService(stores, cache, cfg.Quiz.StrictAttempts),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		quiz:   controller.NewQuizController(s.quiz),
		health: controller.NewHealthController(db, rdb),
	}
}

// New 基于已初始化的数据库和（可选的）Redis 组装路由，rdb 为 nil 时不使用缓存
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		if logger.SetLevel(newCfg.LogLevel()) {
			logger.Log.Info("Log level reloaded", zap.String("level", newCfg.LogLevel()))
		}
	})

	return app
}

func gormLogLevel(cfg *config.Config) gormlogger.LogLevel {
	if cfg.LogLevel() == "debug" {
		return gormlogger.Info
	}
	return gormlogger.Warn
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, gormLogLevel(cfg))
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err = database.InitRedis(ctx, &cfg.Redis)
		cancel()
		if err != nil {
			// 缓存不可用时降级为直接查库
			logger.Log.Warn("Redis unavailable, subject cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp, err = tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app := New(cfg, db, rdb)
	app.tracer = tp
	return app
}

func (a *App) applyConfig(newCfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(newCfg)
	}
}

func (a *App) Run(configDir string) {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := configwatcher.Watch(ctx, configDir, a.applyConfig); err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
