package app

import (
	"courseflow_backend/internal/config"
	"courseflow_backend/internal/controller"
	"courseflow_backend/internal/repository"
	"courseflow_backend/internal/service"
	"courseflow_backend/pkg/configwatcher"
	"courseflow_backend/pkg/database"
	"courseflow_backend/pkg/logger"
	"courseflow_backend/pkg/monitoring"
	"courseflow_backend/pkg/security"
	"courseflow_backend/pkg/tracing"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user    *repository.UserRepository
	catalog *repository.CatalogRepository
	note    *repository.NoteRepository
	store   repository.ProgressStore
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	content     *service.ContentService
	progress    *service.ProgressService
	learning    *service.LearningService
	certificate *service.CertificateService
	note        *service.NoteService
}

type controllers struct {
	auth        *controller.AuthController
	course      *controller.CourseController
	progress    *controller.ProgressController
	quiz        *controller.QuizController
	certificate *controller.CertificateController
	note        *controller.NoteController
	content     *controller.ContentController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) (*repositories, error) {
	catalog, err := repository.NewCatalogRepository(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load course catalog: %w", err)
	}

	store, err := newProgressStore(cfg, db, rdb)
	if err != nil {
		return nil, err
	}

	return &repositories{
		user:    repository.NewUserRepository(db),
		catalog: catalog,
		note:    repository.NewNoteRepository(db),
		store:   store,
	}, nil
}

// newProgressStore 根据配置选择进度存储后端
func newProgressStore(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (repository.ProgressStore, error) {
	switch cfg.Progress.Store {
	case "memory":
		return repository.NewMemoryProgressStore(), nil
	case "file":
		return repository.NewFileProgressStore(cfg.Progress.FilePath)
	case "redis":
		return repository.NewRedisProgressStore(rdb), nil
	case "mysql":
		return repository.NewGormProgressStore(db), nil
	default:
		return nil, fmt.Errorf("unknown progress store %q", cfg.Progress.Store)
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.content = service.NewContentService(s.storage)
	s.progress = service.NewProgressService(repos.store)

	sequencer := service.NewLessonSequencer()
	s.learning = service.NewLearningService(repos.catalog, s.progress, sequencer, service.NewQuizGrader())
	s.certificate = service.NewCertificateService(repos.catalog, s.progress, sequencer)
	s.note = service.NewNoteService(repos.note)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		course:      controller.NewCourseController(repos.catalog, s.learning),
		progress:    controller.NewProgressController(s.progress, s.learning),
		quiz:        controller.NewQuizController(s.learning),
		certificate: controller.NewCertificateController(s.certificate),
		note:        controller.NewNoteController(s.note),
		content:     controller.NewContentController(s.content),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Progress.Store == "redis" {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos, err := app.initRepositories(db, rdb, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize repositories", zap.Error(err))
	}
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, repos, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("courseflow", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置热更新：JWT 密钥等在请求路径上动态读取的配置段改动后无需重启
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		cfg.JWT = newCfg.JWT
		cfg.RateLimit = newCfg.RateLimit
		logger.Log.Info("Config reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
