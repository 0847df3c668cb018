package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/controller"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/pkg/database"
	"pathfinder_backend/pkg/logger"
	"pathfinder_backend/pkg/monitoring"
	"pathfinder_backend/pkg/security"
	"pathfinder_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user       *repository.UserRepository
	assessment *repository.AssessmentRepository
	session    *repository.SessionRepository
	blog       *repository.BlogRepository
	subscriber *repository.SubscriberRepository
	contact    *repository.ContactRepository
}

type services struct {
	storage    *service.StorageService
	mailer     service.Mailer
	auth       *service.AuthService
	assessment *service.AssessmentService
	session    *service.SessionService
	blog       *service.BlogService
	subscriber *service.SubscriberService
	contact    *service.ContactService
}

type controllers struct {
	auth            *controller.AuthController
	assessment      *controller.AssessmentController
	adminAssessment *controller.AdminAssessmentController
	session         *controller.SessionController
	blog            *controller.BlogController
	subscriber      *controller.SubscriberController
	contact         *controller.ContactController
	health          *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		session:    repository.NewSessionRepository(db),
		blog:       repository.NewBlogRepository(db),
		subscriber: repository.NewSubscriberRepository(db),
		contact:    repository.NewContactRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.mailer = service.NewSMTPMailer(&cfg.Email)
	s.auth = service.NewAuthService(repos.user, rdb, s.mailer, cfg)
	s.assessment = service.NewAssessmentService(repos.assessment, rdb, cfg)
	s.session = service.NewSessionService(repos.session, s.assessment)
	s.blog = service.NewBlogService(repos.blog, repos.subscriber, s.storage, s.mailer)
	s.subscriber = service.NewSubscriberService(repos.subscriber, s.mailer)
	s.contact = service.NewContactService(repos.contact, s.mailer, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:            controller.NewAuthController(s.auth),
		assessment:      controller.NewAssessmentController(s.assessment),
		adminAssessment: controller.NewAdminAssessmentController(s.assessment),
		session:         controller.NewSessionController(s.session),
		blog:            controller.NewBlogController(s.blog),
		subscriber:      controller.NewSubscriberController(s.subscriber),
		contact:         controller.NewContactController(s.contact),
		health:          controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadConfig applies hot-reloadable settings; called by the config watcher.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.services.assessment.ReloadScoring(cfg.Scoring)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("path-finder", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
