package app

import (
	"context"
	"log"
	"naira_backend/internal/config"
	"naira_backend/internal/controller"
	"naira_backend/internal/nlp"
	"naira_backend/internal/repository"
	"naira_backend/internal/service"
	"naira_backend/pkg/database"
	"naira_backend/pkg/logger"
	"naira_backend/pkg/monitoring"
	"naira_backend/pkg/security"
	"naira_backend/pkg/tracing"
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
	Config    *config.Config
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client
	responder *nlp.Responder
}

type repositories struct {
	user         *repository.UserRepository
	task         *repository.TaskRepository
	schedule     *repository.ScheduleRepository
	studySession *repository.StudySessionRepository
	conversation *repository.ConversationRepository
	lms          *repository.LMSRepository
	motivation   *repository.MotivationRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	user         *service.UserService
	task         *service.TaskService
	schedule     *service.ScheduleService
	studySession *service.StudySessionService
	chat         *service.ChatService
	lms          *service.LMSService
	dashboard    *service.DashboardService
	motivation   *service.MotivationService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	task         *controller.TaskController
	schedule     *controller.ScheduleController
	studySession *controller.StudySessionController
	chat         *controller.ChatController
	lms          *controller.LMSController
	dashboard    *controller.DashboardController
	motivation   *controller.MotivationController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		task:         repository.NewTaskRepository(db),
		schedule:     repository.NewScheduleRepository(db),
		studySession: repository.NewStudySessionRepository(db),
		conversation: repository.NewConversationRepository(db, rdb),
		lms:          repository.NewLMSRepository(db),
		motivation:   repository.NewMotivationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.task = service.NewTaskService(repos.task)
	s.schedule = service.NewScheduleService(repos.schedule)
	s.studySession = service.NewStudySessionService(repos.studySession)

	classifier := nlp.NewClassifier(cfg.NLP.IntentPatterns, cfg.NLP.FallbackConfidence)
	processor := nlp.NewProcessor(classifier, nlp.NewSentimentAnalyzer(), nlp.NewAnnotator())
	a.responder = nlp.NewResponder(nlp.Thresholds{
		SupportCompound: cfg.NLP.SupportCompound,
		SupportNegative: cfg.NLP.SupportNegative,
		SupportNeutral:  cfg.NLP.SupportNeutral,
	})
	s.chat = service.NewChatService(repos.conversation, processor, a.responder, nlp.NewKeywordBot(), s.task)

	s.lms = service.NewLMSService(repos.lms, rdb, cfg.LMS)
	s.dashboard = service.NewDashboardService(s.task, repos.studySession)
	s.motivation = service.NewMotivationService(repos.motivation)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		task:         controller.NewTaskController(s.task),
		schedule:     controller.NewScheduleController(s.schedule),
		studySession: controller.NewStudySessionController(s.studySession),
		chat:         controller.NewChatController(s.chat),
		lms:          controller.NewLMSController(s.lms),
		dashboard:    controller.NewDashboardController(s.dashboard),
		motivation:   controller.NewMotivationController(s.motivation),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig 配置热更新回调，仅刷新响应阈值
func (a *App) ApplyConfig(cfg *config.Config) {
	if a.responder == nil {
		return
	}
	a.responder.SetThresholds(nlp.Thresholds{
		SupportCompound: cfg.NLP.SupportCompound,
		SupportNegative: cfg.NLP.SupportNegative,
		SupportNeutral:  cfg.NLP.SupportNeutral,
	})
	logger.L().Info("Response thresholds reloaded",
		zap.Float64("support_compound", cfg.NLP.SupportCompound))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("naira-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

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

	log.Println("Server exiting")
}
