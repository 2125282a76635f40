package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/reunicheck/pkg/validator"

	"github.com/johnquangdev/reunicheck/internal/adapter/handler"
	"github.com/johnquangdev/reunicheck/internal/adapter/repository"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/cache"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/reunicheck/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/storage"
	analysisUsecase "github.com/johnquangdev/reunicheck/internal/usecase/analysis"
	answerUsecase "github.com/johnquangdev/reunicheck/internal/usecase/answer"
	"github.com/johnquangdev/reunicheck/internal/usecase/conversation"
	meetingUsecase "github.com/johnquangdev/reunicheck/internal/usecase/meeting"
	questionUsecase "github.com/johnquangdev/reunicheck/internal/usecase/question"
	"github.com/johnquangdev/reunicheck/internal/usecase/usage"
	userUsecase "github.com/johnquangdev/reunicheck/internal/usecase/user"
	pkgai "github.com/johnquangdev/reunicheck/pkg/ai"
	"github.com/johnquangdev/reunicheck/pkg/config"
)

// @title           ReuniCheck API
// @version         1.0
// @description     Decides whether a meeting is needed by questioning its participants beforehand
// @BasePath        /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(httpmw.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	logger.Info("🔧 Initializing dependencies...")

	// Initialize Database
	logger.Info("📦 Connecting to database...", zap.String("driver", cfg.Database.Driver))
	db, err := database.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	} else {
		logger.Info("🔄 Skipping migrations; run scripts/migrate to apply them")
	}

	// Session locks
	locker, closeLocker, err := newLocker(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize session locks", zap.Error(err))
	}
	defer closeLocker()

	// Analysis archive
	var archive analysisUsecase.Archiver
	if cfg.Storage.Enabled {
		logger.Info("🗄️  Connecting to object storage...", zap.String("endpoint", cfg.Storage.Endpoint))
		minioClient, err := storage.NewMinIOClient(context.Background(), &cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to connect to object storage", zap.Error(err))
		}
		archive = minioClient
	}

	// Initialize repositories
	logger.Info("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	usageRepo := repository.NewUsageRepository(db)

	// Initialize model client
	logger.Info("🤖 Initializing language model client...", zap.String("model", cfg.LLM.Model))
	llm := pkgai.NewChatClient(&cfg.LLM)
	recorder := usage.NewRecorder(usageRepo, pkgai.Pricing{
		InputPer1K:  cfg.LLM.InputPricePer1K,
		OutputPer1K: cfg.LLM.OutputPricePer1K,
	}, logger)

	// Initialize services
	questionService := questionUsecase.NewService(questionRepo, llm, recorder, cfg.LLM, logger)
	meetingService := meetingUsecase.NewService(userRepo, meetingRepo, questionRepo, answerRepo, questionService, logger)
	answerService := answerUsecase.NewService(questionRepo, answerRepo, meetingRepo, logger)
	conversationService := conversation.NewService(userRepo, meetingRepo, questionRepo, answerRepo,
		llm, recorder, locker, cfg.LLM, cfg.Session, logger)
	analysisService := analysisUsecase.NewService(userRepo, meetingRepo, questionRepo, answerRepo, analysisRepo,
		llm, recorder, archive, cfg.LLM, logger)
	userService := userUsecase.NewService(userRepo, meetingRepo, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg,
		handler.NewUserHandler(userService, logger),
		handler.NewMeetingHandler(meetingService, logger),
		handler.NewChatHandler(userService, conversationService, answerService, logger),
		handler.NewQuestionHandler(answerService, logger),
		handler.NewAnswerHandler(answerService, logger),
		handler.NewAnalysisHandler(analysisService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newLocker picks the session lock backend
func newLocker(cfg *config.Config, logger *zap.Logger) (cache.Locker, func(), error) {
	if cfg.Session.LockBackend == "redis" {
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		client, err := cache.NewRedisClient(context.Background(), cfg)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewRedisLocker(client), func() { client.Close() }, nil
	}

	logger.Warn("⚠️  Session locks are process-local; use SESSION_LOCK_BACKEND=redis when running several instances")
	store := cache.NewMemoryStore()
	return cache.NewMemoryLocker(store), store.Close, nil
}
