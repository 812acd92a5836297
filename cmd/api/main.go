package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/lnadoceria/doceria-api/config"
	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/auth"
	"github.com/lnadoceria/doceria-api/internal/platform/cache"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/platform/postgres"
	"github.com/lnadoceria/doceria-api/internal/platform/search"

	catH "github.com/lnadoceria/doceria-api/internal/category/handler"
	catRepoPkg "github.com/lnadoceria/doceria-api/internal/category/repository"
	catUCPkg "github.com/lnadoceria/doceria-api/internal/category/usecase"

	flvH "github.com/lnadoceria/doceria-api/internal/flavor/handler"
	flvRepoPkg "github.com/lnadoceria/doceria-api/internal/flavor/repository"
	flvUCPkg "github.com/lnadoceria/doceria-api/internal/flavor/usecase"

	prodH "github.com/lnadoceria/doceria-api/internal/product/handler"
	prodRepoPkg "github.com/lnadoceria/doceria-api/internal/product/repository"
	prodUCPkg "github.com/lnadoceria/doceria-api/internal/product/usecase"

	secH "github.com/lnadoceria/doceria-api/internal/section/handler"
	secRepoPkg "github.com/lnadoceria/doceria-api/internal/section/repository"
	secUCPkg "github.com/lnadoceria/doceria-api/internal/section/usecase"

	searchH "github.com/lnadoceria/doceria-api/internal/search/handler"
	searchUCPkg "github.com/lnadoceria/doceria-api/internal/search/usecase"

	userH "github.com/lnadoceria/doceria-api/internal/user/handler"
	userRepoPkg "github.com/lnadoceria/doceria-api/internal/user/repository"
	userUCPkg "github.com/lnadoceria/doceria-api/internal/user/usecase"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func main() {
	// 1. Load configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()
	development := cfg.Server.AppEnv == "development"

	// 2. Initialize logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     development,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("connected to PostgreSQL", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Optional Redis cache
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("could not connect to Redis, display cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLogger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 5. Optional Elasticsearch
	var esClient *search.Client
	if cfg.Elastic.Enabled {
		esClient, err = search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("could not connect to Elasticsearch, product search falls back to SQL", zap.Error(err))
			esClient = nil
		} else {
			appLogger.Info("connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 6. Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	flvRepo := flvRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	secRepo := secRepoPkg.NewPGRepository(db)
	userRepo := userRepoPkg.NewPGRepository(db)

	// 7. Usecases
	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	flvUC := flvUCPkg.NewFlavorUseCase(flvRepo, catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, esClient, appLogger)
	secUC := secUCPkg.NewSectionUseCase(secRepo, prodRepo, catRepo, redisClient, appLogger)
	searchUC := searchUCPkg.NewSearchUseCase(prodRepo, catRepo, flvRepo, esClient, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, tokens, appLogger)

	// 8. HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = apperror.NewHTTPErrorHandler(appLogger, development)
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "LNA DOCERIA API - v1.0.0")
	})

	public := e.Group("")
	authed := e.Group("", auth.Middleware(tokens))

	catH.NewCategoryHandler(catUC, appLogger).Register(public, authed)
	flvH.NewFlavorHandler(flvUC, appLogger).Register(public, authed)
	prodH.NewProductHandler(prodUC, appLogger).Register(public, authed)
	secH.NewSectionHandler(secUC, appLogger).Register(public, authed)
	searchH.NewSearchHandler(searchUC, appLogger).Register(public)
	userH.NewUserHandler(userUC, appLogger).Register(public, authed)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	go func() {
		appLogger.Info("starting HTTP server", zap.String("port", port))
		if err := e.Start(port); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
