package main

import (
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taskmaster/internal/app/di"
	"taskmaster/internal/app/router"
	"taskmaster/internal/config"
	authadapters "taskmaster/internal/feature/auth/adapters"
	authhandler "taskmaster/internal/feature/auth/transport/handler"
	authusecase "taskmaster/internal/feature/auth/usecase"
	taskhandler "taskmaster/internal/feature/tasks/transport/handler"
	taskusecase "taskmaster/internal/feature/tasks/usecase"
	"taskmaster/internal/platform/db"
	jwtmw "taskmaster/internal/platform/jwt"
	platformredis "taskmaster/internal/platform/redis"
	"taskmaster/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	translator.Init(translator.Config{TranslationFolder: cfg.TranslationFolder})

	// db
	gdb, err := db.Open(*cfg)
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}

	// Redis is optional; without it every read hits Postgres.
	var rdb *redisv9.Client
	if cfg.RedisHost != "" {
		if tmp, err := platformredis.NewClient(*cfg); err != nil {
			logger.Warn("redis unavailable, running without cache", zap.Error(err))
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					logger.Error("failed to close redis client", zap.Error(err))
				}
			}()
		}
	}

	codec := jwtmw.NewCodec(cfg.JWTSecret, cfg.JWTExpiration)

	// Repository
	userRepo := authadapters.NewUserPostgres(gdb)
	taskRepo := di.NewTaskRepository(rdb, gdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, codec)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	r := router.NewRouter(logger, codec, authH, taskH)

	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
