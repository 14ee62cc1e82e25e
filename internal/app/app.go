package app

import (
	"net/http"

	"github.com/marvik-ai/success-orchestry-api/internal/config"
	"github.com/marvik-ai/success-orchestry-api/internal/middleware"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/connection"
	"github.com/marvik-ai/success-orchestry-api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the process-wide handles. Close releases them at shutdown.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	cfg    *config.Config
	logger *zap.Logger
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	apperror.Init()
	if err := validation.RegisterBindingRules(); err != nil {
		return nil, err
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.Database.MaxRetries, logger)
		if err != nil {
			closeDB(db, logger)
			return nil, err
		}
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	a := &App{
		Router: NewRouter(cfg, logger, prometheus.DefaultRegisterer),
		DB:     db,
		Redis:  rdb,
		cfg:    cfg,
		logger: logger,
	}

	if err := registerModules(a.Router, cfg, db, rdb, logger); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// NewRouter builds the engine with the global middleware chain.
func NewRouter(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.VersionHeader(cfg.Version),
		middleware.RequestLogger(logger),
		middleware.NewHTTPMetrics(reg).Middleware(),
		middleware.RateLimitByIP(20, 40),
	)
	return r
}

// Handler wraps the router with the CORS allow-list.
func (a *App) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: a.cfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Authorization", "Content-Type", middleware.IdempotencyHeader, middleware.RequestIDHeader,
		},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-Version", "Idempotent-Replayed"},
		AllowCredentials: true,
	}).Handler(a.Router)
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.logger.Warn("close redis failed", zap.Error(err))
		}
	}
	closeDB(a.DB, a.logger)
}

func closeDB(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("close database failed", zap.Error(err))
	}
}
