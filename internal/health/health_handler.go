package health

import (
	"context"
	"net/http"
	"time"

	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

var ErrDatabaseUnavailable = apperror.New(
	apperror.CodeServiceUnavailable,
	"Database is unreachable",
	http.StatusServiceUnavailable,
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db      Pinger
	version string
	logger  *zap.Logger
}

func NewHandler(db Pinger, version string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{db: db, version: version, logger: l}
}

// Root is the liveness probe; it never touches the database.
func (h *Handler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "up", "version": h.version}, nil)
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		response.Fail(c, apperror.ToHTTP(ErrDatabaseUnavailable))
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
