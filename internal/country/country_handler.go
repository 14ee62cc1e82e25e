package country

import (
	"net/http"

	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("country.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("country.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.ToHTTP(apperror.MapValidationError(err)))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("http create country failed", zap.Error(err))
		response.Fail(c, apperror.ToHTTP(err))
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Fail(c, apperror.ToHTTP(err))
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
