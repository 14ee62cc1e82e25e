package rbac

import (
	"net/http"

	"github.com/marvik-ai/success-orchestry-api/internal/domain"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce answers whether a role may perform an action, for clients that
// hide controls the caller cannot use.
func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.ToHTTP(apperror.MapValidationError(err)))
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Fail(c, apperror.ToHTTP(err))
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

// MyPermissions lists what the authenticated caller's role grants.
func (h *Handler) MyPermissions(c *gin.Context) {
	perms, err := h.service.Permissions(c.GetString("role"))
	if err != nil {
		response.Fail(c, apperror.ToHTTP(err))
		return
	}
	response.Success(c, http.StatusOK, perms, nil)
}
