package country

import (
	"github.com/marvik-ai/success-orchestry-api/internal/middleware"
	"github.com/marvik-ai/success-orchestry-api/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	stack middleware.Stack,
) {
	countries := r.Group("/countries")
	countries.Use(stack.Protected()...)
	{
		countries.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCountry, rbac.ActionRead),
			handler.List,
		)
		countries.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCountry, rbac.ActionCreate),
			stack.Idempotency,
			handler.Create,
		)
	}
}
