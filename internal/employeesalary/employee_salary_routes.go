package employeesalary

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
	records := r.Group("/employees/:id/financial-records")
	records.Use(stack.Protected()...)
	{
		records.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFinancial, rbac.ActionRead),
			handler.GetHistory,
		)
		records.GET("/current",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFinancial, rbac.ActionRead),
			handler.GetCurrent,
		)
		records.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceFinancial, rbac.ActionCreate),
			stack.Idempotency,
			handler.Append,
		)
	}
}
