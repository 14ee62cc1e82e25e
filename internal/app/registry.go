package app

import (
	"github.com/marvik-ai/success-orchestry-api/internal/config"
	"github.com/marvik-ai/success-orchestry-api/internal/country"
	"github.com/marvik-ai/success-orchestry-api/internal/employee"
	"github.com/marvik-ai/success-orchestry-api/internal/employeesalary"
	"github.com/marvik-ai/success-orchestry-api/internal/health"
	"github.com/marvik-ai/success-orchestry-api/internal/messaging/kafka"
	"github.com/marvik-ai/success-orchestry-api/internal/middleware"
	"github.com/marvik-ai/success-orchestry-api/internal/rbac"
	"github.com/marvik-ai/success-orchestry-api/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services are the domain services shared by the API and the seeder.
type Services struct {
	Employee  employee.Service
	Financial employeesalary.Service
	Country   country.Service
	RBAC      rbac.Service
}

func NewServices(db *gorm.DB, logger *zap.Logger) (*Services, error) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	financialRepo := employeesalary.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	countryRepo := country.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(enforcer, logger)
	if err := rbacService.LoadPolicy(rbac.DefaultPolicies()); err != nil {
		return nil, err
	}

	// --- Services ---
	return &Services{
		Employee:  employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, nil, logger),
		Financial: employeesalary.NewServiceWithOutbox(db, financialRepo, outboxRepo, logger),
		Country:   country.NewService(countryRepo, logger),
		RBAC:      rbacService,
	}, nil
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	services, err := NewServices(db, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// --- Handlers ---
	employeeHandler := employee.NewHandler(services.Employee, logger)
	financialHandler := employeesalary.NewHandler(services.Financial, logger)
	countryHandler := country.NewHandler(services.Country, logger)
	rbacHandler := rbac.NewHandler(services.RBAC)
	healthHandler := health.NewHandler(sqlDB, cfg.Version, logger)

	stack := middleware.NewStack(cfg.JWTSecret, rdb, logger)

	// --- Routes Registration ---
	health.RegisterRoutes(router, healthHandler)

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, services.RBAC, stack)
		employeesalary.RegisterRoutes(api, financialHandler, services.RBAC, stack)
		country.RegisterRoutes(api, countryHandler, services.RBAC, stack)
		rbac.RegisterRoutes(api.Group("", stack.Protected()...), rbacHandler)
	}

	return nil
}
