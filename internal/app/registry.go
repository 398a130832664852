package app

import (
	"database/sql"

	"go-benefits/internal/auth"
	"go-benefits/internal/authz"
	"go-benefits/internal/booking"
	"go-benefits/internal/claim"
	"go-benefits/internal/company"
	"go-benefits/internal/dashboard"
	"go-benefits/internal/employee"
	"go-benefits/internal/financial"
	"go-benefits/internal/messaging/kafka"
	"go-benefits/internal/middleware"
	"go-benefits/internal/wellness"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	bookingRepo := booking.NewRepository(gormDB)
	claimRepo := claim.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	financialRepo := financial.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	wellnessRepo := wellness.NewRepository(gormDB)

	// --- Authorization Core ---
	authzService, err := authz.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(db, authRepo, employeeRepo)
	bookingService := booking.NewService(bookingRepo, employeeRepo)
	claimService := claim.NewServiceWithOutbox(db, claimRepo, employeeRepo, outboxRepo, rdb)
	companyService := company.NewService(companyRepo)
	dashboardService := dashboard.NewService(dashboardRepo, rdb)
	employeeService := employee.NewService(employeeRepo)
	financialService := financial.NewService(financialRepo, rdb)
	wellnessService := wellness.NewService(wellnessRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	bookingHandler := booking.NewHandler(bookingService)
	claimHandler := claim.NewHandlerWithRedis(claimService, rdb)
	companyHandler := company.NewHandler(companyService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	employeeHandler := employee.NewHandler(employeeService)
	financialHandler := financial.NewHandler(financialService)
	wellnessHandler := wellness.NewHandler(wellnessService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authService)
		booking.RegisterRoutes(api, bookingHandler, authService, authzService)
		claim.RegisterRoutes(api, claimHandler, authService, authzService, rdb)
		company.RegisterRoutes(api, companyHandler, authService, authzService)
		dashboard.RegisterRoutes(api, dashboardHandler, authService, authzService)
		employee.RegisterRoutes(api, employeeHandler, authService, authzService)
		financial.RegisterRoutes(api, financialHandler, authService, authzService)
		wellness.RegisterRoutes(api, wellnessHandler, authService, authzService)
	}

	return nil
}
