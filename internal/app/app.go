package app

import (
	"os"

	"go-benefits/internal/auth"
	"go-benefits/internal/booking"
	"go-benefits/internal/claim"
	"go-benefits/internal/company"
	"go-benefits/internal/employee"
	"go-benefits/internal/financial"
	"go-benefits/internal/shared/connection"
	"go-benefits/internal/wellness"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := gormDB.AutoMigrate(
		&auth.User{},
		&company.Company{},
		&employee.Employee{},
		&claim.Claim{},
		&wellness.Partner{},
		&booking.Booking{},
		&financial.Financial{},
	); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, db, gormDB, redisClient)
}
