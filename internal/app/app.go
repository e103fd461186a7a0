package app

import (
	"context"
	"os"

	"jobtrack/internal/application"
	"jobtrack/internal/auth"
	"jobtrack/internal/company"
	"jobtrack/internal/interview"
	"jobtrack/internal/middleware"
	"jobtrack/internal/offer"
	"jobtrack/internal/question"
	"jobtrack/internal/resume"
	"jobtrack/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id VARCHAR(64),
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type VARCHAR(100) NOT NULL,
	topic VARCHAR(255) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	last_error TEXT,
	next_retry_at TIMESTAMPTZ,
	sent_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func BuildApp(router *gin.Engine) error {
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
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	storage, err := resume.NewS3Storage(context.Background())
	if err != nil {
		return err
	}

	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, gormDB, rdb, storage)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&auth.User{},
		&company.Company{},
		&question.Question{},
		&application.Application{},
		&interview.Interview{},
		&offer.Offer{},
		&resume.Resume{},
	); err != nil {
		return err
	}
	return gormDB.Exec(outboxTableDDL).Error
}
