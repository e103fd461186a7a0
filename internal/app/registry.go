package app

import (
	"os"

	"jobtrack/internal/application"
	"jobtrack/internal/auth"
	"jobtrack/internal/company"
	"jobtrack/internal/interview"
	"jobtrack/internal/messaging/kafka"
	"jobtrack/internal/offer"
	"jobtrack/internal/question"
	"jobtrack/internal/resume"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	storage resume.Storage,
) error {
	ownerScoped := os.Getenv("LIST_SCOPE") == "owner"

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	questionRepo := question.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	interviewRepo := interview.NewRepository(gormDB)
	offerRepo := offer.NewRepository(gormDB)
	resumeRepo := resume.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	companyService := company.NewService(gormDB, companyRepo, rdb, ownerScoped)
	questionService := question.NewService(gormDB, questionRepo, companyRepo, ownerScoped)
	applicationService := application.NewServiceWithOutbox(gormDB, applicationRepo, companyRepo, outboxRepo, ownerScoped)
	interviewService := interview.NewService(gormDB, interviewRepo, applicationRepo, ownerScoped)
	offerService := offer.NewServiceWithOutbox(gormDB, offerRepo, companyRepo, outboxRepo, ownerScoped)
	resumeService := resume.NewService(gormDB, resumeRepo, companyRepo, storage, ownerScoped)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	questionHandler := question.NewHandler(questionService)
	applicationHandler := application.NewHandler(applicationService)
	interviewHandler := interview.NewHandler(interviewService)
	offerHandler := offer.NewHandler(offerService)
	resumeHandler := resume.NewHandler(resumeService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, rdb)
		question.RegisterRoutes(api, questionHandler, rdb)
		application.RegisterRoutes(api, applicationHandler, rdb)
		interview.RegisterRoutes(api, interviewHandler, rdb)
		offer.RegisterRoutes(api, offerHandler, rdb)
		resume.RegisterRoutes(api, resumeHandler, rdb)
	}

	return nil
}
