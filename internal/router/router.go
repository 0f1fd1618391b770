package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skilllinker/skilllinker/internal/handlers"
	"github.com/skilllinker/skilllinker/internal/middleware"
	"github.com/skilllinker/skilllinker/internal/notifier"
	"github.com/skilllinker/skilllinker/internal/services"
	"github.com/skilllinker/skilllinker/internal/types"
	"gorm.io/gorm"
)

func NewRouter(database *gorm.DB, dispatcher *notifier.Dispatcher) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userHandler := handlers.NewUserHandler(services.NewUserService(database))
	jobHandler := handlers.NewJobHandler(services.NewJobService(database), notifier.New(database), dispatcher)
	applicationHandler := handlers.NewApplicationHandler(services.NewApplicationService(database))
	messageHandler := handlers.NewMessageHandler(services.NewMessageService(database))
	paymentHandler := handlers.NewPaymentHandler(services.NewPaymentService(database))
	resumeHandler := handlers.NewResumeHandler(services.NewResumeService(database))

	authenticated := middleware.AuthMiddleware()
	anyRole := middleware.RequireRoles(database)
	adminOnly := middleware.RequireRoles(database, types.RoleAdmin)
	sdpOnly := middleware.RequireRoles(database, types.RoleSDP)
	assessorOnly := middleware.RequireRoles(database, types.RoleAssessor)

	r.GET("/health", handlers.HealthCheck)

	users := r.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.GET("/me", authenticated, anyRole, userHandler.Me)
		users.GET("", authenticated, adminOnly, userHandler.List)
		users.PUT("/:id", authenticated, anyRole, userHandler.Update)
		users.PUT("/:id/verify", authenticated, adminOnly, userHandler.Verify)
		users.DELETE("/:id", authenticated, adminOnly, userHandler.Delete)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", jobHandler.List)
		jobs.GET("/:id", jobHandler.Get)
		jobs.POST("", authenticated, sdpOnly, jobHandler.Create)
		jobs.PUT("/:id", authenticated, sdpOnly, jobHandler.Update)
		jobs.DELETE("/:id", authenticated, sdpOnly, jobHandler.Delete)
	}

	applications := r.Group("/applications", authenticated, anyRole)
	{
		applications.POST("", applicationHandler.Create)
		applications.GET("", applicationHandler.List)
		applications.GET("/:id", applicationHandler.Get)
		applications.GET("/job/:job_id", applicationHandler.ListForJob)
		applications.PUT("/:id", applicationHandler.UpdateStatus)
		applications.DELETE("/:id", applicationHandler.Delete)
	}

	messages := r.Group("/messages", authenticated, anyRole)
	{
		messages.POST("", messageHandler.Send)
		messages.GET("/user/:user_id", messageHandler.ListForUser)
		messages.GET("/job/:job_id", messageHandler.ListForJob)
		messages.PUT("/:message_id/read", messageHandler.MarkRead)
	}

	payments := r.Group("/payments", authenticated)
	{
		payments.POST("", assessorOnly, paymentHandler.Create)
		payments.GET("", adminOnly, paymentHandler.List)
		payments.GET("/:id", adminOnly, paymentHandler.Get)
		payments.PUT("/:id", adminOnly, paymentHandler.UpdateStatus)
		payments.DELETE("/:id", adminOnly, paymentHandler.Delete)
	}

	resumes := r.Group("/resumes", authenticated, anyRole)
	{
		resumes.POST("", middleware.ResumeUploadBoundary(), resumeHandler.Upload)
		resumes.GET("", resumeHandler.List)
		resumes.GET("/:id", resumeHandler.Download)
		resumes.DELETE("/:id", resumeHandler.Delete)
	}

	return r
}
