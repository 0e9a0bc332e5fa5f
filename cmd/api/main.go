package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"nextassist/internal/config"
	"nextassist/internal/database"
	"nextassist/internal/fixtures"
	"nextassist/internal/middleware"
	"nextassist/internal/modules/auth"
	"nextassist/internal/modules/billing"
	"nextassist/internal/modules/comment"
	"nextassist/internal/modules/learning"
	"nextassist/internal/modules/notify"
	"nextassist/internal/modules/profile"
	"nextassist/internal/modules/project"
	"nextassist/internal/modules/report"
	"nextassist/internal/modules/task"
	jwtsvc "nextassist/internal/pkg/jwt"
	"nextassist/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(fixtures.Models()...); err != nil {
		log.Fatal(err)
	}

	// Seed the demo dataset on first boot. A file or postgres DSN keeps
	// its data across restarts and is only seeded once.
	empty, err := fixtures.Empty(db)
	if err != nil {
		log.Fatal(err)
	}
	if empty {
		if err := fixtures.Load(db); err != nil {
			log.Fatal(err)
		}
		log.Println("seeded demo dataset")
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	learningRepo := repository.NewLearningRepository(db)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	hub := notify.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, sessionRepo, jwtService, auth.SleepDelay(cfg.AuthDelay), cfg.SessionTTL)
	authHandler := auth.NewHandler(authService)

	projectService := project.NewService(projectRepo)
	projectHandler := project.NewHandler(projectService)

	taskService := task.NewService(taskRepo, projectRepo, hub)
	taskHandler := task.NewHandler(taskService)

	commentService := comment.NewService(commentRepo, taskRepo, projectRepo, userRepo, hub)
	commentHandler := comment.NewHandler(commentService)

	reportService := report.NewService(reportRepo, projectRepo)
	reportHandler := report.NewHandler(reportService)

	profileService := profile.NewService(profileRepo, userRepo)
	profileHandler := profile.NewHandler(profileService)

	billingService := billing.NewService(billingRepo)
	billingHandler := billing.NewHandler(billingService)

	learningService := learning.NewService(learningRepo)
	learningHandler := learning.NewHandler(learningService)

	notifyHandler := notify.NewHandler(hub, jwtService)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	notifyHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			taskHandler.RegisterRoutes(protected)
			commentHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			billingHandler.RegisterRoutes(protected)
			learningHandler.RegisterRoutes(protected)

			manager := protected.Group("/manager")
			manager.Use(middleware.ManagerOnly())
			{
				projectHandler.RegisterManagerRoutes(manager)
				profileHandler.RegisterRoleRoutes(manager)
				billingHandler.RegisterRoleRoutes(manager)
				learningHandler.RegisterRoleRoutes(manager)
			}

			assistant := protected.Group("/assistant")
			assistant.Use(middleware.AssistantOnly())
			{
				projectHandler.RegisterAssistantRoutes(assistant)
				profileHandler.RegisterRoleRoutes(assistant)
				billingHandler.RegisterRoleRoutes(assistant)
				learningHandler.RegisterRoleRoutes(assistant)
			}
		}
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
