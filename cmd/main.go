package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lhgiang/eduquest/config"
	"github.com/lhgiang/eduquest/database"
	_ "github.com/lhgiang/eduquest/docs" // Swagger docs - auto-generated
	"github.com/lhgiang/eduquest/internal/catalog"
	"github.com/lhgiang/eduquest/internal/controller"
	"github.com/lhgiang/eduquest/internal/logger"
	"github.com/lhgiang/eduquest/internal/model"
	"github.com/lhgiang/eduquest/internal/repository"
	"github.com/lhgiang/eduquest/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title EduQuest API
// @version 1.0
// @description Educational backend: accounts, catalogued study content, AI-generated notes and quizzes, quiz analysis with video enrichment, and per-user analytics.
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			catalog.New,          // Static content catalogue
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewTestResultRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewGeminiService,
			service.NewVideoSearchService,
			service.NewAssessmentService,
			service.NewAnalyticsService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewContentController,
			controller.NewTestController,
			controller.NewAnalyticsController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's access log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	contentCtrl *controller.ContentController,
	testCtrl *controller.TestController,
	analyticsCtrl *controller.AnalyticsController,
) {
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)

		api.GET("/content", contentCtrl.GetContent)
		api.POST("/get-topic-details", contentCtrl.GetTopicDetails)

		api.POST("/generate-test", testCtrl.GenerateTest)
		api.POST("/submit-test", testCtrl.SubmitTest)
		api.POST("/generate-dynamic-test", testCtrl.GenerateDynamicTest)

		api.GET("/analytics", analyticsCtrl.GetAnalytics)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EduQuest API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.TestResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
