package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/devcodex/codex-api/config"
	"github.com/devcodex/codex-api/database"
	_ "github.com/devcodex/codex-api/docs" // Swagger docs - auto-generated
	"github.com/devcodex/codex-api/internal/controller"
	"github.com/devcodex/codex-api/internal/logger"
	"github.com/devcodex/codex-api/internal/model"
	"github.com/devcodex/codex-api/internal/repository"
	"github.com/devcodex/codex-api/internal/seed"
	"github.com/devcodex/codex-api/internal/service"
)

// @title CodeX Question Bank API
// @version 1.0
// @description CRUD API for a technical-interview question bank: technologies, questions, answers and assets.
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			func(db *gorm.DB) repository.Repository[model.Technology] { return repository.New[model.Technology](db) },
			func(db *gorm.DB) repository.Repository[model.Question] { return repository.New[model.Question](db) },
			func(db *gorm.DB) repository.Repository[model.Answer] { return repository.New[model.Answer](db) },
			func(db *gorm.DB) repository.Repository[model.Asset] { return repository.New[model.Asset](db) },
		),

		// Services
		fx.Provide(
			service.NewTechnologyService,
			service.NewAnswerService,
			service.NewAssetService,
			service.NewQuestionService,
		),

		// Controllers
		fx.Provide(
			controller.NewTechnologyController,
			controller.NewQuestionController,
			controller.NewAnswerController,
			controller.NewAssetController,
			controller.NewMetaController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedDatabase),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Request logging through zerolog instead of gin's default logger.
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the resource routes and manages the
// HTTP server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	technologyCtrl *controller.TechnologyController,
	questionCtrl *controller.QuestionController,
	answerCtrl *controller.AnswerController,
	assetCtrl *controller.AssetController,
	metaCtrl *controller.MetaController,
) {
	api := router.Group("/api")
	{
		technologyCtrl.RegisterRoutes(api.Group("/technology"))
		questionCtrl.RegisterRoutes(api.Group("/question"))
		answerCtrl.RegisterRoutes(api.Group("/answer"))
		assetCtrl.RegisterRoutes(api.Group("/asset"))
	}
	metaCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Question bank API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations")
	err := db.AutoMigrate(
		&model.Technology{},
		&model.Question{},
		&model.Answer{},
		&model.Asset{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}

func SeedDatabase(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.SeedOnStart {
		return nil
	}
	return seed.NewDatabaseSeeder().SeedAll(db)
}
