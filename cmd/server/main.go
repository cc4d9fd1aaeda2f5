package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/fadilmartias/cv-matcher/internal/config"
	"github.com/fadilmartias/cv-matcher/internal/database"
	"github.com/fadilmartias/cv-matcher/internal/domain/fiber/handler"
	zaplog "github.com/fadilmartias/cv-matcher/internal/logger"
	"github.com/fadilmartias/cv-matcher/internal/matching"
	"github.com/fadilmartias/cv-matcher/internal/middleware"
	"github.com/fadilmartias/cv-matcher/internal/repository"
	"github.com/fadilmartias/cv-matcher/internal/scheduler"
	"github.com/fadilmartias/cv-matcher/internal/service"
	"github.com/fadilmartias/cv-matcher/internal/usecase"
	"github.com/fadilmartias/cv-matcher/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zlog, err := zaplog.New(appConfig.LogJSON, appConfig.LogDebug)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zlog.Sync() //nolint:errcheck

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 6 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    code,
				Message: message,
			})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.OwnerHeader,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db, err := database.Connect(config.LoadDBConfig(), appConfig, zlog)
	if err != nil {
		zlog.Fatal("connecting to database", zap.Error(err))
	}

	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	reportRepo := repository.NewMatchReportRepository(db)

	normalizer := matching.NewNormalizer(matching.DefaultVocabulary())
	ranker := matching.NewRanker(normalizer)
	scorer := matching.NewScorer(normalizer)

	var (
		generators []service.TextGenerator
		embedder   service.Embedder
	)
	gemini, err := service.NewGeminiService(ctx, zlog)
	if err != nil {
		zlog.Warn("gemini disabled", zap.Error(err))
	} else {
		generators = append(generators, gemini)
		embedder = gemini
	}
	if openRouter := service.NewOpenRouterService(zlog); openRouter != nil {
		generators = append(generators, openRouter)
	}
	if openAI := service.NewOpenAIService(zlog); openAI != nil {
		generators = append(generators, openAI)
	}

	matchUC := usecase.NewMatchUsecase(db, jobRepo, resumeRepo, reportRepo, ranker, scorer, zlog).
		WithGenerators(generators...)
	rankingUC := usecase.NewRankingUsecase(jobRepo, resumeRepo, ranker, scorer, zlog)
	jobUC := usecase.NewJobUsecase(jobRepo, resumeRepo, embedder, zlog)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, jobRepo, reportRepo, util.ExtractText, zlog)

	handler.NewJobHandler(jobUC, matchUC).RegisterRoutes(app)
	handler.NewResumeHandler(resumeUC, rankingUC, matchUC, jobUC, appConfig.UploadDir).RegisterRoutes(app)

	if appConfig.RebuildSchedule != "" {
		rebuilds, err := scheduler.New(appConfig.RebuildSchedule, 10*time.Minute, matchUC, zlog)
		if err != nil {
			zlog.Fatal("scheduling report rebuilds", zap.Error(err))
		}
		rebuilds.Start()
		defer rebuilds.Stop()
		zlog.Info("report rebuild scheduled", zap.String("schedule", appConfig.RebuildSchedule))
	}

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			zlog.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
		}
	}()

	zlog.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
