package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"webclass/docs"
	"webclass/internal/config"
	"webclass/internal/db"
	"webclass/internal/gemini"
	"webclass/internal/handler"
	"webclass/internal/logger"
	"webclass/internal/metrics"
	"webclass/internal/model"
	"webclass/internal/repository"
	"webclass/internal/router"
	"webclass/internal/server"
	"webclass/internal/service"
)

// @title Classroom Todo and Gemini API
// @version 1.0
// @description Todo CRUD variants and a proxy to the Gemini generative model.
// @host localhost:3001
// @BasePath /
// @schemes http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		docs.SwaggerInfoactivities.Host = cfg.SwaggerHost
	}

	todos, err := todoRoutes(cfg)
	if err != nil {
		logger.Fatal("failed to set up todo store", "error", err)
	}

	generator, err := gemini.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Fatal("failed to create gemini client", "error", err)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, /gemini will answer 500")
	}

	e := echo.New()
	router.RegisterAPI(e, logger.Logger, metrics.New("webclass_api"), todos, handler.NewGeminiHandler(generator, logger.Logger))

	logger.Info("swagger documentation available", "url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html")
	if err := server.Run(ctx, e, ":"+cfg.APIPort, logger.Logger); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
	logger.Info("shutdown complete")
}

var sampleTasks = []model.Task{
	{Task: "Learn Node.js", Priority: model.DefaultTaskPriority},
	{Task: "Build a REST API", Priority: model.DefaultTaskPriority},
}

func todoRoutes(cfg *config.Config) (router.TodoRoutes, error) {
	if cfg.Todo.Variant == "activities" {
		return handler.NewActivityHandler(service.NewActivityService(repository.NewMemoryActivityRepository())), nil
	}

	var repo repository.TaskRepository
	switch cfg.Todo.Store {
	case "sqlite":
		gormDB, err := db.Open("sqlite", cfg.Todo.DSN)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(gormDB, &model.Task{}); err != nil {
			return nil, err
		}
		taskRepo := repository.NewTaskRepository(gormDB)
		if cfg.Todo.SampleData {
			if err := seedTasks(taskRepo); err != nil {
				return nil, err
			}
		}
		repo = taskRepo
	default:
		var seed []model.Task
		if cfg.Todo.SampleData {
			seed = sampleTasks
		}
		repo = repository.NewMemoryTaskRepository(seed...)
	}

	return handler.NewTaskHandler(service.NewTaskService(repo)), nil
}

// seedTasks inserts the sample tasks into an empty table.
func seedTasks(repo repository.TaskRepository) error {
	ctx := context.Background()
	existing, err := repo.List(ctx, nil)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, t := range sampleTasks {
		task := t
		if err := repo.Create(ctx, &task); err != nil {
			return err
		}
	}
	return nil
}
