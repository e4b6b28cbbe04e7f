package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nb-query/config"
	_ "nb-query/docs" // Swagger docs
	"nb-query/internal/httpserver"
	"nb-query/internal/query/render"
	nbRepo "nb-query/internal/query/repository/nb"
	"nb-query/internal/query/usecase"
	"nb-query/pkg/datemath"
	"nb-query/pkg/log"
)

// @title       nb Query API
// @description Runs note server searches, filters the results and renders them as lists, JSON or whole pages.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting nb query service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "nb URL: %s%s", cfg.Nb.URL, cfg.Nb.SearchPath)

	// 3. Date phrases and calendar ranges share one timezone
	dateMathParser, err := datemath.NewParser(cfg.Query.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Query.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	calendar := datemath.NewCalendar(dateMathParser.Location())

	// 4. Query domain
	nbClient := nbRepo.NewClient(cfg.Nb.URL, cfg.Nb.SearchPath, cfg.Nb.Timeout)
	notesRepo := nbRepo.New(nbClient, cfg.Nb.RowSelector, logger)
	renderer := render.New(cfg.Nb.SearchPath, cfg.Query.DateLayout)
	queryUC := usecase.New(logger, notesRepo, dateMathParser, calendar, renderer, nil)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		NotesPinger:     nbClient,
		QueryUseCase:    queryUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
