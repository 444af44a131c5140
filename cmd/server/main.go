package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/yourname/axis/internal"
	"github.com/yourname/axis/internal/api"
	"github.com/yourname/axis/internal/config"
	"github.com/yourname/axis/internal/insight"
	"github.com/yourname/axis/internal/service"
	"github.com/yourname/axis/internal/storage"
)

type application struct {
	logger internal.Logger
	repos  *storage.Repositories
	ai     insight.Service
	timer  *service.FocusTimer
}

func (a *application) Logger() internal.Logger                  { return a.logger }
func (a *application) DayLogRepo() storage.DayLogRepository     { return a.repos.DayLogs }
func (a *application) HabitRepo() storage.HabitRepository       { return a.repos.Habits }
func (a *application) JournalRepo() storage.JournalRepository   { return a.repos.Journal }
func (a *application) RuleRepo() storage.RuleRepository         { return a.repos.Rules }
func (a *application) ProtocolRepo() storage.ProtocolRepository { return a.repos.Protocols }
func (a *application) PillarRepo() storage.PillarRepository     { return a.repos.Pillars }
func (a *application) Insights() insight.Service                { return a.ai }
func (a *application) Timer() *service.FocusTimer               { return a.timer }

var _ api.App = (*application)(nil)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	repos, err := storage.NewRepositories(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	ctx := context.Background()
	if err := service.SeedRules(ctx, repos.Rules); err != nil {
		logger.Fatalf("failed to seed rules: %v", err)
	}
	if err := service.SeedProtocols(ctx, repos.Protocols); err != nil {
		logger.Fatalf("failed to seed protocols: %v", err)
	}

	app := &application{
		logger: logger,
		repos:  repos,
		ai:     insight.NewGeminiClient(cfg.GeminiAPIKey, cfg.InsightBaseURL, logger),
		timer:  service.NewFocusTimer(logger),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	api.RegisterRoutes(r, app)

	go func() {
		logger.Infof("Server running on :%s", cfg.Port)
		if err := r.Run(":" + cfg.Port); err != nil {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	app.timer.Close()
	if err := repos.Closer.Close(); err != nil {
		logger.Errorf("storage close failed: %v", err)
	}
}
