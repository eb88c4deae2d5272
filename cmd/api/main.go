package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lifeos/config"
	_ "lifeos/docs" // Swagger docs
	authRepo "lifeos/internal/auth/repository/sqlite"
	authUC "lifeos/internal/auth/usecase"
	"lifeos/internal/calendar"
	calendarUC "lifeos/internal/calendar/usecase"
	"lifeos/internal/httpserver"
	itemRepo "lifeos/internal/item/repository/sqlite"
	itemUC "lifeos/internal/item/usecase"
	"lifeos/internal/jobs"
	listRepo "lifeos/internal/list/repository/sqlite"
	listUC "lifeos/internal/list/usecase"
	"lifeos/internal/model"
	noteRepo "lifeos/internal/note/repository/sqlite"
	noteUC "lifeos/internal/note/usecase"
	"lifeos/pkg/database"
	"lifeos/pkg/datemath"
	"lifeos/pkg/gcalendar"
	"lifeos/pkg/log"
	"lifeos/pkg/scheduler"
)

// @title       LifeOS API
// @description Personal task, habit and reminder planner with a categorized calendar view.
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

	logger.Info(ctx, "Starting LifeOS...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Open(database.Config{
		DSN:           cfg.Database.DSN,
		LogLevel:      cfg.Database.LogLevel,
		SlowThreshold: cfg.Database.SlowThreshold,
		MaxOpenConns:  cfg.Database.MaxOpenConns,
	}, model.All()...)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warnf(ctx, "Failed to close database: %v", err)
		}
	}()

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional)
	var events calendar.EventClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate the OAuth token")
		} else {
			events = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Domains
	items := itemRepo.New(db, logger)
	authUseCase := authUC.New(authRepo.New(db, logger), logger, authUC.Config{
		SessionTTL: cfg.Auth.SessionTTL,
		CacheSize:  cfg.Auth.CacheSize,
	})
	calendarUseCase := calendarUC.New(logger, items, events, cfg.GoogleCalendar.CalendarIDs, dateMathParser)

	// 7. Scheduler
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(logger, dateMathParser.Location())
		if err := jobs.Register(sched, logger, jobs.Config{
			OverdueSweepAt: cfg.Scheduler.OverdueSweepAt,
			SessionPurgeAt: cfg.Scheduler.SessionPurgeAt,
		}, calendarUseCase, authUseCase); err != nil {
			logger.Error(ctx, "Failed to schedule jobs: ", err)
			return
		}
		sched.Start()
		defer sched.Stop()
		logger.Infof(ctx, "Scheduler started: overdue sweep at %s", cfg.Scheduler.OverdueSweepAt)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		AuthUseCase:     authUseCase,
		ItemUseCase:     itemUC.New(items, logger, dateMathParser),
		CalendarUseCase: calendarUseCase,
		NoteUseCase:     noteUC.New(noteRepo.New(db, logger), logger),
		ListUseCase:     listUC.New(listRepo.New(db, logger), logger),
		CookieName:      cfg.Auth.CookieName,
		CookieSecure:    cfg.Auth.CookieSecure,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
