package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quick-event/config"
	"quick-event/internal/event"
	eventHTTP "quick-event/internal/event/delivery/http"
	tgDelivery "quick-event/internal/event/delivery/telegram"
	eventUC "quick-event/internal/event/usecase"
	"quick-event/internal/httpserver"
	"quick-event/internal/middleware"
	"quick-event/pkg/datemath"
	"quick-event/pkg/gcalendar"
	"quick-event/pkg/log"
	"quick-event/pkg/telegram"
)

// @title       Quick Event API
// @description Deterministic natural-language quick-add: turns queries like "Dinner tomorrow at 7 with Mom" into calendar events.
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

	logger.Info(ctx, "Starting Quick Event...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Parser.Timezone)

	// 3. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Parser.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Google Calendar client (optional, for direct inserts)
	var calendarClient eventUC.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
			calendarClient = client
		}
	}

	// 5. Event UseCase
	uc := eventUC.New(logger, dateMathParser, calendarClient, eventUC.Config{
		Timezone:               dateMathParser.Location().String(),
		DefaultDurationMinutes: cfg.Parser.DefaultDurationMinutes,
		Aliases:                event.ParseAliases(cfg.Parser.GuestAliases),
		Targets:                profileTargets(cfg.Profiles),
		CalendarID:             cfg.GoogleCalendar.CalendarID,
	})

	// 6. Deliveries
	eventHandler := eventHTTP.New(logger, uc)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config.
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}
		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, skipping Telegram bot")
	}

	// 7. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		EventHandler:    eventHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func profileTargets(profiles config.ProfilesConfig) map[event.Profile]eventUC.ProfileTarget {
	return map[event.Profile]eventUC.ProfileTarget{
		event.ProfilePersonal: {BaseURL: profiles.Personal.BaseURL, Src: profiles.Personal.Src},
		event.ProfileWork:     {BaseURL: profiles.Work.BaseURL, Src: profiles.Work.Src},
		event.ProfileOther:    {BaseURL: profiles.Other.BaseURL, Src: profiles.Other.Src},
	}
}
