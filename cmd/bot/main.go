package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"portfolioBot/internal/config"
	"portfolioBot/internal/finance"
	"portfolioBot/internal/logger"
	"portfolioBot/internal/openai"
	"portfolioBot/internal/scheduler"
	"portfolioBot/internal/server"
	"portfolioBot/internal/storage"
	"portfolioBot/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log.Info().Msg("Starting SV portfolio bot")

	// Ensure parent directories for the flat store and the DB exist
	_ = os.MkdirAll(filepath.Dir(cfg.PortfolioPath), 0o755)
	_ = os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755)

	db, err := storage.OpenSQLite("file:" + cfg.DBPath + "?_fk=1")
	if err != nil {
		log.Fatal().Err(err).Msg("open sqlite")
	}
	defer db.Close()
	if err := storage.InitSchema(db); err != nil {
		log.Fatal().Err(err).Msg("init schema")
	}
	log.Info().Str("path", cfg.DBPath).Msg("reminder log ready")

	store := storage.NewFileStore(cfg.PortfolioPath, log)
	oracle := finance.NewYahooOracle(log)
	engine := finance.NewEngine(oracle, log)
	news := finance.NewNewsClient(cfg.NewsAPIKey, log)

	var insight *openai.Insight
	if cfg.OpenAIKey != "" {
		insight = openai.NewInsight(cfg.OpenAIKey)
	}

	router := telegram.NewRouter(store, engine, oracle, news, insight, log)
	bot, err := telegram.NewBot(cfg.BotToken, cfg.ChatID, router, log)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram init")
	}

	sched := scheduler.New(log)
	spec, err := scheduler.DailySpec(cfg.ReminderTime)
	if err != nil {
		log.Fatal().Err(err).Msg("reminder time")
	}
	job := scheduler.NewSIPReminderJob(store, storage.NewReminderLog(db), bot, log)
	if err := sched.AddJob(spec, job); err != nil {
		log.Fatal().Err(err).Msg("register reminder job")
	}
	sched.Start()
	defer sched.Stop()

	// Keep-alive endpoint for the hosting platform
	go func() {
		if err := server.ListenAndServe(":"+cfg.Port, server.NewHTTPMux()); err != nil {
			log.Error().Err(err).Msg("keep-alive server stopped")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	bot.Run(ctx)
}
