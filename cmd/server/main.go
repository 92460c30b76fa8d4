package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subota/internal/clock"
	"subota/internal/config"
	"subota/internal/handler"
	"subota/internal/service"
	"subota/internal/telegram"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Saturday countdown",
		zap.String("addr", cfg.Addr()),
		zap.Bool("debug", cfg.Debug),
	)

	// Initialize services
	clk := clock.NewSystem()
	countdownService := service.NewCountdownService(clk, logger)

	// Initialize HTTP server
	h := handler.NewHandler(countdownService, clk, logger)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Routes(cfg.RateLimit),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Telegram bot is optional
	var bot *tele.Bot
	if cfg.BotEnabled() {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
			OnError: func(err error, c tele.Context) {
				logger.Error("Telegram bot error", zap.Error(err))
			},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		telegram.NewHandler(bot, countdownService, logger).RegisterHandlers()

		go func() {
			logger.Info("Telegram bot started")
			bot.Start()
		}()
	} else {
		logger.Info("BOT_TOKEN not set, Telegram bot disabled")
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	if bot != nil {
		bot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Stopped gracefully")
}

// newLogger builds a production logger, or a development one at debug level
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
