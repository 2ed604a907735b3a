package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/loan-calculator/internal/config"
	"github.com/iwvelando/loan-calculator/internal/logging"
	"github.com/iwvelando/loan-calculator/internal/quote"
	"github.com/iwvelando/loan-calculator/internal/server"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/format"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	serverConfigLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	appConfigLocation := flag.String("app-config", constants.DefaultConfigFile, "path to calculator configuration file")
	address := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	serverConf, err := server.LoadConfig(*serverConfigLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *serverConfigLocation, err)
		os.Exit(1)
	}
	if *address != "" {
		serverConf.Address = *address
	}

	logger, err := logging.NewLogger(serverConf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	appConf := config.Default()
	if _, statErr := os.Stat(*appConfigLocation); !errors.Is(statErr, fs.ErrNotExist) {
		appConf, err = config.LoadConfiguration(*appConfigLocation)
		if err != nil {
			logger.Fatal("failed to load calculator configuration",
				zap.String("op", "main"),
				zap.String("path", *appConfigLocation),
				zap.Error(err),
			)
		}
	}
	for _, warning := range appConf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	calculator := quote.NewCalculator(logger,
		quote.WithCurrency(format.NewCurrencyFormatter(appConf.Currency.Symbol, appConf.Currency.DecimalPlaces)),
	)
	handler := server.NewHandler(logger, calculator, server.Options{
		DefaultAmount: &appConf.Defaults.Amount,
		DefaultYears:  &appConf.Defaults.Years,
		MaxBodySize:   serverConf.BodySizeBytes(),
		Version:       version,
	})

	srv := &http.Server{
		Addr:         serverConf.Address,
		Handler:      handler,
		ReadTimeout:  serverConf.ReadTimeoutDuration(),
		WriteTimeout: serverConf.WriteTimeoutDuration(),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("quote API listening",
			zap.String("op", "main"),
			zap.String("address", serverConf.Address),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	case <-quit:
		logger.Info("shutting down server", zap.String("op", "main"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
