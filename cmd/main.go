package main

import (
	"io"
	"net/http"
	"os"
	"pricewatch/internal/api"
	"pricewatch/internal/configuration"
	"pricewatch/internal/dashboard"
	"pricewatch/internal/logger"
	"pricewatch/internal/notice"
	"pricewatch/internal/session"
	"time"
)

func main() {
	if err := runApp(); err != nil {
		os.Exit(1)
	}
}

func runApp() error {
	logOutput := io.Writer(os.Stdout)
	errOutput := io.Writer(os.Stderr)
	appLogger := logger.NewLogger(logger.LevelError, logOutput, errOutput)

	defer func() {
		if r := recover(); r != nil {
			appLogger.Errorf("APPLICATION CRASHED: %+v", r)
		}
	}()

	config, err := configuration.GetConfig("config.toml")
	if err != nil {
		appLogger.Error("Error getting configuration from config.toml:", err)
		return err
	}

	if config.LogToFile {
		logFile, err := os.OpenFile("pricewatch.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			appLogger.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				appLogger.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
		errOutput = io.MultiWriter(errOutput, logFile)
	}
	appLogger = logger.NewLogger(config.LogLevel, logOutput, errOutput)

	srv := &dashboard.Server{
		API: api.Client{
			Client:  &http.Client{Timeout: config.RequestTimeout},
			BaseURL: config.BackendAPIURL,
			Logger:  appLogger,
		},
		Sessions:      session.Store{Path: config.SessionFile},
		Notices:       notice.NewBanner(),
		Logger:        appLogger,
		Location:      config.DisplayTimezone,
		CheckDelay:    config.CheckDelay,
		CheckAllDelay: config.CheckAllDelay,
	}
	srv.RestoreSession()

	httpSrv := &http.Server{
		Handler:      srv.Router(),
		Addr:         config.ListenAddress,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	appLogger.Info("Serving dashboard on", httpSrv.Addr, "for backend at", config.BackendAPIURL)
	return httpSrv.ListenAndServe()
}
