// @title Breast Cancer Predictor API
// @version 1.0
// @description Single-row benign/malignant prediction over 30 tumor measurements.
// @BasePath /
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OldStager01/breast-cancer-predictor/api"
	"github.com/OldStager01/breast-cancer-predictor/internal/artifacts"
	"github.com/OldStager01/breast-cancer-predictor/internal/logger"
	"github.com/OldStager01/breast-cancer-predictor/internal/metrics"
	"github.com/OldStager01/breast-cancer-predictor/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	checkArtifacts := flag.Bool("check-artifacts", false, "load the model artifacts and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Setup(cfg.App.LogLevel, cfg.App.Mode)
	logger.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Mode)

	arts, loadErr := artifacts.Load(cfg.Artifacts)
	if loadErr != nil {
		logger.Errorf("Failed to load model or scaler: %v", loadErr)
		if *checkArtifacts || cfg.Artifacts.ExitOnFailure {
			return loadErr
		}
	} else {
		scalerPath, classifierPath := arts.Paths()
		logger.WithFields(map[string]interface{}{
			"scaler":     scalerPath,
			"classifier": classifierPath,
		}).Info("Model and Scaler loaded successfully")
	}

	if *checkArtifacts {
		logger.Info("Artifact check passed")
		return nil
	}

	server, err := api.NewServer(cfg, arts, loadErr, metrics.Get())
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	if server.Blocked() {
		logger.Warn("Serving startup error page only; predictions are disabled")
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server listening on port %d", cfg.API.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdownChan:
		logger.Infof("Received signal %v, shutting down", sig)
	}

	timeout := cfg.App.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
