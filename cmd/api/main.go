package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"wastewatch.io/internal/app"
	"wastewatch.io/internal/appconf"
	"wastewatch.io/internal/dataset"
	"wastewatch.io/internal/export"
	"wastewatch.io/internal/logging"
)

func main() {
	var (
		port       int
		envFlag    string
		apiKeysRaw string
		rateLimit  int
		dataSource string
		dataPath   string
		clusters   int
		exportDir  string
		configPath string
		verbose    bool
	)

	flag.IntVar(&port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysRaw, "api-keys", "test", "Comma separated API keys (test, etc)")
	flag.IntVar(&rateLimit, "rate-limit", 60, "Requests per second allowed per API key")
	flag.StringVar(&dataSource, "data-source", "data/food_waste.csv", "URL or local path of the food waste CSV")
	flag.StringVar(&dataPath, "data-path", "data/wastewatch.db", "Path of the SQLite database file")
	flag.IntVar(&clusters, "clusters", 3, "Number of k-means clusters")
	flag.StringVar(&exportDir, "export-dir", "", "Write the analysis workbook and charts here at startup")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file; set fields override flags")
	flag.BoolVar(&verbose, "verbose", false, "Log dataset statistics after loading")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if configPath != "" {
		fileConfig, err := appconf.LoadFileConfig(configPath)
		if err != nil {
			logger.Error("failed to load config file", "error", err)
			os.Exit(1)
		}
		applyFileConfig(fileConfig, &port, &envFlag, &apiKeysRaw, &rateLimit,
			&dataSource, &dataPath, &clusters, &exportDir)
	}

	env := appconf.EnvFlagToEnvironment(envFlag)

	cfg := appconf.Config{
		Port:            port,
		Env:             env,
		ApiKeys:         splitApiKeys(apiKeysRaw),
		RateLimit:       rateLimit,
		DashboardApiKey: uuid.NewString(),
	}

	datasetConfig := dataset.Config{
		DataSource:   dataSource,
		DBPath:       dataPath,
		ClusterCount: clusters,
		Env:          env,
		Verbose:      verbose,
	}

	datasetManager, err := dataset.InitManager(datasetConfig, logger)
	if err != nil {
		logger.Error("failed to initialize dataset manager", "error", err)
		os.Exit(1)
	}

	datasetManager.LogStatistics()

	if exportDir != "" {
		if err := export.WriteAll(datasetManager, exportDir, logger); err != nil {
			logger.Error("failed to write analysis export", "error", err)
			datasetManager.Shutdown()
			os.Exit(1)
		}
	}

	application := &app.Application{
		Config:         cfg,
		DatasetConfig:  datasetConfig,
		Logger:         logger,
		DatasetManager: datasetManager,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(application),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownError := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())

	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logger.Error(err.Error())
		datasetManager.Shutdown()
		os.Exit(1)
	}

	if err := <-shutdownError; err != nil {
		logger.Error(err.Error())
	}

	datasetManager.Shutdown()
	logger.Info("server stopped")
}

func splitApiKeys(raw string) []string {
	if raw == "" {
		return nil
	}

	keys := strings.Split(raw, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}

// applyFileConfig overrides flag values with the fields set in the YAML
// config file.
func applyFileConfig(fc appconf.FileConfig, port *int, envFlag, apiKeysRaw *string,
	rateLimit *int, dataSource, dataPath *string, clusters *int, exportDir *string) {
	if fc.Port != nil {
		*port = *fc.Port
	}
	if fc.Env != nil {
		*envFlag = *fc.Env
	}
	if len(fc.ApiKeys) > 0 {
		*apiKeysRaw = strings.Join(fc.ApiKeys, ",")
	}
	if fc.RateLimit != nil {
		*rateLimit = *fc.RateLimit
	}
	if fc.DataSource != nil {
		*dataSource = *fc.DataSource
	}
	if fc.DataPath != nil {
		*dataPath = *fc.DataPath
	}
	if fc.Clusters != nil {
		*clusters = *fc.Clusters
	}
	if fc.ExportDir != nil {
		*exportDir = *fc.ExportDir
	}
}
