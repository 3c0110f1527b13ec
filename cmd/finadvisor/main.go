package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/plutus-labs/finadvisor/internal/config"
	"github.com/plutus-labs/finadvisor/internal/planner"
	"github.com/plutus-labs/finadvisor/internal/server"
	"github.com/plutus-labs/finadvisor/pkg/catalog"
	"github.com/plutus-labs/finadvisor/pkg/constants"
	"github.com/plutus-labs/finadvisor/pkg/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// loadCatalog loads the product catalog, tolerating a missing file only when
// the operator did not ask for one explicitly.
func loadCatalog(logger *zap.Logger, path string, explicit bool) (*catalog.Document, error) {
	products, err := catalog.Load(logger, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			logger.Warn("product catalog not found, plans will carry empty shortlists",
				zap.String("op", "main"),
				zap.String("path", path),
			)
			return nil, nil
		}
		return nil, err
	}
	return products, nil
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to profile configuration file")
	productsLocation := flag.String("products", "", "path to product catalog JSON (default "+constants.DefaultProductsFile+")")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP planning API instead of a one-shot plan")
	listen := flag.String("listen", "", "listen address override for --serve (e.g. :8080)")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	catalogPath := *productsLocation
	catalogExplicit := catalogPath != ""
	if !catalogExplicit {
		catalogPath = constants.DefaultProductsFile
	}

	if *serve {
		runServer(*serverConfigLocation, catalogPath, catalogExplicit, *listen, *logLevel)
		return
	}

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	switch outputFormat {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
	default:
		logger.Fatal(fmt.Sprintf("invalid output format: %s", outputFormat),
			zap.String("op", "main"),
		)
	}

	// Validate the profile and display any warnings
	warnings, err := conf.Profile.Validate()
	if err != nil {
		logger.Fatal("invalid profile",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range warnings {
		logger.Warn("Profile warning: "+warning,
			zap.String("op", "main"),
		)
	}

	products, err := loadCatalog(logger, catalogPath, catalogExplicit)
	if err != nil {
		logger.Fatal("failed to load product catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	plan := planner.BuildPlan(logger, conf.Profile.Normalize(), products)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, plan)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, plan)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(os.Stdout, plan); err != nil {
			logger.Fatal("failed to write plan",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

func runServer(configPath, catalogPath string, catalogExplicit bool, listenOverride, logLevelOverride string) {
	cfg, err := server.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", configPath, err)
		return
	}

	logger, err := initializeLogger(cfg.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	products, err := loadCatalog(logger, catalogPath, catalogExplicit)
	if err != nil {
		logger.Fatal("failed to load product catalog",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	address := cfg.Address
	if listenOverride != "" {
		address = listenOverride
	}

	handler := server.NewHandler(logger, products, cfg.RequestSizeBytes(), version)

	logger.Info("starting planning API",
		zap.String("op", "main"),
		zap.String("address", address),
		zap.String("version", version),
	)
	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
