package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urlencoder/config"
	"urlencoder/grpc"
	"urlencoder/httpapi"
	"urlencoder/logging"
)

// Dependency injection composition root
func main() {
	configPath := flag.String("config", "", "path to a YAML config file. Defaults are used when empty.")
	logLevel := flag.String("loglevel", "", "sets log level, overriding the config file. Can be one of: debug, info, warn, error, fatal, panic.")
	profiling := flag.Bool("profiling", false, "whether to enable the :6060/debug/pprof/ endpoint")
	flag.Parse()

	if *profiling {
		go func() {
			http.ListenAndServe(":6060", nil)
		}()
	}

	cfg, err := loadConfig(*configPath, *logLevel)
	if err != nil {
		l := logging.NewLogger("error", os.Stderr)
		l.Fatal().Err(err).Msg("Error while loading config")
	}

	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)

	codec, err := cfg.Codec.Codec()
	if err != nil {
		logger.Fatal().Err(err).Msg("Error while creating codec")
	}

	rl := logging.NewZerologResultsLogger(logger)
	if cfg.RejectLog != "" {
		frl, err := logging.NewFileResultsLogger(&logging.LogFileSystemImpl{}, cfg.RejectLog, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Error while creating reject log")
		}
		defer frl.Close()
		rl = logging.NewMultiResultsLogger(rl, frl)
	}

	grpcErrCh := make(chan error, 1)
	grpcServer := grpc.NewServer(logger, codec, rl)
	go func() {
		grpcErrCh <- grpcServer.Serve(cfg.GRPC.Network, cfg.GRPC.Address, cfg.GRPC.MaxConnections)
	}()

	var httpServer *http.Server
	var httpErrCh <-chan error
	if cfg.HTTP.Enabled {
		httpServer, httpErrCh, err = httpapi.Serve(logger, cfg.HTTP, httpapi.NewRouter(logger, codec, rl))
		if err != nil {
			logger.Fatal().Err(err).Msg("Error while starting HTTP server")
		}
	}

	logger.Info().Msg("Started codec server")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-grpcErrCh:
		logger.Error().Err(err).Msg("Error while running gRPC server")
	case err := <-httpErrCh:
		logger.Error().Err(err).Msg("Error while running HTTP server")
	}

	if httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Error while shutting down HTTP server")
		}
	}
	grpcServer.Stop()
}

// loadConfig reads the config file if one is given, then applies environment and flag overrides.
func loadConfig(path string, logLevel string) (config.Main, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}
