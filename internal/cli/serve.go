package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/openroom/partygames-go/internal/factory"
	"github.com/openroom/partygames-go/internal/server"
	redisstorage "github.com/openroom/partygames-go/internal/storage/redis"
)

func serve(ctx context.Context, cfg *Config) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		StorageType:   cfg.StorageType,
		GraceWindow:   cfg.GraceWindow,
		RoundDuration: cfg.RoundDuration,
		Logger:        logger,
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return err
	}

	loadDictionary(ctx, app, cfg, logger)

	serverCfg := server.DefaultConfig()
	serverCfg.Host = cfg.Bind
	serverCfg.Port = cfg.Port
	srv := server.New(app.Handler.Router(), serverCfg, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
			logger.Info("shutdown signal received")
			cancel()
		case <-ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

// loadDictionary fills the word-hunt dictionary, preferring words
// already present in storage over re-reading the file. A missing
// dictionary is not fatal; word-hunt submissions just fail validation
// until one is loaded.
func loadDictionary(ctx context.Context, app *factory.App, cfg *Config, logger *slog.Logger) {
	if err := app.DictionaryService.LoadFromStorage(ctx); err == nil {
		logger.Info("dictionary loaded from storage",
			slog.Int("words", app.DictionaryService.WordCount()))
		return
	}

	if err := app.DictionaryService.LoadFromFile(ctx, cfg.DictionaryPath); err != nil {
		logger.Warn("could not load dictionary",
			slog.String("path", cfg.DictionaryPath),
			slog.String("error", err.Error()))
		return
	}
	logger.Info("dictionary loaded from file",
		slog.String("path", cfg.DictionaryPath),
		slog.Int("words", app.DictionaryService.WordCount()))
}
