// Package factory wires the application's components together.
package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/openroom/partygames-go/internal/coordinator"
	"github.com/openroom/partygames-go/internal/dependencies/clock"
	"github.com/openroom/partygames-go/internal/dependencies/random"
	"github.com/openroom/partygames-go/internal/dependencies/scheduler"
	"github.com/openroom/partygames-go/internal/server"
	"github.com/openroom/partygames-go/internal/services/dictionary"
	"github.com/openroom/partygames-go/internal/storage"
	"github.com/openroom/partygames-go/internal/storage/memory"
	redisstorage "github.com/openroom/partygames-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler

	// Services
	DictionaryService *dictionary.Service
	Registry          *server.Registry
	Coordinator       *coordinator.Coordinator
	Handler           *server.Handler
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the dictionary storage backend ("memory" or
	// "redis"). If empty, defaults to "memory".
	StorageType string
	// RedisConfig is required when StorageType is "redis"
	RedisConfig *redisstorage.Config
	// GraceWindow holds a disconnected player's seat open; zero means
	// the coordinator default
	GraceWindow time.Duration
	// RoundDuration overrides the word-hunt countdown; zero means the
	// game default
	RoundDuration time.Duration
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a fully wired App from configuration
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	coordCfg := coordinator.Config{
		GraceWindow:   cfg.GraceWindow,
		RoundDuration: cfg.RoundDuration,
	}
	return newWithDependencies(store, clock.New(), random.New(), scheduler.New(), coordCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies
// (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	sched scheduler.Scheduler,
	coordCfg coordinator.Config,
	logger *slog.Logger,
) *App {
	dictService := dictionary.New(store)
	registry := server.NewRegistry(logger)
	coord := coordinator.New(registry, clk, rnd, sched, dictService, coordCfg, logger)
	handler := server.NewHandler(registry, coord, dictService, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Scheduler:         sched,
		DictionaryService: dictService,
		Registry:          registry,
		Coordinator:       coord,
		Handler:           handler,
	}
}
