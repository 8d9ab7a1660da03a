// Package factory constructs game plugins without the coordinator
// needing to import each game implementation.
package factory

import (
	"log/slog"
	"time"

	"github.com/openroom/partygames-go/internal/dependencies/clock"
	"github.com/openroom/partygames-go/internal/dependencies/random"
	"github.com/openroom/partygames-go/internal/dependencies/scheduler"
	"github.com/openroom/partygames-go/internal/games"
	"github.com/openroom/partygames-go/internal/games/imposter"
	"github.com/openroom/partygames-go/internal/games/wordhunt"
	"github.com/openroom/partygames-go/internal/model"
	"github.com/openroom/partygames-go/internal/services/dictionary"
)

// Deps holds everything a game plugin may need. The same Deps value
// is shared across all rooms; per-room state lives in the plugin.
type Deps struct {
	Clock      clock.Clock
	Random     random.Random
	Scheduler  scheduler.Scheduler
	Dictionary dictionary.ServiceInterface
	// RoundDuration overrides the word-hunt countdown; zero means the
	// game's default
	RoundDuration time.Duration
	Logger        *slog.Logger
}

// NewPlugin creates the plugin for the given game type. onCountdownExpired
// is invoked from a timer goroutine for games with a countdown; the
// coordinator routes it back through its own lock.
func NewPlugin(gt model.GameType, room *model.Room, deps Deps, onCountdownExpired func()) (games.Plugin, error) {
	switch gt {
	case model.GameTypeSecretWord:
		return imposter.New(room, deps.Random, deps.Clock, deps.Logger), nil
	case model.GameTypeWordHunt:
		return wordhunt.New(
			room,
			deps.Random,
			deps.Clock,
			deps.Scheduler,
			deps.Dictionary,
			deps.RoundDuration,
			onCountdownExpired,
			deps.Logger,
		), nil
	default:
		return nil, model.ErrUnsupportedGame
	}
}
