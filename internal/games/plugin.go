package games

import (
	"github.com/openroom/partygames-go/internal/model"
	"github.com/openroom/partygames-go/internal/protocol"
)

// Plugin is the contract between the room coordinator and a concrete
// game implementation. The coordinator owns the room lifecycle (who
// is in the room, which phase it is in); the plugin owns the game
// state inside a running session.
//
// The coordinator serialises all calls, so implementations do not
// need their own locking.
type Plugin interface {
	// GameType identifies the rules this plugin implements
	GameType() model.GameType

	// Initialize sets up fresh game state for the room's current
	// players using the room's settings. It is called when the host
	// starts the game.
	Initialize(settings model.RoomSettings) error

	// PlayerView returns the personalised view of the game state for
	// one player. Unlike SharedState it may include information that
	// must not be broadcast, such as a player's role.
	PlayerView(connID model.ConnectionID) any

	// HandleMessage processes a game-specific client message. A
	// non-nil WordScore is a private effect to report back to the
	// sender; most messages return (nil, nil) and rely on the
	// coordinator's state broadcast.
	HandleMessage(connID model.ConnectionID, msg *protocol.ClientMessage) (*model.WordScore, error)

	// CanAdvancePhase reports whether the game permits moving to the
	// given phase, e.g. voting cannot end until every player voted.
	CanAdvancePhase(next model.GamePhase) error

	// OnPhaseAdvanced is called after the room's phase has changed so
	// the plugin can run phase entry logic (turn order setup, etc.)
	OnPhaseAdvanced(next model.GamePhase)

	// OnPlayerRebound tells the plugin a player reconnected under a
	// new connection ID so per-player state can follow them
	OnPlayerRebound(oldID, newID model.ConnectionID)

	// SharedState returns the broadcast-safe projection of the game
	// state. It must never include secret per-player information.
	SharedState() any

	// Reset discards all game state and cancels any pending timers,
	// returning the plugin to its pre-Initialize condition.
	Reset()
}

// Expirer is implemented by plugins whose rounds end on a countdown.
// The coordinator calls ExpireCountdown when the plugin's scheduled
// expiry fires; a false return means the round already ended and the
// expiry should be ignored.
type Expirer interface {
	ExpireCountdown() bool
}

// HasPrivateRoles reports whether players of the given game receive a
// private role message when the game starts.
func HasPrivateRoles(gt model.GameType) bool {
	return gt == model.GameTypeSecretWord
}
