// Package coordinator owns live rooms: creation, membership, phase
// progression, reconnection grace windows, and routing of
// game-specific messages to the bound rule plugin.
package coordinator

import (
	"log/slog"
	"sync"
	"time"

	"github.com/openroom/partygames-go/internal/dependencies/clock"
	"github.com/openroom/partygames-go/internal/dependencies/random"
	"github.com/openroom/partygames-go/internal/dependencies/scheduler"
	"github.com/openroom/partygames-go/internal/games"
	"github.com/openroom/partygames-go/internal/games/factory"
	"github.com/openroom/partygames-go/internal/games/imposter"
	"github.com/openroom/partygames-go/internal/model"
	"github.com/openroom/partygames-go/internal/protocol"
	"github.com/openroom/partygames-go/internal/services/dictionary"
)

const (
	roomCodeLength   = 6
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// roomCodeAttempts bounds collision retries before giving up
	roomCodeAttempts = 100

	// DefaultGraceWindow is how long a disconnected player's seat is
	// held open for reconnection
	DefaultGraceWindow = 30 * time.Second
)

// Sender delivers outbound messages to connections. Sends are
// best-effort; delivery to a gone connection is silently dropped.
type Sender interface {
	Send(connID model.ConnectionID, payload any)
}

// Config holds the coordinator's tunables
type Config struct {
	// GraceWindow holds a disconnected player's seat open; zero means
	// DefaultGraceWindow
	GraceWindow time.Duration
	// RoundDuration overrides the word-hunt countdown; zero means the
	// game's default
	RoundDuration time.Duration
}

// session pairs a room with its bound game plugin and any timers the
// coordinator is running on its behalf
type session struct {
	room        *model.Room
	plugin      games.Plugin
	graceTimers map[model.ConnectionID]scheduler.Handle
}

// Coordinator serialises all room mutations behind a single mutex.
// Rooms are in-process state only; they die with the process.
type Coordinator struct {
	mu      sync.Mutex
	rooms   map[model.RoomCode]*session
	members map[model.ConnectionID]model.RoomCode

	sender Sender
	clk    clock.Clock
	rnd    random.Random
	sched  scheduler.Scheduler
	dict   dictionary.ServiceInterface
	cfg    Config
	logger *slog.Logger
}

// New creates a coordinator with no rooms
func New(
	sender Sender,
	clk clock.Clock,
	rnd random.Random,
	sched scheduler.Scheduler,
	dict dictionary.ServiceInterface,
	cfg Config,
	logger *slog.Logger,
) *Coordinator {
	if cfg.GraceWindow <= 0 {
		cfg.GraceWindow = DefaultGraceWindow
	}
	return &Coordinator{
		rooms:   make(map[model.RoomCode]*session),
		members: make(map[model.ConnectionID]model.RoomCode),
		sender:  sender,
		clk:     clk,
		rnd:     rnd,
		sched:   sched,
		dict:    dict,
		cfg:     cfg,
		logger:  logger,
	}
}

// HandleMessage processes one inbound client message. Failures are
// reported to the sender as error frames; the room is never left
// half-mutated.
func (c *Coordinator) HandleMessage(connID model.ConnectionID, msg *protocol.ClientMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	switch msg.Type {
	case protocol.TypeCreateRoom:
		err = c.createRoom(connID, msg)
	case protocol.TypeJoinRoom:
		err = c.joinRoom(connID, msg)
	case protocol.TypeReconnectToRoom:
		err = c.reconnectToRoom(connID, msg)
	case protocol.TypeLeaveRoom:
		c.leaveRoom(connID)
	case protocol.TypeStartGame:
		err = c.startGame(connID)
	case protocol.TypeAdvancePhase:
		err = c.advancePhase(connID, msg.NewPhase)
	case protocol.TypeUpdateGameSettings:
		err = c.updateGameSettings(connID, msg.Settings)
	case protocol.TypePlayAgain:
		err = c.playAgain(connID)
	default:
		err = c.gameMessage(connID, msg)
	}

	if err != nil {
		c.logger.Debug("message rejected",
			"client", connID,
			"messageType", msg.Type,
			"error", err)
		c.sender.Send(connID, protocol.NewError(err.Error()))
	}
}

// HandleDisconnect marks the player disconnected and starts the grace
// timer that will remove them if they do not reconnect in time
func (c *Coordinator) HandleDisconnect(connID model.ConnectionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	code, ok := c.members[connID]
	if !ok {
		return
	}
	delete(c.members, connID)

	sess, ok := c.rooms[code]
	if !ok {
		return
	}

	sess.room.DisconnectPlayer(connID, c.clk.Now())
	c.broadcast(sess, protocol.PlayerDisconnected{
		Type:      protocol.TypePlayerDisconnected,
		PlayerID:  connID,
		RoomState: c.snapshot(sess),
	}, connID)

	// The timer is keyed by the connection ID at disconnect time. A
	// reconnect rebinds the player to a new connection ID and cancels
	// the handle, so a late firing finds no player and does nothing.
	sess.graceTimers[connID] = c.sched.After(c.cfg.GraceWindow, func() {
		c.expireGrace(code, connID)
	})

	c.logger.Info("player disconnected, grace window started",
		"room", code,
		"client", connID,
		"graceWindow", c.cfg.GraceWindow)
}

// Stats reports the live room and tracked connection counts
func (c *Coordinator) Stats() (rooms, clients int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rooms), len(c.members)
}

func (c *Coordinator) createRoom(connID model.ConnectionID, msg *protocol.ClientMessage) error {
	if !model.IsValidGameType(msg.GameType) {
		return model.ErrUnsupportedGame
	}

	code, err := c.generateRoomCode()
	if err != nil {
		return err
	}

	// Creating a room while in another one implies leaving it. The old
	// seat is given up only once the new room is guaranteed, so a code
	// exhaustion failure leaves the caller exactly where they were.
	c.leaveRoom(connID)

	room := model.NewRoom(code, connID, msg.GameType, c.clk.Now())
	room.AddPlayer(connID, msg.PlayerName, msg.PersistentPlayerID, c.clk.Now())

	sess := &session{
		room:        room,
		graceTimers: make(map[model.ConnectionID]scheduler.Handle),
	}
	c.rooms[code] = sess
	c.members[connID] = code

	c.logger.Info("room created",
		"room", code,
		"gameType", msg.GameType,
		"host", connID)

	c.sender.Send(connID, protocol.RoomCreated{
		Type:      protocol.TypeRoomCreated,
		RoomCode:  code,
		RoomState: c.snapshot(sess),
	})
	return nil
}

func (c *Coordinator) joinRoom(connID model.ConnectionID, msg *protocol.ClientMessage) error {
	sess, ok := c.rooms[msg.RoomCode]
	if !ok {
		return model.ErrRoomNotFound
	}
	room := sess.room

	if msg.ExpectedGameType != "" && room.GameType != msg.ExpectedGameType {
		return model.ErrGameTypeMismatch
	}

	// Re-sending join for the room the connection already occupies is a
	// state resync, not a re-seat. Detaching first would tear the room
	// down when the sender is its only occupant.
	if c.members[connID] == msg.RoomCode {
		c.sender.Send(connID, protocol.RoomJoined{
			Type:      protocol.TypeRoomJoined,
			RoomState: c.snapshot(sess),
		})
		if room.InGame() && sess.plugin != nil {
			c.sendRole(connID, sess.plugin)
		}
		return nil
	}

	config, _ := model.ConfigFor(room.GameType)
	if len(room.Players) >= config.MaxPlayers {
		return model.ErrRoomFull
	}

	c.leaveRoom(connID)

	player := room.AddPlayer(connID, msg.PlayerName, msg.PersistentPlayerID, c.clk.Now())
	c.members[connID] = msg.RoomCode

	c.logger.Info("player joined",
		"room", room.Code,
		"client", connID,
		"player", msg.PlayerName)

	state := c.snapshot(sess)
	c.sender.Send(connID, protocol.RoomJoined{
		Type:      protocol.TypeRoomJoined,
		RoomState: state,
	})

	playerState := protocol.SnapshotPlayer(player)
	c.broadcast(sess, protocol.PlayerJoined{
		Type:      protocol.TypePlayerJoined,
		Player:    &playerState,
		RoomState: state,
	}, connID)

	// Late joiners to a running game also get their private view
	if room.InGame() && sess.plugin != nil {
		c.sendRole(connID, sess.plugin)
	}
	return nil
}

func (c *Coordinator) reconnectToRoom(connID model.ConnectionID, msg *protocol.ClientMessage) error {
	sess, ok := c.rooms[msg.RoomCode]
	if !ok {
		return model.ErrRoomNotFound
	}
	room := sess.room

	if msg.ExpectedGameType != "" && room.GameType != msg.ExpectedGameType {
		return model.ErrGameTypeMismatch
	}

	prior := room.FindByPersistentID(msg.PersistentPlayerID)
	if prior == nil || prior.IsConnected {
		// No seat to reclaim; fall back to joining as a new player
		return c.joinRoom(connID, msg)
	}
	oldID := prior.ConnectionID

	if !room.ReconnectPlayer(connID, msg.PersistentPlayerID, c.clk.Now()) {
		return c.joinRoom(connID, msg)
	}

	if timer, ok := sess.graceTimers[oldID]; ok {
		timer.Cancel()
		delete(sess.graceTimers, oldID)
	}
	delete(c.members, oldID)
	c.members[connID] = msg.RoomCode

	if sess.plugin != nil {
		sess.plugin.OnPlayerRebound(oldID, connID)
	}

	c.logger.Info("player reconnected",
		"room", room.Code,
		"oldClient", oldID,
		"client", connID)

	state := c.snapshot(sess)
	c.sender.Send(connID, protocol.Reconnected{
		Type:      protocol.TypeReconnected,
		RoomState: state,
	})

	playerState := protocol.SnapshotPlayer(prior)
	c.broadcast(sess, protocol.PlayerReconnected{
		Type:      protocol.TypePlayerReconnected,
		Player:    &playerState,
		RoomState: state,
	}, connID)

	if room.InGame() && sess.plugin != nil {
		c.sendRole(connID, sess.plugin)
	}
	return nil
}

// leaveRoom removes the player from their current room, if any.
// Leaving when not in a room is a no-op, not an error.
func (c *Coordinator) leaveRoom(connID model.ConnectionID) {
	code, ok := c.members[connID]
	if !ok {
		return
	}
	delete(c.members, connID)

	sess, ok := c.rooms[code]
	if !ok {
		return
	}
	c.removePlayer(sess, connID, connID)
}

// removePlayer takes the player out of the room, broadcasts
// playerLeft to everyone except exclude, and tears the room down if
// it is now empty
func (c *Coordinator) removePlayer(sess *session, connID, exclude model.ConnectionID) {
	sess.room.RemovePlayer(connID)
	if timer, ok := sess.graceTimers[connID]; ok {
		timer.Cancel()
		delete(sess.graceTimers, connID)
	}

	c.broadcast(sess, protocol.PlayerLeft{
		Type:      protocol.TypePlayerLeft,
		PlayerID:  connID,
		RoomState: c.snapshot(sess),
	}, exclude)

	c.logger.Info("player left", "room", sess.room.Code, "client", connID)

	if sess.room.IsEmpty() {
		c.deleteRoom(sess)
	}
}

func (c *Coordinator) deleteRoom(sess *session) {
	for id, timer := range sess.graceTimers {
		timer.Cancel()
		delete(sess.graceTimers, id)
	}
	if sess.plugin != nil {
		sess.plugin.Reset()
	}
	delete(c.rooms, sess.room.Code)
	c.logger.Info("room deleted", "room", sess.room.Code)
}

func (c *Coordinator) expireGrace(code model.RoomCode, connID model.ConnectionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, ok := c.rooms[code]
	if !ok {
		return
	}
	delete(sess.graceTimers, connID)

	player := sess.room.GetPlayer(connID)
	if player == nil || player.IsConnected {
		// Reconnected or already removed; the expiry is stale
		return
	}

	c.logger.Info("grace window expired, removing player",
		"room", code,
		"client", connID)
	c.removePlayer(sess, connID, "")
}

func (c *Coordinator) startGame(connID model.ConnectionID) error {
	sess, err := c.sessionFor(connID)
	if err != nil {
		return err
	}
	room := sess.room

	if !room.IsHost(connID) {
		return model.ErrNotHost
	}
	config, _ := model.ConfigFor(room.GameType)
	if len(room.Players) < config.MinPlayers {
		return model.ErrNotEnoughPlayers
	}
	if room.InGame() {
		return model.ErrGameAlreadyStarted
	}

	code := room.Code
	plugin, err := factory.NewPlugin(room.GameType, room, factory.Deps{
		Clock:         c.clk,
		Random:        c.rnd,
		Scheduler:     c.sched,
		Dictionary:    c.dict,
		RoundDuration: c.cfg.RoundDuration,
		Logger:        c.logger,
	}, func() {
		c.countdownExpired(code)
	})
	if err != nil {
		return err
	}
	if err := plugin.Initialize(room.Settings); err != nil {
		return err
	}

	sess.plugin = plugin
	room.Phase = config.FirstGamePhase()

	// Countdown games start their timer with the game itself
	if room.GameType == model.GameTypeWordHunt {
		if _, err := plugin.HandleMessage(connID, &protocol.ClientMessage{
			Type: protocol.TypeStartGameTimer,
		}); err != nil {
			c.logger.Warn("auto-start of round timer failed",
				"room", code,
				"error", err)
		}
	}

	c.logger.Info("game started",
		"room", code,
		"gameType", room.GameType,
		"phase", room.Phase)

	c.broadcastState(sess)

	if games.HasPrivateRoles(room.GameType) {
		for _, p := range room.Players {
			if p.IsConnected {
				c.sendRole(p.ConnectionID, plugin)
			}
		}
	}
	return nil
}

// countdownExpired runs on a timer goroutine when a game's round
// countdown fires. It re-enters through the lock and re-checks that
// the round is still running before forcing results.
func (c *Coordinator) countdownExpired(code model.RoomCode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, ok := c.rooms[code]
	if ok && c.finishCountdown(sess) {
		c.broadcastState(sess)
	}
}

func (c *Coordinator) finishCountdown(sess *session) bool {
	expirer, ok := sess.plugin.(games.Expirer)
	if !ok || !expirer.ExpireCountdown() {
		return false
	}
	sess.room.Phase = model.PhaseResults
	sess.plugin.OnPhaseAdvanced(model.PhaseResults)
	c.logger.Info("round countdown expired, moving to results",
		"room", sess.room.Code)
	return true
}

func (c *Coordinator) advancePhase(connID model.ConnectionID, newPhase model.GamePhase) error {
	sess, err := c.sessionFor(connID)
	if err != nil {
		return err
	}
	room := sess.room

	if !room.IsHost(connID) {
		return model.ErrNotHost
	}
	if !room.InGame() || sess.plugin == nil {
		return model.ErrGameNotStarted
	}

	config, _ := model.ConfigFor(room.GameType)
	newIndex := config.PhaseIndex(newPhase)
	if newIndex < 0 {
		return model.ErrInvalidPhase
	}
	// Phases only move forward; replays go through playAgain
	if newIndex <= config.PhaseIndex(room.Phase) {
		return model.ErrPhaseNotAdvanceable
	}

	if err := sess.plugin.CanAdvancePhase(newPhase); err != nil {
		return err
	}

	room.Phase = newPhase
	sess.plugin.OnPhaseAdvanced(newPhase)

	c.logger.Info("phase advanced",
		"room", room.Code,
		"phase", newPhase)

	c.broadcastState(sess)
	return nil
}

func (c *Coordinator) updateGameSettings(connID model.ConnectionID, settings *protocol.GameSettings) error {
	sess, err := c.sessionFor(connID)
	if err != nil {
		return err
	}
	room := sess.room

	if !room.IsHost(connID) {
		return model.ErrNotHost
	}
	if room.InGame() {
		return model.ErrLobbyOnly
	}
	if settings == nil {
		return nil
	}

	if settings.Category != "" {
		if !imposter.IsValidCategory(settings.Category) {
			return model.ErrInvalidCategory
		}
		room.Settings.Category = settings.Category
	}

	c.logger.Info("game settings updated",
		"room", room.Code,
		"category", room.Settings.Category)

	c.broadcastState(sess)
	return nil
}

func (c *Coordinator) playAgain(connID model.ConnectionID) error {
	sess, err := c.sessionFor(connID)
	if err != nil {
		return err
	}
	room := sess.room

	if !room.IsHost(connID) {
		return model.ErrNotHost
	}

	if sess.plugin != nil {
		sess.plugin.Reset()
		sess.plugin = nil
	}
	room.ResetForNewGame()

	c.logger.Info("room reset to lobby", "room", room.Code)

	c.broadcastState(sess)
	return nil
}

func (c *Coordinator) gameMessage(connID model.ConnectionID, msg *protocol.ClientMessage) error {
	sess, err := c.sessionFor(connID)
	if err != nil {
		return err
	}
	if sess.plugin == nil {
		return model.ErrGameNotStarted
	}

	result, err := sess.plugin.HandleMessage(connID, msg)
	if err != nil {
		return err
	}

	if result != nil {
		c.sender.Send(connID, protocol.WordResult{
			Type:    protocol.TypeWordResult,
			Success: true,
			Word:    result.Word,
			Points:  result.Points,
		})
	}

	c.broadcastState(sess)
	return nil
}

func (c *Coordinator) sessionFor(connID model.ConnectionID) (*session, error) {
	code, ok := c.members[connID]
	if !ok {
		return nil, model.ErrNotInRoom
	}
	sess, ok := c.rooms[code]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return sess, nil
}

func (c *Coordinator) generateRoomCode() (model.RoomCode, error) {
	for i := 0; i < roomCodeAttempts; i++ {
		code := model.RoomCode(c.rnd.String(roomCodeLength, roomCodeAlphabet))
		if _, taken := c.rooms[code]; !taken {
			return code, nil
		}
	}
	return "", model.ErrRoomCodeExhausted
}

func (c *Coordinator) snapshot(sess *session) *protocol.RoomState {
	var gameState any
	if sess.plugin != nil {
		gameState = sess.plugin.SharedState()
	}
	return protocol.SnapshotRoom(sess.room, gameState)
}

// broadcastState sends a gameStateUpdate snapshot to every connected
// player in the room
func (c *Coordinator) broadcastState(sess *session) {
	c.broadcast(sess, protocol.GameStateUpdate{
		Type:      protocol.TypeGameStateUpdate,
		RoomState: c.snapshot(sess),
	}, "")
}

func (c *Coordinator) broadcast(sess *session, payload any, exclude model.ConnectionID) {
	for _, p := range sess.room.Players {
		if !p.IsConnected || p.ConnectionID == exclude {
			continue
		}
		c.sender.Send(p.ConnectionID, payload)
	}
}

func (c *Coordinator) sendRole(connID model.ConnectionID, plugin games.Plugin) {
	payload, err := protocol.WithType(protocol.TypePlayerRole, plugin.PlayerView(connID))
	if err != nil {
		c.logger.Error("failed to build role message",
			"client", connID,
			"error", err)
		return
	}
	c.sender.Send(connID, payload)
}
