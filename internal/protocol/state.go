package protocol

import (
	"time"

	"github.com/openroom/partygames-go/internal/model"
)

// PlayerState is the broadcast-safe projection of one room member.
// Persistent identities are deliberately absent: they are reconnection
// credentials and must never reach other clients.
type PlayerState struct {
	ID          model.ConnectionID `json:"id"`
	Name        string             `json:"name"`
	IsHost      bool               `json:"isHost"`
	IsConnected bool               `json:"isConnected"`
	JoinedAt    time.Time          `json:"joinedAt"`
}

// RoomState is the read-only room snapshot broadcast after every
// successful state mutation. Clients render the last received snapshot
// verbatim; they make no decisions of their own. GameState is the bound
// plugin's shared-state projection and varies by game type.
type RoomState struct {
	Code      model.RoomCode  `json:"code"`
	GameType  model.GameType  `json:"gameType"`
	Players   []PlayerState   `json:"players"`
	GamePhase model.GamePhase `json:"gamePhase"`
	Settings  *GameSettings   `json:"settings,omitempty"`
	GameState any             `json:"gameState"`
}

// SnapshotPlayer projects a player for broadcast
func SnapshotPlayer(p *model.Player) PlayerState {
	return PlayerState{
		ID:          p.ConnectionID,
		Name:        p.Name,
		IsHost:      p.IsHost,
		IsConnected: p.IsConnected,
		JoinedAt:    p.JoinedAt,
	}
}

// SnapshotRoom projects a room plus the plugin's shared game state
func SnapshotRoom(r *model.Room, gameState any) *RoomState {
	players := make([]PlayerState, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, SnapshotPlayer(p))
	}
	state := &RoomState{
		Code:      r.Code,
		GameType:  r.GameType,
		Players:   players,
		GamePhase: r.Phase,
		GameState: gameState,
	}
	if r.Settings.Category != "" {
		state.Settings = &GameSettings{Category: r.Settings.Category}
	}
	return state
}
