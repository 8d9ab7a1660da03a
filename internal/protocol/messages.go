package protocol

import (
	"encoding/json"

	"github.com/openroom/partygames-go/internal/model"
)

// Client-to-server message types
const (
	TypeCreateRoom         = "createRoom"
	TypeJoinRoom           = "joinRoom"
	TypeReconnectToRoom    = "reconnectToRoom"
	TypeLeaveRoom          = "leaveRoom"
	TypeStartGame          = "startGame"
	TypeAdvancePhase       = "advancePhase"
	TypeUpdateGameSettings = "updateGameSettings"
	TypePlayAgain          = "playAgain"

	// Game-specific types, forwarded opaquely to the bound plugin
	TypeSendChatMessage = "sendChatMessage"
	TypeVote            = "vote"
	TypeSubmitWord      = "submitWord"
	TypeStartGameTimer  = "startGameTimer"
)

// Server-to-client message types
const (
	TypeConnected          = "connected"
	TypeRoomCreated        = "roomCreated"
	TypeRoomJoined         = "roomJoined"
	TypeReconnected        = "reconnected"
	TypePlayerJoined       = "playerJoined"
	TypePlayerLeft         = "playerLeft"
	TypePlayerDisconnected = "playerDisconnected"
	TypePlayerReconnected  = "playerReconnected"
	TypeGameStateUpdate    = "gameStateUpdate"
	TypePlayerRole         = "playerRole"
	TypeWordResult         = "wordResult"
	TypeError              = "error"
)

// GameSettings carries host-configurable pre-game options
type GameSettings struct {
	Category string `json:"category,omitempty"`
}

// ClientMessage is the decoded form of one inbound JSON frame. All
// operations share a single flat envelope discriminated by Type; fields
// irrelevant to a given type are left at their zero values.
type ClientMessage struct {
	Type string `json:"type"`

	// Room lifecycle fields
	GameType           model.GameType     `json:"gameType,omitempty"`
	RoomCode           model.RoomCode     `json:"roomCode,omitempty"`
	PlayerName         string             `json:"playerName,omitempty"`
	PersistentPlayerID model.PersistentID `json:"persistentPlayerId,omitempty"`
	ExpectedGameType   model.GameType     `json:"expectedGameType,omitempty"`
	NewPhase           model.GamePhase    `json:"newPhase,omitempty"`
	Settings           *GameSettings      `json:"settings,omitempty"`

	// Game-specific fields
	Message       string             `json:"message,omitempty"`
	VotedPlayerID model.ConnectionID `json:"votedPlayerId,omitempty"`
	Word          string             `json:"word,omitempty"`
	Path          []int              `json:"path,omitempty"`
}

// Outbound messages

type Connected struct {
	Type     string             `json:"type"`
	ClientID model.ConnectionID `json:"clientId"`
}

type RoomCreated struct {
	Type      string         `json:"type"`
	RoomCode  model.RoomCode `json:"roomCode"`
	RoomState *RoomState     `json:"roomState"`
}

type RoomJoined struct {
	Type      string     `json:"type"`
	RoomState *RoomState `json:"roomState"`
}

type Reconnected struct {
	Type      string     `json:"type"`
	RoomState *RoomState `json:"roomState"`
}

type PlayerJoined struct {
	Type      string       `json:"type"`
	Player    *PlayerState `json:"player"`
	RoomState *RoomState   `json:"roomState"`
}

type PlayerLeft struct {
	Type      string             `json:"type"`
	PlayerID  model.ConnectionID `json:"playerId"`
	RoomState *RoomState         `json:"roomState"`
}

type PlayerDisconnected struct {
	Type      string             `json:"type"`
	PlayerID  model.ConnectionID `json:"playerId"`
	RoomState *RoomState         `json:"roomState"`
}

type PlayerReconnected struct {
	Type      string       `json:"type"`
	Player    *PlayerState `json:"player"`
	RoomState *RoomState   `json:"roomState"`
}

type GameStateUpdate struct {
	Type      string     `json:"type"`
	RoomState *RoomState `json:"roomState"`
}

type WordResult struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Word    string `json:"word"`
	Points  int    `json:"points"`
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewError builds an error reply
func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}

// WithType flattens payload's JSON fields into a single object alongside
// a top-level type discriminator. Used for playerRole messages, whose
// fields are game-specific and spread at the top level of the frame.
func WithType(msgType string, payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	out["type"] = msgType
	return out, nil
}
